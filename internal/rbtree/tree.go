// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rbtree implements an in-memory red-black tree of unique integer
// keys.
//
// The tree keeps its height logarithmic in the number of keys by coloring
// every node red or black and restoring the following invariants after each
// insertion and removal:
//   - every key in the left subtree of a node is less than the key of the
//     node, and every key in its right subtree is greater;
//   - the root is black;
//   - a red node never has a red child;
//   - every path from a node down to an absent child passes through the same
//     number of black nodes.
//
// Absent children count as black.
//
// Nodes are kept in an arena and addressed by their position in it, so that
// rotations and fix-ups only rewire indices.  Slot 0 of the arena is a shared
// sentinel standing for every absent child; its color always reads as black
// and it is never written.  Slots released by removals are kept in a free
// list and reused by later insertions.
//
// A Tree is not safe for concurrent use; callers that share a tree across
// goroutines must serialize access themselves.
package rbtree

import "golang.org/x/exp/constraints"

// Color is the color of a node in the tree.
type Color uint8

const (
	// Black is the zero value so that the sentinel reads as black.
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "RED"
	}
	return "BLACK"
}

// direction selects a child of a node.
type direction int

const (
	left direction = iota
	right
)

// opposite returns the mirror image of the direction.
func (d direction) opposite() direction {
	return 1 - d
}

// index addresses a node in the arena.
type index int

// nilIndex is the sentinel standing for an absent node.
const nilIndex index = 0

// node represents a single key in the tree.
type node[K constraints.Integer] struct {
	key    K
	color  Color
	child  [2]index
	parent index
}

// Tree is a red-black tree of unique keys.  The zero value is not usable;
// use New to create a tree.
type Tree[K constraints.Integer] struct {
	nodes []node[K]
	free  []index
	root  index
	count int
}

// New creates a new, empty tree.
func New[K constraints.Integer]() *Tree[K] {
	return &Tree[K]{
		nodes: make([]node[K], 1),
	}
}

// Len returns the number of keys currently in the tree.
func (t *Tree[K]) Len() int {
	return t.count
}

// Contains reports whether the given key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.find(key) != nilIndex
}

// find looks for the node holding the given key, returning nilIndex if there
// is none.
func (t *Tree[K]) find(key K) index {
	n := t.root
	for n != nilIndex {
		switch k := t.nodes[n].key; {
		case key < k:
			n = t.nodes[n].child[left]
		case k < key:
			n = t.nodes[n].child[right]
		default:
			return n
		}
	}
	return nilIndex
}

// Clear removes all keys from the tree.  Every node is released exactly once,
// children before their parent.
func (t *Tree[K]) Clear() {
	if t.root == nilIndex {
		return
	}

	// post-order walk with an explicit stack; last tracks the node released
	// most recently so that a parent is only released after both children.
	var (
		stack = []index{t.root}
		last  = nilIndex
	)
	for 0 < len(stack) {
		n := stack[len(stack)-1]
		l, r := t.nodes[n].child[left], t.nodes[n].child[right]
		switch {
		case l != nilIndex && last != l && last != r:
			stack = append(stack, l)
		case r != nilIndex && last != r:
			stack = append(stack, r)
		default:
			stack = stack[:len(stack)-1]
			t.release(n)
			last = n
		}
	}
	t.root = nilIndex
	t.count = 0
}

// alloc creates a new red node with the given key and parent, reusing a
// released slot if there is one.
func (t *Tree[K]) alloc(key K, parent index) index {
	n := node[K]{
		key:    key,
		color:  Red,
		parent: parent,
	}
	if last := len(t.free) - 1; 0 <= last {
		i := t.free[last]
		t.free = t.free[:last]
		t.nodes[i] = n
		return i
	}
	t.nodes = append(t.nodes, n)
	return index(len(t.nodes) - 1)
}

// release returns the slot of the given node to the free list.
func (t *Tree[K]) release(n index) {
	t.nodes[n] = node[K]{}
	t.free = append(t.free, n)
}

// color returns the color of the given node; absent nodes are black.
func (t *Tree[K]) color(n index) Color {
	return t.nodes[n].color
}

// paint sets the color of the given node, which must be present.
func (t *Tree[K]) paint(n index, c Color) {
	t.nodes[n].color = c
}

func (t *Tree[K]) parent(n index) index {
	return t.nodes[n].parent
}

func (t *Tree[K]) childOf(n index, d direction) index {
	return t.nodes[n].child[d]
}

// side returns on which side of its parent the given node hangs.
func (t *Tree[K]) side(n index) direction {
	if t.nodes[t.nodes[n].parent].child[left] == n {
		return left
	}
	return right
}
