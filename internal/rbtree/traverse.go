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

package rbtree

import "golang.org/x/exp/constraints"

// Link describes a child of a visited node.  Ok is false if the child is
// absent.
type Link[K constraints.Integer] struct {
	Key   K
	Color Color
	Ok    bool
}

// Entry describes a visited node along with its children.
type Entry[K constraints.Integer] struct {
	Key         K
	Color       Color
	Left, Right Link[K]
}

// Iterator allows callers of Preorder and Inorder to visit the nodes of the
// tree.  When this function returns false, the traversal stops and the
// associated function immediately returns.
type Iterator[K constraints.Integer] func(Entry[K]) bool

// entry describes the given node.
func (t *Tree[K]) entry(n index) Entry[K] {
	link := func(c index) (_ Link[K]) {
		if c == nilIndex {
			return
		}
		return Link[K]{Key: t.nodes[c].key, Color: t.nodes[c].color, Ok: true}
	}
	return Entry[K]{
		Key:   t.nodes[n].key,
		Color: t.nodes[n].color,
		Left:  link(t.childOf(n, left)),
		Right: link(t.childOf(n, right)),
	}
}

// Preorder calls fn for every node in the tree, visiting a node before its
// left subtree and its left subtree before its right subtree.
func (t *Tree[K]) Preorder(fn Iterator[K]) {
	if t.root == nilIndex {
		return
	}
	stack := []index{t.root}
	for 0 < len(stack) {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(t.entry(n)) {
			return
		}
		if r := t.childOf(n, right); r != nilIndex {
			stack = append(stack, r)
		}
		if l := t.childOf(n, left); l != nilIndex {
			stack = append(stack, l)
		}
	}
}

// Inorder calls fn for every node in the tree in ascending order of keys.
func (t *Tree[K]) Inorder(fn Iterator[K]) {
	var stack []index
	for n := t.root; n != nilIndex || 0 < len(stack); {
		if n != nilIndex {
			stack = append(stack, n)
			n = t.childOf(n, left)
			continue
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(t.entry(n)) {
			return
		}
		n = t.childOf(n, right)
	}
}

// Keys returns all keys in the tree in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.Inorder(func(e Entry[K]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}
