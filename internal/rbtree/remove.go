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

// Remove removes the given key from the tree.  If the key is not present, the
// tree is left as it is and Remove returns false.
//
// A node with two children is not detached itself; the key of its in-order
// successor is copied into it and the successor node is detached instead.
func (t *Tree[K]) Remove(key K) bool {
	z := t.find(key)
	if z == nilIndex {
		return false
	}

	// y is the node actually detached, x the child that takes its place and
	// xParent the parent x ends up under.  x may be absent, in which case it
	// cannot carry its own parent.
	var (
		y       = z
		x       index
		xParent index
	)
	switch {
	case t.childOf(z, left) == nilIndex:
		x = t.childOf(z, right)
	case t.childOf(z, right) == nilIndex:
		x = t.childOf(z, left)
	default:
		y = t.minimum(t.childOf(z, right))
		x = t.childOf(y, right)
		t.nodes[z].key = t.nodes[y].key
	}
	xParent = t.parent(y)
	color := t.color(y)

	t.replaceInParent(y, x)
	t.release(y)
	t.count--

	// detaching a red node never changes any black height
	if color == Black {
		t.fixRemove(x, xParent)
	}
	return true
}

// minimum returns the leftmost node in the subtree rooted at the given node.
func (t *Tree[K]) minimum(n index) index {
	for l := t.childOf(n, left); l != nilIndex; l = t.childOf(n, left) {
		n = l
	}
	return n
}

// fixRemove resolves the black deficit at the position of n, a child of
// parent.  n may be absent, hence parent is tracked separately.
//
//	case 1, sibling is red -> rotate into one of the cases below
//	case 2, sibling is black with two black children -> recolor and move up
//	case 3, sibling's far child is black and near child is red -> rotate into case 4
//	case 4, sibling's far child is red -> recolor and rotate, which terminates
func (t *Tree[K]) fixRemove(n, parent index) {
	for n != t.root && t.color(n) == Black {
		d := left
		if t.childOf(parent, left) != n {
			d = right
		}
		o := d.opposite()

		// the sibling is present, since the black heights were equal before
		// the removal
		sibling := t.childOf(parent, o)

		// case 1
		if t.color(sibling) == Red {
			t.paint(sibling, Black)
			t.paint(parent, Red)
			t.rotate(parent, d)
			sibling = t.childOf(parent, o)
		}

		// case 2
		if t.color(t.childOf(sibling, d)) == Black && t.color(t.childOf(sibling, o)) == Black {
			t.paint(sibling, Red)
			n, parent = parent, t.parent(parent)
			continue
		}

		// case 3
		if t.color(t.childOf(sibling, o)) == Black {
			t.paint(t.childOf(sibling, d), Black)
			t.paint(sibling, Red)
			t.rotate(sibling, o)
			sibling = t.childOf(parent, o)
		}

		// case 4
		t.paint(sibling, t.color(parent))
		t.paint(parent, Black)
		t.paint(t.childOf(sibling, o), Black)
		t.rotate(parent, d)
		n = t.root
	}

	if n != nilIndex {
		t.paint(n, Black)
	}
}
