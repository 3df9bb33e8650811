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

// rotate moves the pivot down in the given direction.  The child of the pivot
// on the opposite side takes the place of the pivot, the inner subtree of that
// child is handed over to the pivot, and the pivot becomes its child.  The
// in-order sequence of keys is preserved; colors are left untouched.
func (t *Tree[K]) rotate(pivot index, d direction) {
	o := d.opposite()
	c := t.nodes[pivot].child[o]

	// step 1: the inner subtree of c moves under the pivot
	inner := t.nodes[c].child[d]
	t.nodes[pivot].child[o] = inner
	if inner != nilIndex {
		t.nodes[inner].parent = pivot
	}

	// step 2: c takes the structural position of the pivot
	t.replaceInParent(pivot, c)

	// step 3: the pivot hangs under c
	t.nodes[c].child[d] = pivot
	t.nodes[pivot].parent = c
}

// rotateLeft rotates around the pivot, lifting its right child.
func (t *Tree[K]) rotateLeft(pivot index) {
	t.rotate(pivot, left)
}

// rotateRight rotates around the pivot, lifting its left child.
func (t *Tree[K]) rotateRight(pivot index) {
	t.rotate(pivot, right)
}

// replaceInParent makes the parent of old point at n instead, or makes n the
// root if old has no parent.  Neither the children of old nor those of n are
// touched.
func (t *Tree[K]) replaceInParent(old, n index) {
	p := t.nodes[old].parent
	if p == nilIndex {
		t.root = n
	} else if t.nodes[p].child[left] == old {
		t.nodes[p].child[left] = n
	} else {
		t.nodes[p].child[right] = n
	}

	if n != nilIndex {
		t.nodes[n].parent = p
	}
}
