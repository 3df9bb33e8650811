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

// Insert adds the given key to the tree.  If the key is already present, the
// tree is left as it is and Insert returns false.
func (t *Tree[K]) Insert(key K) bool {
	var (
		parent = nilIndex
		d      = left
	)
	for n := t.root; n != nilIndex; {
		parent = n
		switch k := t.nodes[n].key; {
		case key < k:
			d = left
		case k < key:
			d = right
		default:
			return false
		}
		n = t.nodes[n].child[d]
	}

	n := t.alloc(key, parent)
	if parent == nilIndex {
		t.root = n
	} else {
		t.nodes[parent].child[d] = n
	}
	t.count++

	t.fixInsert(n)
	return true
}

// fixInsert restores the invariants after the given red leaf has been spliced
// in.  The only possible violation is a red node with a red parent, which is
// pushed up the tree until it can be resolved by at most two rotations.
//
//	case 1, uncle is red -> recolor and move up to the grandparent
//	case 2, uncle is black and n is an inner grandchild -> rotate into case 3
//	case 3, uncle is black and n is an outer grandchild -> recolor and rotate
func (t *Tree[K]) fixInsert(n index) {
	for n != t.root && t.color(n) == Red && t.color(t.parent(n)) == Red {
		// the grandparent exists, since the parent is red and the root is black
		p := t.parent(n)
		g := t.parent(p)
		d := t.side(p)
		uncle := t.childOf(g, d.opposite())

		// case 1
		if t.color(uncle) == Red {
			t.paint(p, Black)
			t.paint(uncle, Black)
			t.paint(g, Red)
			n = g
			continue
		}

		// case 2
		if t.childOf(p, d.opposite()) == n {
			t.rotate(p, d)
			n, p = p, n
		}

		// case 3
		t.paint(p, Black)
		t.paint(g, Red)
		t.rotate(g, d.opposite())
		n = p
	}
	t.paint(t.root, Black)
}
