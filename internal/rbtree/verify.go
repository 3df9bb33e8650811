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

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// IsValid reports whether the tree is a valid red-black tree: the root is
// black, no red node has a red child and every path from a node to an absent
// child passes through the same number of black nodes.  An empty tree is
// valid.
func (t *Tree[K]) IsValid() bool {
	if t.root == nilIndex {
		return true
	}
	if t.color(t.root) != Black {
		return false
	}
	_, ok := t.blackHeight(t.root)
	return ok
}

// blackHeight returns the black height of the subtree rooted at the given
// node, where an absent node has height 1.  The recursion depth is bounded by
// the height of the tree, which stays logarithmic while the coloring holds
// and is cut short as soon as it does not.
func (t *Tree[K]) blackHeight(n index) (int, bool) {
	if n == nilIndex {
		return 1, true
	}

	l, r := t.childOf(n, left), t.childOf(n, right)
	if t.color(n) == Red && (t.color(l) == Red || t.color(r) == Red) {
		return 0, false
	}

	lh, ok := t.blackHeight(l)
	if !ok {
		return 0, false
	}
	rh, ok := t.blackHeight(r)
	if !ok || lh != rh {
		return 0, false
	}

	if t.color(n) == Black {
		lh++
	}
	return lh, true
}

// Verify checks every structural invariant of the tree and returns an error
// describing the first violation found.  In addition to the coloring checked
// by IsValid, it checks the order of the keys, the parent back-references and
// the number of keys.
func (t *Tree[K]) Verify() error {
	if t.root == nilIndex {
		if t.count != 0 {
			return errors.Errorf("empty tree reports %d keys", t.count)
		}
		return nil
	}
	if t.parent(t.root) != nilIndex {
		return errors.Errorf("root %v has a parent", t.nodes[t.root].key)
	}
	if t.color(t.root) != Black {
		return errors.Errorf("root %v is red", t.nodes[t.root].key)
	}

	v := verifier[K]{tree: t}
	if _, err := v.walk(t.root); err != nil {
		return err
	}
	if v.count != t.count {
		return errors.Errorf("found %d keys, tree reports %d", v.count, t.count)
	}
	return nil
}

// verifier walks the tree in order, carrying the last key seen so that the
// order of keys can be checked in a single pass.
type verifier[K constraints.Integer] struct {
	tree  *Tree[K]
	prev  K
	count int
}

func (v *verifier[K]) walk(n index) (int, error) {
	if n == nilIndex {
		return 1, nil
	}
	t := v.tree

	for _, d := range [...]direction{left, right} {
		c := t.childOf(n, d)
		if c == nilIndex {
			continue
		}
		if t.parent(c) != n {
			return 0, errors.Errorf("child %v of %v points at another parent", t.nodes[c].key, t.nodes[n].key)
		}
		if t.color(n) == Red && t.color(c) == Red {
			return 0, errors.Errorf("red node %v has red child %v", t.nodes[n].key, t.nodes[c].key)
		}
	}

	lh, err := v.walk(t.childOf(n, left))
	if err != nil {
		return 0, err
	}

	if 0 < v.count && t.nodes[n].key <= v.prev {
		return 0, errors.Errorf("key %v follows %v in order", t.nodes[n].key, v.prev)
	}
	v.prev = t.nodes[n].key
	v.count++

	rh, err := v.walk(t.childOf(n, right))
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.Errorf("black heights below %v differ: %d != %d", t.nodes[n].key, lh, rh)
	}

	if t.color(n) == Black {
		lh++
	}
	return lh, nil
}
