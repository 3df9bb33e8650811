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

// Package dump prints the nodes of a red-black tree, one line per node, for
// inspection.  Each line holds the key and color of the node followed by
// those of its left and right children:
//
//	node: 30B left: 10B right: 50B
//
// An absent child is printed as nullptr.
package dump

import (
	"bufio"
	"fmt"
	"io"

	"github.com/9rum/rbset/internal/rbtree"
	"golang.org/x/exp/constraints"
)

// Traverser is the read-only view of a tree consumed by this package.
type Traverser[K constraints.Integer] interface {
	Preorder(fn rbtree.Iterator[K])
	Inorder(fn rbtree.Iterator[K])
}

// Fprint writes the nodes of the given tree to w in pre-order.
func Fprint[K constraints.Integer](w io.Writer, t Traverser[K]) error {
	return write(w, t.Preorder)
}

// Fprintin writes the nodes of the given tree to w in in-order.
func Fprintin[K constraints.Integer](w io.Writer, t Traverser[K]) error {
	return write(w, t.Inorder)
}

// Format formats a single node.
func Format[K constraints.Integer](e rbtree.Entry[K]) string {
	return fmt.Sprintf("node: %v%s left: %s right: %s", e.Key, letter(e.Color), link(e.Left), link(e.Right))
}

func write[K constraints.Integer](w io.Writer, traverse func(rbtree.Iterator[K])) (err error) {
	bw := bufio.NewWriter(w)
	traverse(func(e rbtree.Entry[K]) bool {
		_, err = fmt.Fprintln(bw, Format(e))
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

func link[K constraints.Integer](l rbtree.Link[K]) string {
	if !l.Ok {
		return "nullptr"
	}
	return fmt.Sprintf("%v%s", l.Key, letter(l.Color))
}

// letter abbreviates the given color.
func letter(c rbtree.Color) string {
	if c == rbtree.Red {
		return "R"
	}
	return "B"
}
