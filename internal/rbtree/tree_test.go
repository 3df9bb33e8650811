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
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perm returns a random permutation of n keys in the range [0, n).
func perm(n int) []int {
	return rand.Perm(n)
}

// rang returns an ordered list of keys in the range [0, n).
func rang(n int) (out []int) {
	for i := 0; i < n; i++ {
		out = append(out, i)
	}
	return
}

// entries extracts all nodes from a tree in pre-order.
func entries[K ~int](t *Tree[K]) (out []Entry[K]) {
	t.Preorder(func(e Entry[K]) bool {
		out = append(out, e)
		return true
	})
	return
}

func TestTree(t *testing.T) {
	r := require.New(t)
	tr := New[int]()
	const treeSize = 10000
	for i := 0; i < 10; i++ {
		for _, key := range perm(treeSize) {
			r.True(tr.Insert(key), "insert found key %d", key)
		}
		r.NoError(tr.Verify())
		r.Equal(treeSize, tr.Len())
		for _, key := range perm(treeSize) {
			r.True(tr.Contains(key), "contains did not find key %d", key)
		}
		for _, key := range perm(treeSize) {
			r.False(tr.Insert(key), "insert didn't find key %d", key)
		}
		r.Equal(rang(treeSize), tr.Keys())

		for _, key := range perm(treeSize) {
			r.True(tr.Remove(key), "didn't find %d", key)
		}
		r.Empty(tr.Keys())
		r.Zero(tr.Len())
		r.True(tr.IsValid())
	}
}

func TestInsertAscending(t *testing.T) {
	r := require.New(t)
	tr := New[int]()
	r.True(tr.IsValid())

	var want []int
	for i := 0; i < 10; i++ {
		r.True(tr.Insert(i * 10))
		r.True(tr.IsValid(), "invalid after inserting %d", i*10)
		want = append(want, i*10)
	}
	r.Equal(want, tr.Keys())

	root := entries(tr)[0]
	r.Equal(30, root.Key)
	r.Equal(Black, root.Color)
}

func TestRemoveDescending(t *testing.T) {
	r := require.New(t)
	tr := New[int]()
	for i := 0; i < 10; i++ {
		tr.Insert(i * 10)
	}

	for _, key := range []int{50, 40, 30, 20, 10, 0} {
		r.True(tr.Remove(key))
		r.True(tr.IsValid(), "invalid after removing %d", key)
		r.NoError(tr.Verify())
		r.False(tr.Contains(key))
	}
	r.Equal([]int{60, 70, 80, 90}, tr.Keys())

	for _, key := range []int{80, 90, 70, 60} {
		r.True(tr.Remove(key))
		r.NoError(tr.Verify())
	}
	r.Zero(tr.Len())
	r.Empty(entries(tr))
}

func TestRemoveTwoChildren(t *testing.T) {
	r := require.New(t)
	tr := New[int]()
	for i := 0; i < 10; i++ {
		tr.Insert(i * 10)
	}

	// 30 is the root, with 10 and 50 below it
	z := tr.find(30)
	r.Equal(tr.root, z)
	r.NotEqual(nilIndex, tr.childOf(z, left))
	r.NotEqual(nilIndex, tr.childOf(z, right))

	r.True(tr.Remove(30))
	r.NoError(tr.Verify())
	r.False(tr.Contains(30))

	// the successor key moved into the node that held 30
	r.Equal(40, tr.nodes[z].key)
	r.Equal([]int{0, 10, 20, 40, 50, 60, 70, 80, 90}, tr.Keys())
	for _, e := range entries(tr) {
		r.NotEqual(30, e.Key)
	}
}

func TestRemoveAbsent(t *testing.T) {
	r := require.New(t)
	tr := New[int]()
	r.False(tr.Remove(999))

	for _, key := range perm(100) {
		tr.Insert(key)
	}
	before := entries(tr)
	valid := tr.IsValid()

	r.False(tr.Remove(999))
	r.False(tr.Remove(-1))
	r.Equal(before, entries(tr))
	r.Equal(valid, tr.IsValid())
	r.Equal(100, tr.Len())
}

func TestInsertDuplicate(t *testing.T) {
	r := require.New(t)
	once, twice := New[int](), New[int]()
	for _, key := range perm(500) {
		once.Insert(key)
		twice.Insert(key)
		r.False(twice.Insert(key))
	}
	r.Equal(entries(once), entries(twice))
	r.Equal(once.Len(), twice.Len())
}

func TestRotate(t *testing.T) {
	r := require.New(t)
	tr := New[int]()
	for _, key := range []int{2, 1, 3} {
		tr.Insert(key)
	}
	two, one, three := tr.find(2), tr.find(1), tr.find(3)

	tr.rotateLeft(two)
	r.Equal(three, tr.root)
	r.Equal(nilIndex, tr.parent(three))
	r.Equal(two, tr.childOf(three, left))
	r.Equal(three, tr.parent(two))
	r.Equal(one, tr.childOf(two, left))
	r.Equal(nilIndex, tr.childOf(two, right))
	r.Equal([]int{1, 2, 3}, tr.Keys())

	tr.rotateRight(three)
	r.Equal(two, tr.root)
	r.Equal(nilIndex, tr.parent(two))
	r.Equal(one, tr.childOf(two, left))
	r.Equal(three, tr.childOf(two, right))
	r.Equal(two, tr.parent(three))
	r.NoError(tr.Verify())
}

func TestRotateInner(t *testing.T) {
	r := require.New(t)
	tr := New[int]()
	for _, key := range perm(64) {
		tr.Insert(key)
	}
	keys := tr.Keys()

	// rotations below the root move inner subtrees and keep the order
	for _, key := range keys {
		n := tr.find(key)
		if tr.childOf(n, right) != nilIndex {
			tr.rotateLeft(n)
			r.Equal(keys, tr.Keys())
			tr.rotateRight(tr.parent(n))
			r.Equal(keys, tr.Keys())
		}
	}
	r.NoError(tr.Verify())
}

func TestClear(t *testing.T) {
	r := require.New(t)
	tr := New[int]()
	const treeSize = 1000
	for _, key := range perm(treeSize) {
		tr.Insert(key)
	}
	r.Len(tr.nodes, treeSize+1)

	tr.Clear()
	r.Zero(tr.Len())
	r.Len(tr.free, treeSize)
	r.True(tr.IsValid())
	r.NoError(tr.Verify())
	r.False(tr.Contains(0))

	// every slot was released exactly once
	seen := make(map[index]bool, treeSize)
	for _, n := range tr.free {
		r.False(seen[n], "slot %d released twice", n)
		seen[n] = true
	}

	// released slots are reused
	for _, key := range perm(treeSize) {
		tr.Insert(key)
	}
	r.Len(tr.nodes, treeSize+1)
	r.Empty(tr.free)
	r.NoError(tr.Verify())

	tr.Clear()
	tr.Clear()
	r.Len(tr.free, treeSize)
}

// TestOracle cross-checks the contents of the tree against a B-tree after
// every operation of a random sequence.
func TestOracle(t *testing.T) {
	r := require.New(t)
	rnd := rand.New(rand.NewSource(42))
	const (
		keySpace = 256
		steps    = 20000
	)
	tr := New[int]()
	oracle := btree.NewOrderedG[int](32)

	for step := 0; step < steps; step++ {
		key := rnd.Intn(keySpace)
		if rnd.Intn(100) < 55 {
			_, found := oracle.ReplaceOrInsert(key)
			r.Equal(!found, tr.Insert(key), "insert %d at step %d", key, step)
		} else {
			_, found := oracle.Delete(key)
			r.Equal(found, tr.Remove(key), "remove %d at step %d", key, step)
		}
		r.NoError(tr.Verify(), "step %d", step)
		r.Equal(oracle.Has(key), tr.Contains(key))
		r.Equal(oracle.Len(), tr.Len())

		if step%500 == 0 {
			var want []int
			oracle.Ascend(func(key int) bool {
				want = append(want, key)
				return true
			})
			if want == nil {
				want = []int{}
			}
			r.Equal(want, tr.Keys())
		}
	}
}

func TestVerify(t *testing.T) {
	build := func() *Tree[int] {
		tr := New[int]()
		for _, key := range []int{2, 1, 3, 4} {
			tr.Insert(key)
		}
		return tr
	}

	tests := []struct {
		name    string
		corrupt func(tr *Tree[int])
		valid   bool
	}{
		{"intact", func(tr *Tree[int]) {}, true},
		{"red root", func(tr *Tree[int]) { tr.paint(tr.root, Red) }, false},
		{"red red", func(tr *Tree[int]) { tr.paint(tr.find(3), Red) }, false},
		{"black height", func(tr *Tree[int]) { tr.paint(tr.find(4), Black) }, false},
		{"order", func(tr *Tree[int]) { tr.nodes[tr.find(1)].key = 10 }, true},
		{"parent", func(tr *Tree[int]) { tr.nodes[tr.find(4)].parent = tr.root }, true},
		{"count", func(tr *Tree[int]) { tr.count++ }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := build()
			tt.corrupt(tr)
			assert.Equal(t, tt.valid, tr.IsValid())
			if tt.name == "intact" {
				assert.NoError(t, tr.Verify())
			} else {
				assert.Error(t, tr.Verify())
			}
		})
	}
}

func TestTraverse(t *testing.T) {
	r := require.New(t)
	tr := New[int]()
	for _, key := range []int{1, 2, 3, 4, 5} {
		tr.Insert(key)
	}

	want := []Entry[int]{
		{Key: 2, Color: Black, Left: Link[int]{1, Black, true}, Right: Link[int]{4, Black, true}},
		{Key: 1, Color: Black},
		{Key: 4, Color: Black, Left: Link[int]{3, Red, true}, Right: Link[int]{5, Red, true}},
		{Key: 3, Color: Red},
		{Key: 5, Color: Red},
	}
	r.Equal(want, entries(tr))

	var keys []int
	tr.Inorder(func(e Entry[int]) bool {
		keys = append(keys, e.Key)
		return len(keys) < 3
	})
	r.Equal([]int{1, 2, 3}, keys)

	visited := 0
	tr.Preorder(func(Entry[int]) bool {
		visited++
		return false
	})
	r.Equal(1, visited)
}

func TestUnsignedKeys(t *testing.T) {
	r := require.New(t)
	tr := New[uint8]()
	for key := 255; 0 <= key; key-- {
		r.True(tr.Insert(uint8(key)))
	}
	r.Equal(256, tr.Len())
	r.NoError(tr.Verify())
	for key := 0; key < 256; key += 2 {
		r.True(tr.Remove(uint8(key)))
	}
	r.Equal(128, tr.Len())
	r.NoError(tr.Verify())
}

func FuzzTree(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 11, 9, 7, 5, 3, 1})
	f.Add([]byte("hello world"))

	// even bytes insert, odd bytes remove the key in the upper bits
	f.Fuzz(func(t *testing.T, ops []byte) {
		tr := New[int]()
		present := make(map[int]bool)
		for _, op := range ops {
			key := int(op >> 1)
			if op&1 == 0 {
				assert.Equal(t, !present[key], tr.Insert(key))
				present[key] = true
			} else {
				assert.Equal(t, present[key], tr.Remove(key))
				delete(present, key)
			}
			if err := tr.Verify(); err != nil {
				t.Fatal(err)
			}
		}
		assert.Equal(t, len(present), tr.Len())
	})
}

const benchmarkTreeSize = 1 << 14

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	keys := perm(benchmarkTreeSize)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		tr := New[int]()
		for _, key := range keys {
			tr.Insert(key)
		}
	}
}

func BenchmarkRemove(b *testing.B) {
	b.StopTimer()
	keys := perm(benchmarkTreeSize)
	removals := perm(benchmarkTreeSize)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr := New[int]()
		for _, key := range keys {
			tr.Insert(key)
		}
		b.StartTimer()
		for _, key := range removals {
			tr.Remove(key)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	b.StopTimer()
	tr := New[int]()
	for _, key := range perm(benchmarkTreeSize) {
		tr.Insert(key)
	}
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		tr.Contains(i % benchmarkTreeSize)
	}
}
