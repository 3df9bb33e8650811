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

// Package orderedset serves an ordered set of integer keys over gRPC.  The
// set is backed by a red-black tree; a single lock around each call
// serializes the requests of concurrent clients.
package orderedset

import (
	"sync"

	"github.com/9rum/rbset/internal/rbtree"
)

// tree is the structure backing a Set.
type tree interface {
	Insert(key int64) bool
	Remove(key int64) bool
	Contains(key int64) bool
	Len() int
	IsValid() bool
	Verify() error
	Preorder(fn rbtree.Iterator[int64])
	Inorder(fn rbtree.Iterator[int64])
	Keys() []int64
	Clear()
}

// Set is an ordered set of unique keys that is safe for concurrent use.
type Set struct {
	mu   sync.RWMutex
	tree tree
}

// New creates a new, empty set.
func New() *Set {
	return &Set{
		tree: rbtree.New[int64](),
	}
}

// Insert adds the given key, returning false if it was already present.
func (s *Set) Insert(key int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(key)
}

// Remove removes the given key, returning false if it was not present.
func (s *Set) Remove(key int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Remove(key)
}

// Contains reports whether the given key is present.
func (s *Set) Contains(key int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Contains(key)
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

// Verify checks the structure of the underlying tree.  It returns whether the
// coloring is valid along with the first structural violation found, if any.
func (s *Set) Verify() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.IsValid(), s.tree.Verify()
}

// Preorder visits the nodes of the underlying tree in pre-order.  The set
// must not be modified from fn.
func (s *Set) Preorder(fn rbtree.Iterator[int64]) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tree.Preorder(fn)
}

// Inorder visits the nodes of the underlying tree in ascending order of keys.
// The set must not be modified from fn.
func (s *Set) Inorder(fn rbtree.Iterator[int64]) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tree.Inorder(fn)
}

// Keys returns all keys in ascending order.
func (s *Set) Keys() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Keys()
}

// Clear removes all keys.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Clear()
}
