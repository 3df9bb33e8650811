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

package orderedset

import (
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	r := require.New(t)
	s := New()
	for i := int64(0); i < 10; i++ {
		r.True(s.Insert(i * 10))
	}
	r.False(s.Insert(30))
	r.Equal(10, s.Len())
	r.True(s.Contains(90))

	for _, key := range []int64{50, 40, 30, 20, 10, 0} {
		r.True(s.Remove(key))
		r.False(s.Contains(key))
		valid, err := s.Verify()
		r.True(valid)
		r.NoError(err)
	}
	r.False(s.Remove(999))
	r.Equal([]int64{60, 70, 80, 90}, s.Keys())

	s.Clear()
	r.Zero(s.Len())
	r.Empty(s.Keys())
}

func TestSetConcurrent(t *testing.T) {
	r := require.New(t)
	const (
		workers = 1 << 3
		keys    = 1 << 10
	)
	s := New()

	// each worker owns the keys congruent to its rank
	var wg sync.WaitGroup
	for rank := 0; rank < workers; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			for _, i := range rand.Perm(keys / workers) {
				s.Insert(int64(i*workers + rank))
			}
			for i := 0; i < keys/workers; i += 2 {
				s.Remove(int64(i*workers + rank))
			}
			s.Contains(int64(rank))
		}(rank)
	}
	wg.Wait()

	valid, err := s.Verify()
	r.True(valid)
	r.NoError(err)

	var want []int64
	for rank := 0; rank < workers; rank++ {
		for i := 1; i < keys/workers; i += 2 {
			want = append(want, int64(i*workers+rank))
		}
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	r.Equal(want, s.Keys())
}
