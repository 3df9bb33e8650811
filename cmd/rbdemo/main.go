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

// Command rbdemo runs a fixed sequence of insertions and removals on a
// red-black tree, printing the tree in pre-order after every step.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/9rum/rbset/internal/dump"
	"github.com/9rum/rbset/internal/rbtree"
	"github.com/golang/glog"
)

func main() {
	count := flag.Int("count", 10, "The number of keys to insert")
	step := flag.Int("step", 10, "The distance between consecutive keys")
	stdin := flag.Bool("stdin", false, "Wait for an integer on the standard input before starting")
	flag.Parse()
	defer glog.Flush()

	if *stdin {
		var input int
		if _, err := fmt.Fscan(bufio.NewReader(os.Stdin), &input); err != nil {
			glog.Fatalf("failed to read input: %v", err)
		}
	}

	if violations := run(os.Stdout, *count, *step); 0 < violations {
		glog.Errorf("%d steps left an invalid tree", violations)
		glog.Flush()
		os.Exit(1)
	}
}

// sequence returns the keys to insert followed by the keys to remove.  The
// lower half is removed in descending order, then the two largest keys and
// the rest of the upper half.
func sequence(count, step int) (inserts, removals []int) {
	for i := 0; i < count; i++ {
		inserts = append(inserts, i*step)
	}
	for i := count / 2; 0 <= i; i-- {
		removals = append(removals, i*step)
	}
	if 2 <= count {
		removals = append(removals, (count-2)*step, (count-1)*step)
	}
	for i := count - 3; count/2 < i; i-- {
		removals = append(removals, i*step)
	}
	return
}

// run applies the sequence to an empty tree and returns the number of steps
// after which the tree was invalid.
func run(w io.Writer, count, step int) (violations int) {
	tr := rbtree.New[int]()
	check := func() {
		if err := tr.Verify(); err != nil {
			glog.Errorf("invalid tree: %v", err)
			violations++
		}
	}

	check()
	inserts, removals := sequence(count, step)
	for _, key := range inserts {
		fmt.Fprintf(w, "insert: %d\n", key)
		tr.Insert(key)
		if err := dump.Fprint[int](w, tr); err != nil {
			glog.Fatalf("failed to print: %v", err)
		}
		check()
	}
	for _, key := range removals {
		fmt.Fprintf(w, "remove: %d\n", key)
		tr.Remove(key)
		if err := dump.Fprint[int](w, tr); err != nil {
			glog.Fatalf("failed to print: %v", err)
		}
		check()
	}
	tr.Clear()
	return
}
