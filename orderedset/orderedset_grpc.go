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
	"context"
	"os"
	"strconv"
	"sync"
	"syscall"

	"github.com/9rum/rbset/internal/rbtree"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// orderedSetServer implements the server API for OrderedSet service.
type orderedSetServer struct {
	UnimplementedOrderedSetServer
	set  *Set
	done chan<- os.Signal
	once sync.Once
}

// NewOrderedSetServer creates a new ordered set server.  SIGTERM is delivered
// to done when a client calls Finalize, so done must be buffered.
func NewOrderedSetServer(done chan<- os.Signal) OrderedSetServer {
	return &orderedSetServer{
		set:  New(),
		done: done,
	}
}

// Insert adds the given key to the set.
func (s *orderedSetServer) Insert(ctx context.Context, in *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "missing key")
	}
	glog.Infof("Insert called with key: %d", in.GetValue())

	return wrapperspb.Bool(s.set.Insert(in.GetValue())), nil
}

// Remove removes the given key from the set.
func (s *orderedSetServer) Remove(ctx context.Context, in *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "missing key")
	}
	glog.Infof("Remove called with key: %d", in.GetValue())

	return wrapperspb.Bool(s.set.Remove(in.GetValue())), nil
}

// Contains reports whether the given key is in the set.
func (s *orderedSetServer) Contains(ctx context.Context, in *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "missing key")
	}
	return wrapperspb.Bool(s.set.Contains(in.GetValue())), nil
}

func (s *orderedSetServer) Len(ctx context.Context, in *empty.Empty) (*wrapperspb.Int64Value, error) {
	return wrapperspb.Int64(int64(s.set.Len())), nil
}

// Validate reports whether the underlying tree satisfies the red-black
// coloring invariants.  Any structural violation is logged.
func (s *orderedSetServer) Validate(ctx context.Context, in *empty.Empty) (*wrapperspb.BoolValue, error) {
	glog.Info("Validate called")

	valid, err := s.set.Verify()
	if err != nil {
		glog.Errorf("invalid tree: %v", err)
	}
	return wrapperspb.Bool(valid), nil
}

// Preorder lists the nodes of the underlying tree in pre-order.  Each node is
// a struct holding its key and color along with its left and right children,
// which are null if absent.  Keys are decimal strings, since a number value
// only holds 53 bits exactly.
func (s *orderedSetServer) Preorder(ctx context.Context, in *empty.Empty) (*structpb.ListValue, error) {
	var values []interface{}
	s.set.Preorder(func(e rbtree.Entry[int64]) bool {
		values = append(values, map[string]interface{}{
			"key":   formatKey(e.Key),
			"color": e.Color.String(),
			"left":  link(e.Left),
			"right": link(e.Right),
		})
		return true
	})

	list, err := structpb.NewList(values)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return list, nil
}

// link converts the given child into a struct value, or nil if absent.
func link(l rbtree.Link[int64]) interface{} {
	if !l.Ok {
		return nil
	}
	return map[string]interface{}{
		"key":   formatKey(l.Key),
		"color": l.Color.String(),
	}
}

// formatKey encodes the given key losslessly.
func formatKey(key int64) string {
	return strconv.FormatInt(key, 10)
}

// Inorder lists the keys in the set in ascending order, as decimal strings.
func (s *orderedSetServer) Inorder(ctx context.Context, in *empty.Empty) (*structpb.ListValue, error) {
	var values []interface{}
	s.set.Inorder(func(e rbtree.Entry[int64]) bool {
		values = append(values, formatKey(e.Key))
		return true
	})

	list, err := structpb.NewList(values)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return list, nil
}

// Clear removes all keys from the set.
func (s *orderedSetServer) Clear(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	glog.Info("Clear called")

	s.set.Clear()

	return new(empty.Empty), nil
}

// Finalize releases the set and notifies the main goroutine that the server
// should stop.
func (s *orderedSetServer) Finalize(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	glog.Info("Finalize called")
	defer glog.Flush()
	defer s.close()

	s.set.Clear()

	return new(empty.Empty), nil
}

// close notifies the main goroutine that the server has been finalized.
// Subsequent calls do nothing.
func (s *orderedSetServer) close() {
	s.once.Do(func() {
		select {
		case s.done <- syscall.SIGTERM:
		default:
		}
	})
}
