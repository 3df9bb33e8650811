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

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service is declared in proto/orderedset.proto.  Its messages are all
// well-known types, so only the service bindings live here.

const (
	OrderedSet_Insert_FullMethodName   = "/rbset.OrderedSet/Insert"
	OrderedSet_Remove_FullMethodName   = "/rbset.OrderedSet/Remove"
	OrderedSet_Contains_FullMethodName = "/rbset.OrderedSet/Contains"
	OrderedSet_Len_FullMethodName      = "/rbset.OrderedSet/Len"
	OrderedSet_Validate_FullMethodName = "/rbset.OrderedSet/Validate"
	OrderedSet_Preorder_FullMethodName = "/rbset.OrderedSet/Preorder"
	OrderedSet_Inorder_FullMethodName  = "/rbset.OrderedSet/Inorder"
	OrderedSet_Clear_FullMethodName    = "/rbset.OrderedSet/Clear"
	OrderedSet_Finalize_FullMethodName = "/rbset.OrderedSet/Finalize"
)

// OrderedSetClient is the client API for OrderedSet service.
type OrderedSetClient interface {
	Insert(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Remove(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Contains(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Len(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Validate(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Preorder(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Inorder(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Clear(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Finalize(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type orderedSetClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderedSetClient(cc grpc.ClientConnInterface) OrderedSetClient {
	return &orderedSetClient{cc}
}

func (c *orderedSetClient) Insert(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, OrderedSet_Insert_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Remove(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, OrderedSet_Remove_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Contains(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, OrderedSet_Contains_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Len(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, OrderedSet_Len_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Validate(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, OrderedSet_Validate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Preorder(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, OrderedSet_Preorder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Inorder(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, OrderedSet_Inorder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Clear(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, OrderedSet_Clear_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Finalize(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, OrderedSet_Finalize_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderedSetServer is the server API for OrderedSet service.
// All implementations must embed UnimplementedOrderedSetServer
// for forward compatibility.
type OrderedSetServer interface {
	Insert(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
	Remove(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
	Contains(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
	Len(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	Validate(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error)
	Preorder(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Inorder(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Clear(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Finalize(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	mustEmbedUnimplementedOrderedSetServer()
}

// UnimplementedOrderedSetServer must be embedded to have forward compatible implementations.
type UnimplementedOrderedSetServer struct {
}

func (UnimplementedOrderedSetServer) Insert(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Insert not implemented")
}
func (UnimplementedOrderedSetServer) Remove(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Remove not implemented")
}
func (UnimplementedOrderedSetServer) Contains(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Contains not implemented")
}
func (UnimplementedOrderedSetServer) Len(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Len not implemented")
}
func (UnimplementedOrderedSetServer) Validate(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Validate not implemented")
}
func (UnimplementedOrderedSetServer) Preorder(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Preorder not implemented")
}
func (UnimplementedOrderedSetServer) Inorder(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Inorder not implemented")
}
func (UnimplementedOrderedSetServer) Clear(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Clear not implemented")
}
func (UnimplementedOrderedSetServer) Finalize(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Finalize not implemented")
}
func (UnimplementedOrderedSetServer) mustEmbedUnimplementedOrderedSetServer() {}

func RegisterOrderedSetServer(s grpc.ServiceRegistrar, srv OrderedSetServer) {
	s.RegisterService(&OrderedSet_ServiceDesc, srv)
}

// unaryHandler builds the handler of a unary method whose request is of type
// Req.
func unaryHandler[Req any](method string, call func(OrderedSetServer, context.Context, *Req) (interface{}, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(OrderedSetServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(OrderedSetServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// OrderedSet_ServiceDesc is the grpc.ServiceDesc for OrderedSet service.
var OrderedSet_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rbset.OrderedSet",
	HandlerType: (*OrderedSetServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Insert",
			Handler: unaryHandler(OrderedSet_Insert_FullMethodName, func(srv OrderedSetServer, ctx context.Context, in *wrapperspb.Int64Value) (interface{}, error) {
				return srv.Insert(ctx, in)
			}),
		},
		{
			MethodName: "Remove",
			Handler: unaryHandler(OrderedSet_Remove_FullMethodName, func(srv OrderedSetServer, ctx context.Context, in *wrapperspb.Int64Value) (interface{}, error) {
				return srv.Remove(ctx, in)
			}),
		},
		{
			MethodName: "Contains",
			Handler: unaryHandler(OrderedSet_Contains_FullMethodName, func(srv OrderedSetServer, ctx context.Context, in *wrapperspb.Int64Value) (interface{}, error) {
				return srv.Contains(ctx, in)
			}),
		},
		{
			MethodName: "Len",
			Handler: unaryHandler(OrderedSet_Len_FullMethodName, func(srv OrderedSetServer, ctx context.Context, in *emptypb.Empty) (interface{}, error) {
				return srv.Len(ctx, in)
			}),
		},
		{
			MethodName: "Validate",
			Handler: unaryHandler(OrderedSet_Validate_FullMethodName, func(srv OrderedSetServer, ctx context.Context, in *emptypb.Empty) (interface{}, error) {
				return srv.Validate(ctx, in)
			}),
		},
		{
			MethodName: "Preorder",
			Handler: unaryHandler(OrderedSet_Preorder_FullMethodName, func(srv OrderedSetServer, ctx context.Context, in *emptypb.Empty) (interface{}, error) {
				return srv.Preorder(ctx, in)
			}),
		},
		{
			MethodName: "Inorder",
			Handler: unaryHandler(OrderedSet_Inorder_FullMethodName, func(srv OrderedSetServer, ctx context.Context, in *emptypb.Empty) (interface{}, error) {
				return srv.Inorder(ctx, in)
			}),
		},
		{
			MethodName: "Clear",
			Handler: unaryHandler(OrderedSet_Clear_FullMethodName, func(srv OrderedSetServer, ctx context.Context, in *emptypb.Empty) (interface{}, error) {
				return srv.Clear(ctx, in)
			}),
		},
		{
			MethodName: "Finalize",
			Handler: unaryHandler(OrderedSet_Finalize_FullMethodName, func(srv OrderedSetServer, ctx context.Context, in *emptypb.Empty) (interface{}, error) {
				return srv.Finalize(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "orderedset.proto",
}
