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

// Package main implements the ordered set server.  The server runs until it
// is interrupted or a client calls Finalize.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/9rum/rbset/orderedset"
	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	flag.Parse()

	if err := serve(*port); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func serve(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	server := newServer(done)
	glog.Infof("server listening at %v", lis.Addr())

	return server.Serve(lis)
}

// newServer creates a server that stops gracefully once a signal arrives on
// done.
func newServer(done chan os.Signal) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(
				grpc_recovery.WithRecoveryHandler(recoveryHandler),
			),
		),
	)

	go func(done <-chan os.Signal, server *grpc.Server) {
		sig := <-done
		glog.Infof("received %v, stopping", sig)
		server.GracefulStop()
		glog.Flush()
	}(done, server)

	orderedset.RegisterOrderedSetServer(server, orderedset.NewOrderedSetServer(done))

	return server
}

// recoveryHandler turns a panic in a handler into an internal error.
func recoveryHandler(p interface{}) error {
	glog.Errorf("recovered from panic: %v", p)
	return status.Errorf(codes.Internal, "%v", p)
}
