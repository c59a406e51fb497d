// Package grpc exposes the account directory as the gophtalk.ChatService
// RPC service. It shares one store with the wire transport, so peers on
// either surface observe the same directory.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophtalk/internal/logging"
	"github.com/dmitrijs2005/gophtalk/internal/rpc"
	"github.com/dmitrijs2005/gophtalk/internal/server/store"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	address string
	store   *store.Store
	logger  logging.Logger
}

func NewGRPCServer(a string, st *store.Store, l logging.Logger) *GRPCServer {
	return &GRPCServer{
		address: a,
		store:   st,
		logger:  l.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor))

	// registers service
	rpc.RegisterChatServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
