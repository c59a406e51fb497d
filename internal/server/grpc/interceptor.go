package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

// requestLogInterceptor tags every unary call with a request id and logs
// its outcome and duration.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	log := s.logger.With("request_id", uuid.NewString(), "method", info.FullMethod)
	log.Debug(ctx, "Request received")

	start := time.Now()
	resp, err := handler(ctx, req)

	if err != nil {
		log.Error(ctx, "Request failed", "error", err.Error(), "duration", time.Since(start).String())
		return resp, err
	}

	log.Debug(ctx, "Request completed", "duration", time.Since(start).String())
	return resp, nil
}
