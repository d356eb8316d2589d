package grpcapi

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

// RequestIDFromContext returns the correlation id attached by
// UnaryRequestIDInterceptor/StreamRequestIDInterceptor, or "" outside a
// request.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// UnaryRequestIDInterceptor stamps every unary call with a uuid-based
// request id, mirroring contextKeyRequestID in
// syntrixbase-syntrix/internal/server/middleware.go, and logs the call
// with it attached.
func UnaryRequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		id := uuid.NewString()
		ctx = context.WithValue(ctx, contextKeyRequestID, id)
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed", "method", info.FullMethod, "request_id", id, "error", err)
		} else {
			logger.Debug("rpc completed", "method", info.FullMethod, "request_id", id)
		}
		return resp, err
	}
}

// StreamRequestIDInterceptor is the streaming analogue of
// UnaryRequestIDInterceptor.
func StreamRequestIDInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		id := uuid.NewString()
		ctx := context.WithValue(ss.Context(), contextKeyRequestID, id)
		wrapped := &requestIDServerStream{ServerStream: ss, ctx: ctx}
		logger.Debug("stream opened", "method", info.FullMethod, "request_id", id)
		err := handler(srv, wrapped)
		if err != nil {
			logger.Warn("stream closed with error", "method", info.FullMethod, "request_id", id, "error", err)
		} else {
			logger.Debug("stream closed", "method", info.FullMethod, "request_id", id)
		}
		return err
	}
}

type requestIDServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *requestIDServerStream) Context() context.Context {
	return s.ctx
}
