package middleware

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/codedjade003/photobook-server/internal/logger"
)

type contextKey string

// ContextKeyToken carries the bearer token extracted from request metadata.
const ContextKeyToken contextKey = "authorization_token"

// AuthorizationInterceptor extracts the bearer token from incoming metadata
// and places it on the context for handlers that resolve the current account.
// Public endpoints pass through untouched; token verification itself belongs
// to the service layer.
func AuthorizationInterceptor(publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		token := extractTokenFromMetadata(ctx)
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization token")
		}

		ctx = context.WithValue(ctx, ContextKeyToken, token)
		return handler(ctx, req)
	}
}

// TokenFromContext returns the bearer token placed by AuthorizationInterceptor.
func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(ContextKeyToken).(string); ok {
		return token
	}
	return ""
}

// RecoveryInterceptor recovers from panics in gRPC handlers
func RecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(ctx).Error("panic recovered",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r))
				err = status.Error(codes.Internal, "internal server error")
			}
		}()

		return handler(ctx, req)
	}
}

// LoggingInterceptor logs gRPC method calls
func LoggingInterceptor(lgr *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx = logger.WithContext(ctx, lgr)
		lgr.Debug("grpc method called", zap.String("method", info.FullMethod))

		resp, err := handler(ctx, req)

		if err != nil {
			lgr.Warn("grpc method failed", zap.String("method", info.FullMethod), zap.Error(err))
		}

		return resp, err
	}
}

// Private helper functions

func extractTokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return ""
	}

	authHeader := values[0]
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return authHeader
}

// ChainUnaryInterceptors chains multiple unary interceptors
func ChainUnaryInterceptors(interceptors ...grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		// Build chain from right to left
		for i := len(interceptors) - 1; i >= 0; i-- {
			next := handler
			currentInterceptor := interceptors[i]
			handler = func(ctx context.Context, req interface{}) (interface{}, error) {
				return currentInterceptor(ctx, req, info, next)
			}
		}
		return handler(ctx, req)
	}
}
