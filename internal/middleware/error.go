package middleware

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/codedjade003/photobook-server/internal/domain"
	"github.com/codedjade003/photobook-server/internal/logger"
)

// ErrorInterceptor is a middleware that catches errors and translates domain
// errors to gRPC status codes. The mapping lives here at the boundary; the
// service layer only deals in domain error kinds.
func ErrorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)

		if err != nil {
			lgr := logger.FromContext(ctx)
			lgr.Error("grpc error", zap.String("method", info.FullMethod), zap.Error(err))
			return nil, errorToGRPCError(err)
		}

		return resp, nil
	}
}

// errorToGRPCError translates domain errors to gRPC status codes
func errorToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case domain.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case domain.IsConflict(err):
		return status.Error(codes.AlreadyExists, err.Error())
	case domain.IsInvalidCredentials(err):
		return status.Error(codes.Unauthenticated, err.Error())
	case domain.IsEmailNotVerified(err):
		return status.Error(codes.PermissionDenied, err.Error())
	case domain.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case domain.IsAlreadyVerified(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case domain.IsInvalidCode(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case domain.IsCodeExpired(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case domain.IsForbidden(err):
		return status.Error(codes.PermissionDenied, err.Error())
	}

	return status.Error(codes.Internal, fmt.Sprintf("internal server error: %v", err))
}
