package middleware

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/codedjade003/photobook-server/internal/domain"
)

func TestErrorToGRPCError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode codes.Code
	}{
		{"nil error", nil, codes.OK},
		{"validation error", &domain.ValidationError{Message: "invalid input"}, codes.InvalidArgument},
		{"conflict error", &domain.ConflictError{Message: "email already registered"}, codes.AlreadyExists},
		{"invalid credentials", &domain.InvalidCredentialsError{}, codes.Unauthenticated},
		{"email not verified", &domain.EmailNotVerifiedError{}, codes.PermissionDenied},
		{"not found", &domain.NotFoundError{Message: "account not found"}, codes.NotFound},
		{"already verified", &domain.AlreadyVerifiedError{}, codes.FailedPrecondition},
		{"invalid code", &domain.InvalidCodeError{}, codes.InvalidArgument},
		{"code expired", &domain.CodeExpiredError{}, codes.FailedPrecondition},
		{"forbidden", &domain.ForbiddenError{Message: "not authorized"}, codes.PermissionDenied},
		{"internal error", &domain.InternalError{Message: "boom"}, codes.Internal},
		{"unknown error", errors.New("something unexpected"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grpcErr := errorToGRPCError(tt.err)
			if tt.err == nil {
				assert.NoError(t, grpcErr)
				return
			}

			st, ok := status.FromError(grpcErr)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, st.Code())
		})
	}
}

// Secret-bearing internals must not leak through the boundary message for
// credential failures.
func TestErrorToGRPCError_CredentialMessage(t *testing.T) {
	grpcErr := errorToGRPCError(&domain.InvalidCredentialsError{})
	st, ok := status.FromError(grpcErr)
	require.True(t, ok)
	assert.Equal(t, "invalid email or password", st.Message())
}
