package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestAuthorizationInterceptor(t *testing.T) {
	interceptor := AuthorizationInterceptor(map[string]bool{
		"/photobook.Auth/Login": true,
	})

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return TokenFromContext(ctx), nil
	}

	t.Run("public method passes without token", func(t *testing.T) {
		resp, err := interceptor(context.Background(), nil,
			&grpc.UnaryServerInfo{FullMethod: "/photobook.Auth/Login"}, handler)
		require.NoError(t, err)
		assert.Equal(t, "", resp)
	})

	t.Run("protected method without token rejected", func(t *testing.T) {
		_, err := interceptor(context.Background(), nil,
			&grpc.UnaryServerInfo{FullMethod: "/photobook.Auth/GetCurrentAccount"}, handler)
		require.Error(t, err)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Unauthenticated, st.Code())
	})

	t.Run("bearer token lands on the context", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Bearer my-token"))
		resp, err := interceptor(ctx, nil,
			&grpc.UnaryServerInfo{FullMethod: "/photobook.Auth/GetCurrentAccount"}, handler)
		require.NoError(t, err)
		assert.Equal(t, "my-token", resp)
	})

	t.Run("raw token without bearer prefix accepted", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "raw-token"))
		resp, err := interceptor(ctx, nil,
			&grpc.UnaryServerInfo{FullMethod: "/photobook.Auth/GetCurrentAccount"}, handler)
		require.NoError(t, err)
		assert.Equal(t, "raw-token", resp)
	})
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor()

	t.Run("panic becomes internal error", func(t *testing.T) {
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			panic("boom")
		}
		_, err := interceptor(context.Background(), nil,
			&grpc.UnaryServerInfo{FullMethod: "/photobook.Auth/Signup"}, handler)
		require.Error(t, err)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Internal, st.Code())
	})

	t.Run("normal flow untouched", func(t *testing.T) {
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return "ok", nil
		}
		resp, err := interceptor(context.Background(), nil,
			&grpc.UnaryServerInfo{FullMethod: "/photobook.Auth/Signup"}, handler)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	})
}

func TestChainUnaryInterceptors(t *testing.T) {
	var order []string

	named := func(name string) grpc.UnaryServerInterceptor {
		return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
			order = append(order, name+":before")
			resp, err := handler(ctx, req)
			order = append(order, name+":after")
			return resp, err
		}
	}

	chained := ChainUnaryInterceptors(named("outer"), named("inner"))
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		order = append(order, "handler")
		return "ok", nil
	}

	resp, err := chained(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/photobook.Auth/Login"}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, []string{
		"outer:before",
		"inner:before",
		"handler",
		"inner:after",
		"outer:after",
	}, order)
}
