package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNew(t *testing.T) {
	t.Run("verbose enables debug", func(t *testing.T) {
		l, err := New(true)
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("production starts at info", func(t *testing.T) {
		l, err := New(false)
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})
}

func TestUnaryServerInterceptor(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := UnaryServerInterceptor(zap.New(core))
	info := &grpc.UnaryServerInfo{FullMethod: "/cylclockd.lockserver.v1.LockServer/Dump"}

	t.Run("success logs at debug and passes response through", func(t *testing.T) {
		resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return "resp", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "resp", resp)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, info.FullMethod, entries[0].ContextMap()["method"])
		assert.Equal(t, "OK", entries[0].ContextMap()["code"])
	})

	t.Run("failure logs at warn and returns the same error", func(t *testing.T) {
		want := status.Error(codes.NotFound, "gone")
		_, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, want
		})
		assert.Equal(t, want, err)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "NotFound", entries[0].ContextMap()["code"])
	})

	t.Run("nil logger is tolerated", func(t *testing.T) {
		i := UnaryServerInterceptor(nil)
		_, err := i(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
			return nil, nil
		})
		assert.NoError(t, err)
	})
}
