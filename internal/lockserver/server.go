package lockserver

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server exposes a Broker over the LockServer gRPC service.
type Server struct {
	UnimplementedLockServerServer
	Broker *Broker
	Logger *zap.Logger
}

// NewServer creates a lock server for broker.
func NewServer(broker *Broker, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{Broker: broker, Logger: logger}
}

func (s *Server) Dump(ctx context.Context, _ *emptypb.Empty) (*structpb.Value, error) {
	if s == nil || s.Broker == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing broker")
	}
	snap := s.Broker.Dump()

	v, err := structpb.NewValue(map[string]any{
		"tasks":     toAny(snap.Tasks),
		"filenames": toAny(snap.Filenames),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return v, nil
}

func (s *Server) Clear(ctx context.Context, _ *emptypb.Empty) (*structpb.Value, error) {
	if s == nil || s.Broker == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing broker")
	}
	result, err := s.Broker.Clear()
	if err != nil {
		// The broker has already forgotten the locks; report the release failures.
		s.Logger.Error("clear released locks with errors", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	s.Logger.Info("cleared locks",
		zap.Int("tasks", result.Tasks),
		zap.Int("filenames", result.Filenames))

	v, err := structpb.NewValue(map[string]any{
		"tasks":     result.Tasks,
		"filenames": result.Filenames,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return v, nil
}

func (s *Server) GetFilenames(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	if s == nil || s.Broker == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing broker")
	}
	list, err := structpb.NewList(toAny(s.Broker.Filenames()))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return list, nil
}

func (s *Server) LockTask(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if s == nil || s.Broker == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing broker")
	}
	return s.apply("locked task", "task", in.GetValue(), s.Broker.LockTask)
}

func (s *Server) UnlockTask(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if s == nil || s.Broker == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing broker")
	}
	return s.apply("unlocked task", "task", in.GetValue(), s.Broker.UnlockTask)
}

func (s *Server) LockFile(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if s == nil || s.Broker == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing broker")
	}
	return s.apply("locked file", "filename", in.GetValue(), s.Broker.LockFile)
}

func (s *Server) UnlockFile(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if s == nil || s.Broker == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing broker")
	}
	return s.apply("unlocked file", "filename", in.GetValue(), s.Broker.UnlockFile)
}

// AcquireFile waits for the file lock until the caller's deadline.
func (s *Server) AcquireFile(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if s == nil || s.Broker == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing broker")
	}
	return s.apply("acquired file", "filename", in.GetValue(), func(path string) error {
		return s.Broker.AcquireFile(ctx, path)
	})
}

func (s *Server) apply(msg, field, key string, op func(string) error) (*emptypb.Empty, error) {
	if err := op(key); err != nil {
		return nil, statusFor(err)
	}

	s.Logger.Debug(msg, zap.String(field, key))
	return &emptypb.Empty{}, nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
