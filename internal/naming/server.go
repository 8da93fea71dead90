package naming

import (
	"context"

	"github.com/jayteealao/cylclockd/internal/state"
	"github.com/jayteealao/cylclockd/internal/validate"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server exposes a state.Registry over the NameServer gRPC service.
type Server struct {
	UnimplementedNameServerServer
	Registry state.Registry
	Logger   *zap.Logger
}

// NewServer creates a nameserver backed by registry.
func NewServer(registry state.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{Registry: registry, Logger: logger}
}

func (s *Server) Resolve(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if s == nil || s.Registry == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing registry")
	}
	name := in.GetValue()
	if err := validate.CompositeName(name); err != nil {
		return nil, statusFor(err)
	}

	e, err := s.Registry.Lookup(ctx, name)
	if err != nil {
		return nil, statusFor(err)
	}
	return wrapperspb.String(e.Address), nil
}

func (s *Server) Register(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	if s == nil || s.Registry == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing registry")
	}
	fields := in.GetFields()
	name := fields["name"].GetStringValue()
	address := fields["address"].GetStringValue()

	if err := validate.CompositeName(name); err != nil {
		return nil, statusFor(err)
	}
	if err := validate.Address(address); err != nil {
		return nil, statusFor(err)
	}

	e, err := s.Registry.Register(ctx, name, address)
	if err != nil {
		return nil, statusFor(err)
	}

	s.Logger.Info("registered name",
		zap.String("name", e.Name),
		zap.String("address", e.Address),
		zap.String("id", e.ID))

	return wrapperspb.String(e.ID), nil
}

func (s *Server) Unregister(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if s == nil || s.Registry == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing registry")
	}
	name := in.GetValue()
	if err := validate.CompositeName(name); err != nil {
		return nil, statusFor(err)
	}
	if err := s.Registry.Unregister(ctx, name); err != nil {
		return nil, statusFor(err)
	}

	s.Logger.Info("unregistered name", zap.String("name", name))
	return &emptypb.Empty{}, nil
}

func (s *Server) List(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	if s == nil || s.Registry == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing registry")
	}
	entries, err := s.Registry.List(ctx)
	if err != nil {
		return nil, statusFor(err)
	}

	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(entries))}
	for _, e := range entries {
		out.Fields[e.Name] = structpb.NewStringValue(e.Address)
	}
	return out, nil
}
