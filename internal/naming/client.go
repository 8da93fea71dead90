package naming

import (
	"context"
	"fmt"
	"sort"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Binding is one name/address pair reported by List.
type Binding struct {
	Name    string
	Address string
}

// GRPCResolver talks to a nameserver over gRPC. It opens a connection per
// call and closes it afterwards; lookups are rare and short-lived.
type GRPCResolver struct {
	dialOpts []grpc.DialOption
}

// NewResolver creates a resolver. Extra dial options are appended after
// the default insecure transport credentials.
func NewResolver(opts ...grpc.DialOption) *GRPCResolver {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	return &GRPCResolver{dialOpts: append(dialOpts, opts...)}
}

var (
	_ Resolver  = (*GRPCResolver)(nil)
	_ Registrar = (*GRPCResolver)(nil)
)

// Resolve returns the address registered under name.
func (r *GRPCResolver) Resolve(ctx context.Context, host, name string) (string, error) {
	var addr string
	err := r.with(host, func(c NameServerClient) error {
		reply, err := c.Resolve(ctx, wrapperspb.String(name))
		if err != nil {
			return err
		}
		addr = reply.GetValue()
		return nil
	})
	return addr, err
}

// Register binds name to address and returns the registration ID.
func (r *GRPCResolver) Register(ctx context.Context, host, name, address string) (string, error) {
	in, err := structpb.NewStruct(map[string]any{
		"name":    name,
		"address": address,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build register request: %w", err)
	}

	var id string
	err = r.with(host, func(c NameServerClient) error {
		reply, err := c.Register(ctx, in)
		if err != nil {
			return err
		}
		id = reply.GetValue()
		return nil
	})
	return id, err
}

// Unregister removes the binding for name.
func (r *GRPCResolver) Unregister(ctx context.Context, host, name string) error {
	return r.with(host, func(c NameServerClient) error {
		_, err := c.Unregister(ctx, wrapperspb.String(name))
		return err
	})
}

// List returns every binding known to the nameserver, sorted by name.
func (r *GRPCResolver) List(ctx context.Context, host string) ([]Binding, error) {
	var bindings []Binding
	err := r.with(host, func(c NameServerClient) error {
		reply, err := c.List(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		for name, v := range reply.GetFields() {
			bindings = append(bindings, Binding{Name: name, Address: v.GetStringValue()})
		}
		return nil
	})
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Name < bindings[j].Name })
	return bindings, err
}

func (r *GRPCResolver) with(host string, fn func(NameServerClient) error) error {
	target := Target(host)

	cc, err := grpc.NewClient("passthrough:///"+target, r.dialOpts...)
	if err != nil {
		return fmt.Errorf("failed to create nameserver client for %s: %w", target, err)
	}
	defer cc.Close()

	return mapRPC(target, fn(NewNameServerClient(cc)))
}
