package naming

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// NameServerServer is the server API for the NameServer gRPC service.
//
// Messages are protobuf well-known types, so no protoc step is needed.
// Register takes a Struct with "name" and "address" string fields; List
// returns a Struct mapping each name to its address.
type NameServerServer interface {
	Resolve(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Register(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	Unregister(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	List(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedNameServerServer can be embedded to have forward compatible implementations.
type UnimplementedNameServerServer struct{}

func (UnimplementedNameServerServer) Resolve(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Resolve not implemented")
}
func (UnimplementedNameServerServer) Register(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedNameServerServer) Unregister(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Unregister not implemented")
}
func (UnimplementedNameServerServer) List(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}

// RegisterNameServerServer registers the NameServer service on a gRPC server.
func RegisterNameServerServer(s grpc.ServiceRegistrar, srv NameServerServer) {
	s.RegisterService(&NameServer_ServiceDesc, srv)
}

// NameServerClient is the client API for the NameServer gRPC service.
type NameServerClient interface {
	Resolve(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Unregister(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type nameServerClient struct{ cc grpc.ClientConnInterface }

func NewNameServerClient(cc grpc.ClientConnInterface) NameServerClient {
	return &nameServerClient{cc: cc}
}

const nameServerService = "cylclockd.naming.v1.NameServer"

func (c *nameServerClient) Resolve(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+nameServerService+"/Resolve", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nameServerClient) Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+nameServerService+"/Register", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nameServerClient) Unregister(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+nameServerService+"/Unregister", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nameServerClient) List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+nameServerService+"/List", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _NameServer_Resolve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NameServerServer).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + nameServerService + "/Resolve"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NameServerServer).Resolve(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _NameServer_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NameServerServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + nameServerService + "/Register"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NameServerServer).Register(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _NameServer_Unregister_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NameServerServer).Unregister(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + nameServerService + "/Unregister"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NameServerServer).Unregister(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _NameServer_List_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NameServerServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + nameServerService + "/List"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NameServerServer).List(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// NameServer_ServiceDesc is the grpc.ServiceDesc for the NameServer service.
var NameServer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: nameServerService,
	HandlerType: (*NameServerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Resolve", Handler: _NameServer_Resolve_Handler},
		{MethodName: "Register", Handler: _NameServer_Register_Handler},
		{MethodName: "Unregister", Handler: _NameServer_Unregister_Handler},
		{MethodName: "List", Handler: _NameServer_List_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "naming.proto",
}
