package lockserver

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// LockServerServer is the server API for the LockServer gRPC service.
//
// Dump and Clear return an opaque structpb.Value; clients pass it through
// without interpreting it. The lock methods take the task ID or filename
// as a StringValue. AcquireFile blocks until the file is free or the
// call's deadline passes.
type LockServerServer interface {
	Dump(context.Context, *emptypb.Empty) (*structpb.Value, error)
	Clear(context.Context, *emptypb.Empty) (*structpb.Value, error)
	GetFilenames(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	LockTask(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	UnlockTask(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	LockFile(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	UnlockFile(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	AcquireFile(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
}

// UnimplementedLockServerServer can be embedded to have forward compatible implementations.
type UnimplementedLockServerServer struct{}

func (UnimplementedLockServerServer) Dump(context.Context, *emptypb.Empty) (*structpb.Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Dump not implemented")
}
func (UnimplementedLockServerServer) Clear(context.Context, *emptypb.Empty) (*structpb.Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Clear not implemented")
}
func (UnimplementedLockServerServer) GetFilenames(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFilenames not implemented")
}
func (UnimplementedLockServerServer) LockTask(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method LockTask not implemented")
}
func (UnimplementedLockServerServer) UnlockTask(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method UnlockTask not implemented")
}
func (UnimplementedLockServerServer) LockFile(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method LockFile not implemented")
}
func (UnimplementedLockServerServer) UnlockFile(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method UnlockFile not implemented")
}
func (UnimplementedLockServerServer) AcquireFile(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method AcquireFile not implemented")
}

// RegisterLockServerServer registers the LockServer service on a gRPC server.
func RegisterLockServerServer(s grpc.ServiceRegistrar, srv LockServerServer) {
	s.RegisterService(&LockServer_ServiceDesc, srv)
}

// LockServerClient is the client API for the LockServer gRPC service.
type LockServerClient interface {
	Dump(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Value, error)
	Clear(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Value, error)
	GetFilenames(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	LockTask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UnlockTask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	LockFile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UnlockFile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	AcquireFile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type lockServerClient struct{ cc grpc.ClientConnInterface }

func NewLockServerClient(cc grpc.ClientConnInterface) LockServerClient {
	return &lockServerClient{cc: cc}
}

const lockServerService = "cylclockd.lockserver.v1.LockServer"

func (c *lockServerClient) Dump(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Value, error) {
	out := new(structpb.Value)
	if err := c.cc.Invoke(ctx, "/"+lockServerService+"/Dump", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lockServerClient) Clear(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Value, error) {
	out := new(structpb.Value)
	if err := c.cc.Invoke(ctx, "/"+lockServerService+"/Clear", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lockServerClient) GetFilenames(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, "/"+lockServerService+"/GetFilenames", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lockServerClient) LockTask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+lockServerService+"/LockTask", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lockServerClient) UnlockTask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+lockServerService+"/UnlockTask", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lockServerClient) LockFile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+lockServerService+"/LockFile", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lockServerClient) UnlockFile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+lockServerService+"/UnlockFile", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lockServerClient) AcquireFile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+lockServerService+"/AcquireFile", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _LockServer_Dump_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LockServerServer).Dump(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + lockServerService + "/Dump"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LockServerServer).Dump(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _LockServer_Clear_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LockServerServer).Clear(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + lockServerService + "/Clear"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LockServerServer).Clear(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _LockServer_GetFilenames_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LockServerServer).GetFilenames(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + lockServerService + "/GetFilenames"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LockServerServer).GetFilenames(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _LockServer_LockTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LockServerServer).LockTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + lockServerService + "/LockTask"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LockServerServer).LockTask(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _LockServer_UnlockTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LockServerServer).UnlockTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + lockServerService + "/UnlockTask"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LockServerServer).UnlockTask(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _LockServer_LockFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LockServerServer).LockFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + lockServerService + "/LockFile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LockServerServer).LockFile(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _LockServer_UnlockFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LockServerServer).UnlockFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + lockServerService + "/UnlockFile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LockServerServer).UnlockFile(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _LockServer_AcquireFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LockServerServer).AcquireFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + lockServerService + "/AcquireFile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LockServerServer).AcquireFile(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// LockServer_ServiceDesc is the grpc.ServiceDesc for the LockServer service.
var LockServer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: lockServerService,
	HandlerType: (*LockServerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Dump", Handler: _LockServer_Dump_Handler},
		{MethodName: "Clear", Handler: _LockServer_Clear_Handler},
		{MethodName: "GetFilenames", Handler: _LockServer_GetFilenames_Handler},
		{MethodName: "LockTask", Handler: _LockServer_LockTask_Handler},
		{MethodName: "UnlockTask", Handler: _LockServer_UnlockTask_Handler},
		{MethodName: "LockFile", Handler: _LockServer_LockFile_Handler},
		{MethodName: "UnlockFile", Handler: _LockServer_UnlockFile_Handler},
		{MethodName: "AcquireFile", Handler: _LockServer_AcquireFile_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lockserver.proto",
}
