package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// InvoiceService uses well-known protobuf types as messages, so it needs no
// generated code: prompts travel as StringValue and records as Struct.
const (
	InvoiceServiceName           = "invoicedrafter.v1.InvoiceService"
	InvoiceServiceGenerateMethod = "/" + InvoiceServiceName + "/Generate"
	InvoiceServiceReviseMethod   = "/" + InvoiceServiceName + "/Revise"
)

// InvoiceServiceServer is the server API for InvoiceService.
type InvoiceServiceServer interface {
	Generate(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Revise(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// InvoiceServiceClient is the client API for InvoiceService.
type InvoiceServiceClient interface {
	Generate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Revise(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type invoiceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInvoiceServiceClient(cc grpc.ClientConnInterface) InvoiceServiceClient {
	return &invoiceServiceClient{cc: cc}
}

func (c *invoiceServiceClient) Generate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, InvoiceServiceGenerateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) Revise(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, InvoiceServiceReviseMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterInvoiceServiceServer(s grpc.ServiceRegistrar, srv InvoiceServiceServer) {
	s.RegisterService(&InvoiceServiceDesc, srv)
}

func generateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InvoiceServiceGenerateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InvoiceServiceServer).Generate(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func reviseHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).Revise(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InvoiceServiceReviseMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InvoiceServiceServer).Revise(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// InvoiceServiceDesc is the grpc.ServiceDesc for InvoiceService.
var InvoiceServiceDesc = grpc.ServiceDesc{
	ServiceName: InvoiceServiceName,
	HandlerType: (*InvoiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: generateHandler},
		{MethodName: "Revise", Handler: reviseHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoicedrafter/v1/invoice.proto",
}
