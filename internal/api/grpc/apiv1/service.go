package apiv1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dtroode/fingerprint-server/internal/api/grpc/codec"
)

const (
	FingerprintServiceName = "fingerprint.v1.Fingerprint"
	AdminServiceName       = "fingerprint.v1.Admin"
)

// FingerprintServer serves enrollment, identification and deletion.
type FingerprintServer interface {
	Enroll(context.Context, *EnrollRequest) (*EnrollResponse, error)
	Identify(context.Context, *IdentifyRequest) (*IdentifyResponse, error)
	Compare(context.Context, *CompareRequest) (*CompareResponse, error)
	Delete(context.Context, *DeleteRequest) (*DeleteResponse, error)
}

// AdminServer serves administrative operations kept off the request path.
type AdminServer interface {
	AuditDuplicates(context.Context, *AuditDuplicatesRequest) (*AuditDuplicatesResponse, error)
}

func RegisterFingerprintServer(s grpc.ServiceRegistrar, srv FingerprintServer) {
	s.RegisterService(&FingerprintServiceDesc, srv)
}

func RegisterAdminServer(s grpc.ServiceRegistrar, srv AdminServer) {
	s.RegisterService(&AdminServiceDesc, srv)
}

var FingerprintServiceDesc = grpc.ServiceDesc{
	ServiceName: FingerprintServiceName,
	HandlerType: (*FingerprintServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Enroll",
			Handler: unaryHandler(FingerprintServiceName, "Enroll", func(srv any, ctx context.Context, in *EnrollRequest) (*EnrollResponse, error) {
				return srv.(FingerprintServer).Enroll(ctx, in)
			}),
		},
		{
			MethodName: "Identify",
			Handler: unaryHandler(FingerprintServiceName, "Identify", func(srv any, ctx context.Context, in *IdentifyRequest) (*IdentifyResponse, error) {
				return srv.(FingerprintServer).Identify(ctx, in)
			}),
		},
		{
			MethodName: "Compare",
			Handler: unaryHandler(FingerprintServiceName, "Compare", func(srv any, ctx context.Context, in *CompareRequest) (*CompareResponse, error) {
				return srv.(FingerprintServer).Compare(ctx, in)
			}),
		},
		{
			MethodName: "Delete",
			Handler: unaryHandler(FingerprintServiceName, "Delete", func(srv any, ctx context.Context, in *DeleteRequest) (*DeleteResponse, error) {
				return srv.(FingerprintServer).Delete(ctx, in)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

var AdminServiceDesc = grpc.ServiceDesc{
	ServiceName: AdminServiceName,
	HandlerType: (*AdminServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AuditDuplicates",
			Handler: unaryHandler(AdminServiceName, "AuditDuplicates", func(srv any, ctx context.Context, in *AuditDuplicatesRequest) (*AuditDuplicatesResponse, error) {
				return srv.(AdminServer).AuditDuplicates(ctx, in)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func unaryHandler[Req, Resp any](service, method string, call func(srv any, ctx context.Context, in *Req) (*Resp, error)) grpc.MethodHandler {
	fullMethod := "/" + service + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// FingerprintClient calls fingerprint.v1.Fingerprint.
type FingerprintClient struct {
	cc grpc.ClientConnInterface
}

func NewFingerprintClient(cc grpc.ClientConnInterface) *FingerprintClient {
	return &FingerprintClient{cc: cc}
}

func (c *FingerprintClient) Enroll(ctx context.Context, in *EnrollRequest, opts ...grpc.CallOption) (*EnrollResponse, error) {
	out := new(EnrollResponse)
	if err := invoke(ctx, c.cc, FingerprintServiceName, "Enroll", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FingerprintClient) Identify(ctx context.Context, in *IdentifyRequest, opts ...grpc.CallOption) (*IdentifyResponse, error) {
	out := new(IdentifyResponse)
	if err := invoke(ctx, c.cc, FingerprintServiceName, "Identify", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FingerprintClient) Compare(ctx context.Context, in *CompareRequest, opts ...grpc.CallOption) (*CompareResponse, error) {
	out := new(CompareResponse)
	if err := invoke(ctx, c.cc, FingerprintServiceName, "Compare", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FingerprintClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	if err := invoke(ctx, c.cc, FingerprintServiceName, "Delete", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminClient calls fingerprint.v1.Admin.
type AdminClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminClient(cc grpc.ClientConnInterface) *AdminClient {
	return &AdminClient{cc: cc}
}

func (c *AdminClient) AuditDuplicates(ctx context.Context, in *AuditDuplicatesRequest, opts ...grpc.CallOption) (*AuditDuplicatesResponse, error) {
	out := new(AuditDuplicatesResponse)
	if err := invoke(ctx, c.cc, AdminServiceName, "AuditDuplicates", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func invoke(ctx context.Context, cc grpc.ClientConnInterface, service, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	return cc.Invoke(ctx, "/"+service+"/"+method, in, out, opts...)
}
