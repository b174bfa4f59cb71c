// Package remote talks to the external matcher over gRPC. The matcher
// service speaks the same JSON codec as the public API.
package remote

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "fingerprint.matcher.v1.Matcher"

type CreateTemplateRequest struct {
	Sample []byte `json:"sample"`
}

type CreateTemplateResponse struct {
	Template []byte `json:"template"`
}

type FuseRequest struct {
	Templates [][]byte `json:"templates"`
}

type FuseResponse struct {
	Template []byte `json:"template"`
}

type CompareRequest struct {
	A []byte `json:"a"`
	B []byte `json:"b"`
}

type CompareResponse struct {
	Score uint32 `json:"score"`
}

// MatcherServer is implemented by matcher engines.
type MatcherServer interface {
	CreateTemplate(context.Context, *CreateTemplateRequest) (*CreateTemplateResponse, error)
	Fuse(context.Context, *FuseRequest) (*FuseResponse, error)
	Compare(context.Context, *CompareRequest) (*CompareResponse, error)
}

func RegisterMatcherServer(s grpc.ServiceRegistrar, srv MatcherServer) {
	s.RegisterService(&MatcherServiceDesc, srv)
}

var MatcherServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MatcherServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateTemplate",
			Handler: unaryHandler("CreateTemplate", func(srv MatcherServer, ctx context.Context, in *CreateTemplateRequest) (*CreateTemplateResponse, error) {
				return srv.CreateTemplate(ctx, in)
			}),
		},
		{
			MethodName: "Fuse",
			Handler: unaryHandler("Fuse", func(srv MatcherServer, ctx context.Context, in *FuseRequest) (*FuseResponse, error) {
				return srv.Fuse(ctx, in)
			}),
		},
		{
			MethodName: "Compare",
			Handler: unaryHandler("Compare", func(srv MatcherServer, ctx context.Context, in *CompareRequest) (*CompareResponse, error) {
				return srv.Compare(ctx, in)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func unaryHandler[Req, Resp any](method string, call func(srv MatcherServer, ctx context.Context, in *Req) (*Resp, error)) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MatcherServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MatcherServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
