package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/timeout"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/dtroode/fingerprint-server/internal/api/grpc/codec"
	"github.com/dtroode/fingerprint-server/internal/model"
)

var _ model.Matcher = (*Client)(nil)

// Client is a model.Matcher backed by a remote matcher service. Calls are
// not retried.
type Client struct {
	conn *grpc.ClientConn
}

// NewClient connects lazily to addr. Every call is bounded by callTimeout;
// extra options are appended after the defaults.
func NewClient(addr string, callTimeout time.Duration, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codec.Name)),
		grpc.WithChainUnaryInterceptor(timeout.UnaryClientInterceptor(callTimeout)),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create matcher client: %w", err)
	}

	return &Client{conn: conn}, nil
}

func (c *Client) CreateTemplate(ctx context.Context, sample []byte) ([]byte, error) {
	out := new(CreateTemplateResponse)
	if err := c.invoke(ctx, "CreateTemplate", &CreateTemplateRequest{Sample: sample}, out); err != nil {
		return nil, err
	}
	return out.Template, nil
}

func (c *Client) Fuse(ctx context.Context, templates [][]byte) ([]byte, error) {
	out := new(FuseResponse)
	if err := c.invoke(ctx, "Fuse", &FuseRequest{Templates: templates}, out); err != nil {
		return nil, err
	}
	return out.Template, nil
}

func (c *Client) Compare(ctx context.Context, a, b []byte) (model.Score, error) {
	out := new(CompareResponse)
	if err := c.invoke(ctx, "Compare", &CompareRequest{A: a, B: b}, out); err != nil {
		return 0, err
	}
	return model.Score(out.Score), nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	err := c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out)
	switch status.Code(err) {
	case codes.OK:
		return nil
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.ResourceExhausted:
		return fmt.Errorf("matcher %s: %w: %w", method, model.ErrMatcherUnavailable, err)
	default:
		return fmt.Errorf("matcher %s: %w", method, err)
	}
}
