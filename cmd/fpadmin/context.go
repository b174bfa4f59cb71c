package main

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// commandContext carries the connection flags shared by every subcommand.
type commandContext struct {
	addr     string
	timeout  time.Duration
	tls      bool
	dialOpts []grpc.DialOption
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) dial() (*grpc.ClientConn, error) {
	creds := insecure.NewCredentials()
	if c.tls {
		creds = credentials.NewClientTLSFromCert(nil, "")
	}

	opts := append([]grpc.DialOption{grpc.WithTransportCredentials(creds)}, c.dialOpts...)
	conn, err := grpc.NewClient(c.addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.addr, err)
	}
	return conn, nil
}

func (c *commandContext) callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.timeout)
}
