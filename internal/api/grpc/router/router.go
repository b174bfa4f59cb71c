package router

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/dtroode/fingerprint-server/internal/api/grpc/apiv1"
	"github.com/dtroode/fingerprint-server/internal/api/grpc/handler"
	"github.com/dtroode/fingerprint-server/internal/api/grpc/middleware"
	"github.com/dtroode/fingerprint-server/internal/logger"
)

// Router builds the gRPC server for the fingerprint and admin services.
type Router struct {
	fingerprintService handler.FingerprintService
	auditRunner        handler.AuditRunner
	health             *health.Server
	logger             *logger.Logger
}

// New creates new gRPC Router instance. health may be nil, in which case the
// standard health service is not registered.
func New(
	fingerprintService handler.FingerprintService,
	auditRunner handler.AuditRunner,
	health *health.Server,
	logger *logger.Logger,
) *Router {
	return &Router{
		fingerprintService: fingerprintService,
		auditRunner:        auditRunner,
		health:             health,
		logger:             logger,
	}
}

// Health probes are polled frequently and are not worth a log line each.
func shouldLog(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+healthgrpc.Health_ServiceDesc.ServiceName+"/")
}

// Register registers all gRPC services and middleware.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(
				recovery.WithRecoveryHandlerContext(r.recoverPanic),
			),
			selector.UnaryServerInterceptor(
				logging.HandleGRPC,
				selector.MatchFunc(shouldLog),
			),
		),
	)

	apiv1.RegisterFingerprintServer(s, handler.NewFingerprint(r.fingerprintService, r.logger))
	apiv1.RegisterAdminServer(s, handler.NewAdmin(r.auditRunner, r.logger))
	if r.health != nil {
		healthgrpc.RegisterHealthServer(s, r.health)
	}

	return s
}

func (r *Router) recoverPanic(_ context.Context, p any) error {
	r.logger.Error("gRPC handler panicked", "panic", fmt.Sprint(p), "stack", string(debug.Stack()))
	return status.Error(codes.Internal, "internal server error")
}
