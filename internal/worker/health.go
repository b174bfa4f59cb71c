package worker

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/fingerprint-server/internal/logger"
)

// DefaultHealthInterval replaces non-positive probe intervals.
const DefaultHealthInterval = 15 * time.Second

// Pinger reports whether a dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthProbe mirrors the template store's reachability into the gRPC
// health service.
type HealthProbe struct {
	pinger   Pinger
	health   *health.Server
	interval time.Duration
	services []string
	logger   *logger.Logger
}

// NewHealthProbe creates a probe that updates the overall status and the
// status of every named service.
func NewHealthProbe(pinger Pinger, health *health.Server, interval time.Duration, logger *logger.Logger, services ...string) *HealthProbe {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	return &HealthProbe{
		pinger:   pinger,
		health:   health,
		interval: interval,
		services: append([]string{""}, services...),
		logger:   logger,
	}
}

// Check pings once and publishes the result.
func (p *HealthProbe) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := p.pinger.Ping(ctx); err != nil {
		p.logger.Warn("Health probe: template store unreachable", "error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	for _, service := range p.services {
		p.health.SetServingStatus(service, status)
	}

	return status
}

// Run checks immediately and then every interval until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	p.Check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}
