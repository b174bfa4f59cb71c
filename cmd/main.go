package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/health"

	"github.com/dtroode/fingerprint-server/internal/api/grpc/apiv1"
	"github.com/dtroode/fingerprint-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/fingerprint-server/internal/api/grpc/server"
	"github.com/dtroode/fingerprint-server/internal/config"
	"github.com/dtroode/fingerprint-server/internal/logger"
	"github.com/dtroode/fingerprint-server/internal/matcher/remote"
	"github.com/dtroode/fingerprint-server/internal/model"
	"github.com/dtroode/fingerprint-server/internal/repository/postgres"
	"github.com/dtroode/fingerprint-server/internal/service"
	storage "github.com/dtroode/fingerprint-server/internal/storage/minio"
	"github.com/dtroode/fingerprint-server/internal/worker"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize template store", "error", err)
	}
	defer db.Close()

	directoryDB, err := postgres.OpenDirectory(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize employee directory", "error", err)
	}
	defer directoryDB.Close()

	templateRepo := postgres.NewTemplateRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(directoryDB)

	matcher, err := remote.NewClient(cfg.Matcher.Address, cfg.Matcher.Timeout)
	if err != nil {
		logger.Fatal("failed to initialize matcher client", "error", err)
	}
	defer matcher.Close()

	identification := service.NewIdentification(templateRepo, employeeRepo, matcher, cfg.Match.Threshold, logger)
	enrollment := service.NewEnrollment(templateRepo, matcher, identification, logger)
	deletion := service.NewDeletion(templateRepo, logger)
	fingerprintService := service.NewFingerprint(enrollment, identification, deletion)
	auditService := service.NewAudit(templateRepo, matcher, cfg.Audit.Threshold, logger)

	var archive model.Storage
	if cfg.Storage.Enabled {
		storageClient, err := storage.Connect(ctx, cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.UseSSL)
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		archive = storageClient
	}

	auditJob := worker.NewAuditJob(auditService, archive, cfg.Audit.Schedule, logger)
	if err := auditJob.Start(); err != nil {
		logger.Fatal("failed to start audit job", "error", err)
	}
	defer auditJob.Stop()

	healthServer := health.NewServer()
	probe := worker.NewHealthProbe(templateRepo, healthServer, cfg.Health.Interval, logger,
		apiv1.FingerprintServiceName, apiv1.AdminServiceName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		probe.Run(ctx)
	}()

	server := registerGRPCServer(logger, fingerprintService, auditJob, healthServer, fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := grpcServer.NewListener(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(server)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", server.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	logger *logger.Logger,
	fingerprintService *service.Fingerprint,
	auditJob *worker.AuditJob,
	healthServer *health.Server,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(fingerprintService, auditJob, healthServer, logger)
	return grpcServer.NewGRPCServer(r.Register(), addr)
}
