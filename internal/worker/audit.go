package worker

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/robfig/cron"

	"github.com/dtroode/fingerprint-server/internal/logger"
	"github.com/dtroode/fingerprint-server/internal/model"
)

// AuditSweeper performs one pass over the whole template corpus.
type AuditSweeper interface {
	AuditDuplicates(ctx context.Context) (model.AuditReport, error)
}

// AuditJob runs duplicate sweeps on a schedule and on demand. Only one sweep
// runs at a time; finished reports are archived when storage is configured.
type AuditJob struct {
	sweeper  AuditSweeper
	storage  model.Storage
	schedule string
	logger   *logger.Logger

	running atomic.Bool

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
}

// NewAuditJob creates an AuditJob. storage may be nil to skip archiving and
// an empty schedule disables scheduled sweeps.
func NewAuditJob(sweeper AuditSweeper, storage model.Storage, schedule string, logger *logger.Logger) *AuditJob {
	return &AuditJob{
		sweeper:  sweeper,
		storage:  storage,
		schedule: schedule,
		logger:   logger,
	}
}

// Run performs one sweep and waits for its report. It returns
// model.ErrAuditInProgress when another sweep is running.
func (j *AuditJob) Run(ctx context.Context) (model.AuditReport, error) {
	if !j.running.CompareAndSwap(false, true) {
		return model.AuditReport{}, model.ErrAuditInProgress
	}
	defer j.running.Store(false)

	report, err := j.sweeper.AuditDuplicates(ctx)
	if err != nil {
		return model.AuditReport{}, err
	}

	j.logger.Info("Audit job: sweep finished",
		"report_id", report.ID.String(),
		"outcome", string(report.Outcome),
		"templates", report.Templates,
		"comparisons", report.Comparisons,
	)

	if err := j.archive(ctx, report); err != nil {
		j.logger.Error("Audit job: failed to archive report", "report_id", report.ID.String(), "error", err.Error())
	}

	return report, nil
}

// Start schedules sweeps. It is a no-op for an empty schedule.
func (j *AuditJob) Start() error {
	if j.schedule == "" {
		j.logger.Info("Audit job: schedule is empty, scheduled sweeps disabled")
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cron != nil {
		return fmt.Errorf("audit job already started")
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := cron.New()
	err := c.AddFunc(j.schedule, func() {
		if _, err := j.Run(ctx); err != nil {
			j.logger.Error("Audit job: scheduled sweep failed", "error", err.Error())
		}
	})
	if err != nil {
		cancel()
		return fmt.Errorf("invalid audit schedule %q: %w", j.schedule, err)
	}

	c.Start()
	j.cron = c
	j.cancel = cancel

	j.logger.Info("Audit job: started", "schedule", j.schedule)

	return nil
}

// Stop halts the schedule and cancels a scheduled sweep in progress.
func (j *AuditJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cron == nil {
		return
	}
	j.cron.Stop()
	j.cancel()
	j.cron = nil
	j.cancel = nil
}

func (j *AuditJob) archive(ctx context.Context, report model.AuditReport) error {
	if j.storage == nil {
		return nil
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return j.storage.Upload(ctx, ReportKey(report), bytes.NewReader(data), int64(len(data)), "application/json")
}

// ReportKey returns the archive key of a report, partitioned by the UTC
// day the sweep started.
func ReportKey(report model.AuditReport) string {
	return fmt.Sprintf("audits/%s/%s.json", report.StartedAt.UTC().Format("2006/01/02"), report.ID)
}
