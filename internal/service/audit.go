package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/fingerprint-server/internal/logger"
	"github.com/dtroode/fingerprint-server/internal/model"
)

// Audit compares every pair of templates in the corpus, across companies.
// It is quadratic in corpus size and must only run as a background job.
type Audit struct {
	templates model.TemplateStore
	matcher   model.Matcher
	threshold model.Threshold
	logger    *logger.Logger
	now       func() time.Time
}

func NewAudit(
	templates model.TemplateStore,
	matcher model.Matcher,
	threshold model.Threshold,
	logger *logger.Logger,
) *Audit {
	return &Audit{
		templates: templates,
		matcher:   matcher,
		threshold: threshold,
		logger:    logger,
		now:       time.Now,
	}
}

// AuditDuplicates stops at the first qualifying pair (i, j), i < j, in
// ascending id order.
func (s *Audit) AuditDuplicates(ctx context.Context) (model.AuditReport, error) {
	report := model.AuditReport{
		ID:        uuid.New(),
		StartedAt: s.now().UTC(),
		Threshold: s.threshold,
	}

	corpus, err := s.templates.GetAll(ctx)
	if err != nil {
		return model.AuditReport{}, &model.StoreError{Op: "get all templates", Err: err}
	}
	report.Templates = len(corpus)

	if len(corpus) == 0 {
		report.Outcome = model.AuditOutcomeEmpty
		report.FinishedAt = s.now().UTC()
		s.logger.Info("Audit service: no templates to audit", "report_id", report.ID)
		return report, nil
	}

	report.Outcome = model.AuditOutcomeClean
	for i := 0; i < len(corpus)-1; i++ {
		if err := ctx.Err(); err != nil {
			return model.AuditReport{}, fmt.Errorf("audit interrupted after %d comparisons: %w", report.Comparisons, err)
		}
		for j := i + 1; j < len(corpus); j++ {
			first, second := corpus[i], corpus[j]
			score, err := s.matcher.Compare(ctx, first.Data, second.Data)
			if err != nil {
				return model.AuditReport{}, fmt.Errorf("failed to compare templates %d and %d: %w", first.ID, second.ID, err)
			}
			report.Comparisons++

			if s.threshold.Qualifies(score) {
				report.Outcome = model.AuditOutcomeDuplicate
				report.Pair = &model.DuplicatePair{
					First:  pairMember(first),
					Second: pairMember(second),
					Score:  score,
				}
				report.FinishedAt = s.now().UTC()
				s.logger.Warn("Audit service: duplicate fingerprint found",
					"report_id", report.ID,
					"first_template_id", first.ID,
					"first_employee_id", first.EmployeeID,
					"second_template_id", second.ID,
					"second_employee_id", second.EmployeeID,
					"score", score)
				return report, nil
			}
		}
	}

	report.FinishedAt = s.now().UTC()
	s.logger.Info("Audit service: no duplicates found",
		"report_id", report.ID,
		"templates", report.Templates,
		"comparisons", report.Comparisons)

	return report, nil
}

func pairMember(t model.Template) model.PairMember {
	return model.PairMember{TemplateID: t.ID, EmployeeID: t.EmployeeID, Finger: t.Finger}
}
