package handler

import (
	"context"

	"github.com/dtroode/fingerprint-server/internal/api/grpc/apiv1"
	"github.com/dtroode/fingerprint-server/internal/logger"
	"github.com/dtroode/fingerprint-server/internal/model"
)

// AuditRunner runs one duplicate sweep.
type AuditRunner interface {
	Run(ctx context.Context) (model.AuditReport, error)
}

var _ apiv1.AdminServer = (*Admin)(nil)

// Admin handles fingerprint.v1.Admin.
type Admin struct {
	audit  AuditRunner
	logger *logger.Logger
}

func NewAdmin(audit AuditRunner, logger *logger.Logger) *Admin {
	return &Admin{
		audit:  audit,
		logger: logger,
	}
}

// AuditDuplicates runs a sweep and waits for its report.
func (h *Admin) AuditDuplicates(ctx context.Context, _ *apiv1.AuditDuplicatesRequest) (*apiv1.AuditDuplicatesResponse, error) {
	h.logger.Info("Admin handler: duplicate audit requested")

	report, err := h.audit.Run(ctx)
	if err != nil {
		h.logger.Error("Admin handler: duplicate audit failed", "error", err.Error())
		return nil, handleError(err)
	}

	return AuditResponse(report), nil
}

// AuditResponse converts a report into its wire form.
func AuditResponse(report model.AuditReport) *apiv1.AuditDuplicatesResponse {
	resp := &apiv1.AuditDuplicatesResponse{
		Found:       report.Found(),
		Outcome:     string(report.Outcome),
		ReportID:    report.ID.String(),
		Templates:   report.Templates,
		Comparisons: report.Comparisons,
		Threshold:   report.Threshold.String(),
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
	}
	if report.Pair != nil {
		resp.Pair = &apiv1.DuplicatePair{
			First:  pairMember(report.Pair.First),
			Second: pairMember(report.Pair.Second),
			Score:  uint32(report.Pair.Score),
		}
	}
	return resp
}

func pairMember(m model.PairMember) apiv1.PairMember {
	return apiv1.PairMember{
		TemplateID: m.TemplateID,
		EmployeeID: m.EmployeeID,
		Finger:     m.Finger.String(),
	}
}
