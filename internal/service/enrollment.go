package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/fingerprint-server/internal/logger"
	"github.com/dtroode/fingerprint-server/internal/model"
)

// TemplateMatcher finds the first template of a company that matches probe.
type TemplateMatcher interface {
	MatchTemplate(ctx context.Context, probe []byte, companyID int64) (model.MatchResult, bool, error)
}

// Enrollment turns several captures of one finger into a stored template.
type Enrollment struct {
	templates  model.TemplateStore
	matcher    model.Matcher
	identifier TemplateMatcher
	logger     *logger.Logger
}

func NewEnrollment(
	templates model.TemplateStore,
	matcher model.Matcher,
	identifier TemplateMatcher,
	logger *logger.Logger,
) *Enrollment {
	return &Enrollment{
		templates:  templates,
		matcher:    matcher,
		identifier: identifier,
		logger:     logger,
	}
}

// Enroll validates the request, extracts a template per sample, rejects
// samples already enrolled anywhere in the company, fuses the templates and
// stores the result. Any failure leaves the store untouched.
func (s *Enrollment) Enroll(ctx context.Context, req model.EnrollmentRequest) (model.EnrollmentResult, error) {
	if err := validateEnrollment(req); err != nil {
		return model.EnrollmentResult{}, err
	}

	s.logger.Debug("Enrollment service: starting enrollment",
		"employee_id", req.EmployeeID,
		"company_id", req.CompanyID,
		"finger", req.Finger,
		"samples", len(req.Samples))

	templates := make([][]byte, 0, len(req.Samples))
	for i, sample := range req.Samples {
		template, err := s.matcher.CreateTemplate(ctx, sample)
		if err != nil && matcherUnreachable(ctx, err) {
			s.logger.Error("Enrollment service: matcher unreachable",
				"employee_id", req.EmployeeID,
				"sample", i,
				"error", err)
			return model.EnrollmentResult{}, fmt.Errorf("failed to extract template from sample %d: %w", i, err)
		}
		if err != nil {
			s.logger.Info("Enrollment service: extraction failed",
				"employee_id", req.EmployeeID,
				"sample", i,
				"error", err)
			return model.EnrollmentResult{}, &model.ExtractionError{Index: i, Err: err}
		}
		templates = append(templates, template)
	}

	for i, template := range templates {
		match, found, err := s.identifier.MatchTemplate(ctx, template, req.CompanyID)
		if err != nil {
			return model.EnrollmentResult{}, fmt.Errorf("failed to check sample %d for duplicates: %w", i, err)
		}
		if found {
			s.logger.Info("Enrollment service: sample already enrolled",
				"employee_id", req.EmployeeID,
				"sample", i,
				"matched_employee_id", match.Template.EmployeeID,
				"matched_finger", match.Template.Finger)
			return model.EnrollmentResult{}, &model.DuplicateRecordError{
				EmployeeID: match.Template.EmployeeID,
				Finger:     match.Template.Finger,
			}
		}
	}

	fused, err := s.matcher.Fuse(ctx, templates)
	if err != nil {
		return model.EnrollmentResult{}, &model.FusionError{Err: err}
	}

	_, err = s.templates.Add(ctx, model.Template{
		EmployeeID: req.EmployeeID,
		Finger:     req.Finger,
		Data:       fused,
	}, req.CompanyID)
	switch {
	case errors.Is(err, model.ErrDuplicateKey):
		return model.EnrollmentResult{}, &model.DuplicateRecordError{EmployeeID: req.EmployeeID, Finger: req.Finger}
	case errors.Is(err, model.ErrEmployeeNotInCompany):
		return model.EnrollmentResult{}, model.NewValidationError("employeeId",
			fmt.Sprintf("employee %d does not belong to company %d", req.EmployeeID, req.CompanyID))
	case err != nil:
		s.logger.Error("Enrollment service: failed to store template",
			"employee_id", req.EmployeeID,
			"finger", req.Finger,
			"error", err)
		return model.EnrollmentResult{}, &model.StoreError{Op: "add template", Err: err}
	}

	s.logger.Info("Enrollment service: finger enrolled",
		"employee_id", req.EmployeeID,
		"company_id", req.CompanyID,
		"finger", req.Finger)

	return model.EnrollmentResult{EmployeeID: req.EmployeeID, Finger: req.Finger}, nil
}
