package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/fingerprint-server/internal/logger"
	"github.com/dtroode/fingerprint-server/internal/model"
)

// Identification scans a company's enrolled templates for the owner of a
// sample. The first candidate within the threshold wins, in store order.
type Identification struct {
	templates model.TemplateStore
	employees model.EmployeeDirectory
	matcher   model.Matcher
	threshold model.Threshold
	logger    *logger.Logger
}

func NewIdentification(
	templates model.TemplateStore,
	employees model.EmployeeDirectory,
	matcher model.Matcher,
	threshold model.Threshold,
	logger *logger.Logger,
) *Identification {
	return &Identification{
		templates: templates,
		employees: employees,
		matcher:   matcher,
		threshold: threshold,
		logger:    logger,
	}
}

// Match extracts a template from the sample and returns the first qualifying
// template of the company. found is false when nothing qualifies.
func (s *Identification) Match(ctx context.Context, req model.IdentificationRequest) (model.MatchResult, bool, error) {
	if err := validateID("companyId", req.CompanyID); err != nil {
		return model.MatchResult{}, false, err
	}
	if err := validateSample("sample", req.Sample); err != nil {
		return model.MatchResult{}, false, err
	}

	probe, err := s.matcher.CreateTemplate(ctx, req.Sample)
	if err != nil && matcherUnreachable(ctx, err) {
		return model.MatchResult{}, false, fmt.Errorf("failed to extract template from sample: %w", err)
	}
	if err != nil {
		return model.MatchResult{}, false, &model.ExtractionError{Index: 0, Err: err}
	}

	return s.MatchTemplate(ctx, probe, req.CompanyID)
}

// MatchTemplate is Match for an already extracted template.
func (s *Identification) MatchTemplate(ctx context.Context, probe []byte, companyID int64) (model.MatchResult, bool, error) {
	candidates, err := s.templates.GetByCompany(ctx, companyID)
	if err != nil {
		return model.MatchResult{}, false, &model.StoreError{Op: "get templates by company", Err: err}
	}

	for _, candidate := range candidates {
		score, err := s.matcher.Compare(ctx, probe, candidate.Data)
		if err != nil {
			return model.MatchResult{}, false, fmt.Errorf("failed to compare with template %d: %w", candidate.ID, err)
		}
		if s.threshold.Qualifies(score) {
			s.logger.Debug("Identification service: candidate qualified",
				"company_id", companyID,
				"template_id", candidate.ID,
				"score", score,
				"threshold", s.threshold)
			return model.MatchResult{Template: candidate, Score: score}, true, nil
		}
	}

	s.logger.Debug("Identification service: no candidate qualified",
		"company_id", companyID,
		"candidates", len(candidates))

	return model.MatchResult{}, false, nil
}

// Identify runs Match and joins the matched employee.
func (s *Identification) Identify(ctx context.Context, req model.IdentificationRequest) (model.Identity, bool, error) {
	match, found, err := s.Match(ctx, req)
	if err != nil || !found {
		return model.Identity{}, found, err
	}

	employee, err := s.employees.GetByID(ctx, match.Template.EmployeeID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Identification service: matched template has no employee",
			"template_id", match.Template.ID,
			"employee_id", match.Template.EmployeeID)
		return model.Identity{}, false, &model.IntegrityError{
			TemplateID: match.Template.ID,
			EmployeeID: match.Template.EmployeeID,
		}
	}
	if err != nil {
		return model.Identity{}, false, &model.StoreError{Op: "get employee", Err: err}
	}

	s.logger.Info("Identification service: employee identified",
		"company_id", req.CompanyID,
		"employee_id", employee.ID,
		"finger", match.Template.Finger)

	return model.Identity{
		TemplateID: match.Template.ID,
		EmployeeID: employee.ID,
		Finger:     match.Template.Finger,
		CompanyID:  employee.CompanyID,
		Name:       employee.Name,
		Email:      employee.Email,
		NationalID: employee.NationalID,
		Phone:      employee.Phone,
		Job:        employee.Job,
		IsActive:   employee.IsActive,
		CreatedAt:  match.Template.CreatedAt,
		Score:      match.Score,
	}, true, nil
}
