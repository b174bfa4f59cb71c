package handler

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/fingerprint-server/internal/api/grpc/apiv1"
	"github.com/dtroode/fingerprint-server/internal/logger"
	"github.com/dtroode/fingerprint-server/internal/model"
)

// FingerprintService defines the request-serving fingerprint operations.
type FingerprintService interface {
	Enroll(ctx context.Context, req model.EnrollmentRequest) (model.EnrollmentResult, error)
	Match(ctx context.Context, req model.IdentificationRequest) (model.MatchResult, bool, error)
	Identify(ctx context.Context, req model.IdentificationRequest) (model.Identity, bool, error)
	Delete(ctx context.Context, req model.DeleteRequest) (bool, error)
}

var _ apiv1.FingerprintServer = (*Fingerprint)(nil)

// Fingerprint handles fingerprint.v1.Fingerprint.
type Fingerprint struct {
	service FingerprintService
	logger  *logger.Logger
}

// NewFingerprint creates a new Fingerprint handler.
func NewFingerprint(service FingerprintService, logger *logger.Logger) *Fingerprint {
	return &Fingerprint{
		service: service,
		logger:  logger,
	}
}

// Enroll fuses the samples into one template for the employee's finger.
func (h *Fingerprint) Enroll(ctx context.Context, req *apiv1.EnrollRequest) (*apiv1.EnrollResponse, error) {
	h.logger.Debug("Fingerprint handler: processing enroll request",
		"employee_id", req.EmployeeID,
		"company_id", req.CompanyID,
		"finger", req.Finger,
		"samples", len(req.Samples))

	finger, err := model.ParseFinger(req.Finger)
	if err != nil {
		return nil, handleError(model.NewValidationError("finger", err.Error()))
	}

	result, err := h.service.Enroll(ctx, model.EnrollmentRequest{
		EmployeeID: req.EmployeeID,
		Finger:     finger,
		CompanyID:  req.CompanyID,
		Samples:    req.Samples,
	})
	if err != nil {
		h.logger.Info("Fingerprint handler: enrollment rejected",
			"employee_id", req.EmployeeID,
			"finger", req.Finger,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &apiv1.EnrollResponse{
		Success:    true,
		Message:    "Fingerprint enrolled: " + result.Finger.DisplayName(),
		EmployeeID: result.EmployeeID,
		Finger:     result.Finger.String(),
	}, nil
}

// Identify returns the employee who owns the sample.
func (h *Fingerprint) Identify(ctx context.Context, req *apiv1.IdentifyRequest) (*apiv1.IdentifyResponse, error) {
	h.logger.Debug("Fingerprint handler: processing identify request", "company_id", req.CompanyID)

	identity, found, err := h.service.Identify(ctx, model.IdentificationRequest{
		Sample:    req.Sample,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		return nil, handleError(err)
	}
	if !found {
		return nil, status.Error(codes.NotFound, "no matching fingerprint")
	}

	return &apiv1.IdentifyResponse{
		Success: true,
		Message: "Employee identified",
		Identity: &apiv1.Identity{
			TemplateID: identity.TemplateID,
			EmployeeID: identity.EmployeeID,
			Finger:     identity.Finger.String(),
			CompanyID:  identity.CompanyID,
			Name:       identity.Name,
			Email:      identity.Email,
			NationalID: identity.NationalID,
			Phone:      identity.Phone,
			Job:        identity.Job,
			IsActive:   identity.IsActive,
			CreatedAt:  identity.CreatedAt,
		},
	}, nil
}

// Compare returns the enrolled template that matches the sample.
func (h *Fingerprint) Compare(ctx context.Context, req *apiv1.CompareRequest) (*apiv1.CompareResponse, error) {
	h.logger.Debug("Fingerprint handler: processing compare request", "company_id", req.CompanyID)

	match, found, err := h.service.Match(ctx, model.IdentificationRequest{
		Sample:    req.Sample,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		return nil, handleError(err)
	}
	if !found {
		return nil, status.Error(codes.NotFound, "no matching fingerprint")
	}

	return &apiv1.CompareResponse{
		Success: true,
		Message: "Fingerprint matched",
		Template: &apiv1.Template{
			ID:         match.Template.ID,
			EmployeeID: match.Template.EmployeeID,
			Finger:     match.Template.Finger.String(),
			Template:   match.Template.Data,
			CreatedAt:  match.Template.CreatedAt,
			Score:      uint32(match.Score),
		},
	}, nil
}

// Delete removes one finger, or every finger when none is named.
func (h *Fingerprint) Delete(ctx context.Context, req *apiv1.DeleteRequest) (*apiv1.DeleteResponse, error) {
	h.logger.Debug("Fingerprint handler: processing delete request",
		"employee_id", req.EmployeeID,
		"finger", req.Finger)

	params := model.DeleteRequest{EmployeeID: req.EmployeeID}
	if strings.TrimSpace(req.Finger) != "" {
		finger, err := model.ParseFinger(req.Finger)
		if err != nil {
			return nil, handleError(model.NewValidationError("finger", err.Error()))
		}
		params.Finger = &finger
	}

	deleted, err := h.service.Delete(ctx, params)
	if err != nil {
		return nil, handleError(err)
	}

	message := "Nothing to delete"
	if deleted {
		message = "Fingerprints deleted"
	}

	return &apiv1.DeleteResponse{
		Success: true,
		Message: message,
		Deleted: deleted,
	}, nil
}
