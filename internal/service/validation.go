package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/fingerprint-server/internal/model"
)

func validateID(field string, id int64) error {
	if id <= 0 {
		return model.NewValidationError(field, "must be a positive integer")
	}
	return nil
}

func validateFinger(finger model.Finger) error {
	if !finger.Valid() {
		return model.NewValidationError("finger", fmt.Sprintf("unknown finger code %d", uint8(finger)))
	}
	return nil
}

func validateSample(field string, sample []byte) error {
	if len(sample) == 0 {
		return model.NewValidationError(field, "sample is empty")
	}
	return nil
}

func validateEnrollment(req model.EnrollmentRequest) error {
	if err := validateID("employeeId", req.EmployeeID); err != nil {
		return err
	}
	if err := validateID("companyId", req.CompanyID); err != nil {
		return err
	}
	if err := validateFinger(req.Finger); err != nil {
		return err
	}
	if len(req.Samples) < model.MinEnrollmentSamples {
		return model.NewValidationError("samples",
			fmt.Sprintf("at least %d samples are required, got %d", model.MinEnrollmentSamples, len(req.Samples)))
	}
	for i, sample := range req.Samples {
		if err := validateSample(fmt.Sprintf("samples[%d]", i), sample); err != nil {
			return err
		}
	}
	return nil
}

// matcherUnreachable tells a matcher that could not be asked apart from one
// that rejected the sample.
func matcherUnreachable(ctx context.Context, err error) bool {
	return errors.Is(err, model.ErrMatcherUnavailable) || ctx.Err() != nil
}
