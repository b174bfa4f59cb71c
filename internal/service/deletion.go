package service

import (
	"context"

	"github.com/dtroode/fingerprint-server/internal/logger"
	"github.com/dtroode/fingerprint-server/internal/model"
)

// Deletion removes enrolled templates.
type Deletion struct {
	templates model.TemplateStore
	logger    *logger.Logger
}

func NewDeletion(templates model.TemplateStore, logger *logger.Logger) *Deletion {
	return &Deletion{
		templates: templates,
		logger:    logger,
	}
}

// Delete removes one finger of the employee, or all of them when req.Finger
// is nil. It reports whether any template was removed; an unknown employee
// and an employee with nothing enrolled look the same.
func (s *Deletion) Delete(ctx context.Context, req model.DeleteRequest) (bool, error) {
	if err := validateID("employeeId", req.EmployeeID); err != nil {
		return false, err
	}
	if req.Finger != nil {
		if err := validateFinger(*req.Finger); err != nil {
			return false, err
		}
	}

	enrolled, err := s.templates.GetByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return false, &model.StoreError{Op: "get templates by employee", Err: err}
	}

	fingers := make([]string, 0, len(enrolled))
	for _, t := range enrolled {
		if req.Finger == nil || t.Finger == *req.Finger {
			fingers = append(fingers, t.Finger.String())
		}
	}
	if len(fingers) == 0 {
		s.logger.Info("Deletion service: nothing to delete", "employee_id", req.EmployeeID)
		return false, nil
	}

	var deleted int64
	if req.Finger != nil {
		deleted, err = s.templates.DeleteFinger(ctx, req.EmployeeID, *req.Finger)
	} else {
		deleted, err = s.templates.DeleteEmployee(ctx, req.EmployeeID)
	}
	if err != nil {
		return false, &model.StoreError{Op: "delete templates", Err: err}
	}

	s.logger.Info("Deletion service: templates deleted",
		"employee_id", req.EmployeeID,
		"fingers", fingers,
		"deleted", deleted)

	return deleted > 0, nil
}
