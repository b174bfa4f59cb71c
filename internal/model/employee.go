package model

import "context"

// EmployeeDirectory reads employees owned by the payroll system.
type EmployeeDirectory interface {
	// GetByID returns ErrNotFound when the employee does not exist.
	GetByID(ctx context.Context, id int64) (Employee, error)
}

// Employee is read-only reference data.
type Employee struct {
	ID         int64
	CompanyID  int64
	Name       string
	Email      string
	NationalID string
	Phone      string
	Job        string
	IsActive   bool
}
