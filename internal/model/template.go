package model

import (
	"context"
	"time"
)

// TemplateStore defines persistence operations for fingerprint templates.
type TemplateStore interface {
	// Add inserts a template for an employee of companyID. It returns
	// ErrDuplicateKey when the employee already has the finger enrolled and
	// ErrEmployeeNotInCompany when the employee is not part of the company.
	Add(ctx context.Context, template Template, companyID int64) (Template, error)
	// GetByCompany returns templates of employees of companyID ordered by id.
	GetByCompany(ctx context.Context, companyID int64) ([]Template, error)
	// GetByEmployee returns templates of one employee ordered by id.
	GetByEmployee(ctx context.Context, employeeID int64) ([]Template, error)
	// GetAll returns every template ordered by id.
	GetAll(ctx context.Context) ([]Template, error)
	// DeleteFinger removes one (employee, finger) row and returns the number
	// of rows removed.
	DeleteFinger(ctx context.Context, employeeID int64, finger Finger) (int64, error)
	// DeleteEmployee removes every row of the employee and returns the number
	// of rows removed.
	DeleteEmployee(ctx context.Context, employeeID int64) (int64, error)
	Ping(ctx context.Context) error
}

// Template is an enrolled fingerprint template.
type Template struct {
	ID         int64
	EmployeeID int64
	Finger     Finger
	Data       []byte
	CreatedAt  time.Time
}
