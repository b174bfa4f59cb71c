package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dtroode/fingerprint-server/internal/model"
)

var _ model.EmployeeDirectory = (*EmployeeRepository)(nil)

// EmployeeRepository reads the employees table shared with the template store.
type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (model.Employee, error) {
	const query = `
		SELECT e.id, e.company_id, e.name, e.email, e.national_id, e.phone, e.job, e.is_active
		FROM employees e
		WHERE e.id = $1`

	var employee model.Employee
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&employee.ID, &employee.CompanyID, &employee.Name, &employee.Email,
		&employee.NationalID, &employee.Phone, &employee.Job, &employee.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Employee{}, model.ErrNotFound
		}
		return model.Employee{}, err
	}

	return employee, nil
}
