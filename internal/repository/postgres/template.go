package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/fingerprint-server/internal/model"
)

var _ model.TemplateStore = (*TemplateRepository)(nil)

const templateColumns = `f.id, f.employee_id, f.finger, f.template, f.created_at`

type TemplateRepository struct {
	db *Connection
}

func NewTemplateRepository(db *Connection) *TemplateRepository {
	return &TemplateRepository{
		db: db,
	}
}

// Add inserts the template only when the employee belongs to companyID.
func (r *TemplateRepository) Add(ctx context.Context, template model.Template, companyID int64) (model.Template, error) {
	query := `
		INSERT INTO employee_fingerprints AS f (employee_id, finger, template)
		SELECT $1::bigint, $2::smallint, $3::bytea
		WHERE EXISTS (SELECT 1 FROM employees e WHERE e.id = $1::bigint AND e.company_id = $4::bigint)
		RETURNING ` + templateColumns

	saved, err := scanTemplate(r.db.QueryRow(ctx, query,
		template.EmployeeID, int16(template.Finger), template.Data, companyID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Template{}, model.ErrEmployeeNotInCompany
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Template{}, model.ErrDuplicateKey
		}
		return model.Template{}, err
	}

	return saved, nil
}

func (r *TemplateRepository) GetByCompany(ctx context.Context, companyID int64) ([]model.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM employee_fingerprints f
		JOIN employees e ON e.id = f.employee_id
		WHERE e.company_id = $1
		ORDER BY f.id ASC`

	return r.queryTemplates(ctx, query, companyID)
}

func (r *TemplateRepository) GetByEmployee(ctx context.Context, employeeID int64) ([]model.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM employee_fingerprints f
		WHERE f.employee_id = $1
		ORDER BY f.id ASC`

	return r.queryTemplates(ctx, query, employeeID)
}

func (r *TemplateRepository) GetAll(ctx context.Context) ([]model.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM employee_fingerprints f
		ORDER BY f.id ASC`

	return r.queryTemplates(ctx, query)
}

func (r *TemplateRepository) DeleteFinger(ctx context.Context, employeeID int64, finger model.Finger) (int64, error) {
	const query = `DELETE FROM employee_fingerprints WHERE employee_id = $1 AND finger = $2`
	cmd, err := r.db.Exec(ctx, query, employeeID, int16(finger))
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *TemplateRepository) DeleteEmployee(ctx context.Context, employeeID int64) (int64, error) {
	const query = `DELETE FROM employee_fingerprints WHERE employee_id = $1`
	cmd, err := r.db.Exec(ctx, query, employeeID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *TemplateRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *TemplateRepository) queryTemplates(ctx context.Context, query string, args ...any) ([]model.Template, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []model.Template
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func scanTemplate(row pgx.Row) (model.Template, error) {
	var (
		template model.Template
		code     int16
	)
	err := row.Scan(&template.ID, &template.EmployeeID, &code, &template.Data, &template.CreatedAt)
	if err != nil {
		return model.Template{}, err
	}

	finger, err := model.FingerFromCode(code)
	if err != nil {
		return model.Template{}, err
	}
	template.Finger = finger

	return template, nil
}
