//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/fingerprint-server/internal/model"
	repo "github.com/dtroode/fingerprint-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "fingerprint_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/fingerprint_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func seedEmployee(t *testing.T, conn *repo.Connection, id, companyID int64, name string) {
	t.Helper()
	_, err := conn.Exec(context.Background(),
		`INSERT INTO employees (id, company_id, name, email, national_id, phone, job, is_active)
		 VALUES ($1, $2, $3, $4, '000', '555', 'operator', TRUE)
		 ON CONFLICT (id) DO NOTHING`,
		id, companyID, name, name+"@example.com")
	require.NoError(t, err)
}

func TestTemplateRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	seedEmployee(t, conn, 101, 1, "alice")
	seedEmployee(t, conn, 102, 1, "bob")
	seedEmployee(t, conn, 201, 2, "carol")

	tr := repo.NewTemplateRepository(conn)
	require.NoError(t, tr.Ping(ctx))

	first, err := tr.Add(ctx, model.Template{EmployeeID: 101, Finger: model.FingerRightIndex, Data: []byte("t-101-ri")}, 1)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, model.FingerRightIndex, first.Finger)
	assert.Equal(t, []byte("t-101-ri"), first.Data)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := tr.Add(ctx, model.Template{EmployeeID: 102, Finger: model.FingerLeftThumb, Data: []byte("t-102-lt")}, 1)
	require.NoError(t, err)
	_, err = tr.Add(ctx, model.Template{EmployeeID: 201, Finger: model.FingerRightIndex, Data: []byte("t-201-ri")}, 2)
	require.NoError(t, err)

	t.Run("duplicate employee finger", func(t *testing.T) {
		_, err := tr.Add(ctx, model.Template{EmployeeID: 101, Finger: model.FingerRightIndex, Data: []byte("again")}, 1)
		require.ErrorIs(t, err, model.ErrDuplicateKey)
	})

	t.Run("employee from another company", func(t *testing.T) {
		_, err := tr.Add(ctx, model.Template{EmployeeID: 201, Finger: model.FingerLeftRing, Data: []byte("x")}, 1)
		require.ErrorIs(t, err, model.ErrEmployeeNotInCompany)
	})

	t.Run("company scope and order", func(t *testing.T) {
		list, err := tr.GetByCompany(ctx, 1)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID)
		assert.Equal(t, second.ID, list[1].ID)

		none, err := tr.GetByCompany(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("whole corpus", func(t *testing.T) {
		all, err := tr.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Less(t, all[0].ID, all[1].ID)
		assert.Less(t, all[1].ID, all[2].ID)
	})

	t.Run("delete one finger then all", func(t *testing.T) {
		_, err := tr.Add(ctx, model.Template{EmployeeID: 101, Finger: model.FingerLeftPinky, Data: []byte("t-101-lp")}, 1)
		require.NoError(t, err)

		n, err := tr.DeleteFinger(ctx, 101, model.FingerLeftPinky)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = tr.DeleteFinger(ctx, 101, model.FingerLeftPinky)
		require.NoError(t, err)
		assert.Zero(t, n)

		byEmployee, err := tr.GetByEmployee(ctx, 101)
		require.NoError(t, err)
		require.Len(t, byEmployee, 1)

		n, err = tr.DeleteEmployee(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = tr.DeleteEmployee(ctx, 999)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestEmployeeRepository_Integration(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	seedEmployee(t, conn, 301, 3, "dave")

	db, err := repo.OpenDirectory(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	er := repo.NewEmployeeRepository(db)

	got, err := er.GetByID(ctx, 301)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.CompanyID)
	assert.Equal(t, "dave", got.Name)
	assert.True(t, got.IsActive)

	_, err = er.GetByID(ctx, 302)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestDirectoryAndTemplates_ShareEmployees(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := repo.OpenDirectory(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	seedEmployee(t, conn, 401, 4, "erin")

	directory := repo.NewEmployeeRepository(db)
	templates := repo.NewTemplateRepository(conn)

	employee, err := directory.GetByID(ctx, 401)
	require.NoError(t, err)

	added, err := templates.Add(ctx, model.Template{EmployeeID: employee.ID, Finger: model.FingerLeftMiddle, Data: []byte("t-401-lm")}, employee.CompanyID)
	require.NoError(t, err)

	scoped, err := templates.GetByCompany(ctx, employee.CompanyID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, added.ID, scoped[0].ID)
	assert.Equal(t, employee.ID, scoped[0].EmployeeID)
}
