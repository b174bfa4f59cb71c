package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dtroode/fingerprint-server/internal/model"
)

// memTemplateStore keeps templates in id order and enforces the
// (employee, finger) uniqueness the database enforces.
type memTemplateStore struct {
	mu        sync.Mutex
	companies map[int64]int64
	rows      []model.Template
	nextID    int64
}

func newMemTemplateStore(employeeCompanies map[int64]int64) *memTemplateStore {
	return &memTemplateStore{companies: employeeCompanies}
}

func (s *memTemplateStore) Add(_ context.Context, t model.Template, companyID int64) (model.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.companies[t.EmployeeID]; !ok || c != companyID {
		return model.Template{}, model.ErrEmployeeNotInCompany
	}
	for _, row := range s.rows {
		if row.EmployeeID == t.EmployeeID && row.Finger == t.Finger {
			return model.Template{}, model.ErrDuplicateKey
		}
	}

	s.nextID++
	t.ID = s.nextID
	t.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.rows = append(s.rows, t)
	return t, nil
}

func (s *memTemplateStore) GetByCompany(_ context.Context, companyID int64) ([]model.Template, error) {
	return s.filter(func(t model.Template) bool { return s.companies[t.EmployeeID] == companyID }), nil
}

func (s *memTemplateStore) GetByEmployee(_ context.Context, employeeID int64) ([]model.Template, error) {
	return s.filter(func(t model.Template) bool { return t.EmployeeID == employeeID }), nil
}

func (s *memTemplateStore) GetAll(_ context.Context) ([]model.Template, error) {
	return s.filter(func(model.Template) bool { return true }), nil
}

func (s *memTemplateStore) DeleteFinger(_ context.Context, employeeID int64, finger model.Finger) (int64, error) {
	return s.remove(func(t model.Template) bool { return t.EmployeeID == employeeID && t.Finger == finger }), nil
}

func (s *memTemplateStore) DeleteEmployee(_ context.Context, employeeID int64) (int64, error) {
	return s.remove(func(t model.Template) bool { return t.EmployeeID == employeeID }), nil
}

func (s *memTemplateStore) Ping(context.Context) error { return nil }

func (s *memTemplateStore) filter(keep func(model.Template) bool) []model.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Template
	for _, row := range s.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

func (s *memTemplateStore) remove(match func(model.Template) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rows[:0]
	var removed int64
	for _, row := range s.rows {
		if match(row) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	s.rows = kept
	return removed
}

// byteMatcher treats a sample as its own template. Equal templates score 0,
// anything else scores far above every preset threshold. Fusion keeps the
// first template.
type byteMatcher struct {
	mu          sync.Mutex
	extractions int
	comparisons int
}

const mismatchScore model.Score = 1 << 30

var errPoorQuality = errors.New("poor image quality")

func (m *byteMatcher) CreateTemplate(_ context.Context, sample []byte) ([]byte, error) {
	m.mu.Lock()
	m.extractions++
	m.mu.Unlock()

	if bytes.HasPrefix(sample, []byte("smudge")) {
		return nil, errPoorQuality
	}
	return append([]byte(nil), sample...), nil
}

func (m *byteMatcher) Fuse(_ context.Context, templates [][]byte) ([]byte, error) {
	return append([]byte(nil), templates[0]...), nil
}

func (m *byteMatcher) Compare(_ context.Context, a, b []byte) (model.Score, error) {
	m.mu.Lock()
	m.comparisons++
	m.mu.Unlock()

	if bytes.Equal(a, b) {
		return 0, nil
	}
	return mismatchScore, nil
}

// memEmployees is a fixed employee directory.
type memEmployees map[int64]model.Employee

func (d memEmployees) GetByID(_ context.Context, id int64) (model.Employee, error) {
	e, ok := d[id]
	if !ok {
		return model.Employee{}, model.ErrNotFound
	}
	return e, nil
}
