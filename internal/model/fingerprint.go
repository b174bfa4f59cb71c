package model

import (
	"time"

	"github.com/google/uuid"
)

// MinEnrollmentSamples is the minimum number of captures fused into one
// enrollment template.
const MinEnrollmentSamples = 2

// EnrollmentRequest asks to enroll one finger of an employee.
type EnrollmentRequest struct {
	EmployeeID int64
	Finger     Finger
	CompanyID  int64
	Samples    [][]byte
}

// EnrollmentResult confirms a successful enrollment.
type EnrollmentResult struct {
	EmployeeID int64
	Finger     Finger
}

// IdentificationRequest asks to find the owner of a sample within a company.
type IdentificationRequest struct {
	Sample    []byte
	CompanyID int64
}

// DeleteRequest removes one finger, or every finger when Finger is nil.
type DeleteRequest struct {
	EmployeeID int64
	Finger     *Finger
}

// MatchResult is a qualifying template and its score.
type MatchResult struct {
	Template Template
	Score    Score
}

// Identity is a match joined with the employee it belongs to.
type Identity struct {
	TemplateID int64
	EmployeeID int64
	Finger     Finger
	CompanyID  int64
	Name       string
	Email      string
	NationalID string
	Phone      string
	Job        string
	IsActive   bool
	CreatedAt  time.Time
	Score      Score
}

// AuditOutcome is the result kind of a duplicate sweep.
type AuditOutcome string

const (
	// AuditOutcomeEmpty means there were no templates to compare.
	AuditOutcomeEmpty AuditOutcome = "empty"
	// AuditOutcomeClean means no pair qualified.
	AuditOutcomeClean AuditOutcome = "clean"
	// AuditOutcomeDuplicate means a qualifying pair was found.
	AuditOutcomeDuplicate AuditOutcome = "duplicate"
)

// AuditReport describes one duplicate sweep.
type AuditReport struct {
	ID          uuid.UUID      `json:"id"`
	StartedAt   time.Time      `json:"startedAt"`
	FinishedAt  time.Time      `json:"finishedAt"`
	Outcome     AuditOutcome   `json:"outcome"`
	Templates   int            `json:"templates"`
	Comparisons int            `json:"comparisons"`
	Threshold   Threshold      `json:"threshold"`
	Pair        *DuplicatePair `json:"pair,omitempty"`
}

// Found reports whether the sweep found a duplicate.
func (r AuditReport) Found() bool {
	return r.Outcome == AuditOutcomeDuplicate
}

// DuplicatePair is the first qualifying pair of a sweep.
type DuplicatePair struct {
	First  PairMember `json:"first"`
	Second PairMember `json:"second"`
	Score  Score      `json:"score"`
}

// PairMember identifies one side of a duplicate pair.
type PairMember struct {
	TemplateID int64  `json:"templateId"`
	EmployeeID int64  `json:"employeeId"`
	Finger     Finger `json:"finger"`
}
