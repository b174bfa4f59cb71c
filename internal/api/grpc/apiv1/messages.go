// Package apiv1 defines the fingerprint.v1 gRPC services: their messages,
// service descriptors and clients. Messages travel with the JSON codec.
package apiv1

import "time"

type EnrollRequest struct {
	EmployeeID int64    `json:"employeeId"`
	Finger     string   `json:"finger"`
	CompanyID  int64    `json:"companyId"`
	Samples    [][]byte `json:"samples"`
}

type EnrollResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	EmployeeID int64  `json:"employeeId"`
	Finger     string `json:"finger"`
}

type IdentifyRequest struct {
	Sample    []byte `json:"sample"`
	CompanyID int64  `json:"companyId"`
}

type Identity struct {
	TemplateID int64     `json:"templateId"`
	EmployeeID int64     `json:"employeeId"`
	Finger     string    `json:"finger"`
	CompanyID  int64     `json:"companyId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	NationalID string    `json:"nationalId"`
	Phone      string    `json:"phone"`
	Job        string    `json:"job"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

type IdentifyResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Identity *Identity `json:"identity,omitempty"`
}

// CompareRequest looks up the enrolled template that matches a sample
// without joining the employee.
type CompareRequest struct {
	Sample    []byte `json:"sample"`
	CompanyID int64  `json:"companyId"`
}

type Template struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	Finger     string    `json:"finger"`
	Template   []byte    `json:"template,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	Score      uint32    `json:"score"`
}

type CompareResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Template *Template `json:"template,omitempty"`
}

// DeleteRequest removes every finger of the employee when Finger is empty.
type DeleteRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Finger     string `json:"finger,omitempty"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Deleted bool   `json:"deleted"`
}

type AuditDuplicatesRequest struct{}

type PairMember struct {
	TemplateID int64  `json:"templateId"`
	EmployeeID int64  `json:"employeeId"`
	Finger     string `json:"finger"`
}

type DuplicatePair struct {
	First  PairMember `json:"first"`
	Second PairMember `json:"second"`
	Score  uint32     `json:"score"`
}

type AuditDuplicatesResponse struct {
	Found       bool           `json:"found"`
	Outcome     string         `json:"outcome"`
	ReportID    string         `json:"reportId"`
	Templates   int            `json:"templates"`
	Comparisons int            `json:"comparisons"`
	Threshold   string         `json:"threshold"`
	StartedAt   time.Time      `json:"startedAt"`
	FinishedAt  time.Time      `json:"finishedAt"`
	Pair        *DuplicatePair `json:"pair,omitempty"`
}
