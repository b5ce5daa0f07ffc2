// internal/models/job.go
package models

import "time"

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

// Job is a posted internship opportunity owned by a company identity.
// CompanyID should reference an identity with the company role; the store does
// not enforce this, callers must treat missing lookups as not-found.
type Job struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Salary       string    `json:"salary,omitempty"`
	PostedAt     time.Time `json:"postedAt"`
	Status       JobStatus `json:"status"`
}

func (j Job) EntityID() string { return j.ID }

// IsActive reports whether the posting accepts applications.
func (j Job) IsActive() bool { return j.Status == JobStatusActive }
