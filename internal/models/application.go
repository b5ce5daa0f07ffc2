// internal/models/application.go
package models

import "time"

// ApplicationStatus is the lifecycle state of an application.
//
// pending is the initial state. Company decisions move it to accepted or
// rejected, both terminal. reviewing is declared for schema compatibility but
// no operation transitions into or out of it.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// Terminal reports whether no further transition is allowed from s.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// Application is a student's request to be considered for a job. CompanyID
// duplicates the referenced job's companyId so company-side listings need a
// single collection read.
type Application struct {
	ID        string            `json:"id"`
	JobID     string            `json:"jobId"`
	StudentID string            `json:"studentId"`
	CompanyID string            `json:"companyId"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"appliedAt"`
	Messages  []Message         `json:"messages"`
	AIScore   int               `json:"aiScore"`
}

func (a Application) EntityID() string { return a.ID }
