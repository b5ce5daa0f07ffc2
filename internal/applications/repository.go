// Package applications stores application records and owns their status
// lifecycle. Applications are never deleted; the only mutations after
// creation are status transitions.
package applications

import (
	"context"

	"internboard/internal/common/errors"
	"internboard/internal/common/logger"
	"internboard/internal/common/metrics"
	"internboard/internal/models"
	"internboard/internal/store"
)

type Repository struct {
	col    *store.Collection[models.Application]
	logger logger.Logger
}

func NewRepository(s *store.Store, log logger.Logger) *Repository {
	return &Repository{
		col:    store.NewCollection[models.Application](s, store.CollectionApplications),
		logger: log.WithFields(map[string]interface{}{"repository": "applications"}),
	}
}

// Save upserts the application by id. The store does not dedupe by
// (studentId, jobId); preventing double applications is caller discipline.
func (r *Repository) Save(ctx context.Context, app models.Application) error {
	if err := r.col.Upsert(ctx, app); err != nil {
		return err
	}
	metrics.ApplicationsSaved.WithLabelValues(string(app.Status)).Inc()
	return nil
}

// Get returns the application with the given id, or nil when none exists.
func (r *Repository) Get(ctx context.Context, id string) (*models.Application, error) {
	app, ok, err := r.col.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &app, nil
}

// List returns every stored application in insertion order.
func (r *Repository) List(ctx context.Context) ([]models.Application, error) {
	return r.col.LoadAll(ctx)
}

// ListByStudent returns the applications filed by one student identity.
func (r *Repository) ListByStudent(ctx context.Context, studentID string) ([]models.Application, error) {
	return r.filter(ctx, func(a models.Application) bool { return a.StudentID == studentID })
}

// ListByJob returns the applications against one job. Dangling jobIds are
// returned as-is.
func (r *Repository) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	return r.filter(ctx, func(a models.Application) bool { return a.JobID == jobID })
}

// ListByCompany returns the applications addressed to one company identity.
func (r *Repository) ListByCompany(ctx context.Context, companyID string) ([]models.Application, error) {
	return r.filter(ctx, func(a models.Application) bool { return a.CompanyID == companyID })
}

func (r *Repository) filter(ctx context.Context, keep func(models.Application) bool) ([]models.Application, error) {
	all, err := r.col.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Application, 0, len(all))
	for _, a := range all {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Accept moves a pending application to accepted.
func (r *Repository) Accept(ctx context.Context, id string) (*models.Application, error) {
	return r.transition(ctx, id, models.ApplicationStatusAccepted)
}

// Reject moves a pending application to rejected.
func (r *Repository) Reject(ctx context.Context, id string) (*models.Application, error) {
	return r.transition(ctx, id, models.ApplicationStatusRejected)
}

// transition enforces the application state machine: pending is the only
// state decisions may leave from, accepted and rejected are terminal.
// reviewing has no transition into or out of it.
func (r *Repository) transition(ctx context.Context, id string, to models.ApplicationStatus) (*models.Application, error) {
	app, ok, err := r.col.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewNotFoundError("application", "applicationId: "+id)
	}

	if app.Status != models.ApplicationStatusPending {
		return nil, errors.NewInvalidStatusTransitionError(id, string(app.Status), string(to))
	}

	app.Status = to
	if err := r.col.Upsert(ctx, app); err != nil {
		return nil, err
	}

	r.logger.Info("application status updated", map[string]interface{}{
		"applicationId": id,
		"status":        string(to),
	})
	metrics.ApplicationsSaved.WithLabelValues(string(to)).Inc()
	return &app, nil
}
