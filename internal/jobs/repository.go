// Package jobs is a thin facade over the job collection. Removing a job does
// not cascade to its applications; dangling references are tolerated and
// filtered by callers.
package jobs

import (
	"context"

	"internboard/internal/common/logger"
	"internboard/internal/models"
	"internboard/internal/store"
)

type Repository struct {
	col    *store.Collection[models.Job]
	logger logger.Logger
}

func NewRepository(s *store.Store, log logger.Logger) *Repository {
	return &Repository{
		col:    store.NewCollection[models.Job](s, store.CollectionJobs),
		logger: log.WithFields(map[string]interface{}{"repository": "jobs"}),
	}
}

// Save upserts the job by id.
func (r *Repository) Save(ctx context.Context, job models.Job) error {
	return r.col.Upsert(ctx, job)
}

// Get returns the job with the given id, or nil when none exists.
func (r *Repository) Get(ctx context.Context, id string) (*models.Job, error) {
	job, ok, err := r.col.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &job, nil
}

// List returns every stored job in insertion order.
func (r *Repository) List(ctx context.Context) ([]models.Job, error) {
	return r.col.LoadAll(ctx)
}

// ListByCompany returns the jobs posted by one company identity.
func (r *Repository) ListByCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	all, err := r.col.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Job, 0, len(all))
	for _, j := range all {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

// ListActive returns the jobs still accepting applications.
func (r *Repository) ListActive(ctx context.Context) ([]models.Job, error) {
	all, err := r.col.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Job, 0, len(all))
	for _, j := range all {
		if j.IsActive() {
			out = append(out, j)
		}
	}
	return out, nil
}

// Delete removes the job; no-op when absent.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.col.Remove(ctx, id)
}
