// Package profiles stores the role-specific profile records, one per
// identity. Writes are not cross-validated against the identity collection;
// that discipline belongs to callers.
package profiles

import (
	"context"

	"internboard/internal/common/logger"
	"internboard/internal/models"
	"internboard/internal/store"
)

type Repository struct {
	col    *store.Collection[models.Profile]
	logger logger.Logger
}

func NewRepository(s *store.Store, log logger.Logger) *Repository {
	return &Repository{
		col:    store.NewCollection[models.Profile](s, store.CollectionProfiles),
		logger: log.WithFields(map[string]interface{}{"repository": "profiles"}),
	}
}

// Save upserts the profile by id.
func (r *Repository) Save(ctx context.Context, profile models.Profile) error {
	return r.col.Upsert(ctx, profile)
}

// Get returns the profile for an identity id, or nil when none exists.
func (r *Repository) Get(ctx context.Context, identityID string) (*models.Profile, error) {
	profile, ok, err := r.col.Find(ctx, identityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &profile, nil
}
