// Package registry manages the set of registered identities and the
// current-identity pointer.
package registry

import (
	"context"
	"strings"
	"time"

	"internboard/internal/common/errors"
	"internboard/internal/common/logger"
	"internboard/internal/common/metrics"
	"internboard/internal/models"
	"internboard/internal/profiles"
	"internboard/internal/store"

	"github.com/google/uuid"
)

// StudentFields carries the student-specific registration attributes.
type StudentFields struct {
	Skills    []string `json:"skills"`
	Location  string   `json:"location"`
	Bio       string   `json:"bio"`
	ResumeURL string   `json:"resumeUrl"`
}

// CompanyFields carries the company-specific registration attributes.
type CompanyFields struct {
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// RegisterInput is the tagged registration payload. Exactly the variant
// matching Role is read; the other is ignored. Credential is accepted but
// never verified or stored.
type RegisterInput struct {
	Email      string         `json:"email"`
	Credential string         `json:"credential"`
	Name       string         `json:"name"`
	Role       models.Role    `json:"role"`
	Student    *StudentFields `json:"student,omitempty"`
	Company    *CompanyFields `json:"company,omitempty"`
}

// Registry is the identity service. The current identity lives under a single
// store pointer: unset at cold start, set by Login/Register, cleared by
// Logout, never expiring on its own.
type Registry struct {
	identities *store.Collection[models.Identity]
	profiles   *profiles.Repository
	store      *store.Store
	logger     logger.Logger
}

func New(s *store.Store, profileRepo *profiles.Repository, log logger.Logger) *Registry {
	return &Registry{
		identities: store.NewCollection[models.Identity](s, store.CollectionIdentities),
		profiles:   profileRepo,
		store:      s,
		logger:     log.WithFields(map[string]interface{}{"component": "registry"}),
	}
}

// Current reads the current-identity pointer. It never fails: an unset or
// malformed pointer yields nil.
func (r *Registry) Current(ctx context.Context) *models.Identity {
	var identity models.Identity
	ok, err := r.store.GetPointer(ctx, store.PointerCurrentIdentity, &identity)
	if err != nil || !ok {
		return nil
	}
	return &identity
}

// Login looks up an identity by exact email match and sets the pointer. The
// credential is accepted without verification.
func (r *Registry) Login(ctx context.Context, email, _ string) (*models.Identity, error) {
	all, err := r.identities.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, identity := range all {
		if identity.Email == email {
			if err := r.store.SetPointer(ctx, store.PointerCurrentIdentity, identity); err != nil {
				return nil, err
			}
			r.logger.Info("identity logged in", map[string]interface{}{
				"identityId": identity.ID,
				"role":       string(identity.Role),
			})
			return &identity, nil
		}
	}

	return nil, errors.NewNotFoundError("identity", "email: "+email)
}

// Register creates a new identity plus its profile, sets the pointer and
// returns the identity. The identity and profile writes are two separate
// collection writes; a failure between them can leave the profile missing.
func (r *Registry) Register(ctx context.Context, input RegisterInput) (*models.Identity, error) {
	all, err := r.identities.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, existing := range all {
		if existing.Email == input.Email {
			return nil, errors.NewDuplicateEmailError(input.Email)
		}
	}

	identity := models.Identity{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Role:      input.Role,
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: time.Now().UTC(),
	}

	if err := r.identities.Upsert(ctx, identity); err != nil {
		return nil, err
	}

	profile := buildProfile(identity, input)
	if err := r.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	if err := r.store.SetPointer(ctx, store.PointerCurrentIdentity, identity); err != nil {
		return nil, err
	}

	metrics.Registrations.WithLabelValues(string(identity.Role)).Inc()
	r.logger.Info("identity registered", map[string]interface{}{
		"identityId": identity.ID,
		"role":       string(identity.Role),
	})
	return &identity, nil
}

// Logout clears the pointer unconditionally.
func (r *Registry) Logout(ctx context.Context) error {
	return r.store.ClearPointer(ctx, store.PointerCurrentIdentity)
}

// buildProfile applies the role-specific defaulting: unspecified sequences
// become empty sequences, unspecified strings stay empty, and a company
// without a company name inherits the identity name.
func buildProfile(identity models.Identity, input RegisterInput) models.Profile {
	profile := models.Profile{Identity: identity}

	switch identity.Role {
	case models.RoleStudent:
		fields := input.Student
		if fields == nil {
			fields = &StudentFields{}
		}
		profile.Skills = fields.Skills
		if profile.Skills == nil {
			profile.Skills = []string{}
		}
		profile.Location = fields.Location
		profile.Bio = fields.Bio
		profile.ResumeURL = fields.ResumeURL
		profile.Preferences = &models.Preferences{
			JobTypes:  []string{},
			Locations: []string{},
		}

	case models.RoleCompany:
		fields := input.Company
		if fields == nil {
			fields = &CompanyFields{}
		}
		profile.CompanyName = fields.CompanyName
		if profile.CompanyName == "" {
			profile.CompanyName = identity.Name
		}
		profile.Industry = fields.Industry
		profile.Location = fields.Location
		profile.Description = fields.Description
		profile.Website = fields.Website
	}

	return profile
}
