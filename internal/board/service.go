// Package board is the in-process API surface of the internship board core.
// Callers (UI layers, tools) go through this service; it wires the identity
// registry, the repositories and the match scorer, validates ingress payloads
// and records operation metrics.
package board

import (
	"context"
	"time"

	"internboard/internal/applications"
	"internboard/internal/common/errors"
	"internboard/internal/common/logger"
	"internboard/internal/common/observability"
	"internboard/internal/common/validation"
	"internboard/internal/jobs"
	"internboard/internal/match"
	"internboard/internal/models"
	"internboard/internal/profiles"
	"internboard/internal/registry"

	"github.com/google/uuid"
)

type Service struct {
	registry     *registry.Registry
	profiles     *profiles.Repository
	jobs         *jobs.Repository
	applications *applications.Repository
	scorer       *match.Scorer
	obs          *observability.Observability
	logger       logger.Logger
}

// Dependencies collects everything the service needs. Obs may be nil in
// tests.
type Dependencies struct {
	Registry     *registry.Registry
	Profiles     *profiles.Repository
	Jobs         *jobs.Repository
	Applications *applications.Repository
	Scorer       *match.Scorer
	Obs          *observability.Observability
	Logger       logger.Logger
}

func New(deps Dependencies) *Service {
	obs := deps.Obs
	if obs == nil {
		obs = &observability.Observability{}
	}
	return &Service{
		registry:     deps.Registry,
		profiles:     deps.Profiles,
		jobs:         deps.Jobs,
		applications: deps.Applications,
		scorer:       deps.Scorer,
		obs:          obs,
		logger:       deps.Logger.WithFields(map[string]interface{}{"component": "board"}),
	}
}

// track reports one operation's outcome and duration to the otel meter.
func (s *Service) track(ctx context.Context, operation string) func(err error) {
	start := time.Now()
	return func(err error) {
		status := "ok"
		if err != nil {
			status = "error"
		}
		s.obs.RecordOperation(ctx, operation, status)
		s.obs.RecordDuration(ctx, operation, time.Since(start))
	}
}

// ==========================
// Identity operations
// ==========================

func (s *Service) Register(ctx context.Context, input registry.RegisterInput) (identity *models.Identity, err error) {
	done := s.track(ctx, "register")
	defer func() { done(err) }()

	result, verr := validation.Validate(input, registerSchema)
	if verr != nil {
		return nil, errors.NewValidationFailedError(verr.Error())
	}
	if !result.Valid {
		return nil, errors.NewValidationFailedError(result.ErrorDetails())
	}

	identity, err = s.registry.Register(ctx, input)
	return identity, err
}

func (s *Service) Login(ctx context.Context, email, credential string) (identity *models.Identity, err error) {
	done := s.track(ctx, "login")
	defer func() { done(err) }()
	identity, err = s.registry.Login(ctx, email, credential)
	return identity, err
}

func (s *Service) Logout(ctx context.Context) error {
	return s.registry.Logout(ctx)
}

func (s *Service) CurrentIdentity(ctx context.Context) *models.Identity {
	return s.registry.Current(ctx)
}

// ==========================
// Profile operations
// ==========================

func (s *Service) GetProfile(ctx context.Context, identityID string) (*models.Profile, error) {
	return s.profiles.Get(ctx, identityID)
}

func (s *Service) SaveProfile(ctx context.Context, profile models.Profile) error {
	return s.profiles.Save(ctx, profile)
}

// ==========================
// Job operations
// ==========================

func (s *Service) ListJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobs.List(ctx)
}

func (s *Service) ListActiveJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobs.ListActive(ctx)
}

func (s *Service) ListCompanyJobs(ctx context.Context, companyID string) ([]models.Job, error) {
	return s.jobs.ListByCompany(ctx, companyID)
}

func (s *Service) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return s.jobs.Get(ctx, id)
}

func (s *Service) SaveJob(ctx context.Context, job models.Job) (err error) {
	done := s.track(ctx, "save-job")
	defer func() { done(err) }()

	result, verr := validation.Validate(job, jobSchema)
	if verr != nil {
		return errors.NewValidationFailedError(verr.Error())
	}
	if !result.Valid {
		return errors.NewValidationFailedError(result.ErrorDetails())
	}

	err = s.jobs.Save(ctx, job)
	return err
}

// DeleteJob removes the posting. Applications against it are kept; listing
// layers filter the dangling references.
func (s *Service) DeleteJob(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}

// ==========================
// Application operations
// ==========================

func (s *Service) ListApplications(ctx context.Context) ([]models.Application, error) {
	return s.applications.List(ctx)
}

func (s *Service) ListStudentApplications(ctx context.Context, studentID string) ([]models.Application, error) {
	return s.applications.ListByStudent(ctx, studentID)
}

func (s *Service) ListJobApplications(ctx context.Context, jobID string) ([]models.Application, error) {
	return s.applications.ListByJob(ctx, jobID)
}

// SaveApplication upserts a caller-built application record verbatim.
func (s *Service) SaveApplication(ctx context.Context, app models.Application) error {
	return s.applications.Save(ctx, app)
}

// Apply creates a pending application for a student against an active job,
// scoring the pair at creation time. The application and any related job
// update are separate writes; there is no cross-collection atomicity.
func (s *Service) Apply(ctx context.Context, studentID, jobID string) (app *models.Application, err error) {
	done := s.track(ctx, "apply")
	defer func() { done(err) }()

	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.NewNotFoundError("job", "jobId: "+jobID)
	}
	if !job.IsActive() {
		return nil, errors.NewValidationFailedError("job is not active: " + jobID)
	}

	profile, err := s.profiles.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("profile", "identityId: "+studentID)
	}

	created := models.Application{
		ID:        uuid.NewString(),
		JobID:     job.ID,
		StudentID: studentID,
		CompanyID: job.CompanyID,
		Status:    models.ApplicationStatusPending,
		AppliedAt: time.Now().UTC(),
		Messages:  []models.Message{},
		AIScore:   s.scorer.Score(profile, job),
	}

	if err = s.applications.Save(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) AcceptApplication(ctx context.Context, id string) (app *models.Application, err error) {
	done := s.track(ctx, "accept-application")
	defer func() { done(err) }()
	app, err = s.applications.Accept(ctx, id)
	return app, err
}

func (s *Service) RejectApplication(ctx context.Context, id string) (app *models.Application, err error) {
	done := s.track(ctx, "reject-application")
	defer func() { done(err) }()
	app, err = s.applications.Reject(ctx, id)
	return app, err
}

// ==========================
// Matching
// ==========================

// ScoreMatch computes the compatibility score for a stored student profile
// and job.
func (s *Service) ScoreMatch(ctx context.Context, studentID, jobID string) (int, error) {
	profile, err := s.profiles.Get(ctx, studentID)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 0, errors.NewNotFoundError("profile", "identityId: "+studentID)
	}

	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return 0, err
	}
	if job == nil {
		return 0, errors.NewNotFoundError("job", "jobId: "+jobID)
	}

	return s.scorer.Score(profile, job), nil
}
