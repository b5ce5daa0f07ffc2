package board

import (
	"context"
	"testing"
	"time"

	"internboard/internal/applications"
	"internboard/internal/common/errors"
	"internboard/internal/common/logger"
	"internboard/internal/jobs"
	"internboard/internal/match"
	"internboard/internal/models"
	"internboard/internal/profiles"
	"internboard/internal/registry"
	"internboard/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

// zeroNoise removes the random score component so assertions are exact.
type zeroNoise struct{}

func (zeroNoise) Float64() float64 { return 0 }

func setupService(t *testing.T) *Service {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := logger.NewTestLogger(t)
	st := store.New(client, "internship", log)
	profileRepo := profiles.NewRepository(st, log)

	return New(Dependencies{
		Registry:     registry.New(st, profileRepo, log),
		Profiles:     profileRepo,
		Jobs:         jobs.NewRepository(st, log),
		Applications: applications.NewRepository(st, log),
		Scorer:       match.NewScorer(zeroNoise{}, log),
		Logger:       log,
	})
}

func registerStudent(t *testing.T, svc *Service, email string) *models.Identity {
	identity, err := svc.Register(context.Background(), registry.RegisterInput{
		Email: email,
		Name:  "Alex Chen",
		Role:  models.RoleStudent,
		Student: &registry.StudentFields{
			Skills:   []string{"react", "python"},
			Location: "Austin",
		},
	})
	require.NoError(t, err)
	return identity
}

func registerCompany(t *testing.T, svc *Service, email string) *models.Identity {
	identity, err := svc.Register(context.Background(), registry.RegisterInput{
		Email:   email,
		Name:    "Acme Corp",
		Role:    models.RoleCompany,
		Company: &registry.CompanyFields{Industry: "Software", Location: "Austin, TX"},
	})
	require.NoError(t, err)
	return identity
}

func activeJob(companyID string) models.Job {
	return models.Job{
		ID:           "job-1",
		CompanyID:    companyID,
		Title:        "Backend Intern",
		Requirements: []string{"React", "SQL"},
		Location:     "Austin, TX",
		Type:         "Full-time",
		PostedAt:     time.Now().UTC(),
		Status:       models.JobStatusActive,
	}
}

// ==========================
// End-to-End Scenario
// ==========================

func TestService_ApplicationLifecycle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	company := registerCompany(t, svc, "hr@acme.example.com")
	require.NoError(t, svc.SaveJob(ctx, activeJob(company.ID)))

	student := registerStudent(t, svc, "alex@example.com")
	assert.Equal(t, student.ID, svc.CurrentIdentity(ctx).ID)

	app, err := svc.Apply(ctx, student.ID, "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, company.ID, app.CompanyID)
	assert.NotEmpty(t, app.ID)
	// One of two requirements matched (20) plus location substring (30).
	assert.Equal(t, 50, app.AIScore)

	mine, err := svc.ListStudentApplications(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	forJob, err := svc.ListJobApplications(ctx, "job-1")
	require.NoError(t, err)
	require.Len(t, forJob, 1)

	accepted, err := svc.AcceptApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, accepted.Status)

	_, err = svc.RejectApplication(ctx, app.ID)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStatusTransition))

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, svc.CurrentIdentity(ctx))
}

// ==========================
// Register / Login Tests
// ==========================

func TestService_Register_ValidationFailures(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input registry.RegisterInput
	}{
		{"missing email", registry.RegisterInput{Name: "No Email", Role: models.RoleStudent}},
		{"malformed email", registry.RegisterInput{Email: "not an email", Name: "Bad", Role: models.RoleStudent}},
		{"missing name", registry.RegisterInput{Email: "a@example.com", Role: models.RoleStudent}},
		{"unknown role", registry.RegisterInput{Email: "a@example.com", Name: "A", Role: models.Role("admin")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeValidationFailed))
		})
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc := setupService(t)

	registerStudent(t, svc, "alex@example.com")

	_, err := svc.Register(context.Background(), registry.RegisterInput{
		Email: "alex@example.com",
		Name:  "Someone Else",
		Role:  models.RoleCompany,
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDuplicateEmail))
}

func TestService_Login(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	student := registerStudent(t, svc, "alex@example.com")
	require.NoError(t, svc.Logout(ctx))

	identity, err := svc.Login(ctx, "alex@example.com", "any")
	require.NoError(t, err)
	assert.Equal(t, student.ID, identity.ID)

	_, err = svc.Login(ctx, "stranger@example.com", "any")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

// ==========================
// Job Tests
// ==========================

func TestService_SaveJob_SchemaFailures(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		job  models.Job
	}{
		{"missing id", models.Job{CompanyID: "c", Title: "T", Status: models.JobStatusActive}},
		{"missing title", models.Job{ID: "j", CompanyID: "c", Status: models.JobStatusActive}},
		{"bad status", models.Job{ID: "j", CompanyID: "c", Title: "T", Status: models.JobStatus("paused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SaveJob(ctx, tt.job)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeValidationFailed))
		})
	}
}

func TestService_DeleteJob_KeepsApplications(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	company := registerCompany(t, svc, "hr@acme.example.com")
	require.NoError(t, svc.SaveJob(ctx, activeJob(company.ID)))
	student := registerStudent(t, svc, "alex@example.com")

	app, err := svc.Apply(ctx, student.ID, "job-1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteJob(ctx, "job-1"))

	gone, err := svc.GetJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// The application survives with a dangling jobId.
	kept, err := svc.ListJobApplications(ctx, "job-1")
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, app.ID, kept[0].ID)
}

func TestService_ListActiveJobs(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	company := registerCompany(t, svc, "hr@acme.example.com")

	open := activeJob(company.ID)
	require.NoError(t, svc.SaveJob(ctx, open))

	closed := activeJob(company.ID)
	closed.ID = "job-2"
	closed.Status = models.JobStatusClosed
	require.NoError(t, svc.SaveJob(ctx, closed))

	active, err := svc.ListActiveJobs(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "job-1", active[0].ID)

	all, err := svc.ListCompanyJobs(ctx, company.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// ==========================
// Apply Edge Cases
// ==========================

func TestService_Apply_UnknownJob(t *testing.T) {
	svc := setupService(t)
	student := registerStudent(t, svc, "alex@example.com")

	_, err := svc.Apply(context.Background(), student.ID, "job-404")

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestService_Apply_ClosedJob(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	company := registerCompany(t, svc, "hr@acme.example.com")
	job := activeJob(company.ID)
	job.Status = models.JobStatusClosed
	require.NoError(t, svc.SaveJob(ctx, job))

	student := registerStudent(t, svc, "alex@example.com")

	_, err := svc.Apply(ctx, student.ID, job.ID)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidationFailed))
}

func TestService_Apply_MissingProfile(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	company := registerCompany(t, svc, "hr@acme.example.com")
	require.NoError(t, svc.SaveJob(ctx, activeJob(company.ID)))

	_, err := svc.Apply(ctx, "student-404", "job-1")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestService_Apply_TwiceCreatesTwoApplications(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	company := registerCompany(t, svc, "hr@acme.example.com")
	require.NoError(t, svc.SaveJob(ctx, activeJob(company.ID)))
	student := registerStudent(t, svc, "alex@example.com")

	first, err := svc.Apply(ctx, student.ID, "job-1")
	require.NoError(t, err)
	second, err := svc.Apply(ctx, student.ID, "job-1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	mine, err := svc.ListStudentApplications(ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

// ==========================
// Matching Tests
// ==========================

func TestService_ScoreMatch(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	company := registerCompany(t, svc, "hr@acme.example.com")
	require.NoError(t, svc.SaveJob(ctx, activeJob(company.ID)))
	student := registerStudent(t, svc, "alex@example.com")

	score, err := svc.ScoreMatch(ctx, student.ID, "job-1")
	require.NoError(t, err)
	assert.Equal(t, 50, score)

	_, err = svc.ScoreMatch(ctx, "student-404", "job-1")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))

	_, err = svc.ScoreMatch(ctx, student.ID, "job-404")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}
