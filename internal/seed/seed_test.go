package seed

import (
	"context"
	"testing"
	"time"

	"internboard/internal/applications"
	"internboard/internal/board"
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

func setupSeeder(t *testing.T) (*Seeder, *board.Service) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := logger.NewTestLogger(t)
	st := store.New(client, "internship", log)
	profileRepo := profiles.NewRepository(st, log)

	svc := board.New(board.Dependencies{
		Registry:     registry.New(st, profileRepo, log),
		Profiles:     profileRepo,
		Jobs:         jobs.NewRepository(st, log),
		Applications: applications.NewRepository(st, log),
		Scorer:       match.NewScorer(match.NewNoise(1), log),
		Logger:       log,
	})
	return New(svc, log), svc
}

func TestSeeder_Run(t *testing.T) {
	seeder, svc := setupSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	all, err := svc.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "job-1", all[0].ID)

	// Every demo posting is active and passes the save-job schema.
	for _, job := range all {
		assert.Equal(t, models.JobStatusActive, job.Status)
		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.Requirements)
	}
}

func TestSeeder_Run_SkipsWhenJobsExist(t *testing.T) {
	seeder, svc := setupSeeder(t)
	ctx := context.Background()

	existing := models.Job{
		ID:        "job-existing",
		CompanyID: "company-1",
		Title:     "Already Here",
		PostedAt:  time.Now().UTC(),
		Status:    models.JobStatusActive,
	}
	require.NoError(t, svc.SaveJob(ctx, existing))

	require.NoError(t, seeder.Run(ctx))

	all, err := svc.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "job-existing", all[0].ID)
}

func TestSeeder_Run_IsIdempotent(t *testing.T) {
	seeder, svc := setupSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	all, err := svc.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestSampleJobs_OffsetsRelativeToNow(t *testing.T) {
	now := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	sample := SampleJobs(now)
	require.Len(t, sample, 6)
	assert.True(t, sample[0].PostedAt.Equal(now.Add(-48*time.Hour)))
	assert.True(t, sample[2].PostedAt.Equal(now.Add(-24*time.Hour)))
}
