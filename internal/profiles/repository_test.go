package profiles

import (
	"context"
	"testing"

	"internboard/internal/common/logger"
	"internboard/internal/models"
	"internboard/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) *Repository {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := logger.NewTestLogger(t)
	return NewRepository(store.New(client, "internship", log), log)
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	profile := models.Profile{
		Identity: models.Identity{ID: "student-1", Email: "s@example.com", Role: models.RoleStudent},
		Skills:   []string{"go", "sql"},
		Location: "Austin",
		Preferences: &models.Preferences{
			JobTypes:  []string{"Full-time"},
			Locations: []string{"Remote"},
		},
	}
	require.NoError(t, repo.Save(ctx, profile))

	got, err := repo.Get(ctx, "student-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"go", "sql"}, got.Skills)
	require.NotNil(t, got.Preferences)
	assert.Equal(t, []string{"Remote"}, got.Preferences.Locations)
	assert.True(t, got.IsStudent())
}

func TestRepository_Get_Missing(t *testing.T) {
	repo := setupRepository(t)

	got, err := repo.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_Save_Overwrites(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	profile := models.Profile{
		Identity: models.Identity{ID: "student-1", Role: models.RoleStudent},
		Skills:   []string{"go"},
	}
	require.NoError(t, repo.Save(ctx, profile))

	profile.Skills = []string{"go", "redis"}
	profile.Bio = "updated"
	require.NoError(t, repo.Save(ctx, profile))

	got, err := repo.Get(ctx, "student-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"go", "redis"}, got.Skills)
	assert.Equal(t, "updated", got.Bio)
}
