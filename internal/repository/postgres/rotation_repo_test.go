package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/repository"
	"github.com/dom/league-profile-gateway/internal/repository/postgres"
	"github.com/dom/league-profile-gateway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationCacheRepository_GetMissing(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRotationCacheRepository(testDB.DB, "cache/champion_rotation.json")

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestRotationCacheRepository_PutOverwrites(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRotationCacheRepository(testDB.DB, "cache/champion_rotation.json")
	ctx := context.Background()

	first := domain.NewRotationDocument(time.Unix(1730000000, 0), []domain.Champion{
		{ID: 11, Name: "Master Yi"},
	})
	require.NoError(t, repo.Put(ctx, first))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1730000000), got.Timestamp)
	assert.Equal(t, first.FreeChampions, got.FreeChampions)

	second := domain.NewRotationDocument(time.Unix(1730600000, 0), []domain.Champion{
		{ID: 103, Name: "Ahri"},
		{ID: 238, Name: "Zed"},
	})
	require.NoError(t, repo.Put(ctx, second))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1730600000), got.Timestamp)
	assert.Len(t, got.FreeChampions, 2)
	assert.Equal(t, "Zed", got.FreeChampions[1].Name)

	var rows int64
	require.NoError(t, testDB.DB.Model(&postgres.RotationCacheEntry{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestRotationCacheRepository_KeysAreIndependent(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ctx := context.Background()
	br := postgres.NewRotationCacheRepository(testDB.DB, "br1")
	na := postgres.NewRotationCacheRepository(testDB.DB, "na1")

	require.NoError(t, br.Put(ctx, domain.NewRotationDocument(time.Now(), []domain.Champion{{ID: 1, Name: "Annie"}})))

	_, err := na.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}
