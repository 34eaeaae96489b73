package s3_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/repository"
	"github.com/dom/league-profile-gateway/internal/repository/s3"
	"github.com/dom/league-profile-gateway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, store *testutil.FakeS3) repository.RotationCacheRepository {
	t.Helper()

	client, err := s3.NewClient(context.Background(), s3.ClientOptions{
		Region:      "us-east-1",
		Endpoint:    store.URL(),
		Credentials: credentials.NewStaticCredentialsProvider("test", "test", ""),
	})
	require.NoError(t, err)

	return s3.NewRotationCacheRepository(client, "rotation-bucket", "cache/champion_rotation.json")
}

func TestRotationCacheRepository_GetMissing(t *testing.T) {
	store := testutil.NewFakeS3(t)
	repo := newRepo(t, store)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestRotationCacheRepository_PutThenGet(t *testing.T) {
	store := testutil.NewFakeS3(t)
	repo := newRepo(t, store)
	ctx := context.Background()

	doc := domain.NewRotationDocument(time.Unix(1730000000, 0), []domain.Champion{
		{ID: 11, Name: "Master Yi"},
		{ID: 103, Name: "Ahri"},
	})
	require.NoError(t, repo.Put(ctx, doc))

	stored, ok := store.Object("rotation-bucket", "cache/champion_rotation.json")
	require.True(t, ok)
	assert.JSONEq(t, `{"timestamp":1730000000,"freeChampions":[{"id":11,"name":"Master Yi"},{"id":103,"name":"Ahri"}]}`, string(stored.Body))
	assert.Equal(t, "application/json", stored.ContentType)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestRotationCacheRepository_ReadsDocumentWrittenElsewhere(t *testing.T) {
	store := testutil.NewFakeS3(t)
	store.PutObject("rotation-bucket", "cache/champion_rotation.json",
		[]byte(`{"timestamp": 1730000000, "freeChampions": [{"id": 1, "name": "Annie"}]}`))
	repo := newRepo(t, store)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1730000000), got.Timestamp)
	assert.Equal(t, []domain.Champion{{ID: 1, Name: "Annie"}}, got.FreeChampions)
}

func TestRotationCacheRepository_CorruptDocument(t *testing.T) {
	store := testutil.NewFakeS3(t)
	store.PutObject("rotation-bucket", "cache/champion_rotation.json", []byte(`not json`))
	repo := newRepo(t, store)

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)
}

func TestRotationCacheRepository_StoreFailure(t *testing.T) {
	store := testutil.NewFakeS3(t)
	store.FailWith(http.StatusInternalServerError)
	repo := newRepo(t, store)

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)
}
