package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RotationResponse struct {
	Source        string             `json:"source"`
	FreeChampions []ChampionResponse `json:"freeChampions"`
}

const day = 24 * time.Hour

func seedRotation(fr *testutil.FakeRiot, dd *testutil.FakeDataDragon) {
	testutil.SeedStandardChampions(dd)
	fr.SetRotation(103, 157, 9999)
}

var cachedChampions = []domain.Champion{{ID: 238, Name: "Zed"}, {ID: 222, Name: "Jinx"}}

func TestRotationHandler_Get(t *testing.T) {
	live := []ChampionResponse{{ID: 103, Name: "Ahri"}, {ID: 157, Name: "Yasuo"}, {ID: 9999, Name: "Unknown"}}
	cached := []ChampionResponse{{ID: 238, Name: "Zed"}, {ID: 222, Name: "Jinx"}}

	tests := []struct {
		name             string
		withCache        bool
		setup            func(*testing.T, *testutil.TestServer)
		expectedSource   string
		expectedChamps   []ChampionResponse
		expectedRotation int
	}{
		{
			name:             "no cache configured",
			expectedSource:   "riot",
			expectedChamps:   live,
			expectedRotation: 1,
		},
		{
			name:             "empty cache",
			withCache:        true,
			expectedSource:   "riot",
			expectedChamps:   live,
			expectedRotation: 1,
		},
		{
			name:      "document one day old is served",
			withCache: true,
			setup: func(t *testing.T, ts *testutil.TestServer) {
				ts.SeedRotationCache(t, day, cachedChampions)
			},
			expectedSource:   "cache",
			expectedChamps:   cached,
			expectedRotation: 0,
		},
		{
			name:      "document exactly seven days old is served",
			withCache: true,
			setup: func(t *testing.T, ts *testutil.TestServer) {
				ts.SeedRotationCache(t, 7*day, cachedChampions)
			},
			expectedSource:   "cache",
			expectedChamps:   cached,
			expectedRotation: 0,
		},
		{
			name:      "document eight days old is ignored",
			withCache: true,
			setup: func(t *testing.T, ts *testutil.TestServer) {
				ts.SeedRotationCache(t, 8*day, cachedChampions)
			},
			expectedSource:   "riot",
			expectedChamps:   live,
			expectedRotation: 1,
		},
		{
			name:      "unreadable cache falls back to riot",
			withCache: true,
			setup: func(t *testing.T, ts *testutil.TestServer) {
				ts.Cache.FailWith(errors.New("access denied"))
			},
			expectedSource:   "riot",
			expectedChamps:   live,
			expectedRotation: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []testutil.TestServerOption
			if tt.withCache {
				opts = append(opts, testutil.WithRotationCache())
			}
			ts := testutil.NewTestServer(t, seedRotation, opts...)
			if tt.setup != nil {
				tt.setup(t, ts)
			}

			resp, err := http.Get(ts.APIURL("/champions/rotation"))
			require.NoError(t, err)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, http.StatusOK)

			var result RotationResponse
			testutil.AssertJSONResponse(t, resp, &result)
			assert.Equal(t, tt.expectedSource, result.Source)
			assert.Equal(t, tt.expectedChamps, result.FreeChampions)
			assert.Equal(t, tt.expectedRotation, ts.Riot.CountRequests("/champion-rotations"))

			if ts.Cache != nil {
				assert.Zero(t, ts.Cache.Writes(), "read path must not write the cache")
			}
		})
	}
}

func TestRotationHandler_Get_StaleDocumentIsKept(t *testing.T) {
	ts := testutil.NewTestServer(t, seedRotation, testutil.WithRotationCache())
	ts.SeedRotationCache(t, 30*day, cachedChampions)
	before := ts.Cache.Document()

	resp, err := http.Get(ts.APIURL("/champions/rotation"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
	assert.Same(t, before, ts.Cache.Document())
}

func TestRotationHandler_Get_RelaysUpstreamError(t *testing.T) {
	ts := testutil.NewTestServer(t, func(fr *testutil.FakeRiot, dd *testutil.FakeDataDragon) {
		fr.FailEndpoint(testutil.EndpointRotation, http.StatusUnauthorized, `{"status":{"message":"Unauthorized","status_code":401}}`)
	})

	resp, err := http.Get(ts.APIURL("/champions/rotation"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	testutil.AssertJSONBody(t, resp, `{"status":{"message":"Unauthorized","status_code":401}}`)
}
