package riot_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dom/league-profile-gateway/internal/riot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	endpoint string
	status   int
}

type fakeRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *fakeRecorder) RecordRiotRequest(endpoint string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, recordedRequest{endpoint: endpoint, status: status})
}

func newClient(t *testing.T, handler http.HandlerFunc, recorder riot.Recorder) *riot.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return riot.NewClient(riot.Options{
		APIKey:      "test-key",
		PlatformURL: server.URL + "/platform",
		RoutingURL:  server.URL + "/routing",
		Timeout:     time.Second,
		Recorder:    recorder,
	})
}

func TestClient_GetAttachesTokenAndRelaysBody(t *testing.T) {
	var gotToken, gotPath, gotQuery string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(riot.TokenHeader)
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"status":{"message":"short and stout"}}`))
	}, nil)

	resp, err := client.Get(context.Background(), riot.Routing, "/some/path", map[string][]string{"count": {"3"}})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotToken)
	assert.Equal(t, "/routing/some/path", gotPath)
	assert.Equal(t, "count=3", gotQuery)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.False(t, resp.OK())
	assert.JSONEq(t, `{"status":{"message":"short and stout"}}`, string(resp.Body))
}

func TestClient_PutEncodesJSON(t *testing.T) {
	var gotMethod, gotBody, gotContentType string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}, nil)

	resp, err := client.Put(context.Background(), riot.Platform, "/thing", map[string]int{"id": 7})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"id":7}`, gotBody)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestClient_AccountByRiotIDEscapesPath(t *testing.T) {
	var gotPath string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"puuid":"p-1","gameName":"Faker Fan","tagLine":"BR1"}`))
	}, nil)

	account, err := client.AccountByRiotID(context.Background(), "Faker Fan", "BR1")
	require.NoError(t, err)

	assert.Equal(t, "/routing/riot/account/v1/accounts/by-riot-id/Faker%20Fan/BR1", gotPath)
	assert.Equal(t, "p-1", account.PUUID)
	assert.Equal(t, "Faker Fan", account.GameName)
}

func TestClient_NonOKBecomesStatusError(t *testing.T) {
	recorder := &fakeRecorder{}
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":{"status_code":404}}`))
	}, recorder)

	_, err := client.ActiveGameByPUUID(context.Background(), "p-1")
	require.Error(t, err)

	assert.True(t, riot.IsNotFound(err))
	statusErr, ok := riot.AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.JSONEq(t, `{"status":{"status_code":404}}`, string(statusErr.Body))

	require.Len(t, recorder.requests, 1)
	assert.Equal(t, "spectator.active-game", recorder.requests[0].endpoint)
	assert.Equal(t, http.StatusNotFound, recorder.requests[0].status)
}

func TestClient_MatchIDsQuery(t *testing.T) {
	var gotQuery string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`["BR1_1","BR1_2"]`))
	}, nil)

	ids, err := client.MatchIDsByPUUID(context.Background(), "p-1", 2)
	require.NoError(t, err)

	assert.Equal(t, "count=2&start=0", gotQuery)
	assert.Equal(t, []string{"BR1_1", "BR1_2"}, ids)
}

func TestClient_TransportError(t *testing.T) {
	client := riot.NewClient(riot.Options{
		APIKey:      "test-key",
		PlatformURL: "http://127.0.0.1:1",
		RoutingURL:  "http://127.0.0.1:1",
		Timeout:     time.Second,
	})

	_, err := client.ChampionRotation(context.Background())
	require.Error(t, err)
	_, ok := riot.AsStatusError(err)
	assert.False(t, ok)
}

func TestStatusError_TruncatesBody(t *testing.T) {
	err := &riot.StatusError{StatusCode: 500, Body: []byte(strings.Repeat("x", 500))}

	assert.Equal(t, "riot API error 500: "+strings.Repeat("x", 200), err.Error())
}

func TestMatch_FindParticipant(t *testing.T) {
	match := &riot.Match{Info: riot.MatchInfo{Participants: []riot.Participant{
		{PUUID: "a", ChampionName: "Ahri"},
		{PUUID: "b", ChampionName: "Zed"},
	}}}

	require.NotNil(t, match.FindParticipant("b"))
	assert.Equal(t, "Zed", match.FindParticipant("b").ChampionName)
	assert.Nil(t, match.FindParticipant("c"))
}
