package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/dom/league-profile-gateway/internal/riot"
	"github.com/go-chi/chi/v5"
)

// Endpoint names accepted by FakeRiot.FailEndpoint
const (
	EndpointAccount   = "account"
	EndpointLeague    = "league"
	EndpointMastery   = "mastery"
	EndpointMatchIDs  = "match-ids"
	EndpointMatch     = "match"
	EndpointSpectator = "spectator"
	EndpointRotation  = "rotation"
)

type cannedResponse struct {
	status int
	body   string
}

// FakeRiot serves the Riot endpoints this service calls from in-memory data.
// Platform endpoints live under /platform and routing endpoints under /routing.
type FakeRiot struct {
	server *httptest.Server

	mu          sync.Mutex
	accounts    map[string]riot.Account
	leagues     map[string][]riot.LeagueEntry
	masteries   map[string][]riot.ChampionMastery
	matchIDs    map[string][]string
	matches     map[string]riot.Match
	matchFails  map[string]cannedResponse
	activeGames map[string]riot.ActiveGame
	rotation    *riot.ChampionRotation
	failures    map[string]cannedResponse
	requests    []string
}

func NewFakeRiot(t *testing.T) *FakeRiot {
	t.Helper()

	f := &FakeRiot{
		accounts:    make(map[string]riot.Account),
		leagues:     make(map[string][]riot.LeagueEntry),
		masteries:   make(map[string][]riot.ChampionMastery),
		matchIDs:    make(map[string][]string),
		matches:     make(map[string]riot.Match),
		matchFails:  make(map[string]cannedResponse),
		activeGames: make(map[string]riot.ActiveGame),
		failures:    make(map[string]cannedResponse),
	}

	r := chi.NewRouter()
	r.Use(f.recordAndAuthorize)
	r.Get("/routing/riot/account/v1/accounts/by-riot-id/{gameName}/{tagLine}", f.handleAccount)
	r.Get("/platform/lol/league/v4/entries/by-puuid/{puuid}", f.handleLeague)
	r.Get("/platform/lol/champion-mastery/v4/champion-masteries/by-puuid/{puuid}", f.handleMastery)
	r.Get("/routing/lol/match/v5/matches/by-puuid/{puuid}/ids", f.handleMatchIDs)
	r.Get("/routing/lol/match/v5/matches/{matchId}", f.handleMatch)
	r.Get("/platform/lol/spectator/v5/active-games/by-summoner/{puuid}", f.handleSpectator)
	r.Get("/platform/lol/platform/v3/champion-rotations", f.handleRotation)

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)

	return f
}

func (f *FakeRiot) PlatformURL() string {
	return f.server.URL + "/platform"
}

func (f *FakeRiot) RoutingURL() string {
	return f.server.URL + "/routing"
}

// Close stops the server so later calls fail at the transport level
func (f *FakeRiot) Close() {
	f.server.Close()
}

// AddAccount registers a Riot ID
func (f *FakeRiot) AddAccount(account riot.Account) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[accountKey(account.GameName, account.TagLine)] = account
}

func (f *FakeRiot) SetLeagueEntries(puuid string, entries []riot.LeagueEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leagues[puuid] = entries
}

func (f *FakeRiot) SetMasteries(puuid string, masteries []riot.ChampionMastery) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.masteries[puuid] = masteries
}

// AddMatch appends match to the player's history, most recent last
func (f *FakeRiot) AddMatch(puuid string, match riot.Match) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matchIDs[puuid] = append(f.matchIDs[puuid], match.Metadata.MatchID)
	f.matches[match.Metadata.MatchID] = match
}

// FailMatch makes the detail call for matchID answer with status
func (f *FakeRiot) FailMatch(matchID string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matchFails[matchID] = cannedResponse{status: status, body: riotErrorBody(status, "match unavailable")}
}

func (f *FakeRiot) SetActiveGame(puuid string, game riot.ActiveGame) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activeGames[puuid] = game
}

func (f *FakeRiot) SetRotation(freeChampionIDs ...int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rotation = &riot.ChampionRotation{
		FreeChampionIDs:              freeChampionIDs,
		FreeChampionIDsForNewPlayers: []int{},
		MaxNewPlayerLevel:            10,
	}
}

// FailEndpoint makes every call to endpoint answer with status and body
func (f *FakeRiot) FailEndpoint(endpoint string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[endpoint] = cannedResponse{status: status, body: body}
}

// Requests returns the request URIs received so far
func (f *FakeRiot) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// CountRequests returns how many requests had a path containing fragment
func (f *FakeRiot) CountRequests(fragment string) int {
	count := 0
	for _, uri := range f.Requests() {
		if strings.Contains(uri, fragment) {
			count++
		}
	}
	return count
}

func (f *FakeRiot) recordAndAuthorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.RequestURI())
		f.mu.Unlock()

		if r.Header.Get(riot.TokenHeader) != TestRiotAPIKey {
			writeRaw(w, http.StatusUnauthorized, riotErrorBody(http.StatusUnauthorized, "Unauthorized"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeRiot) failure(endpoint string) (cannedResponse, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resp, ok := f.failures[endpoint]
	return resp, ok
}

func (f *FakeRiot) handleAccount(w http.ResponseWriter, r *http.Request) {
	if resp, ok := f.failure(EndpointAccount); ok {
		writeRaw(w, resp.status, resp.body)
		return
	}

	f.mu.Lock()
	account, ok := f.accounts[accountKey(decodedParam(r, "gameName"), decodedParam(r, "tagLine"))]
	f.mu.Unlock()
	if !ok {
		writeNotFound(w)
		return
	}
	writeJSON(w, account)
}

// decodedParam undoes the escaping chi leaves in place when RawPath is set.
func decodedParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

func (f *FakeRiot) handleLeague(w http.ResponseWriter, r *http.Request) {
	if resp, ok := f.failure(EndpointLeague); ok {
		writeRaw(w, resp.status, resp.body)
		return
	}

	f.mu.Lock()
	entries := f.leagues[chi.URLParam(r, "puuid")]
	f.mu.Unlock()
	if entries == nil {
		entries = []riot.LeagueEntry{}
	}
	writeJSON(w, entries)
}

func (f *FakeRiot) handleMastery(w http.ResponseWriter, r *http.Request) {
	if resp, ok := f.failure(EndpointMastery); ok {
		writeRaw(w, resp.status, resp.body)
		return
	}

	f.mu.Lock()
	masteries := f.masteries[chi.URLParam(r, "puuid")]
	f.mu.Unlock()
	if masteries == nil {
		masteries = []riot.ChampionMastery{}
	}
	writeJSON(w, masteries)
}

func (f *FakeRiot) handleMatchIDs(w http.ResponseWriter, r *http.Request) {
	if resp, ok := f.failure(EndpointMatchIDs); ok {
		writeRaw(w, resp.status, resp.body)
		return
	}

	f.mu.Lock()
	all := f.matchIDs[chi.URLParam(r, "puuid")]
	f.mu.Unlock()

	// Riot lists the most recent match first.
	ids := make([]string, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		ids = append(ids, all[i])
	}

	count := len(ids)
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 100 {
			writeRaw(w, http.StatusBadRequest, riotErrorBody(http.StatusBadRequest, "Bad Request - invalid count"))
			return
		}
		count = parsed
	}
	if count < len(ids) {
		ids = ids[:count]
	}
	writeJSON(w, ids)
}

func (f *FakeRiot) handleMatch(w http.ResponseWriter, r *http.Request) {
	if resp, ok := f.failure(EndpointMatch); ok {
		writeRaw(w, resp.status, resp.body)
		return
	}

	matchID := chi.URLParam(r, "matchId")
	f.mu.Lock()
	failure, failed := f.matchFails[matchID]
	match, ok := f.matches[matchID]
	f.mu.Unlock()

	if failed {
		writeRaw(w, failure.status, failure.body)
		return
	}
	if !ok {
		writeNotFound(w)
		return
	}
	writeJSON(w, match)
}

func (f *FakeRiot) handleSpectator(w http.ResponseWriter, r *http.Request) {
	if resp, ok := f.failure(EndpointSpectator); ok {
		writeRaw(w, resp.status, resp.body)
		return
	}

	f.mu.Lock()
	game, ok := f.activeGames[chi.URLParam(r, "puuid")]
	f.mu.Unlock()
	if !ok {
		writeNotFound(w)
		return
	}
	writeJSON(w, game)
}

func (f *FakeRiot) handleRotation(w http.ResponseWriter, r *http.Request) {
	if resp, ok := f.failure(EndpointRotation); ok {
		writeRaw(w, resp.status, resp.body)
		return
	}

	f.mu.Lock()
	rotation := f.rotation
	f.mu.Unlock()
	if rotation == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, rotation)
}

func accountKey(gameName, tagLine string) string {
	return strings.ToLower(gameName) + "#" + strings.ToLower(tagLine)
}

// riotErrorBody renders the error envelope Riot uses
func riotErrorBody(status int, message string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"status": map[string]interface{}{
			"message":     message,
			"status_code": status,
		},
	})
	return string(body)
}

func writeNotFound(w http.ResponseWriter) {
	writeRaw(w, http.StatusNotFound, riotErrorBody(http.StatusNotFound, "Data not found"))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
