package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// FakeDataDragon serves versions.json and champion.json.
type FakeDataDragon struct {
	server *httptest.Server

	mu        sync.Mutex
	versions  []string
	champions map[string]map[string]interface{}
	failing   bool
	requests  int
}

func NewFakeDataDragon(t *testing.T) *FakeDataDragon {
	t.Helper()

	f := &FakeDataDragon{
		versions:  []string{"14.1.1", "13.24.1"},
		champions: make(map[string]map[string]interface{}),
	}

	r := chi.NewRouter()
	r.Get("/api/versions.json", f.handleVersions)
	r.Get("/cdn/{version}/data/en_US/champion.json", f.handleChampions)

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)

	return f
}

func (f *FakeDataDragon) URL() string {
	return f.server.URL
}

// SetVersions replaces the published versions, newest first
func (f *FakeDataDragon) SetVersions(versions ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.versions = versions
}

// AddChampion publishes a champion under its numeric key
func (f *FakeDataDragon) AddChampion(key int, name string) {
	f.AddRawChampion(name, strconv.Itoa(key), name)
}

// AddRawChampion publishes a champion entry with an arbitrary key string
func (f *FakeDataDragon) AddRawChampion(id, key, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.champions[id] = map[string]interface{}{
		"id":    id,
		"key":   key,
		"name":  name,
		"title": "the " + name,
	}
}

// Fail makes every request answer with 503
func (f *FakeDataDragon) Fail() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = true
}

func (f *FakeDataDragon) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *FakeDataDragon) handleVersions(w http.ResponseWriter, r *http.Request) {
	if f.begin(w) {
		return
	}

	f.mu.Lock()
	versions := f.versions
	f.mu.Unlock()
	writeJSON(w, versions)
}

func (f *FakeDataDragon) handleChampions(w http.ResponseWriter, r *http.Request) {
	if f.begin(w) {
		return
	}

	version := chi.URLParam(r, "version")
	f.mu.Lock()
	data := make(map[string]interface{}, len(f.champions))
	for id, champion := range f.champions {
		data[id] = champion
	}
	f.mu.Unlock()

	writeJSON(w, map[string]interface{}{
		"type":    "champion",
		"format":  "standAloneComplex",
		"version": version,
		"data":    data,
	})
}

// begin counts the request and writes the failure response when failing
func (f *FakeDataDragon) begin(w http.ResponseWriter) bool {
	f.mu.Lock()
	f.requests++
	failing := f.failing
	f.mu.Unlock()

	if failing {
		http.Error(w, fmt.Sprintf("%d service unavailable", http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return true
	}
	return false
}
