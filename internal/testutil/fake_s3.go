package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// StoredObject is an object held by FakeS3
type StoredObject struct {
	Body        []byte
	ContentType string
}

// FakeS3 is a path-style S3 endpoint supporting GetObject and PutObject.
type FakeS3 struct {
	server *httptest.Server

	mu      sync.Mutex
	objects map[string]StoredObject
	status  int
}

func NewFakeS3(t *testing.T) *FakeS3 {
	t.Helper()

	f := &FakeS3{objects: make(map[string]StoredObject)}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)

	return f
}

func (f *FakeS3) URL() string {
	return f.server.URL
}

// PutObject stores an object directly
func (f *FakeS3) PutObject(bucket, key string, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[bucket+"/"+key] = StoredObject{Body: body, ContentType: "application/json"}
}

// Object returns a stored object
func (f *FakeS3) Object(bucket, key string) (StoredObject, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[bucket+"/"+key]
	return obj, ok
}

// FailWith makes every request answer with status
func (f *FakeS3) FailWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

func (f *FakeS3) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	status := f.status
	f.mu.Unlock()
	if status != 0 {
		writeS3Error(w, status, "InternalError", "injected failure")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/")

	switch r.Method {
	case http.MethodGet:
		obj, ok := f.objectAt(path)
		if !ok {
			writeS3Error(w, http.StatusNotFound, "NoSuchKey", "The specified key does not exist.")
			return
		}
		w.Header().Set("Content-Type", obj.ContentType)
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(obj.Body)))
		w.WriteHeader(http.StatusOK)
		w.Write(obj.Body)

	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeS3Error(w, http.StatusBadRequest, "IncompleteBody", err.Error())
			return
		}
		f.mu.Lock()
		f.objects[path] = StoredObject{Body: body, ContentType: r.Header.Get("Content-Type")}
		f.mu.Unlock()
		w.Header().Set("ETag", `"fake-etag"`)
		w.WriteHeader(http.StatusOK)

	default:
		writeS3Error(w, http.StatusMethodNotAllowed, "MethodNotAllowed", "method not allowed")
	}
}

func (f *FakeS3) objectAt(path string) (StoredObject, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[path]
	return obj, ok
}

func writeS3Error(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message></Error>`, code, message)
}
