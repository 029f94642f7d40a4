// Package registrytest provides an in-process fake npm registry for tests.
//
//	reg := registrytest.New(t)
//	reg.AddPackage("lodash", map[string]string{"4.17.21": "2021-02-20T15:42:16.891Z"})
//	client := npm.NewClient(reg.URL())
//
// Packages are served at both /<name> and, for scoped names, at
// /@scope%2Fname and /@scope/name, matching what the real registry accepts.
package registrytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Registry is a fake npm registry backed by an httptest.Server.
type Registry struct {
	server *httptest.Server

	mu       sync.Mutex
	docs     map[string][]byte
	statuses map[string]int
	requests []string
}

// New starts a fake registry that is shut down when the test ends.
func New(t testing.TB) *Registry {
	t.Helper()
	reg := &Registry{
		docs:     make(map[string][]byte),
		statuses: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Get("/{name}", reg.handlePackage)
	r.Get("/{scope}/{name}", reg.handlePackage)

	reg.server = httptest.NewServer(r)
	t.Cleanup(reg.server.Close)
	return reg
}

// URL returns the registry base URL.
func (r *Registry) URL() string { return r.server.URL }

// AddPackage serves a document whose "time" object is times.
func (r *Registry) AddPackage(name string, times map[string]string) {
	doc, _ := json.Marshal(map[string]any{"name": name, "time": times})
	r.AddRaw(name, doc)
}

// AddRaw serves body verbatim as the document for name.
func (r *Registry) AddRaw(name string, body []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[name] = body
}

// Fail makes every request for name answer with status.
func (r *Registry) Fail(name string, status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[name] = status
}

// Requests returns the package names requested so far, in order.
func (r *Registry) Requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.requests...)
}

func (r *Registry) handlePackage(w http.ResponseWriter, req *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(req, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if scope := chi.URLParam(req, "scope"); scope != "" {
		name = scope + "/" + name
	}

	r.mu.Lock()
	r.requests = append(r.requests, name)
	status, failing := r.statuses[name]
	doc, ok := r.docs[name]
	r.mu.Unlock()

	switch {
	case failing:
		http.Error(w, http.StatusText(status), status)
	case !ok:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`))
	default:
		w.Header().Set("Content-Type", "application/json")
		w.Write(doc)
	}
}
