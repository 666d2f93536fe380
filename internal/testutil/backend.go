package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RecordedRequest is one call received by a BackendServer.
type RecordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	Body          []byte
}

// BackendServer is an httptest server standing in for the platform backend.
// Routes use http.ServeMux patterns ("GET /api/admin/users/").
type BackendServer struct {
	*httptest.Server
	mux *http.ServeMux

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewBackendServer starts a fake backend. Callers must Close it, or register t.Cleanup.
func NewBackendServer() *BackendServer {
	b := &BackendServer{mux: http.NewServeMux()}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	return b
}

// BaseURL is the API root to configure clients with.
func (b *BackendServer) BaseURL() string { return b.URL + "/api/" }

// Handle registers a handler for pattern.
func (b *BackendServer) Handle(pattern string, h http.HandlerFunc) {
	b.mux.HandleFunc(pattern, h)
}

// JSON registers a handler that replies with status and body encoded as JSON.
func (b *BackendServer) JSON(pattern string, status int, body any) {
	b.Handle(pattern, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Requests returns a copy of every request received so far.
func (b *BackendServer) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// Paths returns "METHOD path?query" for every request received so far.
func (b *BackendServer) Paths() []string {
	reqs := b.Requests()
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		p := r.Method + " " + r.Path
		if r.RawQuery != "" {
			p += "?" + r.RawQuery
		}
		out = append(out, p)
	}
	return out
}

func (b *BackendServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.requests = append(b.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		RawQuery:      r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
	})
	b.mu.Unlock()

	r.Body = io.NopCloser(bytes.NewReader(body))
	b.mux.ServeHTTP(w, r)
}

// WriteJSON writes body as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
