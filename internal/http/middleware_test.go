package httpx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/subscription-admin/internal/domain/auth"
)

// fakeSessions serves a fixed set of sessions by id.
type fakeSessions struct {
	sessions map[string]*domainauth.Session
	loggedOut []string
}

func (f *fakeSessions) GetSession(_ context.Context, id string) (*domainauth.Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, errors.New("session not found")
}

func (f *fakeSessions) Logout(_ context.Context, id string) error {
	f.loggedOut = append(f.loggedOut, id)
	delete(f.sessions, id)
	return nil
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]*domainauth.Session{
		"super": {ID: "super", UserID: "1", Email: "admin@example.com", Role: domainauth.RoleSuperAdmin, AccessToken: "tok-super"},
		"staff": {ID: "staff", UserID: "2", Email: "staff@example.com", Role: domainauth.RoleAdmin, AccessToken: "tok-staff"},
	}}
}

func requestWithSession(method, target, sessionID string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	if sessionID != "" {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	}
	return r
}

func TestRequireAuthBrowser(t *testing.T) {
	sessions := newFakeSessions()
	var seen *domainauth.Session
	handler := RequireAuthBrowser(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("session on context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession(http.MethodGet, "/users", "staff"))
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "staff@example.com", seen.Email)
	})

	t.Run("missing cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession(http.MethodGet, "/plans?page=3", ""))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?redirect_uri=%2Fplans%3Fpage%3D3", rec.Header().Get("Location"))
	})

	t.Run("htmx uses the current url", func(t *testing.T) {
		r := requestWithSession(http.MethodPost, "/users/4/delete", "expired")
		r.Header.Set("Hx-Request", "true")
		r.Header.Set("Hx-Current-Url", "https://admin.example.com/users?page=2")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/login?redirect_uri=%2Fusers%3Fpage%3D2", rec.Header().Get("Hx-Redirect"))
	})

	t.Run("non-get falls back to home", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession(http.MethodPost, "/users/4/delete", ""))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})
}

func TestRequireSuperAdminBrowser(t *testing.T) {
	sessions := newFakeSessions()
	handler := RequireAuthBrowser(sessions)(RequireSuperAdminBrowser(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithSession(http.MethodGet, "/administrators/new", "super"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithSession(http.MethodGet, "/administrators/new", "staff"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	RequireSuperAdminBrowser(http.NotFoundHandler()).ServeHTTP(rec, requestWithSession(http.MethodGet, "/administrators/new", ""))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestSafeRedirectPath(t *testing.T) {
	tests := map[string]string{
		"":                         "/",
		"/plans?page=2":            "/plans?page=2",
		"https://evil.example":     "/",
		"//evil.example/path":      "/",
		"/\\evil.example":          "/",
		"\\/evil.example":          "/",
		"/plans\\..\\x":            "/",
		"relative/path":            "/",
		"/login?redirect_uri=/x":   "/",
		"/users?filter=free&page=": "/users?filter=free&page=",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeRedirectPath(in), "input %q", in)
	}
}

func TestLoginRateLimit(t *testing.T) {
	limited := 0
	handler := LoginRateLimit(2, func(w http.ResponseWriter, _ *http.Request) {
		limited++
		w.WriteHeader(http.StatusTooManyRequests)
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	codes := make([]int, 0, 3)
	for range 3 {
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.RemoteAddr = "203.0.113.7:5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, limited)
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "req-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, "req-123", seen)
}

func TestRecoverAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := Logging(logger)(Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plans", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "kaboom")
	assert.Contains(t, buf.String(), `"status":500`)
}
