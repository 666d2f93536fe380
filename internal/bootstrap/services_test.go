package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/subscription-admin/config"
	"github.com/target/subscription-admin/internal/adapters/devauth"
	"github.com/target/subscription-admin/internal/testutil"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func testConfig(t *testing.T, baseURL string) *config.AppConfig {
	t.Helper()
	cfg := &config.AppConfig{
		Backend: config.BackendConfig{BaseURL: baseURL, Timeout: 5 * time.Second},
		Auth:    config.AuthConfig{SessionTTL: time.Hour, RememberMeTTL: 24 * time.Hour, LoginRateLimit: 10},
		HTTP:    config.HTTPConfig{Addr: "127.0.0.1:0", BaseURL: "http://localhost:8080"},
		IsDev:   true,
	}
	cfg.Sanitize()
	return cfg
}

func TestNewServices_WiresEveryService(t *testing.T) {
	backend := testutil.NewBackendServer()
	t.Cleanup(backend.Close)
	cfg := testConfig(t, backend.BaseURL())

	client, err := NewBackendClient(cfg.Backend, discardLogger())
	require.NoError(t, err)

	svc := NewServices(&ServiceDeps{
		Config:   cfg,
		Backend:  client,
		Sessions: devauth.NewSessionStore(nil),
		Logger:   discardLogger(),
	})

	assert.NotNil(t, svc.Auth)
	assert.NotNil(t, svc.Users)
	assert.NotNil(t, svc.Administrators)
	assert.NotNil(t, svc.Payments)
	assert.NotNil(t, svc.Plans)
	assert.NotNil(t, svc.Subscriptions)
	assert.NotNil(t, svc.APIKeys)
	assert.NotNil(t, svc.Profile)
	assert.NotNil(t, svc.Policies)
	assert.NotNil(t, svc.Dashboard)
}

func TestNewBackendClient_RejectsEmptyURL(t *testing.T) {
	_, err := NewBackendClient(config.BackendConfig{}, discardLogger())
	require.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	cfg := testConfig(t, "http://backend.local/api/")
	require.NoError(t, ValidateConfig(cfg))

	cfg.Backend.BaseURL = "ftp://backend.local/"
	require.Error(t, ValidateConfig(cfg))

	cfg.Backend.BaseURL = ""
	require.Error(t, ValidateConfig(cfg))

	require.Error(t, ValidateConfig(nil))
}

func TestBuildHTTPHandler_ServesHealthz(t *testing.T) {
	backend := testutil.NewBackendServer()
	t.Cleanup(backend.Close)
	cfg := testConfig(t, backend.BaseURL())
	client, err := NewBackendClient(cfg.Backend, discardLogger())
	require.NoError(t, err)
	services := NewServices(&ServiceDeps{Config: cfg, Backend: client, Sessions: devauth.NewSessionStore(nil)})

	h := buildHTTPHandler(httpHandlerConfig{
		Logger:   discardLogger(),
		Services: RouterServices(cfg, services, discardLogger()),
		HTTP:     cfg.HTTP,
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWaitForShutdown(t *testing.T) {
	t.Run("signal stops the server", func(t *testing.T) {
		sig := make(chan os.Signal, 1)
		sig <- syscall.SIGTERM
		ctx, cancel := context.WithCancel(context.Background())
		server := &http.Server{ReadHeaderTimeout: time.Second}

		err := waitForShutdown(shutdownConfig{
			ctx:        ctx,
			cancel:     cancel,
			signals:    sig,
			errCh:      make(chan error),
			httpServer: server,
			logger:     discardLogger(),
		})
		require.NoError(t, err)
		require.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("server error is returned", func(t *testing.T) {
		errCh := make(chan error, 1)
		boom := errors.New("listen failed")
		errCh <- boom
		ctx, cancel := context.WithCancel(context.Background())

		err := waitForShutdown(shutdownConfig{
			ctx:     ctx,
			cancel:  cancel,
			signals: make(chan os.Signal),
			errCh:   errCh,
			logger:  discardLogger(),
		})
		require.ErrorIs(t, err, boom)
	})
}

func TestRunServicesWithShutdown_RequiresAuth(t *testing.T) {
	err := RunServicesWithShutdown(&ServiceOrchestrationConfig{Config: &config.AppConfig{}, Logger: discardLogger()})
	require.Error(t, err)
	require.Error(t, RunServicesWithShutdown(nil))
}
