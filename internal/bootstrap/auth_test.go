package bootstrap

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/subscription-admin/config"
	"github.com/target/subscription-admin/internal/adapters/backendapi"
	"github.com/target/subscription-admin/internal/adapters/devauth"
	"github.com/target/subscription-admin/internal/testutil"
)

func TestBuildSessionStore(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("production without redis has no store", func(t *testing.T) {
		assert.Nil(t, BuildSessionStore(AuthConfig{Logger: logger}))
	})

	t.Run("dev mode falls back to memory", func(t *testing.T) {
		store := BuildSessionStore(AuthConfig{IsDev: true, Logger: logger})
		require.NotNil(t, store)
		assert.IsType(t, &devauth.SessionStore{}, store)
	})
}

func TestBuildAuthService(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	backend := testutil.NewBackendServer()
	t.Cleanup(backend.Close)
	client, err := backendapi.NewClient(backendapi.Config{BaseURL: backend.BaseURL()})
	require.NoError(t, err)

	cfg := AuthConfig{
		Auth:     config.AuthConfig{SessionTTL: time.Hour, RememberMeTTL: 24 * time.Hour},
		Accounts: client,
		Logger:   logger,
	}

	assert.Nil(t, BuildAuthService(cfg, nil))
	assert.NotNil(t, BuildAuthService(cfg, devauth.NewSessionStore(nil)))
}
