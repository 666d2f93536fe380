package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/subscription-admin/internal/domain/auth"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	mocks "github.com/target/subscription-admin/internal/mocks/auth"
)

// mockSessionStore is a test helper for testing session store errors.
type mockSessionStore struct {
	saveFunc   func(context.Context, domainauth.Session) error
	getFunc    func(context.Context, string) (domainauth.Session, error)
	deleteFunc func(context.Context, string) error
}

func (m *mockSessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sess)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return domainauth.Session{}, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

var authNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestAuthService(t *testing.T) (*AuthService, *mocks.StubAccountAPI, *mocks.MemorySessionStore) {
	t.Helper()
	accounts := mocks.NewStubAccountAPI()
	accounts.Now = func() time.Time { return authNow }
	sessions := mocks.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Accounts: accounts,
		Sessions: sessions,
		Config: AuthSessionConfig{
			SessionTTL:    12 * time.Hour,
			RememberMeTTL: 30 * 24 * time.Hour,
			Now:           func() time.Time { return authNow },
		},
	})
	return svc, accounts, sessions
}

func TestNewAuthService(t *testing.T) {
	t.Run("requires dependencies", func(t *testing.T) {
		assert.Panics(t, func() { NewAuthService(AuthServiceOptions{Sessions: mocks.NewMemorySessionStore()}) })
		assert.Panics(t, func() { NewAuthService(AuthServiceOptions{Accounts: mocks.NewStubAccountAPI()}) })
	})

	t.Run("applies defaults", func(t *testing.T) {
		svc := NewAuthService(AuthServiceOptions{
			Accounts: mocks.NewStubAccountAPI(),
			Sessions: mocks.NewMemorySessionStore(),
		})
		assert.Equal(t, 12*time.Hour, svc.cfg.SessionTTL)
		assert.Equal(t, 12*time.Hour, svc.cfg.RememberMeTTL)
		assert.NotNil(t, svc.cfg.Now)
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)
	ctx := context.Background()

	sess, err := svc.Login(ctx, model.LoginRequest{Email: "admin@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "1", sess.UserID)
	assert.Equal(t, "Ada Admin", sess.Name)
	assert.Equal(t, domainauth.RoleSuperAdmin, sess.Role)
	assert.NotEmpty(t, sess.AccessToken)
	assert.Equal(t, "refresh-1", sess.RefreshToken)
	assert.Equal(t, authNow, sess.CreatedAt)
	// The stub's one hour token expires before the twelve hour session TTL.
	assert.Equal(t, authNow.Add(time.Hour), sess.ExpiresAt)

	stored, err := sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, *sess, stored)
}

func TestAuthService_Login_ExpiryWithoutTokenExp(t *testing.T) {
	svc, accounts, _ := newTestAuthService(t)
	accounts.TokenTTL = 0

	sess, err := svc.Login(context.Background(), model.LoginRequest{Email: "admin@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, authNow.Add(12*time.Hour), sess.ExpiresAt)

	sess, err = svc.Login(context.Background(), model.LoginRequest{
		Email:      "admin@example.com",
		Password:   "password123",
		RememberMe: true,
	})
	require.NoError(t, err)
	assert.True(t, sess.RememberMe)
	assert.Equal(t, authNow.Add(30*24*time.Hour), sess.ExpiresAt)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name      string
		req       model.LoginRequest
		wantCode  apperrors.ErrorCode
		wantField string
	}{
		{
			name:      "missing password",
			req:       model.LoginRequest{Email: "admin@example.com"},
			wantCode:  apperrors.ErrCodeValidation,
			wantField: "password",
		},
		{
			name:      "malformed email",
			req:       model.LoginRequest{Email: "not-an-email", Password: "x"},
			wantCode:  apperrors.ErrCodeValidation,
			wantField: "email",
		},
		{
			name:     "wrong password",
			req:      model.LoginRequest{Email: "admin@example.com", Password: "wrong"},
			wantCode: apperrors.ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, sessions := newTestAuthService(t)

			sess, err := svc.Login(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, sess)
			assert.Equal(t, tt.wantCode, apperrors.GetCode(err))
			if tt.wantField != "" {
				assert.Contains(t, apperrors.GetFields(err), tt.wantField)
			}
			assert.Zero(t, sessions.Len())
		})
	}

	t.Run("backend message is kept", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)
		_, err := svc.Login(context.Background(), model.LoginRequest{Email: "admin@example.com", Password: "nope"})
		assert.Equal(t, "Invalid email or password", apperrors.UserMessage(err))
	})
}

func TestAuthService_Login_SaveError(t *testing.T) {
	store := &mockSessionStore{
		saveFunc: func(context.Context, domainauth.Session) error { return errors.New("redis down") },
	}
	svc := NewAuthService(AuthServiceOptions{Accounts: mocks.NewStubAccountAPI(), Sessions: store})

	_, err := svc.Login(context.Background(), model.LoginRequest{Email: "admin@example.com", Password: "password123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session")
}

func TestAuthService_GetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)
		_, err := svc.GetSession(ctx, "")
		require.Error(t, err)
	})

	t.Run("live session", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)
		created, err := svc.Login(ctx, model.LoginRequest{Email: "admin@example.com", Password: "password123"})
		require.NoError(t, err)

		got, err := svc.GetSession(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("expired session is deleted", func(t *testing.T) {
		svc, _, sessions := newTestAuthService(t)
		require.NoError(t, sessions.Save(ctx, domainauth.Session{
			ID:        "old",
			UserID:    "1",
			ExpiresAt: authNow.Add(-time.Minute),
		}))

		_, err := svc.GetSession(ctx, "old")
		require.ErrorIs(t, err, ErrSessionExpired)
		assert.Zero(t, sessions.Len())
	})

	t.Run("expired session delete failure is joined", func(t *testing.T) {
		store := &mockSessionStore{
			getFunc: func(context.Context, string) (domainauth.Session, error) {
				return domainauth.Session{ID: "old", ExpiresAt: authNow.Add(-time.Minute)}, nil
			},
			deleteFunc: func(context.Context, string) error { return errors.New("boom") },
		}
		svc := NewAuthService(AuthServiceOptions{
			Accounts: mocks.NewStubAccountAPI(),
			Sessions: store,
			Config:   AuthSessionConfig{Now: func() time.Time { return authNow }},
		})

		_, err := svc.GetSession(ctx, "old")
		require.ErrorIs(t, err, ErrSessionExpired)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("missing session", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)
		_, err := svc.GetSession(ctx, "missing")
		require.ErrorIs(t, err, mocks.ErrNotFound)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions := newTestAuthService(t)

	sess, err := svc.Login(ctx, model.LoginRequest{Email: "admin@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.ID))
	assert.Zero(t, sessions.Len())
	require.NoError(t, svc.Logout(ctx, ""))

	failing := NewAuthService(AuthServiceOptions{
		Accounts: mocks.NewStubAccountAPI(),
		Sessions: &mockSessionStore{deleteFunc: func(context.Context, string) error { return errors.New("boom") }},
	})
	require.Error(t, failing.Logout(ctx, "abc"))
}

func TestAuthService_RevokeUser(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions := newTestAuthService(t)

	for range 3 {
		_, err := svc.Login(ctx, model.LoginRequest{Email: "admin@example.com", Password: "password123"})
		require.NoError(t, err)
	}
	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "other", UserID: "2", ExpiresAt: authNow.Add(time.Hour)}))

	n, err := svc.RevokeUser(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, sessions.Len())

	// Stores without a per-user index revoke nothing.
	plain := NewAuthService(AuthServiceOptions{Accounts: mocks.NewStubAccountAPI(), Sessions: &mockSessionStore{}})
	n, err = plain.RevokeUser(ctx, "1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	ctx := context.Background()
	svc, accounts, _ := newTestAuthService(t)

	require.NoError(t, svc.RequestPasswordReset(ctx, model.SendOTPRequest{Email: "admin@example.com"}))
	assert.Equal(t, []string{"admin@example.com"}, accounts.OTPRequests)

	_, err := svc.VerifyResetCode(ctx, model.VerifyOTPRequest{Email: "admin@example.com", OTP: "000000"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "Invalid or expired OTP", apperrors.UserMessage(err))

	token, err := svc.VerifyResetCode(ctx, model.VerifyOTPRequest{Email: "admin@example.com", OTP: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "reset:admin@example.com", token)

	err = svc.ResetPassword(ctx, model.SetPasswordRequest{Token: token, Password1: "new-password", Password2: "different"})
	require.Error(t, err)
	assert.Contains(t, apperrors.GetFields(err), "password2")

	require.NoError(t, svc.ResetPassword(ctx, model.SetPasswordRequest{
		Token:     token,
		Password1: "new-password",
		Password2: "new-password",
	}))

	_, err = svc.Login(ctx, model.LoginRequest{Email: "admin@example.com", Password: "new-password"})
	require.NoError(t, err)
}

func TestAuthService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	err := svc.RequestPasswordReset(context.Background(), model.SendOTPRequest{Email: "nobody@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTokenExpiry(t *testing.T) {
	_, ok := tokenExpiry("not-a-jwt")
	assert.False(t, ok)

	accounts := mocks.NewStubAccountAPI()
	accounts.Now = func() time.Time { return authNow }
	resp, err := accounts.Login(context.Background(), model.LoginRequest{Email: "admin@example.com", Password: "password123"})
	require.NoError(t, err)

	exp, ok := tokenExpiry(resp.Data.Tokens.Access)
	require.True(t, ok)
	assert.Equal(t, authNow.Add(time.Hour).Unix(), exp.Unix())
	assert.Equal(t, time.UTC, exp.Location())
}
