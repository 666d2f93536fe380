package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
	domainauth "github.com/target/subscription-admin/internal/domain/auth"
	"github.com/target/subscription-admin/internal/domain/model"
)

func TestStubAccountAPI_Login(t *testing.T) {
	api := NewStubAccountAPI()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	api.Now = func() time.Time { return now }
	ctx := context.Background()

	resp, err := api.Login(ctx, model.LoginRequest{Email: "admin@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "superadmin", resp.Data.User.Role)
	assert.Equal(t, "refresh-1", resp.Data.Tokens.Refresh)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(resp.Data.Tokens.Access, claims)
	require.NoError(t, err)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.Time.Equal(now.Add(time.Hour)))

	_, err = api.Login(ctx, model.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	apiErr, ok := backendapi.AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsUnauthorized())
}

func TestStubAccountAPI_ResetFlow(t *testing.T) {
	api := NewStubAccountAPI()
	ctx := context.Background()

	_, err := api.SendPasswordResetOTP(ctx, model.SendOTPRequest{Email: "admin@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@example.com"}, api.OTPRequests)

	_, err = api.VerifyPasswordResetOTP(ctx, model.VerifyOTPRequest{Email: "admin@example.com", OTP: "000000"})
	require.Error(t, err)

	verified, err := api.VerifyPasswordResetOTP(ctx, model.VerifyOTPRequest{Email: "admin@example.com", OTP: "123456"})
	require.NoError(t, err)

	_, err = api.SetPassword(ctx, model.SetPasswordRequest{
		Token:     verified.Data.ResetToken,
		Password1: "new-password",
		Password2: "new-password",
	})
	require.NoError(t, err)

	_, err = api.Login(ctx, model.LoginRequest{Email: "admin@example.com", Password: "new-password"})
	require.NoError(t, err)
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.Error(t, store.Save(ctx, domainauth.Session{}))
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "a", UserID: "u1"}))
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "b", UserID: "u1"}))
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "c", UserID: "u2"}))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	n, err := store.DeleteForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "c"))
	_, err = store.Get(ctx, "c")
	assert.ErrorIs(t, err, ErrNotFound)
}
