package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/subscription-admin/internal/domain/auth"
	"github.com/target/subscription-admin/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := testutil.SetupTestRedis(t)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testSession(id, userID string, ttl time.Duration) domainauth.Session {
	return domainauth.Session{
		ID:           id,
		UserID:       userID,
		Name:         "Ada Admin",
		Email:        "ada@example.com",
		Role:         domainauth.RoleSuperAdmin,
		AccessToken:  "access-" + id,
		RefreshToken: "refresh-" + id,
		CreatedAt:    time.Now(),
		ExpiresAt:    time.Now().Add(ttl),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	session := testSession("test-session-1", "user-123", 30*time.Minute)
	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.UserID, retrieved.UserID)
	assert.Equal(t, session.Role, retrieved.Role)
	assert.Equal(t, "access-test-session-1", retrieved.AccessToken)
	assert.Equal(t, "refresh-test-session-1", retrieved.RefreshToken)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)

	ttl := client.TTL(ctx, DefaultSessionPrefix+"test-session-1").Val()
	assert.Greater(t, ttl, 29*time.Minute)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	store := NewSessionStore(setupTestRedis(t))

	_, err := store.Get(context.Background(), "non-existent")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("test-session-delete", "user-123", 30*time.Minute)))
	require.NoError(t, store.Delete(ctx, "test-session-delete"))

	_, err := store.Get(ctx, "test-session-delete")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, client.SIsMember(ctx, DefaultSessionPrefix+"user:user-123", "test-session-delete").Val())

	// Deleting twice is a no-op.
	require.NoError(t, store.Delete(ctx, "test-session-delete"))
	require.NoError(t, store.Delete(ctx, ""))
}

func TestSessionStore_TTLExpiration(t *testing.T) {
	store := NewSessionStore(setupTestRedis(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("test-session-ttl", "user-123", 100*time.Millisecond)))
	time.Sleep(200 * time.Millisecond)

	_, err := store.Get(ctx, "test-session-ttl")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_ClockExpiry(t *testing.T) {
	client := setupTestRedis(t)
	now := time.Now()
	clock := testutil.NewTestTimeProvider(now)
	store := NewSessionStore(client, WithClock(clock.Now))
	ctx := context.Background()

	sess := testSession("clock-session", "user-9", time.Hour)
	sess.ExpiresAt = now.Add(time.Hour)
	require.NoError(t, store.Save(ctx, sess))

	clock.AddTime(2 * time.Hour)
	_, err := store.Get(ctx, "clock-session")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), client.Exists(ctx, DefaultSessionPrefix+"clock-session").Val())
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStore(client, WithPrefix("test-prefix:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("prefix-test", "user-123", 30*time.Minute)))
	assert.Equal(t, int64(1), client.Exists(ctx, "test-prefix:prefix-test").Val())

	retrieved, err := store.Get(ctx, "prefix-test")
	require.NoError(t, err)
	assert.Equal(t, "prefix-test", retrieved.ID)
}

func TestSessionStore_SaveRejectsInvalid(t *testing.T) {
	store := NewSessionStore(setupTestRedis(t))
	ctx := context.Background()

	err := store.Save(ctx, testSession("", "user-123", time.Minute))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")

	err = store.Save(ctx, testSession("expired-session", "user-123", -time.Minute))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session is expired")
}

func TestSessionStore_DeleteForUser(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s1", "user-1", time.Hour)))
	require.NoError(t, store.Save(ctx, testSession("s2", "user-1", time.Hour)))
	require.NoError(t, store.Save(ctx, testSession("s3", "user-2", time.Hour)))

	n, err := store.DeleteForUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, "s2")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, "s3")
	require.NoError(t, err)

	n, err = store.DeleteForUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, n)
}
