package devauth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/subscription-admin/internal/domain/auth"
)

func TestSessionStore_SaveGetDelete(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(func() time.Time { return now })
	ctx := context.Background()

	sess := domainauth.Session{ID: "s1", UserID: "u1", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Delete(ctx, "missing"))
	require.Error(t, store.Save(ctx, domainauth.Session{}))
}

func TestSessionStore_ExpiredSessionsAreDropped(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "old", ExpiresAt: now}))
	_, err := store.Get(ctx, "old")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_DeleteForUser(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(func() time.Time { return now })
	ctx := context.Background()

	for _, s := range []domainauth.Session{
		{ID: "a", UserID: "u1", ExpiresAt: now.Add(time.Hour)},
		{ID: "b", UserID: "u1", ExpiresAt: now.Add(-time.Minute)},
		{ID: "c", UserID: "u2", ExpiresAt: now.Add(time.Hour)},
	} {
		require.NoError(t, store.Save(ctx, s))
	}

	n, err := store.DeleteForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.Get(ctx, "a")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, "c")
	require.NoError(t, err)

	n, err = store.DeleteForUser(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, n)
}
