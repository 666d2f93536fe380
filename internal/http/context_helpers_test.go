package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
	domainauth "github.com/target/subscription-admin/internal/domain/auth"
)

func TestSessionContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetSessionFromContext(ctx))
	assert.False(t, IsSuperAdmin(ctx))
	assert.Equal(t, ctx, SetSessionInContext(ctx, nil))

	staff := &domainauth.Session{ID: "s1", Role: domainauth.RoleAdmin, AccessToken: "token-1"}
	ctx = SetSessionInContext(ctx, staff)

	got, ok := GetUserSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, staff, got)
	assert.False(t, IsSuperAdmin(ctx))
	token, ok := backendapi.TokenFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "token-1", token)

	super := &domainauth.Session{ID: "s2", Role: domainauth.RoleSuperAdmin, AccessToken: "token-2"}
	ctx = SetSessionInContext(context.Background(), super)
	assert.True(t, IsSuperAdmin(ctx))
	token, _ = backendapi.TokenFromContext(ctx)
	assert.Equal(t, "token-2", token)
}
