package ports_test

import (
	"testing"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
	"github.com/target/subscription-admin/internal/adapters/redis"
	"github.com/target/subscription-admin/internal/mocks"
	mockauth "github.com/target/subscription-admin/internal/mocks/auth"
	"github.com/target/subscription-admin/internal/ports"
)

// This test only verifies that adapters and mocks conform to the ports at compile time.
func TestImplementationsSatisfyPorts(t *testing.T) {
	t.Helper()

	var _ ports.BackendAPI = (*backendapi.Client)(nil)
	var _ ports.SessionStore = (*redis.SessionStore)(nil)
	var _ ports.SessionStore = (*mockauth.MemorySessionStore)(nil)
	var _ ports.AccountAPI = (*mocks.MockAccountAPI)(nil)
	var _ ports.UsersAPI = (*mocks.MockUsersAPI)(nil)
	var _ ports.AdministratorsAPI = (*mocks.MockAdministratorsAPI)(nil)
	var _ ports.PlansAPI = (*mocks.MockPlansAPI)(nil)
}
