package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/subscription-admin/internal/domain/model"
)

func TestTestTimeProvider(t *testing.T) {
	start := TestTime()
	p := NewTestTimeProvider(start)
	assert.Equal(t, start, p.Now())

	p.AddTime(time.Hour)
	assert.Equal(t, start.Add(time.Hour), p.Now())

	p.SetTime(start)
	assert.Equal(t, start, FixedTimeFunc(p.Now())())
}

func TestUsersPage(t *testing.T) {
	resp := UsersPage(3, 10, 21, model.UserFilterFree)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, model.ID("21"), resp.Users[0].ID)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 21, resp.Pagination.StartIndex)
	assert.False(t, resp.Pagination.HasNext)
	assert.Equal(t, 21, resp.FilterCounts.Free)

	empty := UsersPage(4, 10, 21, model.UserFilterAll)
	assert.Empty(t, empty.Users)
}

func TestBackendServer_RecordsRequests(t *testing.T) {
	b := NewBackendServer()
	t.Cleanup(b.Close)
	b.JSON("POST /api/admin/login/", http.StatusOK, map[string]string{"message": "ok"})

	req, err := http.NewRequest(http.MethodPost, b.BaseURL()+"admin/login/?x=1", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer t")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.JSONEq(t, `{"message":"ok"}`, string(body))
	assert.Equal(t, []string{"POST /api/admin/login/?x=1"}, b.Paths())
	assert.Equal(t, "Bearer t", b.Requests()[0].Authorization)
	assert.JSONEq(t, `{"a":1}`, string(b.Requests()[0].Body))
}

func TestBuilders(t *testing.T) {
	admin := NewAdministratorRequest().WithEmail("x@example.com").WithAccessLevel(model.AccessLevelSuperAdmin).Build()
	assert.Equal(t, "x@example.com", admin.Email)
	assert.Equal(t, model.AccessLevelSuperAdmin, admin.AccessLevel)

	plan := NewPlanRequest().OneTime().WithSlug("lifetime").Build()
	assert.Equal(t, model.PlanTypeOneTime, plan.PlanType)
	assert.False(t, plan.Interval.Valid)
	assert.Equal(t, "lifetime", plan.Slug)
}
