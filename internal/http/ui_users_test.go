package httpx

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
	"github.com/target/subscription-admin/internal/domain/model"
	"github.com/target/subscription-admin/internal/testutil"
)

func TestUsers_ListRendersRequestedPageAndFilter(t *testing.T) {
	h := newUIHarness(t)
	session := h.signIn(superEmail)

	h.users.EXPECT().ListUsers(gomock.Any(), 2, model.UserFilterFree).
		Return(testutil.UsersPage(2, 10, 25, model.UserFilterFree), nil)

	rec := h.do(uiRequest{Path: "/users?page=2&filter=free", Session: session})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "user11@example.com")
	assert.Contains(t, body, "user20@example.com")
	assert.NotContains(t, body, "user21@example.com")
}

func TestUsers_ListFailureShowsBanner(t *testing.T) {
	h := newUIHarness(t)
	session := h.signIn(superEmail)

	h.users.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).
		Return(nil, &backendapi.APIError{Message: "Database unavailable", Status: http.StatusInternalServerError})

	rec := h.do(uiRequest{Path: "/users", Session: session})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unable to load users.")
}

func TestUsers_RejectedTokenEndsSession(t *testing.T) {
	h := newUIHarness(t)
	session := h.signIn(superEmail)
	require.Equal(t, 1, h.sessions.Len())

	h.users.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).
		Return(nil, &backendapi.APIError{Message: "Token is invalid or expired", Status: http.StatusUnauthorized})

	rec := h.do(uiRequest{Path: "/users", Session: session})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fusers", rec.Header().Get("Location"))
	assert.Equal(t, 0, h.sessions.Len())
}

func TestUsers_ToggleConfirmCarriesTargetState(t *testing.T) {
	h := newUIHarness(t)
	session := h.signIn(superEmail)

	h.users.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).
		Return(testutil.UsersPage(1, 10, 3, model.UserFilterAll), nil)

	rec := h.do(uiRequest{Path: "/users/3/toggle?page=1", Session: session, HTMX: true})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, ContainsAll(body, []string{
		"Disable user",
		"User 3 (user3@example.com)",
		"This action cannot be undone.",
		`name="disabled" value="true"`,
		`action="/users/3/toggle"`,
	}), body)
}

func TestUsers_ToggleConfirmUnknownUser(t *testing.T) {
	h := newUIHarness(t)
	session := h.signIn(superEmail)

	h.users.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).
		Return(testutil.UsersPage(1, 10, 3, model.UserFilterAll), nil)

	rec := h.do(uiRequest{Path: "/users/99/toggle", Session: session})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsers_ToggleHTMXRerendersListWithToast(t *testing.T) {
	h := newUIHarness(t)
	session := h.signIn(superEmail)

	gomock.InOrder(
		h.users.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).
			Return(testutil.UsersPage(1, 10, 3, model.UserFilterAll), nil),
		h.users.EXPECT().SetUserDisabled(gomock.Any(), "3", true).
			Return(&model.StatusResponse{Success: true}, nil),
	)

	rec := h.do(uiRequest{
		Method:  http.MethodPost,
		Path:    "/users/3/toggle",
		Form:    url.Values{"page": {"1"}, "disabled": {"true"}},
		Session: session,
		HTMX:    true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/users?filter=all&page=1", rec.Header().Get("Hx-Push-Url"))
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "User disabled.")
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "nav:activate")
	assert.Contains(t, rec.Body.String(), `<span class="badge badge-danger">Disabled</span>`)
}

func TestUsers_ToggleFailureKeepsDialogOpen(t *testing.T) {
	h := newUIHarness(t)
	session := h.signIn(superEmail)

	h.users.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).
		Return(testutil.UsersPage(1, 10, 3, model.UserFilterAll), nil)
	h.users.EXPECT().SetUserDisabled(gomock.Any(), "3", true).
		Return(nil, &backendapi.APIError{Message: "User is protected", Status: http.StatusBadRequest})

	rec := h.do(uiRequest{
		Method:  http.MethodPost,
		Path:    "/users/3/toggle",
		Form:    url.Values{"page": {"1"}, "disabled": {"true"}},
		Session: session,
		HTMX:    true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "User is protected")
	assert.Contains(t, body, `name="disabled" value="true"`)
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "User is protected")
	assert.Empty(t, rec.Header().Get("Hx-Push-Url"))
}

func TestUsers_DeleteLastItemStepsBackOnePage(t *testing.T) {
	h := newUIHarness(t)
	session := h.signIn(superEmail)

	gomock.InOrder(
		h.users.EXPECT().ListUsers(gomock.Any(), 3, model.UserFilterAll).
			Return(testutil.UsersPage(3, 10, 21, model.UserFilterAll), nil),
		h.users.EXPECT().DeleteUser(gomock.Any(), "21").
			Return(&model.StatusResponse{Success: true}, nil),
		h.users.EXPECT().ListUsers(gomock.Any(), 2, model.UserFilterAll).
			Return(testutil.UsersPage(2, 10, 20, model.UserFilterAll), nil),
	)

	rec := h.do(uiRequest{
		Method:  http.MethodPost,
		Path:    "/users/21/delete",
		Form:    url.Values{"page": {"3"}},
		Session: session,
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/users?filter=all&page=2", rec.Header().Get("Location"))
}

func TestUsers_DeleteAnswersJSONClients(t *testing.T) {
	h := newUIHarness(t)
	session := h.signIn(superEmail)

	h.users.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).
		Return(testutil.UsersPage(1, 10, 3, model.UserFilterAll), nil)
	h.users.EXPECT().DeleteUser(gomock.Any(), "2").
		Return(&model.StatusResponse{Success: true}, nil)

	rec := h.do(uiRequest{
		Method:  http.MethodPost,
		Path:    "/users/2/delete",
		Form:    url.Values{"page": {"1"}},
		Session: session,
		JSON:    true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User deleted.","location":"/users?filter=all&page=1"}`, rec.Body.String())
}

func TestUsers_MutationWithoutCSRFTokenIsRejected(t *testing.T) {
	h := newUIHarness(t)
	session := h.signIn(superEmail)

	rec := h.do(uiRequest{
		Method:  http.MethodPost,
		Path:    "/users/2/delete",
		Session: session,
		NoCSRF:  true,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
