package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/subscription-admin/internal/domain/model"
	"github.com/target/subscription-admin/internal/mocks"
	authmocks "github.com/target/subscription-admin/internal/mocks/auth"
	"github.com/target/subscription-admin/internal/service"
)

const (
	testCSRFToken = "test-csrf-token"
	testPassword  = "password123"
	superEmail    = "admin@example.com"
	staffEmail    = "staff@example.com"
)

// uiHarness runs the real router and services against gomock backends and the stub account API.
type uiHarness struct {
	t       *testing.T
	handler http.Handler

	auth     *service.AuthService
	accounts *authmocks.StubAccountAPI
	sessions *authmocks.MemorySessionStore

	users    *mocks.MockUsersAPI
	admins   *mocks.MockAdministratorsAPI
	payments *mocks.MockPaymentsAPI
	plans    *mocks.MockPlansAPI
	subs     *mocks.MockSubscriptionsAPI
	overview *mocks.MockOverviewAPI
	keys     *mocks.MockAPIKeysAPI
	profile  *mocks.MockProfileAPI
	policies *mocks.MockPoliciesAPI
}

func newUIHarness(t *testing.T) *uiHarness {
	t.Helper()
	tr := RequireTemplateRenderer(t)
	ctrl := gomock.NewController(t)

	h := &uiHarness{
		t:        t,
		accounts: authmocks.NewStubAccountAPI(),
		sessions: authmocks.NewMemorySessionStore(),
		users:    mocks.NewMockUsersAPI(ctrl),
		admins:   mocks.NewMockAdministratorsAPI(ctrl),
		payments: mocks.NewMockPaymentsAPI(ctrl),
		plans:    mocks.NewMockPlansAPI(ctrl),
		subs:     mocks.NewMockSubscriptionsAPI(ctrl),
		overview: mocks.NewMockOverviewAPI(ctrl),
		keys:     mocks.NewMockAPIKeysAPI(ctrl),
		profile:  mocks.NewMockProfileAPI(ctrl),
		policies: mocks.NewMockPoliciesAPI(ctrl),
	}
	h.accounts.Accounts[staffEmail] = authmocks.StubAccount{ID: "2", Name: "Sam Staff", Password: testPassword, Role: "admin"}
	h.auth = service.NewAuthService(service.AuthServiceOptions{Accounts: h.accounts, Sessions: h.sessions})

	h.handler = NewRouter(RouterServices{
		Auth:           h.auth,
		Users:          service.NewUserService(service.UserServiceOptions{API: h.users}),
		Administrators: service.NewAdministratorService(service.AdministratorServiceOptions{API: h.admins}),
		Payments:       service.NewPaymentService(service.PaymentServiceOptions{API: h.payments}),
		Plans:          service.NewPlanService(service.PlanServiceOptions{API: h.plans, PageSize: 5}),
		Subscriptions:  service.NewSubscriptionService(service.SubscriptionServiceOptions{API: h.subs}),
		APIKeys:        service.NewAPIKeyService(service.APIKeyServiceOptions{API: h.keys}),
		Profile:        service.NewProfileService(service.ProfileServiceOptions{API: h.profile, Sessions: h.sessions}),
		Policies:       service.NewPolicyService(service.PolicyServiceOptions{API: h.policies}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Overview:      h.overview,
			Subscriptions: h.subs,
		}),
		Templates: tr,
	})
	return h
}

// signIn opens a session for email and returns its cookie.
func (h *uiHarness) signIn(email string) *http.Cookie {
	h.t.Helper()
	sess, err := h.auth.Login(context.Background(), model.LoginRequest{Email: email, Password: testPassword})
	require.NoError(h.t, err)
	return &http.Cookie{Name: SessionCookieName, Value: sess.ID}
}

type uiRequest struct {
	Method  string
	Path    string
	Form    url.Values
	Session *http.Cookie
	HTMX    bool
	JSON    bool
	// NoCSRF leaves the token out of the submitted form.
	NoCSRF bool
}

// do sends req through the router. Non-GET requests are submitted as forms carrying the CSRF token.
func (h *uiHarness) do(req uiRequest) *httptest.ResponseRecorder {
	h.t.Helper()
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if method != http.MethodGet {
		form := url.Values{}
		for k, v := range req.Form {
			form[k] = v
		}
		if !req.NoCSRF {
			form.Set(DefaultCSRFCookieName, testCSRFToken)
		}
		body = strings.NewReader(form.Encode())
	}

	r := httptest.NewRequest(method, req.Path, body)
	if body != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	if req.Session != nil {
		r.AddCookie(req.Session)
	}
	if req.HTMX {
		r.Header.Set("Hx-Request", "true")
	}
	if req.JSON {
		r.Header.Set("Accept", "application/json")
	}

	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, r)
	return rec
}
