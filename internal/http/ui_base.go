package httpx

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domainauth "github.com/target/subscription-admin/internal/domain/auth"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/http/ui/viewmodel"
	"github.com/target/subscription-admin/internal/service"
)

const (
	errMsgFixBelow = "Please fix the errors below."
	appName        = "Subscription Admin"
)

// UsersService is the users surface the UI needs.
type UsersService interface {
	NewList(page int, filter model.UserFilter) *service.UserList
	SetDisabled(ctx context.Context, list *service.UserList, id string, disabled bool) error
	Delete(ctx context.Context, list *service.UserList, id string) error
}

// AdministratorsService is the administrators surface the UI needs.
type AdministratorsService interface {
	NewList(page int) *service.AdministratorList
	ByID(id string) func(model.Administrator) bool
	Create(ctx context.Context, list *service.AdministratorList, req model.CreateAdministratorRequest) (model.Administrator, error)
	Update(ctx context.Context, list *service.AdministratorList, id string, req model.UpdateAdministratorRequest) error
	Delete(ctx context.Context, list *service.AdministratorList, id string) error
}

// PaymentsService lists payments.
type PaymentsService interface {
	NewList(page int, status model.PaymentStatus) *service.PaymentList
}

// PlansService manages subscription plans.
type PlansService interface {
	NewList(page int) *service.PlanList
	Get(ctx context.Context, id string) (model.Plan, error)
	Create(ctx context.Context, list *service.PlanList, req model.CreatePlanRequest) (model.Plan, error)
	Update(ctx context.Context, list *service.PlanList, id string, req model.UpdatePlanRequest) error
	Delete(ctx context.Context, list *service.PlanList, id string) error
	DeleteMany(ctx context.Context, list *service.PlanList, ids []string) (*model.BulkResponse, error)
	Sync(ctx context.Context, list *service.PlanList) (*model.BulkResponse, error)
}

// SubscriptionsService serves subscription stats and the subscription/customer lists.
type SubscriptionsService interface {
	Stats(ctx context.Context) (*model.SubscriptionDashboardResponse, error)
	Chart(ctx context.Context, months int) (*model.SubscriptionChartResponse, error)
	NewSubscriptionList(page int) *service.SubscriptionList
	NewCustomerList(page int) *service.CustomerList
}

// APIKeysService manages third-party credentials.
type APIKeysService interface {
	NewList() *service.APIKeyList
	ByKey(key string) func(model.APIKey) bool
	Update(ctx context.Context, list *service.APIKeyList, key string, req model.UpdateAPIKeyRequest) error
}

// ProfileService manages the signed-in administrator's account.
type ProfileService interface {
	Get(ctx context.Context) (model.Profile, error)
	Update(ctx context.Context, req model.UpdateProfileRequest) (model.Profile, error)
	ChangePassword(ctx context.Context, sess *domainauth.Session, req model.ChangePasswordRequest) (int, error)
}

// PoliciesService reads and edits the legal documents.
type PoliciesService interface {
	Get(ctx context.Context, kind model.PolicyKind) (model.Policy, error)
	Update(ctx context.Context, kind model.PolicyKind, req model.UpdatePolicyRequest) (model.Policy, error)
}

// DashboardLoader assembles the home page.
type DashboardLoader interface {
	Load(ctx context.Context, months int) (*service.Dashboard, error)
}

// AuthUIService is the session surface used by the sign-in and reset pages.
type AuthUIService interface {
	SessionProvider
	Login(ctx context.Context, req model.LoginRequest) (*domainauth.Session, error)
	RequestPasswordReset(ctx context.Context, req model.SendOTPRequest) error
	VerifyResetCode(ctx context.Context, req model.VerifyOTPRequest) (string, error)
	ResetPassword(ctx context.Context, req model.SetPasswordRequest) error
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ UsersService          = (*service.UserService)(nil)
	_ AdministratorsService = (*service.AdministratorService)(nil)
	_ PaymentsService       = (*service.PaymentService)(nil)
	_ PlansService          = (*service.PlanService)(nil)
	_ SubscriptionsService  = (*service.SubscriptionService)(nil)
	_ APIKeysService        = (*service.APIKeyService)(nil)
	_ ProfileService        = (*service.ProfileService)(nil)
	_ PoliciesService       = (*service.PolicyService)(nil)
	_ DashboardLoader       = (*service.DashboardService)(nil)
	_ AuthUIService         = (*service.AuthService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T               *TemplateRenderer
	Auth            AuthUIService
	UserSvc         UsersService
	AdminSvc        AdministratorsService
	PaymentSvc      PaymentsService
	PlanSvc         PlansService
	SubscriptionSvc SubscriptionsService
	APIKeySvc       APIKeysService
	ProfileSvc      ProfileService
	PolicySvc       PoliciesService
	DashboardSvc    DashboardLoader
	// MaxVisible and MaxVisibleMobile size the page-number windows; zero uses the listing defaults.
	MaxVisible       int
	MaxVisibleMobile int
	CookieDomain     string
	IsDev            bool
	Logger           *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// getPage parses the page query parameter, defaulting to 1.
func getPage(q url.Values) int {
	if n, err := strconv.Atoi(strings.TrimSpace(q.Get("page"))); err == nil && n > 0 {
		return n
	}
	return 1
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// FormFrameOpts captures the parameters required to normalize common form data.
type FormFrameOpts struct {
	R           *http.Request
	Data        map[string]any
	DefaultMode FormMode
	MetaForMode func(FormMode) PageMeta
}

// prepareFormFrame normalizes common form rendering fields (Errors, Mode, base layout).
func prepareFormFrame(opts FormFrameOpts) (map[string]any, FormMode) {
	data := opts.Data
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Errors"]; !ok || data["Errors"] == nil {
		data["Errors"] = map[string]string{}
	}

	mode := resolveFormMode(data["Mode"], opts.DefaultMode)
	data["Mode"] = string(mode)

	if opts.MetaForMode != nil && opts.R != nil {
		base := basePageData(opts.R, opts.MetaForMode(mode))
		for k, v := range base {
			if _, exists := data[k]; !exists {
				data[k] = v
			}
		}
	}
	return data, mode
}

// resolveFormMode coerces assorted Mode representations to a FormMode value.
func resolveFormMode(raw any, fallback FormMode) FormMode {
	switch v := raw.(type) {
	case FormMode:
		if v != "" {
			return v
		}
	case string:
		if candidate := FormMode(strings.TrimSpace(v)); candidate != "" {
			return candidate
		}
	}
	return fallback
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

func pageMeta(title, currentPage string) PageMeta {
	return PageMeta{Title: title + " - " + appName, PageTitle: title, CurrentPage: currentPage}
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		NavSection:  NavSectionFor(meta.CurrentPage),
		CSRFToken:   GetCSRFToken(r),
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.IsAuthenticated = true
		layout.User = &viewmodel.User{
			Name:         session.DisplayName(),
			Email:        session.Email,
			Role:         string(session.Role),
			IsSuperAdmin: session.IsSuperAdmin(),
		}
	}
	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"NavSection":      layout.NavSection,
		"IsAuthenticated": layout.IsAuthenticated,
		"CSRFToken":       layout.CSRFToken,
		"IsSuperAdmin":    layout.User != nil && layout.User.IsSuperAdmin,
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	return data
}

// renderDashboardPage renders a dashboard page with proper HTMX partial support.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	layout := extractLayoutInfo(data)
	SetHXTrigger(w, "nav:activate", map[string]string{"section": layout.NavSection, "path": r.URL.Path})

	// <title> lets htmx update document.title; the header title is swapped out of band.
	head := `<title>` + html.EscapeString(layout.Title) + `</title>` +
		`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + html.EscapeString(layout.PageTitle) + `</h1>`
	if _, err := w.Write([]byte(head)); err != nil {
		h.logger().Error("failed to write partial header", "error", err)
		return
	}

	if err := h.T.executeTo(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

func extractLayoutInfo(data any) viewmodel.Layout {
	switch v := data.(type) {
	case viewmodel.LayoutProvider:
		if l := v.LayoutData(); l != nil {
			return *l
		}
	case viewmodel.Layout:
		return v
	case *viewmodel.Layout:
		if v != nil {
			return *v
		}
	case map[string]any:
		layout := viewmodel.Layout{}
		layout.Title, _ = v["Title"].(string)
		layout.PageTitle, _ = v["PageTitle"].(string)
		layout.CurrentPage, _ = v["CurrentPage"].(string)
		layout.NavSection, _ = v["NavSection"].(string)
		if layout.NavSection == "" {
			layout.NavSection = NavSectionFor(layout.CurrentPage)
		}
		return layout
	}
	return viewmodel.Layout{}
}

// handleBackendFailure ends the session when the backend rejected its token and reports whether it did.
// The browser is sent to the login page and the caller must stop writing.
func (h *UIHandlers) handleBackendFailure(w http.ResponseWriter, r *http.Request, err error) bool {
	if !apperrors.IsUnauthorized(err) {
		return false
	}
	h.expireSession(w, r)
	redirectToLogin(w, r)
	return true
}

// expireSession destroys the server-side session and clears its cookie.
func (h *UIHandlers) expireSession(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" && h.Auth != nil {
		if logoutErr := h.Auth.Logout(r.Context(), c.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "failed to destroy session", "error", logoutErr)
		}
	}
	clearCookie(w, r, SessionCookieName, h.CookieDomain)
}

// renderServiceError renders a full error page for a failed read and picks the status from the error.
func (h *UIHandlers) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if h.handleBackendFailure(w, r, err) {
		return
	}
	status := http.StatusInternalServerError
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus()
	}
	if status == http.StatusNotFound {
		h.renderBrowserNotFound(w, r)
		return
	}
	h.logger().ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	h.renderErrorPage(w, r, status, processError(err, nil))
}

// renderErrorPage renders the standalone error layout with code and message.
func (h *UIHandlers) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := basePageData(r, pageMeta(http.StatusText(status), ""))
	maps.Copy(data, map[string]any{
		"Code":        strconv.Itoa(status),
		"Message":     message,
		"ShowLogin":   GetSessionFromContext(r.Context()) == nil,
		"RedirectURI": r.URL.RequestURI(),
	})
	if IsHTMX(r) {
		triggerToast(w, message, "error")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if h.T == nil {
		_, _ = w.Write([]byte(html.EscapeString(message)))
		return
	}
	if err := h.T.executeTo(w, "error-layout", data); err != nil {
		h.logger().Error("failed to render error page", "error", err)
	}
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		body := `<div class="dev-error"><h2>Template Rendering Error</h2>` +
			`<p><strong>Context:</strong> ` + html.EscapeString(context) + `</p>` +
			`<p><strong>Path:</strong> ` + html.EscapeString(r.URL.Path) + `</p>` +
			`<pre>` + html.EscapeString(err.Error()) + `</pre></div>`
		if _, writeErr := w.Write([]byte(body)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
