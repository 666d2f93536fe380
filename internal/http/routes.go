package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	subadmin "github.com/target/subscription-admin"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth           AuthUIService
	Users          UsersService
	Administrators AdministratorsService
	Payments       PaymentsService
	Plans          PlansService
	Subscriptions  SubscriptionsService
	APIKeys        APIKeysService
	Profile        ProfileService
	Policies       PoliciesService
	Dashboard      DashboardLoader
	CookieDomain   string
	// LoginRateLimit caps sign-in attempts per client IP per minute; zero disables the limit.
	LoginRateLimit int
	// MaxVisible and MaxVisibleMobile size the pagination windows.
	MaxVisible       int
	MaxVisibleMobile int
	// Optional: a pre-built renderer (tests); otherwise templates are loaded per IsDev.
	Templates *TemplateRenderer
	IsDev     bool         // Development mode flag for hot reloading, etc.
	Logger    *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticWithFallback(services.IsDev))

	uiHandlers := setupUIHandlers(services)
	if uiHandlers != nil {
		cfg := uiRouteConfig{
			Auth:           services.Auth,
			CookieDomain:   services.CookieDomain,
			LoginRateLimit: services.LoginRateLimit,
		}
		registerUIRoutes(mux, uiHandlers, cfg)
	}

	return &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}
}

// setupDevMode configures template FS, critical CSS FS, and asset resolver for dev mode.
func setupDevMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS := os.DirFS(TemplatePathFromRoot)
	criticalCSSFS := os.DirFS(filepath.Join("frontend", "static"))

	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return templateFS, criticalCSSFS, resolver
}

// setupProdMode configures template FS, critical CSS FS, and asset resolver for production mode.
func setupProdMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS, err := fs.Sub(subadmin.TemplateFS, "frontend/templates")
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		templateFS = os.DirFS(TemplatePathFromRoot)
	}

	staticSub, err := fs.Sub(subadmin.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return templateFS, nil, tryDiskManifest(diskManifestPath)
	}
	resolver, err := NewAssetResolverFromFS(staticSub, "manifest.json")
	if err != nil {
		log.Printf("failed to load asset manifest from embedded FS: %v", err)
		return templateFS, staticSub, tryDiskManifest(diskManifestPath)
	}
	return templateFS, staticSub, resolver
}

// tryDiskManifest attempts to load the asset manifest from disk as a fallback.
func tryDiskManifest(diskManifestPath string) *AssetResolver {
	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return resolver
}

// setupUIHandlers creates UI handlers with template renderer and asset resolver.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	tr := services.Templates
	if tr == nil {
		var err error
		tr, err = newTemplateRenderer(services)
		if err != nil {
			if services.Logger != nil {
				services.Logger.Error("failed to create template renderer", slog.Any("error", err))
			} else {
				log.Printf("ERROR: failed to create template renderer: %v", err)
			}
			return nil
		}
	}

	return &UIHandlers{
		T:                tr,
		Auth:             services.Auth,
		UserSvc:          services.Users,
		AdminSvc:         services.Administrators,
		PaymentSvc:       services.Payments,
		PlanSvc:          services.Plans,
		SubscriptionSvc:  services.Subscriptions,
		APIKeySvc:        services.APIKeys,
		ProfileSvc:       services.Profile,
		PolicySvc:        services.Policies,
		DashboardSvc:     services.Dashboard,
		MaxVisible:       services.MaxVisible,
		MaxVisibleMobile: services.MaxVisibleMobile,
		CookieDomain:     services.CookieDomain,
		IsDev:            services.IsDev,
		Logger:           services.Logger,
	}
}

func newTemplateRenderer(services RouterServices) (*TemplateRenderer, error) {
	var templateFS, criticalCSSFS fs.FS
	var resolver *AssetResolver

	diskManifestPath := filepath.Join("frontend", "static", "manifest.json")
	if services.IsDev {
		templateFS, criticalCSSFS, resolver = setupDevMode(diskManifestPath)
	} else {
		templateFS, criticalCSSFS, resolver = setupProdMode(diskManifestPath)
	}
	if resolver == nil {
		resolver = &AssetResolver{}
	}

	return NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS:    templateFS,
		Resolver:      resolver,
		CriticalCSSFS: criticalCSSFS,
		DevMode:       services.IsDev,
		Logger:        services.Logger,
	})
}

// staticWithFallback serves /static/* assets.
// In dev mode (isDev=true), serves from disk for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticWithFallback(isDev bool) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}

	staticSub, err := fs.Sub(subadmin.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		// Fallback to disk serving if embed fails
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// hashedFilePattern matches content-hashed filenames including optional .map (e.g., app.abc12345.js).
var hashedFilePattern = regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

// staticWithCacheHeaders wraps a static file handler to add appropriate cache headers.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hashedFilePattern.MatchString(r.URL.Path) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	h.mux.ServeHTTP(cw, r)

	if cw.status == http.StatusNotFound {
		// For missing static assets, preserve the default file server response
		if strings.HasPrefix(r.URL.Path, "/static/") {
			cw.flushTo(w)
			return
		}
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}

// uiRouteConfig holds configuration for UI route registration.
type uiRouteConfig struct {
	Auth           SessionProvider
	CookieDomain   string
	LoginRateLimit int
}

func (cfg uiRouteConfig) csrf() func(http.Handler) http.Handler {
	return CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
}

// publicWrap only applies CSRF protection; used by the sign-in and reset pages.
func (cfg uiRouteConfig) publicWrap() func(http.Handler) http.Handler {
	return cfg.csrf()
}

// authWrap requires a session (when auth is configured) and CSRF protection.
func (cfg uiRouteConfig) authWrap() func(http.Handler) http.Handler {
	csrf := cfg.csrf()
	if cfg.Auth == nil {
		return csrf
	}
	requireAuth := RequireAuthBrowser(cfg.Auth)
	return func(h http.Handler) http.Handler {
		return requireAuth(csrf(h))
	}
}

// superWrap additionally requires a super administrator.
func (cfg uiRouteConfig) superWrap() func(http.Handler) http.Handler {
	csrf := cfg.csrf()
	if cfg.Auth == nil {
		return csrf
	}
	requireAuth := RequireAuthBrowser(cfg.Auth)
	return func(h http.Handler) http.Handler {
		return requireAuth(RequireSuperAdminBrowser(csrf(h)))
	}
}

// registerUIRoutes delegates to per-domain UI route registration functions (<=3 params each).
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	registerUIAuthRoutes(mux, h, cfg)
	registerUIDashboardRoutes(mux, h, cfg)
	registerUIUserRoutes(mux, h, cfg)
	registerUIAdministratorRoutes(mux, h, cfg)
	registerUIBillingRoutes(mux, h, cfg)
	registerUIPlanRoutes(mux, h, cfg)
	registerUISettingsRoutes(mux, h, cfg)
}

// registerUIAuthRoutes wires the sign-in, sign-out and password reset pages.
func registerUIAuthRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.publicWrap()
	login := http.Handler(http.HandlerFunc(h.Login))
	if cfg.LoginRateLimit > 0 {
		login = LoginRateLimit(cfg.LoginRateLimit, h.LoginRateLimited)(login)
	}
	mux.Handle("GET /login", wrap(http.HandlerFunc(h.LoginPage)))
	mux.Handle("POST /login", wrap(login))
	mux.Handle("POST /logout", wrap(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /forgot-password", wrap(http.HandlerFunc(h.ForgotPasswordPage)))
	mux.Handle("POST /forgot-password", wrap(http.HandlerFunc(h.ForgotPassword)))
	mux.Handle("GET /verify-otp", wrap(http.HandlerFunc(h.VerifyOTPPage)))
	mux.Handle("POST /verify-otp", wrap(http.HandlerFunc(h.VerifyOTP)))
	mux.Handle("GET /reset-password", wrap(http.HandlerFunc(h.ResetPasswordPage)))
	mux.Handle("POST /reset-password", wrap(http.HandlerFunc(h.ResetPassword)))
}

// registerUIDashboardRoutes wires the home page.
func registerUIDashboardRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /{$}", wrap(http.HandlerFunc(h.Index)))
}

func registerUIUserRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /users", wrap(http.HandlerFunc(h.Users)))
	mux.Handle("GET /users/{id}/toggle", wrap(http.HandlerFunc(h.UserToggleConfirm)))
	mux.Handle("POST /users/{id}/toggle", wrap(http.HandlerFunc(h.UserToggle)))
	mux.Handle("GET /users/{id}/delete", wrap(http.HandlerFunc(h.UserDeleteConfirm)))
	mux.Handle("POST /users/{id}/delete", wrap(http.HandlerFunc(h.UserDelete)))
}

// registerUIAdministratorRoutes lets every administrator read the list; changes need a super administrator.
func registerUIAdministratorRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapSuper := cfg.superWrap()
	mux.Handle("GET /administrators", wrap(http.HandlerFunc(h.Administrators)))
	mux.Handle("GET /administrators/new", wrapSuper(http.HandlerFunc(h.AdministratorNew)))
	mux.Handle("POST /administrators", wrapSuper(http.HandlerFunc(h.AdministratorCreate)))
	mux.Handle("GET /administrators/{id}/edit", wrapSuper(http.HandlerFunc(h.AdministratorEdit)))
	mux.Handle("POST /administrators/{id}", wrapSuper(http.HandlerFunc(h.AdministratorUpdate)))
	mux.Handle("GET /administrators/{id}/delete", wrapSuper(http.HandlerFunc(h.AdministratorDeleteConfirm)))
	mux.Handle("POST /administrators/{id}/delete", wrapSuper(http.HandlerFunc(h.AdministratorDelete)))
}

func registerUIBillingRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /payments", wrap(http.HandlerFunc(h.Payments)))
	mux.Handle("GET /subscriptions", wrap(http.HandlerFunc(h.Subscriptions)))
	mux.Handle("GET /customers", wrap(http.HandlerFunc(h.Customers)))
}

func registerUIPlanRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /plans", wrap(http.HandlerFunc(h.Plans)))
	mux.Handle("GET /plans/new", wrap(http.HandlerFunc(h.PlanNew)))
	mux.Handle("POST /plans", wrap(http.HandlerFunc(h.PlanCreate)))
	mux.Handle("POST /plans/sync", wrap(http.HandlerFunc(h.PlanSync)))
	mux.Handle("GET /plans/bulk-delete", wrap(http.HandlerFunc(h.PlanBulkDeleteConfirm)))
	mux.Handle("POST /plans/bulk-delete", wrap(http.HandlerFunc(h.PlanBulkDelete)))
	mux.Handle("GET /plans/{id}", wrap(http.HandlerFunc(h.PlanView)))
	mux.Handle("GET /plans/{id}/edit", wrap(http.HandlerFunc(h.PlanEdit)))
	mux.Handle("POST /plans/{id}", wrap(http.HandlerFunc(h.PlanUpdate)))
	mux.Handle("GET /plans/{id}/delete", wrap(http.HandlerFunc(h.PlanDeleteConfirm)))
	mux.Handle("POST /plans/{id}/delete", wrap(http.HandlerFunc(h.PlanDelete)))
}

// registerUISettingsRoutes wires API keys, the profile and the policy documents.
func registerUISettingsRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /api-keys", wrap(http.HandlerFunc(h.APIKeys)))
	mux.Handle("GET /api-keys/{key}/edit", wrap(http.HandlerFunc(h.APIKeyEdit)))
	mux.Handle("POST /api-keys/{key}", wrap(http.HandlerFunc(h.APIKeyUpdate)))
	mux.Handle("GET /profile", wrap(http.HandlerFunc(h.Profile)))
	mux.Handle("POST /profile", wrap(http.HandlerFunc(h.ProfileUpdate)))
	mux.Handle("POST /profile/password", wrap(http.HandlerFunc(h.ProfileChangePassword)))
	mux.Handle("GET /policies/{kind}", wrap(http.HandlerFunc(h.Policy)))
	mux.Handle("GET /policies/{kind}/edit", wrap(http.HandlerFunc(h.PolicyEdit)))
	mux.Handle("POST /policies/{kind}", wrap(http.HandlerFunc(h.PolicyUpdate)))
}
