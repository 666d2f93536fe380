package httpx

import (
	"maps"
	"net/http"
	"net/url"
	"time"

	domainauth "github.com/target/subscription-admin/internal/domain/auth"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
)

const (
	resetTokenCookie = "reset_token"
	resetTokenPath   = "/reset-password"
	resetTokenMaxAge = 10 * 60

	msgInvalidCredentials = "Invalid email or password."
	msgTooManyAttempts    = "Too many sign-in attempts. Please wait a minute and try again."
)

// loginNotices maps the notice query parameter of /login to the banner shown above the form.
//
//nolint:gochecknoglobals // static read-only lookup
var loginNotices = map[string]string{
	"signed-out":       "You have been signed out.",
	"password-reset":   "Your password has been reset. Sign in with your new password.",
	"password-changed": "Your password was changed. Please sign in again.",
}

// LoginPage renders the sign-in form. Visitors with a live session go straight to the dashboard.
// GET /login?redirect_uri=<optional>&notice=<optional>.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	redirect := safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	if h.Auth != nil && getSessionFromRequest(r, h.Auth) != nil {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}
	h.renderAuthPage(w, r, "login-page", pageMeta("Sign in", ""), map[string]any{
		"RedirectURI": redirect,
		"Notice":      loginNotices[r.URL.Query().Get("notice")],
	})
}

// Login verifies credentials, starts a session and returns the browser to where it was headed.
// POST /login.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs := bindForm(r, parseLoginForm)
	redirect := safeRedirectPath(listParam(r, "redirect_uri"))
	data := map[string]any{
		"RedirectURI": redirect,
		"FormData":    model.LoginRequest{Email: req.Email, RememberMe: req.RememberMe},
	}
	meta := pageMeta("Sign in", "")

	if len(fieldErrs) > 0 {
		h.renderAuthError(w, r, authErrorOpts{Page: "login-page", Meta: meta, Data: data, Fields: fieldErrs})
		return
	}

	session, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			err = apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, msgInvalidCredentials)
		}
		h.renderAuthError(w, r, authErrorOpts{Page: "login-page", Meta: meta, Data: data, Err: err})
		return
	}

	setSessionCookie(w, r, session, h.CookieDomain)
	redirectAfterPost(w, r, redirect)
}

// LoginRateLimited answers throttled sign-in attempts.
func (h *UIHandlers) LoginRateLimited(w http.ResponseWriter, r *http.Request) {
	h.renderAuthError(w, r, authErrorOpts{
		Page:   "login-page",
		Meta:   pageMeta("Sign in", ""),
		Data:   map[string]any{"RedirectURI": safeRedirectPath(r.URL.Query().Get("redirect_uri"))},
		Err:    apperrors.Validation(msgTooManyAttempts),
		Status: http.StatusTooManyRequests,
	})
}

// Logout destroys the session and shows the sign-in page.
// POST /logout.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.expireSession(w, r)
	redirectAfterPost(w, r, "/login?notice=signed-out")
}

// ForgotPasswordPage renders the form asking for the account email.
// GET /forgot-password.
func (h *UIHandlers) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.renderAuthPage(w, r, "forgot-password-page", pageMeta("Forgot password", ""), nil)
}

// ForgotPassword asks the backend to email a one-time code and moves on to the code form.
// POST /forgot-password.
func (h *UIHandlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs := bindForm(r, parseSendOTPForm)
	opts := authErrorOpts{
		Page:   "forgot-password-page",
		Meta:   pageMeta("Forgot password", ""),
		Data:   map[string]any{"FormData": req},
		Fields: fieldErrs,
	}
	if len(fieldErrs) > 0 {
		h.renderAuthError(w, r, opts)
		return
	}
	if err := h.Auth.RequestPasswordReset(r.Context(), req); err != nil {
		opts.Err = err
		h.renderAuthError(w, r, opts)
		return
	}
	redirectAfterPost(w, r, "/verify-otp?email="+url.QueryEscape(req.Email))
}

// VerifyOTPPage renders the one-time code form.
// GET /verify-otp?email=<email>.
func (h *UIHandlers) VerifyOTPPage(w http.ResponseWriter, r *http.Request) {
	h.renderAuthPage(w, r, "verify-otp-page", pageMeta("Verify code", ""), map[string]any{
		"FormData": model.VerifyOTPRequest{Email: r.URL.Query().Get("email")},
	})
}

// VerifyOTP exchanges the code for a reset token, kept in a short-lived HttpOnly cookie.
// POST /verify-otp.
func (h *UIHandlers) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs := bindForm(r, parseVerifyOTPForm)
	opts := authErrorOpts{
		Page:   "verify-otp-page",
		Meta:   pageMeta("Verify code", ""),
		Data:   map[string]any{"FormData": model.VerifyOTPRequest{Email: req.Email}},
		Fields: fieldErrs,
	}
	if len(fieldErrs) > 0 {
		h.renderAuthError(w, r, opts)
		return
	}
	token, err := h.Auth.VerifyResetCode(r.Context(), req)
	if err != nil {
		opts.Err = err
		h.renderAuthError(w, r, opts)
		return
	}
	setScopedCookie(w, r, scopedCookie{
		Name:   resetTokenCookie,
		Value:  token,
		Path:   resetTokenPath,
		Domain: h.CookieDomain,
		MaxAge: resetTokenMaxAge,
	})
	redirectAfterPost(w, r, resetTokenPath)
}

// ResetPasswordPage renders the new-password form. Without a verified code the flow starts over.
// GET /reset-password.
func (h *UIHandlers) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	if resetToken(r) == "" {
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}
	h.renderAuthPage(w, r, "reset-password-page", pageMeta("Reset password", ""), nil)
}

// ResetPassword sets the new password and sends the administrator to sign in with it.
// POST /reset-password.
func (h *UIHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := resetToken(r)
	if token == "" {
		redirectAfterPost(w, r, "/forgot-password")
		return
	}
	req, fieldErrs := bindForm(r, parseSetPasswordForm)
	req.Token = token
	opts := authErrorOpts{Page: "reset-password-page", Meta: pageMeta("Reset password", ""), Fields: fieldErrs}
	if len(fieldErrs) > 0 {
		h.renderAuthError(w, r, opts)
		return
	}
	if err := h.Auth.ResetPassword(r.Context(), req); err != nil {
		opts.Err = err
		h.renderAuthError(w, r, opts)
		return
	}
	clearScopedCookie(w, r, resetTokenCookie, resetTokenPath, h.CookieDomain)
	redirectAfterPost(w, r, "/login?notice=password-reset")
}

func resetToken(r *http.Request) string {
	if c, err := r.Cookie(resetTokenCookie); err == nil {
		return c.Value
	}
	return ""
}

func parseLoginForm(form url.Values) (model.LoginRequest, map[string]string) {
	return model.LoginRequest{
		Email:      formValue(form, "email"),
		Password:   form.Get("password"),
		RememberMe: formBool(form, "remember_me"),
	}, nil
}

func parseSendOTPForm(form url.Values) (model.SendOTPRequest, map[string]string) {
	return model.SendOTPRequest{Email: formValue(form, "email")}, nil
}

func parseVerifyOTPForm(form url.Values) (model.VerifyOTPRequest, map[string]string) {
	return model.VerifyOTPRequest{Email: formValue(form, "email"), OTP: formValue(form, "otp")}, nil
}

func parseSetPasswordForm(form url.Values) (model.SetPasswordRequest, map[string]string) {
	return model.SetPasswordRequest{Password1: form.Get("password1"), Password2: form.Get("password2")}, nil
}

// renderAuthPage renders one of the standalone pages shown outside the dashboard layout.
func (h *UIHandlers) renderAuthPage(w http.ResponseWriter, r *http.Request, name string, meta PageMeta, extra map[string]any) {
	data := basePageData(r, meta)
	maps.Copy(data, extra)
	if err := h.T.RenderNamed(w, name, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, name)
	}
}

// authErrorOpts groups the inputs of renderAuthError.
type authErrorOpts struct {
	Page   string
	Meta   PageMeta
	Data   map[string]any
	Fields map[string]string
	Err    error
	Status int
}

// renderAuthError re-renders a standalone page with its banner and field errors.
func (h *UIHandlers) renderAuthError(w http.ResponseWriter, r *http.Request, opts authErrorOpts) {
	if opts.Err != nil && !apperrors.IsValidation(opts.Err) && !apperrors.IsUnauthorized(opts.Err) {
		h.logger().WarnContext(r.Context(), "auth flow failed", "page", opts.Page, "error", opts.Err)
	}
	RenderError(ErrorOpts{
		W:           w,
		R:           r,
		Err:         opts.Err,
		FieldErrors: opts.Fields,
		Renderer: func(w http.ResponseWriter, r *http.Request, data any) {
			if err := h.T.RenderNamed(w, opts.Page, data); err != nil {
				h.logger().Error("failed to render auth page", "page", opts.Page, "error", err)
			}
		},
		PageMeta:   opts.Meta,
		Data:       opts.Data,
		StatusCode: opts.Status,
	})
}

// redirectAfterPost sends the browser to target after a form post; htmx gets HX-Redirect.
func redirectAfterPost(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// setSessionCookie writes the session cookie. Remember-me sessions persist until they expire;
// others end with the browser session.
func setSessionCookie(w http.ResponseWriter, r *http.Request, s *domainauth.Session, domain string) {
	maxAge := 0
	if s.RememberMe {
		maxAge = max(int(time.Until(s.ExpiresAt).Seconds()), 1)
	}
	setScopedCookie(w, r, scopedCookie{
		Name:   SessionCookieName,
		Value:  s.ID,
		Path:   "/",
		Domain: domain,
		MaxAge: maxAge,
	})
}

// scopedCookie groups the attributes of an HttpOnly cookie.
type scopedCookie struct {
	Name   string
	Value  string
	Path   string
	Domain string
	MaxAge int
}

func setScopedCookie(w http.ResponseWriter, r *http.Request, c scopedCookie) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   c.MaxAge,
	})
}

// clearCookie clears a root-path cookie by setting it to expire immediately.
func clearCookie(w http.ResponseWriter, r *http.Request, name, domain string) {
	clearScopedCookie(w, r, name, "/", domain)
}

// clearScopedCookie mirrors the attributes used when the cookie was set so browsers drop it.
func clearScopedCookie(w http.ResponseWriter, r *http.Request, name, path, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
