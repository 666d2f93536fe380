package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/target/subscription-admin/internal/domain/auth"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/ports"
	"github.com/target/subscription-admin/internal/validate"
)

// AuthSessionConfig tunes session lifetimes.
type AuthSessionConfig struct {
	SessionTTL    time.Duration
	RememberMeTTL time.Duration
	Logger        *slog.Logger
	Now           func() time.Time
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Accounts ports.AccountAPI
	Sessions ports.SessionStore
	Config   AuthSessionConfig
}

// AuthService owns the dashboard session lifecycle: login creates a session around the backend
// tokens, logout destroys it.
type AuthService struct {
	accounts ports.AccountAPI
	sessions ports.SessionStore
	cfg      AuthSessionConfig
	logger   *slog.Logger
}

// ErrSessionExpired is returned by GetSession for sessions past their expiry.
var ErrSessionExpired = errors.New("session expired")

// sessionRevoker is implemented by stores that index sessions per user.
type sessionRevoker interface {
	DeleteForUser(ctx context.Context, userID string) (int, error)
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Accounts == nil {
		panic("AccountAPI is required")
	}
	if opts.Sessions == nil {
		panic("SessionStore is required")
	}
	cfg := opts.Config
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}
	if cfg.RememberMeTTL < cfg.SessionTTL {
		cfg.RememberMeTTL = cfg.SessionTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		accounts: opts.Accounts,
		sessions: opts.Sessions,
		cfg:      cfg,
		logger:   logger.With("component", "auth"),
	}
}

// Login verifies credentials with the backend and persists a new session holding its tokens.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*domainauth.Session, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	resp, err := s.accounts.Login(ctx, req)
	if err != nil {
		s.logger.WarnContext(ctx, "login rejected", "email", req.Email, "error", err)
		return nil, apperrors.FromAPIError(err)
	}
	tokens := resp.Data.Tokens
	if tokens.Access == "" {
		return nil, apperrors.Internal("The login response did not include an access token")
	}

	now := s.cfg.Now()
	user := resp.Data.User
	email := user.Email
	if email == "" {
		email = req.Email
	}
	session := domainauth.Session{
		ID:           generateSessionID(),
		UserID:       user.ID.String(),
		Name:         firstNonEmpty(user.Name, user.Username),
		Email:        email,
		Role:         domainauth.ParseRole(user.Role),
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
		RememberMe:   req.RememberMe,
		CreatedAt:    now,
		ExpiresAt:    s.sessionExpiry(now, tokens.Access, req.RememberMe),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	s.logger.InfoContext(ctx, "administrator signed in",
		"user_id", session.UserID,
		"role", session.Role,
		"expires_at", session.ExpiresAt)
	return &session, nil
}

// sessionExpiry is the earlier of the access token's exp claim and the configured lifetime.
func (s *AuthService) sessionExpiry(now time.Time, accessToken string, rememberMe bool) time.Time {
	ttl := s.cfg.SessionTTL
	if rememberMe {
		ttl = s.cfg.RememberMeTTL
	}
	limit := now.Add(ttl)
	if exp, ok := tokenExpiry(accessToken); ok && exp.After(now) && exp.Before(limit) {
		return exp
	}
	return limit
}

// tokenExpiry reads the exp claim of a JWT without verifying it; the backend verifies tokens.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time.UTC(), true
}

// GetSession retrieves a live session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.cfg.Now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// RevokeUser removes every session of userID when the store supports it, and reports how many were removed.
func (s *AuthService) RevokeUser(ctx context.Context, userID string) (int, error) {
	return revokeUserSessions(ctx, s.sessions, userID)
}

func revokeUserSessions(ctx context.Context, store ports.SessionStore, userID string) (int, error) {
	revoker, ok := store.(sessionRevoker)
	if !ok || userID == "" {
		return 0, nil
	}
	n, err := revoker.DeleteForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("revoke sessions: %w", err)
	}
	return n, nil
}

// RequestPasswordReset asks the backend to email a one-time code.
func (s *AuthService) RequestPasswordReset(ctx context.Context, req model.SendOTPRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if _, err := s.accounts.SendPasswordResetOTP(ctx, req); err != nil {
		return apperrors.FromAPIError(err)
	}
	s.logger.InfoContext(ctx, "password reset code requested", "email", req.Email)
	return nil
}

// VerifyResetCode exchanges the emailed code for a reset token.
func (s *AuthService) VerifyResetCode(ctx context.Context, req model.VerifyOTPRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", err
	}
	resp, err := s.accounts.VerifyPasswordResetOTP(ctx, req)
	if err != nil {
		return "", apperrors.FromAPIError(err)
	}
	if resp.Data.ResetToken == "" {
		return "", apperrors.Internal("The verification response did not include a reset token")
	}
	return resp.Data.ResetToken, nil
}

// ResetPassword sets a new password using a verified reset token.
func (s *AuthService) ResetPassword(ctx context.Context, req model.SetPasswordRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if _, err := s.accounts.SetPassword(ctx, req); err != nil {
		return apperrors.FromAPIError(err)
	}
	s.logger.InfoContext(ctx, "password reset completed")
	return nil
}

// generateSessionID creates a random, URL-safe session ID.
func generateSessionID() string {
	return uuid.New().String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
