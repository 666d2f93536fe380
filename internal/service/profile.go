package service

import (
	"context"
	"log/slog"
	"strings"

	domainauth "github.com/target/subscription-admin/internal/domain/auth"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/ports"
	"github.com/target/subscription-admin/internal/validate"
)

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	API ports.ProfileAPI
	// Sessions, when set, has every session of the administrator revoked after a password change.
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// ProfileService manages the signed-in administrator's own account.
type ProfileService struct {
	api      ports.ProfileAPI
	sessions ports.SessionStore
	logger   *slog.Logger
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	if opts.API == nil {
		panic("ProfileAPI is required")
	}
	return &ProfileService{api: opts.API, sessions: opts.Sessions, logger: componentLogger(opts.Logger, "profile")}
}

// Get returns the administrator's profile.
func (s *ProfileService) Get(ctx context.Context) (model.Profile, error) {
	resp, err := s.api.GetProfile(ctx)
	if err != nil {
		return model.Profile{}, apperrors.FromAPIError(err)
	}
	return resp.Data, nil
}

// Update changes the administrator's name and phone.
func (s *ProfileService) Update(ctx context.Context, req model.UpdateProfileRequest) (model.Profile, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validate.Struct(req); err != nil {
		return model.Profile{}, err
	}
	resp, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return model.Profile{}, apperrors.FromAPIError(err)
	}
	s.logger.InfoContext(ctx, "profile updated", "user_id", resp.Data.ID)
	return resp.Data, nil
}

// ChangePassword sets a new password and then signs the administrator out everywhere.
// It reports how many sessions were revoked.
func (s *ProfileService) ChangePassword(
	ctx context.Context,
	sess *domainauth.Session,
	req model.ChangePasswordRequest,
) (int, error) {
	if err := validate.Struct(req); err != nil {
		return 0, err
	}
	if _, err := s.api.ChangePassword(ctx, req); err != nil {
		return 0, apperrors.FromAPIError(err)
	}

	if sess == nil || s.sessions == nil {
		return 0, nil
	}
	revoked, err := revokeUserSessions(ctx, s.sessions, sess.UserID)
	if err != nil {
		s.logger.WarnContext(ctx, "revoke sessions after password change failed", "user_id", sess.UserID, "error", err)
	}
	if revoked == 0 {
		// Stores without a per-user index still drop the current session.
		if delErr := s.sessions.Delete(ctx, sess.ID); delErr != nil {
			s.logger.WarnContext(ctx, "delete session after password change failed", "error", delErr)
		} else {
			revoked = 1
		}
	}
	s.logger.InfoContext(ctx, "password changed", "user_id", sess.UserID, "sessions_revoked", revoked)
	return revoked, nil
}
