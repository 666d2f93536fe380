package ports

// Package ports defines interfaces (hexagonal ports) for the dashboard's collaborators.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/target/subscription-admin/internal/domain/auth"
	"github.com/target/subscription-admin/internal/domain/model"
)

// SessionStore persists and retrieves administrator sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// AccountAPI covers the backend's credential endpoints.
type AccountAPI interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	SendPasswordResetOTP(ctx context.Context, req model.SendOTPRequest) (*model.MessageResponse, error)
	VerifyPasswordResetOTP(ctx context.Context, req model.VerifyOTPRequest) (*model.VerifyOTPResponse, error)
	SetPassword(ctx context.Context, req model.SetPasswordRequest) (*model.SetPasswordResponse, error)
}

// ProfileAPI covers the signed-in administrator's own account.
type ProfileAPI interface {
	GetProfile(ctx context.Context) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (*model.ProfileResponse, error)
	ChangePassword(ctx context.Context, req model.ChangePasswordRequest) (*model.MessageResponse, error)
}
