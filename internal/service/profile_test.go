package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
	domainauth "github.com/target/subscription-admin/internal/domain/auth"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/mocks"
	mockauth "github.com/target/subscription-admin/internal/mocks/auth"
)

func TestProfileService_UpdateTrimsAndValidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockProfileAPI(ctrl)
	svc := NewProfileService(ProfileServiceOptions{API: api})
	ctx := context.Background()

	_, err := svc.Update(ctx, model.UpdateProfileRequest{Name: "   "})
	require.Error(t, err)
	assert.Contains(t, apperrors.GetFields(err), "name")

	api.EXPECT().UpdateProfile(gomock.Any(), model.UpdateProfileRequest{Name: "Ada", Phone: "555"}).
		Return(&model.ProfileResponse{Data: model.Profile{ID: "1", Name: "Ada", Phone: "555"}}, nil)

	profile, err := svc.Update(ctx, model.UpdateProfileRequest{Name: " Ada ", Phone: " 555 "})
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)
}

func TestProfileService_ChangePasswordRevokesSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockProfileAPI(ctrl)
	sessions := mockauth.NewMemorySessionStore()
	svc := NewProfileService(ProfileServiceOptions{API: api, Sessions: sessions})
	ctx := context.Background()

	expires := time.Now().Add(time.Hour)
	current := domainauth.Session{ID: "a", UserID: "1", ExpiresAt: expires}
	require.NoError(t, sessions.Save(ctx, current))
	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "b", UserID: "1", ExpiresAt: expires}))
	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "c", UserID: "2", ExpiresAt: expires}))

	req := model.ChangePasswordRequest{OldPassword: "old-password", NewPassword: "new-password", ConfirmPassword: "new-password"}
	api.EXPECT().ChangePassword(gomock.Any(), req).Return(&model.MessageResponse{Message: "Password changed"}, nil)

	revoked, err := svc.ChangePassword(ctx, &current, req)
	require.NoError(t, err)
	assert.Equal(t, 2, revoked)
	assert.Equal(t, 1, sessions.Len())
}

func TestProfileService_ChangePasswordErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockProfileAPI(ctrl)
	sessions := mockauth.NewMemorySessionStore()
	svc := NewProfileService(ProfileServiceOptions{API: api, Sessions: sessions})
	ctx := context.Background()
	current := domainauth.Session{ID: "a", UserID: "1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, sessions.Save(ctx, current))

	_, err := svc.ChangePassword(ctx, &current, model.ChangePasswordRequest{
		OldPassword:     "same-password",
		NewPassword:     "same-password",
		ConfirmPassword: "same-password",
	})
	require.Error(t, err)
	assert.Contains(t, apperrors.GetFields(err), "new_password")

	req := model.ChangePasswordRequest{OldPassword: "wrong-password", NewPassword: "new-password", ConfirmPassword: "new-password"}
	api.EXPECT().ChangePassword(gomock.Any(), req).Return(nil, &backendapi.APIError{
		Message: "Old password is incorrect",
		Details: map[string][]string{"old_password": {"Old password is incorrect"}},
		Status:  400,
	})

	_, err = svc.ChangePassword(ctx, &current, req)
	require.Error(t, err)
	assert.Equal(t, "old_password", apperrors.GetField(err))
	assert.Equal(t, 1, sessions.Len())
}
