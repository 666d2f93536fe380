package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/mocks"
	"github.com/target/subscription-admin/internal/testutil"
)

func TestAdministratorService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdministratorsAPI(ctrl)
	svc := NewAdministratorService(AdministratorServiceOptions{API: api})
	ctx := context.Background()

	req := testutil.NewAdministratorRequest().WithEmail("grace@example.com").Build()
	gomock.InOrder(
		api.EXPECT().ListAdministrators(gomock.Any(), 1).Return(testutil.AdministratorsPage(1, 10, 2), nil),
		api.EXPECT().CreateAdministrator(gomock.Any(), req).Return(&model.AdministratorResponse{
			Success: true,
			Data:    model.AdministratorRecord{ID: "3", Name: req.Name, Email: req.Email, AccessLevel: "admin"},
		}, nil),
		api.EXPECT().ListAdministrators(gomock.Any(), 1).Return(testutil.AdministratorsPage(1, 10, 3), nil),
	)

	list := svc.NewList(1)
	require.NoError(t, list.Load(ctx))

	created, err := svc.Create(ctx, list, req)
	require.NoError(t, err)
	assert.Equal(t, model.ID("3"), created.ID)
	assert.Len(t, list.State().Items, 3)
}

func TestAdministratorService_CreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdministratorsAPI(ctrl)
	svc := NewAdministratorService(AdministratorServiceOptions{API: api})

	req := testutil.NewAdministratorRequest().WithPassword("short").WithEmail("nope").Build()
	_, err := svc.Create(context.Background(), nil, req)
	require.Error(t, err)

	fields := apperrors.GetFields(err)
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "email")
}

func TestAdministratorService_CreateBackendFieldErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdministratorsAPI(ctrl)
	svc := NewAdministratorService(AdministratorServiceOptions{API: api})

	req := testutil.NewAdministratorRequest().Build()
	api.EXPECT().CreateAdministrator(gomock.Any(), req).Return(nil, &backendapi.APIError{
		Message: "Validation failed",
		Details: map[string][]string{"email": {"An administrator with this email already exists."}},
		Status:  400,
	})

	_, err := svc.Create(context.Background(), nil, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "email", apperrors.GetField(err))
	assert.Equal(t, "An administrator with this email already exists.", apperrors.GetFields(err)["email"])
}

func TestAdministratorService_UpdatePatchesRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdministratorsAPI(ctrl)
	svc := NewAdministratorService(AdministratorServiceOptions{API: api})
	ctx := context.Background()

	page := testutil.AdministratorsPage(1, 10, 2)
	page.Data.Users[0].Image = "https://cdn.example.com/a.png"
	req := model.UpdateAdministratorRequest{
		Name:        "Renamed",
		Email:       "admin1@example.com",
		AccessLevel: model.AccessLevelSuperAdmin,
	}
	api.EXPECT().ListAdministrators(gomock.Any(), 1).Return(page, nil)
	api.EXPECT().UpdateAdministrator(gomock.Any(), "1", req).Return(&model.AdministratorResponse{
		Success: true,
		Data: model.AdministratorRecord{
			ID:          "1",
			Name:        "Renamed",
			Email:       "admin1@example.com",
			AccessLevel: "superadmin",
			IsActive:    true,
		},
	}, nil)

	list := svc.NewList(1)
	require.NoError(t, list.Load(ctx))
	require.NoError(t, svc.Update(ctx, list, "1", req))

	row, ok := FindItem(list, svc.ByID("1"))
	require.True(t, ok)
	assert.Equal(t, "Renamed", row.Name)
	assert.Equal(t, "superadmin", row.AccessLevel)
	assert.Equal(t, "https://cdn.example.com/a.png", row.Image)
}

func TestAdministratorService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdministratorsAPI(ctrl)
	svc := NewAdministratorService(AdministratorServiceOptions{API: api})
	ctx := context.Background()

	api.EXPECT().ListAdministrators(gomock.Any(), 1).Return(testutil.AdministratorsPage(1, 10, 2), nil)
	api.EXPECT().DeleteAdministrator(gomock.Any(), "2").Return(&model.MessageResponse{Message: "deleted"}, nil)

	list := svc.NewList(1)
	require.NoError(t, list.Load(ctx))
	require.NoError(t, svc.Delete(ctx, list, "2"))

	_, ok := FindItem(list, svc.ByID("2"))
	assert.False(t, ok)
	assert.Len(t, list.State().Items, 1)
}

func TestAdministratorService_DeleteOnlyRowOnLastPageStepsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdministratorsAPI(ctrl)
	svc := NewAdministratorService(AdministratorServiceOptions{API: api})
	ctx := context.Background()

	// Seven administrators at three per page leave id 7 alone on page 3 of 3.
	gomock.InOrder(
		api.EXPECT().ListAdministrators(gomock.Any(), 3).Return(testutil.AdministratorsPage(3, 3, 7), nil),
		api.EXPECT().DeleteAdministrator(gomock.Any(), "7").Return(&model.MessageResponse{Message: "deleted"}, nil),
		api.EXPECT().ListAdministrators(gomock.Any(), 2).Return(testutil.AdministratorsPage(2, 3, 6), nil),
	)

	list := svc.NewList(3)
	require.NoError(t, list.Load(ctx))
	require.Len(t, list.State().Items, 1)
	require.Equal(t, 3, list.State().Meta.TotalPages)

	require.NoError(t, svc.Delete(ctx, list, "7"))

	st := list.State()
	assert.Equal(t, 2, st.Query.Page)
	assert.Equal(t, 2, st.Meta.CurrentPage)
	assert.Equal(t, 2, st.Meta.TotalPages)
	require.Len(t, st.Items, 3)
	assert.Equal(t, model.ID("4"), st.Items[0].ID)
}
