package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/mocks"
	"github.com/target/subscription-admin/internal/testutil"
)

func TestNewUserService_RequiredDependency(t *testing.T) {
	assert.Panics(t, func() { NewUserService(UserServiceOptions{}) })
}

func TestUserService_ListLoadsRequestedPageAndFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUsersAPI(ctrl)
	svc := NewUserService(UserServiceOptions{API: api})
	ctx := context.Background()

	api.EXPECT().
		ListUsers(gomock.Any(), 2, model.UserFilterFree).
		Return(testutil.UsersPage(2, 10, 25, model.UserFilterFree), nil)

	list := svc.NewList(2, model.UserFilterFree)
	require.NoError(t, list.Load(ctx))

	st := list.State()
	assert.Equal(t, listing.StatusLoaded, st.Status)
	assert.Len(t, st.Items, 10)
	assert.Equal(t, "11", st.Items[0].ID.String())
	assert.Equal(t, 25, st.Counts["free"])
	assert.Equal(t, 3, st.Meta.TotalPages)
}

func TestUserService_FetchErrorIsMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUsersAPI(ctrl)
	svc := NewUserService(UserServiceOptions{API: api})

	api.EXPECT().
		ListUsers(gomock.Any(), 1, model.UserFilterAll).
		Return(nil, &backendapi.APIError{Message: "Authentication credentials were not provided.", Status: 401})

	list := svc.NewList(1, model.UserFilterAll)
	err := list.Load(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, listing.StatusErrored, list.State().Status)
}

func TestUserService_SetDisabledPatchesRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUsersAPI(ctrl)
	svc := NewUserService(UserServiceOptions{API: api})
	ctx := context.Background()

	api.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).Return(testutil.UsersPage(1, 10, 3, model.UserFilterAll), nil)
	api.EXPECT().SetUserDisabled(gomock.Any(), "2", true).Return(&model.StatusResponse{Success: true}, nil)

	list := svc.NewList(1, model.UserFilterAll)
	require.NoError(t, list.Load(ctx))
	require.NoError(t, svc.SetDisabled(ctx, list, "2", true))

	items := list.State().Items
	assert.False(t, items[0].IsDisabled)
	assert.True(t, items[1].IsDisabled)
}

func TestUserService_SetDisabledFailureLeavesRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUsersAPI(ctrl)
	svc := NewUserService(UserServiceOptions{API: api})
	ctx := context.Background()

	api.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).Return(testutil.UsersPage(1, 10, 3, model.UserFilterAll), nil)
	api.EXPECT().SetUserDisabled(gomock.Any(), "2", true).
		Return(nil, &backendapi.APIError{Message: "User not found", Status: 404})

	list := svc.NewList(1, model.UserFilterAll)
	require.NoError(t, list.Load(ctx))

	err := svc.SetDisabled(ctx, list, "2", true)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, list.State().Items[1].IsDisabled)
}

func TestUserService_DeleteOnlyItemStepsBackOnePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUsersAPI(ctrl)
	svc := NewUserService(UserServiceOptions{API: api})
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().ListUsers(gomock.Any(), 3, model.UserFilterAll).Return(testutil.UsersPage(3, 10, 21, model.UserFilterAll), nil),
		api.EXPECT().DeleteUser(gomock.Any(), "21").Return(&model.StatusResponse{Success: true}, nil),
		api.EXPECT().ListUsers(gomock.Any(), 2, model.UserFilterAll).Return(testutil.UsersPage(2, 10, 20, model.UserFilterAll), nil),
	)

	list := svc.NewList(3, model.UserFilterAll)
	require.NoError(t, list.Load(ctx))
	require.Len(t, list.State().Items, 1)

	require.NoError(t, svc.Delete(ctx, list, "21"))

	st := list.State()
	assert.Equal(t, 2, st.Query.Page)
	assert.Len(t, st.Items, 10)
}

func TestUserService_DeleteDecrementsCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUsersAPI(ctrl)
	svc := NewUserService(UserServiceOptions{API: api})
	ctx := context.Background()

	page := testutil.UsersPage(1, 10, 3, model.UserFilterAll)
	page.FilterCounts.Free = 3
	api.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).Return(page, nil)
	api.EXPECT().DeleteUser(gomock.Any(), "1").Return(&model.StatusResponse{Success: true}, nil)

	list := svc.NewList(1, model.UserFilterAll)
	require.NoError(t, list.Load(ctx))
	require.NoError(t, svc.Delete(ctx, list, "1"))

	st := list.State()
	assert.Len(t, st.Items, 2)
	assert.Equal(t, 2, st.Counts["all"])
	assert.Equal(t, 2, st.Counts["free"])
	assert.Equal(t, 2, st.Meta.TotalCount)
}

func TestUserService_WithoutList(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUsersAPI(ctrl)
	svc := NewUserService(UserServiceOptions{API: api})
	ctx := context.Background()

	api.EXPECT().SetUserDisabled(gomock.Any(), "9", false).Return(&model.StatusResponse{Success: true}, nil)
	api.EXPECT().DeleteUser(gomock.Any(), "9").Return(&model.StatusResponse{Success: true}, nil)

	require.NoError(t, svc.SetDisabled(ctx, nil, "9", false))
	require.NoError(t, svc.Delete(ctx, nil, "9"))

	assert.True(t, apperrors.IsValidation(svc.Delete(ctx, nil, "")))
}
