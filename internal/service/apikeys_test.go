package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/mocks"
)

func apiKeysResponse() *model.APIKeysResponse {
	return &model.APIKeysResponse{
		Success: true,
		APIKeys: []model.APIKey{
			{Key: "STRIPE_SECRET_KEY", Label: "Stripe secret", Category: "payments", Value: "sk_****", IsSet: true, ShouldMask: true},
			{Key: "OPENAI_API_KEY", Label: "OpenAI", Category: "ai"},
			{Key: "STRIPE_WEBHOOK_SECRET", Label: "Stripe webhook", Category: "payments"},
		},
		TotalCount:      3,
		ConfiguredCount: 1,
	}
}

func TestAPIKeyService_UpdatePatchesMaskedEcho(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIKeysAPI(ctrl)
	svc := NewAPIKeyService(APIKeyServiceOptions{API: api})
	ctx := context.Background()

	api.EXPECT().ListAPIKeys(gomock.Any()).Return(apiKeysResponse(), nil)
	api.EXPECT().UpdateAPIKey(gomock.Any(), "OPENAI_API_KEY", model.UpdateAPIKeyRequest{Value: "sk-new"}).
		Return(&model.UpdateAPIKeyResponse{
			Success: true,
			APIKey:  model.APIKey{Key: "OPENAI_API_KEY", Label: "OpenAI", Category: "ai", Value: "sk-****", IsSet: true, ShouldMask: true},
		}, nil)

	list := svc.NewList()
	require.NoError(t, list.Load(ctx))
	require.NoError(t, svc.Update(ctx, list, "OPENAI_API_KEY", model.UpdateAPIKeyRequest{Value: "  sk-new  "}))

	row, ok := FindItem(list, svc.ByKey("OPENAI_API_KEY"))
	require.True(t, ok)
	assert.True(t, row.IsSet)
	assert.Equal(t, "sk-****", row.Value)
	assert.Empty(t, row.EditableValue())
}

func TestAPIKeyService_UpdateRequiresValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIKeysAPI(ctrl)
	svc := NewAPIKeyService(APIKeyServiceOptions{API: api})

	err := svc.Update(context.Background(), nil, "OPENAI_API_KEY", model.UpdateAPIKeyRequest{Value: "   "})
	require.Error(t, err)
	assert.Contains(t, apperrors.GetFields(err), "value")

	err = svc.Update(context.Background(), nil, " ", model.UpdateAPIKeyRequest{Value: "x"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGroupAPIKeys(t *testing.T) {
	groups := GroupAPIKeys(apiKeysResponse().APIKeys)
	require.Len(t, groups, 2)
	assert.Equal(t, "payments", groups[0].Category)
	assert.Len(t, groups[0].Keys, 2)
	assert.Equal(t, "ai", groups[1].Category)

	groups = GroupAPIKeys([]model.APIKey{{Key: "X"}})
	assert.Equal(t, "other", groups[0].Category)
}
