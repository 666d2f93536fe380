package service

import (
	"context"
	"testing"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/mocks"
)

func TestPolicyService_GetSanitizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockPoliciesAPI(ctrl)
	svc := NewPolicyService(PolicyServiceOptions{API: api})

	api.EXPECT().GetPolicy(gomock.Any(), model.PolicyTerms, model.DefaultPolicyID).Return(&model.PolicyResponse{
		Success: true,
		Data:    model.Policy{ID: 1, Content: "<p>Terms</p><script>steal()</script>"},
	}, nil)

	policy, err := svc.Get(context.Background(), model.PolicyTerms)
	require.NoError(t, err)
	assert.Equal(t, "<p>Terms</p>", policy.Content)
	assert.Equal(t, "Terms & Conditions", policy.Title)
}

func TestPolicyService_UpdateSanitizesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockPoliciesAPI(ctrl)
	svc := NewPolicyService(PolicyServiceOptions{API: api, DocumentID: 3})

	api.EXPECT().UpdatePolicy(gomock.Any(), model.PolicyPrivacy, 3, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.PolicyKind, _ int, req model.UpdatePolicyRequest) (*model.PolicyResponse, error) {
			assert.Equal(t, "<p>Updated</p>", req.Content.String)
			assert.Equal(t, "2.0", req.Version.String)
			return &model.PolicyResponse{Success: true, Data: model.Policy{ID: 3, Version: "2.0", Content: req.Content.String}}, nil
		})

	policy, err := svc.Update(context.Background(), model.PolicyPrivacy, model.UpdatePolicyRequest{
		Content: null.StringFrom(`<p onmouseover="x()">Updated</p><style>p{}</style>`),
		Version: null.StringFrom("2.0"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2.0", policy.Version)
}

func TestPolicyService_UpdateRejectsBadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockPoliciesAPI(ctrl)
	svc := NewPolicyService(PolicyServiceOptions{API: api})

	_, err := svc.Update(context.Background(), model.PolicyPrivacy, model.UpdatePolicyRequest{
		EffectiveDate: null.StringFrom("14/03/2025"),
	})
	require.Error(t, err)
	assert.Contains(t, apperrors.GetFields(err), "effective_date")
}
