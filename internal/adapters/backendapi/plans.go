package backendapi

import (
	"context"

	"github.com/target/subscription-admin/internal/domain/model"
)

const plansPath = "payment/admin/plans/"

// ListPlans returns every plan. The endpoint is not paginated.
func (c *Client) ListPlans(ctx context.Context) (*model.PlansListResponse, error) {
	var out model.PlansListResponse
	if err := c.get(ctx, plansPath, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPlan fetches a single plan.
func (c *Client) GetPlan(ctx context.Context, id string) (*model.PlanResponse, error) {
	var out model.PlanResponse
	if err := c.get(ctx, plansPath+escapeID(id)+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePlan creates a plan and its Stripe counterpart.
func (c *Client) CreatePlan(ctx context.Context, req model.CreatePlanRequest) (*model.PlanResponse, error) {
	var out model.PlanResponse
	if err := c.post(ctx, plansPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePlan applies a partial update to a plan.
func (c *Client) UpdatePlan(ctx context.Context, id string, req model.UpdatePlanRequest) (*model.PlanResponse, error) {
	var out model.PlanResponse
	if err := c.patch(ctx, plansPath+escapeID(id)+"/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePlan removes a plan.
func (c *Client) DeletePlan(ctx context.Context, id string) (*model.MessageResponse, error) {
	var out model.MessageResponse
	if err := c.delete(ctx, plansPath+escapeID(id)+"/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncPlans pushes every plan to Stripe.
func (c *Client) SyncPlans(ctx context.Context) (*model.BulkResponse, error) {
	var out model.BulkResponse
	if err := c.post(ctx, plansPath+"bulk-sync/", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePlans removes several plans in one call.
func (c *Client) DeletePlans(ctx context.Context, req model.BulkDeletePlansRequest) (*model.BulkResponse, error) {
	var out model.BulkResponse
	if err := c.post(ctx, plansPath+"bulk-delete/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
