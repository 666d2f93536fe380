package backendapi

import (
	"context"
	"fmt"

	"github.com/target/subscription-admin/internal/domain/model"
)

func policyPath(kind model.PolicyKind, id int) string {
	if id < 1 {
		id = model.DefaultPolicyID
	}
	return fmt.Sprintf("authentication/%s/%d/", kind, id)
}

// GetPolicy fetches a legal document.
func (c *Client) GetPolicy(ctx context.Context, kind model.PolicyKind, id int) (*model.PolicyResponse, error) {
	var out model.PolicyResponse
	if err := c.get(ctx, policyPath(kind, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePolicy applies a partial update to a legal document.
func (c *Client) UpdatePolicy(
	ctx context.Context,
	kind model.PolicyKind,
	id int,
	req model.UpdatePolicyRequest,
) (*model.PolicyResponse, error) {
	var out model.PolicyResponse
	if err := c.patch(ctx, policyPath(kind, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
