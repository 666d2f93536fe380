package backendapi

import (
	"context"

	"github.com/target/subscription-admin/internal/domain/model"
)

// ListPayments fetches one page of payments. The status filter is sent only when narrowing.
func (c *Client) ListPayments(
	ctx context.Context,
	page int,
	status model.PaymentStatus,
) (*model.PaymentsListResponse, error) {
	q := pageQuery(page)
	if status != "" && status != model.PaymentStatusAll {
		q.Set("status", string(status))
	}

	var out model.PaymentsListResponse
	if err := c.get(ctx, "admin/payments/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
