package backendapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/target/subscription-admin/internal/domain/model"
)

// Default page sizes of the payment service list endpoints.
const (
	DefaultSubscriptionsLimit = 10
	DefaultCustomersLimit     = 20
)

// SubscriptionDashboard fetches the month-over-month headline stats.
func (c *Client) SubscriptionDashboard(ctx context.Context) (*model.SubscriptionDashboardResponse, error) {
	var out model.SubscriptionDashboardResponse
	if err := c.get(ctx, "admin/subscriptions-dashboard/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubscriptionChart fetches monthly subscription movement for the last months.
func (c *Client) SubscriptionChart(ctx context.Context, months int) (*model.SubscriptionChartResponse, error) {
	q := url.Values{}
	q.Set("months", fmt.Sprint(model.ClampChartMonths(months)))

	var out model.SubscriptionChartResponse
	if err := c.get(ctx, "admin/subscriptions-chart/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSubscriptions fetches one page of subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context, page, limit int) (*model.SubscriptionsListResponse, error) {
	if limit < 1 {
		limit = DefaultSubscriptionsLimit
	}
	q := pageQuery(page)
	q.Set("limit", fmt.Sprint(limit))

	var out model.SubscriptionsListResponse
	if err := c.get(ctx, "payment/admin/subscriptions/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCustomers fetches one page of billing customers.
func (c *Client) ListCustomers(ctx context.Context, page, limit int) (*model.CustomersListResponse, error) {
	if limit < 1 {
		limit = DefaultCustomersLimit
	}
	q := pageQuery(page)
	q.Set("limit", fmt.Sprint(limit))

	var out model.CustomersListResponse
	if err := c.get(ctx, "payment/admin/customers/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardOverview fetches the user and subscriber counters shown on the home page.
func (c *Client) DashboardOverview(ctx context.Context) (*model.DashboardOverviewResponse, error) {
	var out model.DashboardOverviewResponse
	if err := c.get(ctx, "admin/dashboard/overview/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
