package service

import (
	"context"
	"log/slog"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/ports"
)

// SubscriptionServiceOptions groups dependencies for SubscriptionService.
type SubscriptionServiceOptions struct {
	API    ports.SubscriptionsAPI
	Limits SubscriptionLimits
	Logger *slog.Logger
}

// SubscriptionLimits sets the page sizes requested from the payment service.
type SubscriptionLimits struct {
	Subscriptions int
	Customers     int
}

// SubscriptionService reads subscription analytics, subscriptions and billing customers.
type SubscriptionService struct {
	api    ports.SubscriptionsAPI
	limits SubscriptionLimits
	logger *slog.Logger
}

// NewSubscriptionService constructs a new SubscriptionService.
func NewSubscriptionService(opts SubscriptionServiceOptions) *SubscriptionService {
	if opts.API == nil {
		panic("SubscriptionsAPI is required")
	}
	limits := opts.Limits
	if limits.Subscriptions < 1 {
		limits.Subscriptions = 10
	}
	if limits.Customers < 1 {
		limits.Customers = 20
	}
	return &SubscriptionService{api: opts.API, limits: limits, logger: componentLogger(opts.Logger, "subscriptions")}
}

// Stats returns the month-over-month headline figures.
func (s *SubscriptionService) Stats(ctx context.Context) (*model.SubscriptionDashboardResponse, error) {
	resp, err := s.api.SubscriptionDashboard(ctx)
	if err != nil {
		return nil, apperrors.FromAPIError(err)
	}
	return resp, nil
}

// Chart returns monthly movement for the last months, clamped to the supported range.
func (s *SubscriptionService) Chart(ctx context.Context, months int) (*model.SubscriptionChartResponse, error) {
	resp, err := s.api.SubscriptionChart(ctx, model.ClampChartMonths(months))
	if err != nil {
		return nil, apperrors.FromAPIError(err)
	}
	return resp, nil
}

// NewSubscriptionList returns an idle subscriptions list seeded with page.
func (s *SubscriptionService) NewSubscriptionList(page int) *SubscriptionList {
	fetch := listing.FetchFunc[model.Subscription, listing.NoFilter](
		func(ctx context.Context, q listing.Query[listing.NoFilter]) (model.Page[model.Subscription], error) {
			resp, err := s.api.ListSubscriptions(ctx, q.Page, q.PageSize)
			if err != nil {
				return model.Page[model.Subscription]{}, apperrors.FromAPIError(err)
			}
			return resp.Page(), nil
		})
	return listing.New(listing.Options[model.Subscription, listing.NoFilter]{
		Resource: "subscriptions",
		Fetcher:  fetch,
		Page:     page,
		PageSize: s.limits.Subscriptions,
		Logger:   s.logger,
	})
}

// NewCustomerList returns an idle customers list seeded with page.
func (s *SubscriptionService) NewCustomerList(page int) *CustomerList {
	fetch := listing.FetchFunc[model.Customer, listing.NoFilter](
		func(ctx context.Context, q listing.Query[listing.NoFilter]) (model.Page[model.Customer], error) {
			resp, err := s.api.ListCustomers(ctx, q.Page, q.PageSize)
			if err != nil {
				return model.Page[model.Customer]{}, apperrors.FromAPIError(err)
			}
			return resp.Page(), nil
		})
	return listing.New(listing.Options[model.Customer, listing.NoFilter]{
		Resource: "customers",
		Fetcher:  fetch,
		Page:     page,
		PageSize: s.limits.Customers,
		Logger:   s.logger,
	})
}
