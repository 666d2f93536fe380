package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/ports"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Overview      ports.OverviewAPI
	Subscriptions ports.SubscriptionsAPI
	Logger        *slog.Logger
}

// DashboardService assembles the home page from independent backend reads.
type DashboardService struct {
	overview      ports.OverviewAPI
	subscriptions ports.SubscriptionsAPI
	logger        *slog.Logger
}

// Dashboard is the home page data. A section that failed to load is nil and its error recorded.
type Dashboard struct {
	Overview    *model.DashboardOverviewResponse
	Stats       *model.SubscriptionDashboardResponse
	Chart       *model.SubscriptionChartResponse
	OverviewErr error
	StatsErr    error
	ChartErr    error
	ChartMonths int
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	if opts.Overview == nil || opts.Subscriptions == nil {
		panic("OverviewAPI and SubscriptionsAPI are required")
	}
	return &DashboardService{
		overview:      opts.Overview,
		subscriptions: opts.Subscriptions,
		logger:        componentLogger(opts.Logger, "dashboard"),
	}
}

// Load fetches every dashboard section concurrently. It fails only when all sections fail.
func (s *DashboardService) Load(ctx context.Context, months int) (*Dashboard, error) {
	months = model.ClampChartMonths(months)
	d := &Dashboard{ChartMonths: months}

	var g errgroup.Group
	g.Go(func() error {
		resp, err := s.overview.DashboardOverview(ctx)
		d.Overview, d.OverviewErr = resp, mapAPIError(err)
		return nil
	})
	g.Go(func() error {
		resp, err := s.subscriptions.SubscriptionDashboard(ctx)
		d.Stats, d.StatsErr = resp, mapAPIError(err)
		return nil
	})
	g.Go(func() error {
		resp, err := s.subscriptions.SubscriptionChart(ctx, months)
		d.Chart, d.ChartErr = resp, mapAPIError(err)
		return nil
	})
	_ = g.Wait()

	if d.OverviewErr != nil && d.StatsErr != nil && d.ChartErr != nil {
		return nil, errors.Join(d.OverviewErr, d.StatsErr, d.ChartErr)
	}
	for section, err := range map[string]error{"overview": d.OverviewErr, "stats": d.StatsErr, "chart": d.ChartErr} {
		if err != nil {
			s.logger.WarnContext(ctx, "dashboard section unavailable", "section", section, "error", err)
		}
	}
	return d, nil
}

func mapAPIError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.FromAPIError(err)
}
