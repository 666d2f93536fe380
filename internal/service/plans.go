package service

import (
	"context"
	"log/slog"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/ports"
	"github.com/target/subscription-admin/internal/validate"
)

// PlanServiceOptions groups dependencies for PlanService.
type PlanServiceOptions struct {
	API      ports.PlansAPI
	PageSize int
	Logger   *slog.Logger
}

// PlanService manages subscription plans. The plans endpoint returns every plan at once, so pages
// are cut locally.
type PlanService struct {
	api      ports.PlansAPI
	pageSize int
	logger   *slog.Logger
}

// NewPlanService constructs a new PlanService.
func NewPlanService(opts PlanServiceOptions) *PlanService {
	if opts.API == nil {
		panic("PlansAPI is required")
	}
	size := opts.PageSize
	if size < 1 {
		size = model.DefaultPageSize
	}
	return &PlanService{api: opts.API, pageSize: size, logger: componentLogger(opts.Logger, "plans")}
}

// Fetch implements listing.Fetcher.
func (s *PlanService) Fetch(ctx context.Context, q listing.Query[listing.NoFilter]) (model.Page[model.Plan], error) {
	plans, err := s.All(ctx)
	if err != nil {
		return model.Page[model.Plan]{}, err
	}
	return listing.SlicePage(plans, q.Page, q.PageSize), nil
}

// All returns every plan.
func (s *PlanService) All(ctx context.Context) ([]model.Plan, error) {
	resp, err := s.api.ListPlans(ctx)
	if err != nil {
		return nil, apperrors.FromAPIError(err)
	}
	return resp.Plans, nil
}

// NewList returns an idle plans list seeded with page.
func (s *PlanService) NewList(page int) *PlanList {
	return listing.New(listing.Options[model.Plan, listing.NoFilter]{
		Resource: "plans",
		Fetcher:  s,
		Page:     page,
		PageSize: s.pageSize,
		Logger:   s.logger,
	})
}

func planID(p model.Plan) model.ID { return p.ID }

// Get fetches a single plan.
func (s *PlanService) Get(ctx context.Context, id string) (model.Plan, error) {
	if id == "" {
		return model.Plan{}, apperrors.Validation("Plan ID is required")
	}
	resp, err := s.api.GetPlan(ctx, id)
	if err != nil {
		return model.Plan{}, apperrors.FromAPIError(err)
	}
	return resp.Value(), nil
}

// Create adds a plan and refetches the current page.
func (s *PlanService) Create(ctx context.Context, list *PlanList, req model.CreatePlanRequest) (model.Plan, error) {
	if req.PlanType == model.PlanTypeOneTime {
		req.Interval.Valid = false
		req.IntervalCount.Valid = false
	}
	if err := validate.Struct(req); err != nil {
		return model.Plan{}, err
	}
	if req.PlanType == model.PlanTypeRecurring && !req.Interval.Valid {
		return model.Plan{}, apperrors.ValidationField("interval", "Interval is required for recurring plans")
	}

	var created model.Plan
	err := createIn(ctx, list, func(ctx context.Context) error {
		resp, err := s.api.CreatePlan(ctx, req)
		if err != nil {
			return apperrors.FromAPIError(err)
		}
		created = resp.Value()
		s.logger.InfoContext(ctx, "plan created", "plan_id", created.ID, "slug", req.Slug)
		return nil
	})
	return created, err
}

// Update applies a partial change to a plan and patches the loaded row.
func (s *PlanService) Update(ctx context.Context, list *PlanList, id string, req model.UpdatePlanRequest) error {
	if id == "" {
		return apperrors.Validation("Plan ID is required")
	}
	if req.Empty() {
		return apperrors.Validation("There are no changes to save")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	return updateIn(ctx, list, byID(id, planID), func(ctx context.Context, p *model.Plan) error {
		resp, err := s.api.UpdatePlan(ctx, id, req)
		if err != nil {
			return apperrors.FromAPIError(err)
		}
		if updated := resp.Value(); updated.ID != "" {
			*p = updated
		}
		s.logger.InfoContext(ctx, "plan updated", "plan_id", id)
		return nil
	})
}

// Delete removes a plan.
func (s *PlanService) Delete(ctx context.Context, list *PlanList, id string) error {
	if id == "" {
		return apperrors.Validation("Plan ID is required")
	}
	return deleteIn(ctx, list, byID(id, planID), func(ctx context.Context) error {
		if _, err := s.api.DeletePlan(ctx, id); err != nil {
			return apperrors.FromAPIError(err)
		}
		s.logger.InfoContext(ctx, "plan deleted", "plan_id", id)
		return nil
	})
}

// DeleteMany removes several plans in one call and refetches the current page.
func (s *PlanService) DeleteMany(ctx context.Context, list *PlanList, ids []string) (*model.BulkResponse, error) {
	req := model.BulkDeletePlansRequest{PlanIDs: ids}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	resp, err := s.api.DeletePlans(ctx, req)
	if err != nil {
		return nil, apperrors.FromAPIError(err)
	}
	s.logger.InfoContext(ctx, "plans deleted", "requested", len(ids), "deleted", resp.Deleted)
	if list != nil {
		if refreshErr := list.Refresh(ctx); refreshErr != nil {
			return resp, refreshErr
		}
	}
	return resp, nil
}

// Sync pushes every plan to the payment processor.
func (s *PlanService) Sync(ctx context.Context, list *PlanList) (*model.BulkResponse, error) {
	resp, err := s.api.SyncPlans(ctx)
	if err != nil {
		return nil, apperrors.FromAPIError(err)
	}
	s.logger.InfoContext(ctx, "plans synced", "synced", resp.Synced, "failed", resp.Failed)
	if list != nil {
		if refreshErr := list.Refresh(ctx); refreshErr != nil {
			return resp, refreshErr
		}
	}
	return resp, nil
}
