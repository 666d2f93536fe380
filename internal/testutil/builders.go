package testutil

import (
	"fmt"
	"strconv"

	"github.com/guregu/null/v6"

	"github.com/target/subscription-admin/internal/domain/model"
)

// AdministratorRequestBuilder provides a fluent interface for building CreateAdministratorRequest values.
type AdministratorRequestBuilder struct {
	req model.CreateAdministratorRequest
}

// NewAdministratorRequest creates a builder with a valid default payload.
func NewAdministratorRequest() *AdministratorRequestBuilder {
	return &AdministratorRequestBuilder{
		req: model.CreateAdministratorRequest{
			Name:          "Grace Hopper",
			Email:         "grace@example.com",
			ContactNumber: "555-0100",
			AccessLevel:   model.AccessLevelAdmin,
			Password:      "correct-horse",
		},
	}
}

// WithName sets the administrator name.
func (b *AdministratorRequestBuilder) WithName(name string) *AdministratorRequestBuilder {
	b.req.Name = name
	return b
}

// WithEmail sets the administrator email.
func (b *AdministratorRequestBuilder) WithEmail(email string) *AdministratorRequestBuilder {
	b.req.Email = email
	return b
}

// WithAccessLevel sets the access level.
func (b *AdministratorRequestBuilder) WithAccessLevel(level model.AccessLevel) *AdministratorRequestBuilder {
	b.req.AccessLevel = level
	return b
}

// WithPassword sets the initial password.
func (b *AdministratorRequestBuilder) WithPassword(password string) *AdministratorRequestBuilder {
	b.req.Password = password
	return b
}

// Build returns the request.
func (b *AdministratorRequestBuilder) Build() model.CreateAdministratorRequest {
	return b.req
}

// PlanRequestBuilder provides a fluent interface for building CreatePlanRequest values.
type PlanRequestBuilder struct {
	req model.CreatePlanRequest
}

// NewPlanRequest creates a builder for a valid monthly recurring plan.
func NewPlanRequest() *PlanRequestBuilder {
	return &PlanRequestBuilder{
		req: model.CreatePlanRequest{
			Name:          "Pro",
			Slug:          "pro",
			Price:         19,
			PlanType:      model.PlanTypeRecurring,
			Interval:      null.StringFrom(model.IntervalMonth),
			IntervalCount: null.Int32From(1),
		},
	}
}

// WithSlug sets the plan slug.
func (b *PlanRequestBuilder) WithSlug(slug string) *PlanRequestBuilder {
	b.req.Slug = slug
	return b
}

// WithPrice sets the plan price.
func (b *PlanRequestBuilder) WithPrice(price float64) *PlanRequestBuilder {
	b.req.Price = price
	return b
}

// OneTime turns the plan into a one-time purchase without an interval.
func (b *PlanRequestBuilder) OneTime() *PlanRequestBuilder {
	b.req.PlanType = model.PlanTypeOneTime
	b.req.Interval = null.String{}
	b.req.IntervalCount = null.Int32{}
	return b
}

// Build returns the request.
func (b *PlanRequestBuilder) Build() model.CreatePlanRequest {
	return b.req
}

// Users returns n users with sequential ids starting at first.
func Users(n, first int) []model.User {
	out := make([]model.User, 0, n)
	for i := range n {
		id := first + i
		email := fmt.Sprintf("user%d@example.com", id)
		out = append(out, model.User{
			SlNo:  strconv.Itoa(id),
			ID:    model.ID(strconv.Itoa(id)),
			Email: email,
			User: model.UserIdentity{
				Name:  fmt.Sprintf("User %d", id),
				Email: email,
			},
			Subscription: model.UserSubscription{Name: "Free", IsFree: true},
			IsActive:     true,
		})
	}
	return out
}

// Administrators returns n administrators with sequential ids starting at first.
func Administrators(n, first int) []model.Administrator {
	out := make([]model.Administrator, 0, n)
	for i := range n {
		id := first + i
		out = append(out, model.Administrator{
			ID:          model.ID(strconv.Itoa(id)),
			Name:        fmt.Sprintf("Admin %d", id),
			Email:       fmt.Sprintf("admin%d@example.com", id),
			AccessLevel: string(model.AccessLevelAdmin),
			IsActive:    true,
		})
	}
	return out
}

// UsersPage builds a users list response for page out of total rows with the given page size.
func UsersPage(page, pageSize, total int, filter model.UserFilter) *model.UsersListResponse {
	start := (page - 1) * pageSize
	n := max(min(pageSize, total-start), 0)
	resp := &model.UsersListResponse{
		Success:       true,
		Users:         Users(n, start+1),
		Pagination:    model.OffsetMeta(page, pageSize, total, n),
		CurrentFilter: string(filter),
	}
	resp.FilterCounts.All = total
	switch filter {
	case model.UserFilterFree:
		resp.FilterCounts.Free = total
	case model.UserFilterSubscribers:
		resp.FilterCounts.Subscribers = total
	}
	return resp
}

// AdministratorsPage builds an administrators list response.
func AdministratorsPage(page, pageSize, total int) *model.AdministratorsListResponse {
	start := (page - 1) * pageSize
	n := max(min(pageSize, total-start), 0)
	meta := model.OffsetMeta(page, pageSize, total, n)

	resp := &model.AdministratorsListResponse{Message: "ok"}
	resp.Data.Users = Administrators(n, start+1)
	resp.Data.Pagination = model.AdminPagination{
		CurrentPage: meta.CurrentPage,
		PerPage:     meta.PageSize,
		Total:       meta.TotalCount,
		TotalPages:  meta.TotalPages,
		StartIndex:  meta.StartIndex,
		EndIndex:    meta.EndIndex,
		HasPrev:     meta.HasPrevious,
		HasNext:     meta.HasNext,
	}
	return resp
}
