//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "github.com/guregu/null/v6"

// Plan types and billing intervals accepted by the backend.
const (
	PlanTypeRecurring = "recurring"
	PlanTypeOneTime   = "one_time"

	IntervalDay   = "day"
	IntervalWeek  = "week"
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// PlanTypes lists selectable plan types.
func PlanTypes() []string { return []string{PlanTypeRecurring, PlanTypeOneTime} }

// PlanIntervals lists selectable billing intervals.
func PlanIntervals() []string { return []string{IntervalMonth, IntervalYear, IntervalWeek, IntervalDay} }

// Plan is a subscription plan as managed in the payment service.
type Plan struct {
	ID                 ID          `json:"id"`
	Name               string      `json:"name"`
	Slug               string      `json:"slug"`
	Description        string      `json:"description"`
	ShortDescription   string      `json:"short_description"`
	PlanType           string      `json:"plan_type"`
	Price              string      `json:"price"`
	Currency           string      `json:"currency"`
	Interval           string      `json:"interval"`
	IntervalCount      int         `json:"interval_count"`
	TrialPeriodDays    int         `json:"trial_period_days"`
	Features           []string    `json:"features"`
	MaxAPICalls        int         `json:"max_api_calls"`
	MaxUsers           int         `json:"max_users"`
	MaxProjects        int         `json:"max_projects"`
	MaxStorageGB       int         `json:"max_storage_gb"`
	IsFeatured         bool        `json:"is_featured"`
	IsPopular          bool        `json:"is_popular"`
	BadgeText          null.String `json:"badge_text"`
	IsLifetime         bool        `json:"is_lifetime"`
	IsRecurring        bool        `json:"is_recurring"`
	IsUnlimitedAPI     bool        `json:"is_unlimited_api"`
	DisplayPrice       string      `json:"display_price"`
	DiscountPercentage float64     `json:"discount_percentage"`
	SubscriberCount    int         `json:"subscriber_count"`
	TrialingCount      int         `json:"trialing_count"`
	StripeSynced       bool        `json:"stripe_synced"`
	HasTrial           bool        `json:"has_trial"`
	IsDeleted          bool        `json:"is_deleted"`
}

// PlansListResponse is the body of GET payment/admin/plans/. The endpoint is not paginated.
type PlansListResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Plans   []Plan `json:"plans"`
}

// PlanResponse wraps a single plan returned by get, create and update.
// The payment service nests the plan under "plan" or "data" depending on the endpoint.
type PlanResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Plan    *Plan  `json:"plan,omitempty"`
	Data    *Plan  `json:"data,omitempty"`
}

// Value returns the plan carried by the response, whichever key it arrived under.
func (r PlanResponse) Value() Plan {
	switch {
	case r.Plan != nil:
		return *r.Plan
	case r.Data != nil:
		return *r.Data
	default:
		return Plan{}
	}
}

// CreatePlanRequest is the closed payload for POST payment/admin/plans/.
type CreatePlanRequest struct {
	Name            string      `json:"name"                        validate:"required,max=100"`
	Slug            string      `json:"slug"                        validate:"required,max=100,slug"`
	Price           float64     `json:"price"                       validate:"gte=0"`
	PlanType        string      `json:"plan_type"                   validate:"required,oneof=recurring one_time"`
	Interval        null.String `json:"interval,omitzero"           validate:"omitnil,oneof=day week month year"`
	IntervalCount   null.Int32  `json:"interval_count,omitzero"     validate:"omitnil,gte=1,lte=365"`
	TrialPeriodDays null.Int32  `json:"trial_period_days,omitzero"  validate:"omitnil,gte=0,lte=730"`
}

// UpdatePlanRequest is the closed payload for PATCH payment/admin/plans/{id}/.
// Unset fields are omitted so the backend leaves them untouched.
type UpdatePlanRequest struct {
	Name            null.String `json:"name,omitzero"               validate:"omitnil,min=1,max=100"`
	Slug            null.String `json:"slug,omitzero"               validate:"omitnil,min=1,max=100,slug"`
	Price           null.Float  `json:"price,omitzero"              validate:"omitnil,gte=0"`
	PlanType        null.String `json:"plan_type,omitzero"          validate:"omitnil,oneof=recurring one_time"`
	Interval        null.String `json:"interval,omitzero"           validate:"omitnil,oneof=day week month year"`
	IntervalCount   null.Int32  `json:"interval_count,omitzero"     validate:"omitnil,gte=1,lte=365"`
	TrialPeriodDays null.Int32  `json:"trial_period_days,omitzero"  validate:"omitnil,gte=0,lte=730"`
}

// Empty reports whether the update would change nothing.
func (r UpdatePlanRequest) Empty() bool {
	return !r.Name.Valid && !r.Slug.Valid && !r.Price.Valid && !r.PlanType.Valid &&
		!r.Interval.Valid && !r.IntervalCount.Valid && !r.TrialPeriodDays.Valid
}

// BulkDeletePlansRequest is the payload for POST payment/admin/plans/bulk-delete/.
type BulkDeletePlansRequest struct {
	PlanIDs []string `json:"plan_ids" validate:"required,min=1,dive,required"`
}

// BulkResponse is the loose acknowledgement returned by bulk plan operations.
type BulkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Synced  int    `json:"synced,omitempty"`
	Deleted int    `json:"deleted,omitempty"`
	Failed  int    `json:"failed,omitempty"`
}
