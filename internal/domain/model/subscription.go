//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "github.com/guregu/null/v6"

// StatItem is one headline figure on the subscriptions dashboard.
type StatItem struct {
	Value       string     `json:"value"`
	RawValue    float64    `json:"raw_value"`
	Change      string     `json:"change"`
	ChangeValue float64    `json:"change_value"`
	Trend       string     `json:"trend"`
	ThisMonth   null.Float `json:"this_month"`
	LastMonth   null.Float `json:"last_month"`
	IsPositive  null.Bool  `json:"is_positive"`
}

// Positive reports whether the change should be shown as good news.
// Without an explicit flag an upward trend counts as positive.
func (s StatItem) Positive() bool {
	if s.IsPositive.Valid {
		return s.IsPositive.Bool
	}
	return s.Trend == "up"
}

// SubscriptionDashboardResponse is the body of GET admin/subscriptions-dashboard/.
type SubscriptionDashboardResponse struct {
	Success bool `json:"success"`
	Stats   struct {
		TotalRevenue StatItem `json:"total_revenue"`
		ActiveSubs   StatItem `json:"active_subs"`
		ChurnRate    StatItem `json:"churn_rate"`
		MRR          StatItem `json:"mrr"`
	} `json:"stats"`
	Period struct {
		CurrentMonth  string `json:"current_month"`
		PreviousMonth string `json:"previous_month"`
	} `json:"period"`
}

// Chart month bounds accepted by the subscriptions chart.
const (
	MinChartMonths     = 1
	MaxChartMonths     = 24
	DefaultChartMonths = 6
)

// ClampChartMonths keeps a requested chart range within what the backend serves.
func ClampChartMonths(m int) int {
	switch {
	case m <= 0:
		return DefaultChartMonths
	case m > MaxChartMonths:
		return MaxChartMonths
	default:
		return m
	}
}

// ChartPoint is one month of subscription movement.
type ChartPoint struct {
	Month            string `json:"month"`
	MonthFull        string `json:"month_full"`
	MonthNum         int    `json:"month_num"`
	Year             int    `json:"year"`
	NewSubscriptions int    `json:"new_subscriptions"`
	Canceled         int    `json:"canceled"`
	NetGrowth        int    `json:"net_growth"`
	Label            string `json:"label"`
}

// ChartSummary aggregates the chart window.
type ChartSummary struct {
	TotalNewSubscriptions  int     `json:"total_new_subscriptions"`
	TotalCanceled          int     `json:"total_canceled"`
	NetGrowth              int     `json:"net_growth"`
	AverageMonthlyNew      float64 `json:"average_monthly_new"`
	AverageMonthlyCanceled float64 `json:"average_monthly_canceled"`
	ChurnRate              float64 `json:"churn_rate"`
}

// SubscriptionChartResponse is the body of GET admin/subscriptions-chart/.
type SubscriptionChartResponse struct {
	Success   bool         `json:"success"`
	ChartData []ChartPoint `json:"chart_data"`
	Summary   ChartSummary `json:"summary"`
	Period    struct {
		Start       string `json:"start"`
		End         string `json:"end"`
		MonthsCount int    `json:"months_count"`
	} `json:"period"`
}

// PeakNew returns the largest monthly new-subscription count, used to scale chart bars.
func (r SubscriptionChartResponse) PeakNew() int {
	peak := 0
	for _, p := range r.ChartData {
		if p.NewSubscriptions > peak {
			peak = p.NewSubscriptions
		}
	}
	return peak
}

// PlanRef is the plan summary embedded in a subscription.
type PlanRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Subscription is one customer subscription in the payment service.
type Subscription struct {
	ID                   ID          `json:"id"`
	CustomerEmail        string      `json:"customer_email"`
	CustomerName         string      `json:"customer_name"`
	Plan                 PlanRef     `json:"plan"`
	Status               string      `json:"status"`
	IsTrial              bool        `json:"is_trial"`
	StripeSubscriptionID null.String `json:"stripe_subscription_id"`
	CurrentPeriodStart   string      `json:"current_period_start"`
	CurrentPeriodEnd     null.String `json:"current_period_end"`
	CancelAtPeriodEnd    bool        `json:"cancel_at_period_end"`
	CreatedAt            string      `json:"created_at"`
}

// SubscriptionsListResponse is the body of GET payment/admin/subscriptions/.
type SubscriptionsListResponse struct {
	Success       bool           `json:"success"`
	Total         int            `json:"total"`
	PageNum       int            `json:"page"`
	Limit         int            `json:"limit"`
	Pages         int            `json:"pages"`
	HasNext       bool           `json:"has_next"`
	HasPrevious   bool           `json:"has_previous"`
	Subscriptions []Subscription `json:"subscriptions"`
}

// Page converts the response into a list page.
func (r SubscriptionsListResponse) Page() Page[Subscription] {
	meta := OffsetMeta(r.PageNum, r.Limit, r.Total, len(r.Subscriptions))
	if r.Pages > 0 {
		meta.TotalPages = r.Pages
	}
	meta.HasNext = r.HasNext
	meta.HasPrevious = r.HasPrevious
	return Page[Subscription]{Items: r.Subscriptions, Meta: meta}
}
