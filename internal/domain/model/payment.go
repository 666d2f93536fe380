//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strings"

// PaymentStatus filters the payments list.
type PaymentStatus string

const (
	PaymentStatusAll       PaymentStatus = "all"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentStatuses lists the filters in display order.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentStatusAll, PaymentStatusSucceeded, PaymentStatusPending, PaymentStatusFailed}
}

// ParsePaymentStatus normalizes a status filter, falling back to "all".
func ParsePaymentStatus(v string) PaymentStatus {
	s := PaymentStatus(strings.ToLower(strings.TrimSpace(v)))
	switch s {
	case PaymentStatusAll, PaymentStatusSucceeded, PaymentStatusPending, PaymentStatusFailed:
		return s
	default:
		return PaymentStatusAll
	}
}

// Payment is one charge recorded by the platform.
type Payment struct {
	SerialNo              string  `json:"payment_serial_no"`
	UserName              string  `json:"user_name"`
	UserID                ID      `json:"user_id"`
	Email                 string  `json:"email"`
	Amount                string  `json:"amount"`
	AmountRaw             float64 `json:"amount_raw"`
	Currency              string  `json:"currency"`
	Status                string  `json:"status"`
	PaymentMethod         string  `json:"payment_method"`
	PlanName              string  `json:"plan_name"`
	CreatedAt             string  `json:"created_at"`
	StripePaymentIntentID string  `json:"stripe_payment_intent_id"`
}

// StatusCounts holds per-status payment totals.
type StatusCounts struct {
	All       int `json:"all"`
	Succeeded int `json:"succeeded"`
	Pending   int `json:"pending"`
	Failed    int `json:"failed"`
}

// PaymentsListResponse is the body of GET admin/payments/.
type PaymentsListResponse struct {
	Success      bool           `json:"success"`
	Payments     []Payment      `json:"payments"`
	Pagination   PaginationMeta `json:"pagination"`
	StatusCounts StatusCounts   `json:"status_counts"`
}

// Page converts the response into a list page.
func (r PaymentsListResponse) Page() Page[Payment] {
	return Page[Payment]{
		Items: r.Payments,
		Meta:  r.Pagination,
		Counts: map[string]int{
			string(PaymentStatusAll):       r.StatusCounts.All,
			string(PaymentStatusSucceeded): r.StatusCounts.Succeeded,
			string(PaymentStatusPending):   r.StatusCounts.Pending,
			string(PaymentStatusFailed):    r.StatusCounts.Failed,
		},
	}
}
