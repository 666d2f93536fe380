//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "github.com/guregu/null/v6"

// Customer is a billing customer mirrored from Stripe.
type Customer struct {
	ID                    ID          `json:"id"`
	Email                 string      `json:"email"`
	Name                  null.String `json:"name"`
	StripeCustomerID      string      `json:"stripe_customer_id"`
	HasActiveSubscription bool        `json:"has_active_subscription"`
	SubscriptionStatus    string      `json:"subscription_status"`
	Delinquent            bool        `json:"delinquent"`
	CreatedAt             string      `json:"created_at"`
}

// DisplayName falls back to the email when the customer has no name on file.
func (c Customer) DisplayName() string {
	if c.Name.Valid && c.Name.String != "" {
		return c.Name.String
	}
	return c.Email
}

// CustomersListResponse is the body of GET payment/admin/customers/.
type CustomersListResponse struct {
	Success   bool       `json:"success"`
	Total     int        `json:"total"`
	PageNum   int        `json:"page"`
	PerPage   int        `json:"per_page"`
	Customers []Customer `json:"customers"`
}

// Page converts the response into a list page.
func (r CustomersListResponse) Page() Page[Customer] {
	return Page[Customer]{Items: r.Customers, Meta: OffsetMeta(r.PageNum, r.PerPage, r.Total, len(r.Customers))}
}
