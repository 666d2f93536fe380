package ports

import (
	"context"

	"github.com/target/subscription-admin/internal/domain/model"
)

// UsersAPI lists and moderates platform users.
type UsersAPI interface {
	ListUsers(ctx context.Context, page int, filter model.UserFilter) (*model.UsersListResponse, error)
	SetUserDisabled(ctx context.Context, id string, disabled bool) (*model.StatusResponse, error)
	DeleteUser(ctx context.Context, id string) (*model.StatusResponse, error)
}

// AdministratorsAPI manages dashboard operator accounts.
type AdministratorsAPI interface {
	ListAdministrators(ctx context.Context, page int) (*model.AdministratorsListResponse, error)
	CreateAdministrator(ctx context.Context, req model.CreateAdministratorRequest) (*model.AdministratorResponse, error)
	UpdateAdministrator(
		ctx context.Context,
		id string,
		req model.UpdateAdministratorRequest,
	) (*model.AdministratorResponse, error)
	DeleteAdministrator(ctx context.Context, id string) (*model.MessageResponse, error)
}

// PaymentsAPI lists recorded payments.
type PaymentsAPI interface {
	ListPayments(ctx context.Context, page int, status model.PaymentStatus) (*model.PaymentsListResponse, error)
}

// PlansAPI manages subscription plans.
type PlansAPI interface {
	ListPlans(ctx context.Context) (*model.PlansListResponse, error)
	GetPlan(ctx context.Context, id string) (*model.PlanResponse, error)
	CreatePlan(ctx context.Context, req model.CreatePlanRequest) (*model.PlanResponse, error)
	UpdatePlan(ctx context.Context, id string, req model.UpdatePlanRequest) (*model.PlanResponse, error)
	DeletePlan(ctx context.Context, id string) (*model.MessageResponse, error)
	SyncPlans(ctx context.Context) (*model.BulkResponse, error)
	DeletePlans(ctx context.Context, req model.BulkDeletePlansRequest) (*model.BulkResponse, error)
}

// SubscriptionsAPI reads subscription stats, subscriptions and billing customers.
type SubscriptionsAPI interface {
	SubscriptionDashboard(ctx context.Context) (*model.SubscriptionDashboardResponse, error)
	SubscriptionChart(ctx context.Context, months int) (*model.SubscriptionChartResponse, error)
	ListSubscriptions(ctx context.Context, page, limit int) (*model.SubscriptionsListResponse, error)
	ListCustomers(ctx context.Context, page, limit int) (*model.CustomersListResponse, error)
}

// OverviewAPI reads the home page counters.
type OverviewAPI interface {
	DashboardOverview(ctx context.Context) (*model.DashboardOverviewResponse, error)
}

// APIKeysAPI reads and sets third-party credentials.
type APIKeysAPI interface {
	ListAPIKeys(ctx context.Context) (*model.APIKeysResponse, error)
	UpdateAPIKey(ctx context.Context, key string, req model.UpdateAPIKeyRequest) (*model.UpdateAPIKeyResponse, error)
}

// PoliciesAPI reads and edits the legal documents.
type PoliciesAPI interface {
	GetPolicy(ctx context.Context, kind model.PolicyKind, id int) (*model.PolicyResponse, error)
	UpdatePolicy(
		ctx context.Context,
		kind model.PolicyKind,
		id int,
		req model.UpdatePolicyRequest,
	) (*model.PolicyResponse, error)
}

// BackendAPI is the full backend surface implemented by backendapi.Client.
type BackendAPI interface {
	AccountAPI
	ProfileAPI
	UsersAPI
	AdministratorsAPI
	PaymentsAPI
	PlansAPI
	SubscriptionsAPI
	OverviewAPI
	APIKeysAPI
	PoliciesAPI
}
