package service

import (
	"context"
	"log/slog"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
)

// List controllers for each listed resource.
type (
	UserList          = listing.Controller[model.User, model.UserFilter]
	AdministratorList = listing.Controller[model.Administrator, listing.NoFilter]
	PaymentList       = listing.Controller[model.Payment, model.PaymentStatus]
	PlanList          = listing.Controller[model.Plan, listing.NoFilter]
	SubscriptionList  = listing.Controller[model.Subscription, listing.NoFilter]
	CustomerList      = listing.Controller[model.Customer, listing.NoFilter]
	APIKeyList        = listing.Controller[model.APIKey, listing.NoFilter]
)

// byID matches the list item whose identifier is id.
func byID[T any](id string, idOf func(T) model.ID) func(T) bool {
	return func(item T) bool { return idOf(item).String() == id }
}

// FindItem returns the first loaded item matching match.
func FindItem[T any, F comparable](list *listing.Controller[T, F], match func(T) bool) (T, bool) {
	var zero T
	if list == nil {
		return zero, false
	}
	for _, item := range list.State().Items {
		if match(item) {
			return item, true
		}
	}
	return zero, false
}

// updateIn runs call through list when one is given so the loaded row is patched; CLI callers pass nil.
func updateIn[T any, F comparable](
	ctx context.Context,
	list *listing.Controller[T, F],
	match func(T) bool,
	call func(context.Context, *T) error,
) error {
	if list == nil {
		var scratch T
		return call(ctx, &scratch)
	}
	return list.Update(ctx, match, call)
}

func deleteIn[T any, F comparable](
	ctx context.Context,
	list *listing.Controller[T, F],
	match func(T) bool,
	call func(context.Context) error,
) error {
	if list == nil {
		return call(ctx)
	}
	return list.Delete(ctx, match, call)
}

func createIn[T any, F comparable](
	ctx context.Context,
	list *listing.Controller[T, F],
	call func(context.Context) error,
) error {
	if list == nil {
		return call(ctx)
	}
	return list.Create(ctx, call)
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
