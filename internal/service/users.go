package service

import (
	"context"
	"log/slog"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	API    ports.UsersAPI
	Logger *slog.Logger
}

// UserService lists and moderates platform users.
type UserService struct {
	api    ports.UsersAPI
	logger *slog.Logger
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	if opts.API == nil {
		panic("UsersAPI is required")
	}
	return &UserService{api: opts.API, logger: componentLogger(opts.Logger, "users")}
}

// Fetch implements listing.Fetcher.
func (s *UserService) Fetch(ctx context.Context, q listing.Query[model.UserFilter]) (model.Page[model.User], error) {
	resp, err := s.api.ListUsers(ctx, q.Page, q.Filter)
	if err != nil {
		return model.Page[model.User]{}, apperrors.FromAPIError(err)
	}
	return resp.Page(), nil
}

// NewList returns an idle users list seeded with page and filter.
func (s *UserService) NewList(page int, filter model.UserFilter) *UserList {
	return listing.New(listing.Options[model.User, model.UserFilter]{
		Resource:  "users",
		Fetcher:   s,
		Page:      page,
		Filter:    filter,
		CountKeys: userCountKeys,
		Logger:    s.logger,
	})
}

func userCountKeys(u model.User) []string {
	if u.Subscription.IsFree {
		return []string{string(model.UserFilterAll), string(model.UserFilterFree)}
	}
	return []string{string(model.UserFilterAll), string(model.UserFilterSubscribers)}
}

func userID(u model.User) model.ID { return u.ID }

// SetDisabled sets a user's disabled flag to the given target state.
func (s *UserService) SetDisabled(ctx context.Context, list *UserList, id string, disabled bool) error {
	if id == "" {
		return apperrors.Validation("User ID is required")
	}
	return updateIn(ctx, list, byID(id, userID), func(ctx context.Context, u *model.User) error {
		if _, err := s.api.SetUserDisabled(ctx, id, disabled); err != nil {
			return apperrors.FromAPIError(err)
		}
		u.IsDisabled = disabled
		s.logger.InfoContext(ctx, "user status changed", "user_id", id, "disabled", disabled)
		return nil
	})
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, list *UserList, id string) error {
	if id == "" {
		return apperrors.Validation("User ID is required")
	}
	return deleteIn(ctx, list, byID(id, userID), func(ctx context.Context) error {
		if _, err := s.api.DeleteUser(ctx, id); err != nil {
			return apperrors.FromAPIError(err)
		}
		s.logger.InfoContext(ctx, "user deleted", "user_id", id)
		return nil
	})
}
