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

// AdministratorServiceOptions groups dependencies for AdministratorService.
type AdministratorServiceOptions struct {
	API    ports.AdministratorsAPI
	Logger *slog.Logger
}

// AdministratorService manages dashboard operator accounts.
type AdministratorService struct {
	api    ports.AdministratorsAPI
	logger *slog.Logger
}

// NewAdministratorService constructs a new AdministratorService.
func NewAdministratorService(opts AdministratorServiceOptions) *AdministratorService {
	if opts.API == nil {
		panic("AdministratorsAPI is required")
	}
	return &AdministratorService{api: opts.API, logger: componentLogger(opts.Logger, "administrators")}
}

// Fetch implements listing.Fetcher.
func (s *AdministratorService) Fetch(
	ctx context.Context,
	q listing.Query[listing.NoFilter],
) (model.Page[model.Administrator], error) {
	resp, err := s.api.ListAdministrators(ctx, q.Page)
	if err != nil {
		return model.Page[model.Administrator]{}, apperrors.FromAPIError(err)
	}
	return resp.Page(), nil
}

// NewList returns an idle administrators list seeded with page.
func (s *AdministratorService) NewList(page int) *AdministratorList {
	return listing.New(listing.Options[model.Administrator, listing.NoFilter]{
		Resource: "administrators",
		Fetcher:  s,
		Page:     page,
		Logger:   s.logger,
	})
}

func administratorID(a model.Administrator) model.ID { return a.ID }

// ByID matches an administrator row.
func (s *AdministratorService) ByID(id string) func(model.Administrator) bool {
	return byID(id, administratorID)
}

// Create adds an administrator and refetches the current page.
func (s *AdministratorService) Create(
	ctx context.Context,
	list *AdministratorList,
	req model.CreateAdministratorRequest,
) (model.Administrator, error) {
	if err := validate.Struct(req); err != nil {
		return model.Administrator{}, err
	}
	var created model.Administrator
	err := createIn(ctx, list, func(ctx context.Context) error {
		resp, err := s.api.CreateAdministrator(ctx, req)
		if err != nil {
			return apperrors.FromAPIError(err)
		}
		created = resp.Data.AsAdministrator()
		s.logger.InfoContext(ctx, "administrator created", "administrator_id", created.ID, "access_level", req.AccessLevel)
		return nil
	})
	return created, err
}

// Update edits an administrator and patches the loaded row.
func (s *AdministratorService) Update(
	ctx context.Context,
	list *AdministratorList,
	id string,
	req model.UpdateAdministratorRequest,
) error {
	if id == "" {
		return apperrors.Validation("Administrator ID is required")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	return updateIn(ctx, list, s.ByID(id), func(ctx context.Context, a *model.Administrator) error {
		resp, err := s.api.UpdateAdministrator(ctx, id, req)
		if err != nil {
			return apperrors.FromAPIError(err)
		}
		mergeAdministrator(a, resp.Data.AsAdministrator())
		s.logger.InfoContext(ctx, "administrator updated", "administrator_id", id)
		return nil
	})
}

// mergeAdministrator copies the echoed fields onto the row, keeping list-only fields such as the image.
func mergeAdministrator(dst *model.Administrator, src model.Administrator) {
	if src.ID != "" {
		dst.ID = src.ID
	}
	dst.Name = src.Name
	dst.Email = src.Email
	dst.Phone = src.Phone
	dst.AccessLevel = src.AccessLevel
	dst.IsActive = src.IsActive
}

// Delete removes an administrator.
func (s *AdministratorService) Delete(ctx context.Context, list *AdministratorList, id string) error {
	if id == "" {
		return apperrors.Validation("Administrator ID is required")
	}
	return deleteIn(ctx, list, s.ByID(id), func(ctx context.Context) error {
		if _, err := s.api.DeleteAdministrator(ctx, id); err != nil {
			return apperrors.FromAPIError(err)
		}
		s.logger.InfoContext(ctx, "administrator deleted", "administrator_id", id)
		return nil
	})
}
