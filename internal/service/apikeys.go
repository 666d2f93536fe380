package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/ports"
	"github.com/target/subscription-admin/internal/validate"
)

// APIKeyServiceOptions groups dependencies for APIKeyService.
type APIKeyServiceOptions struct {
	API    ports.APIKeysAPI
	Logger *slog.Logger
}

// APIKeyService reads and sets third-party credentials.
type APIKeyService struct {
	api    ports.APIKeysAPI
	logger *slog.Logger
}

// APIKeyGroup is the keys of one category in display order.
type APIKeyGroup struct {
	Category string
	Keys     []model.APIKey
}

// NewAPIKeyService constructs a new APIKeyService.
func NewAPIKeyService(opts APIKeyServiceOptions) *APIKeyService {
	if opts.API == nil {
		panic("APIKeysAPI is required")
	}
	return &APIKeyService{api: opts.API, logger: componentLogger(opts.Logger, "api_keys")}
}

// Fetch implements listing.Fetcher. Every key arrives on one page.
func (s *APIKeyService) Fetch(ctx context.Context, _ listing.Query[listing.NoFilter]) (model.Page[model.APIKey], error) {
	resp, err := s.api.ListAPIKeys(ctx)
	if err != nil {
		return model.Page[model.APIKey]{}, apperrors.FromAPIError(err)
	}
	return resp.Page(), nil
}

// NewList returns an idle API key list.
func (s *APIKeyService) NewList() *APIKeyList {
	return listing.New(listing.Options[model.APIKey, listing.NoFilter]{
		Resource: "api_keys",
		Fetcher:  s,
		Logger:   s.logger,
		CountKeys: func(k model.APIKey) []string {
			if k.IsSet {
				return []string{"total", "configured"}
			}
			return []string{"total"}
		},
	})
}

// ByKey matches an API key row.
func (s *APIKeyService) ByKey(key string) func(model.APIKey) bool {
	return func(k model.APIKey) bool { return k.Key == key }
}

// Update stores a new value for key and patches the loaded row with the masked echo.
func (s *APIKeyService) Update(ctx context.Context, list *APIKeyList, key string, req model.UpdateAPIKeyRequest) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return apperrors.Validation("API key name is required")
	}
	req.Value = strings.TrimSpace(req.Value)
	if err := validate.Struct(req); err != nil {
		return err
	}
	return updateIn(ctx, list, s.ByKey(key), func(ctx context.Context, k *model.APIKey) error {
		resp, err := s.api.UpdateAPIKey(ctx, key, req)
		if err != nil {
			return apperrors.FromAPIError(err)
		}
		if resp.APIKey.Key != "" {
			*k = resp.APIKey
		} else {
			k.IsSet = true
		}
		s.logger.InfoContext(ctx, "api key updated", "key", key)
		return nil
	})
}

// GroupAPIKeys groups keys by category, keeping first-seen category order.
func GroupAPIKeys(keys []model.APIKey) []APIKeyGroup {
	var groups []APIKeyGroup
	index := map[string]int{}
	for _, k := range keys {
		category := k.Category
		if category == "" {
			category = "other"
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, APIKeyGroup{Category: category})
		}
		groups[i].Keys = append(groups[i].Keys, k)
	}
	return groups
}
