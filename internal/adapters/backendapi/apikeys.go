package backendapi

import (
	"context"

	"github.com/target/subscription-admin/internal/domain/model"
)

// ListAPIKeys returns every configurable third-party key, masked where sensitive.
func (c *Client) ListAPIKeys(ctx context.Context) (*model.APIKeysResponse, error) {
	var out model.APIKeysResponse
	if err := c.get(ctx, "admin/api-keys/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAPIKey sets the value of one key.
func (c *Client) UpdateAPIKey(
	ctx context.Context,
	key string,
	req model.UpdateAPIKeyRequest,
) (*model.UpdateAPIKeyResponse, error) {
	var out model.UpdateAPIKeyResponse
	if err := c.patch(ctx, "admin/api-keys/"+escapeID(key)+"/update/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
