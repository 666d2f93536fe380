package backendapi

import (
	"context"

	"github.com/target/subscription-admin/internal/domain/model"
)

// ListAdministrators fetches one page of dashboard administrators.
func (c *Client) ListAdministrators(ctx context.Context, page int) (*model.AdministratorsListResponse, error) {
	var out model.AdministratorsListResponse
	if err := c.get(ctx, "admin/user-lists/", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAdministrator registers a new administrator account.
func (c *Client) CreateAdministrator(
	ctx context.Context,
	req model.CreateAdministratorRequest,
) (*model.AdministratorResponse, error) {
	var out model.AdministratorResponse
	if err := c.post(ctx, "admin/create-admin/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAdministrator edits an administrator's details.
func (c *Client) UpdateAdministrator(
	ctx context.Context,
	id string,
	req model.UpdateAdministratorRequest,
) (*model.AdministratorResponse, error) {
	var out model.AdministratorResponse
	if err := c.patch(ctx, "admin/administrators/"+escapeID(id)+"/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAdministrator removes an administrator account.
func (c *Client) DeleteAdministrator(ctx context.Context, id string) (*model.MessageResponse, error) {
	var out model.MessageResponse
	if err := c.delete(ctx, "admin/administrators/"+escapeID(id)+"/delete/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
