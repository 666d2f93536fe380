package backendapi

import (
	"context"

	"github.com/target/subscription-admin/internal/domain/model"
)

// ListUsers fetches one page of platform users narrowed by filter.
func (c *Client) ListUsers(ctx context.Context, page int, filter model.UserFilter) (*model.UsersListResponse, error) {
	q := pageQuery(page)
	if !filter.Valid() {
		filter = model.UserFilterAll
	}
	q.Set("filter", string(filter))

	var out model.UsersListResponse
	if err := c.get(ctx, "admin/users/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetUserDisabled sets a user's disabled flag to the given target value.
func (c *Client) SetUserDisabled(ctx context.Context, id string, disabled bool) (*model.StatusResponse, error) {
	var out model.StatusResponse
	body := model.ToggleUserStatusRequest{IsDisabled: disabled}
	if err := c.patch(ctx, "admin/users/"+escapeID(id)+"/toggle-status/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a platform user.
func (c *Client) DeleteUser(ctx context.Context, id string) (*model.StatusResponse, error) {
	var out model.StatusResponse
	if err := c.delete(ctx, "admin/users/"+escapeID(id)+"/delete/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
