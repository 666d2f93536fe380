package backendapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/target/subscription-admin/internal/domain/model"
)

// Login exchanges administrator credentials for a token pair.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	var out model.LoginResponse
	if err := c.post(ctx, "admin/login/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendPasswordResetOTP emails a one-time code to the administrator.
func (c *Client) SendPasswordResetOTP(ctx context.Context, req model.SendOTPRequest) (*model.MessageResponse, error) {
	var out model.MessageResponse
	if err := c.post(ctx, "admin/send-passwordreset-otp/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyPasswordResetOTP exchanges the emailed code for a reset token.
func (c *Client) VerifyPasswordResetOTP(
	ctx context.Context,
	req model.VerifyOTPRequest,
) (*model.VerifyOTPResponse, error) {
	var out model.VerifyOTPResponse
	if err := c.post(ctx, "admin/verify-passwordreset-otp/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetPassword completes a password reset.
func (c *Client) SetPassword(ctx context.Context, req model.SetPasswordRequest) (*model.SetPasswordResponse, error) {
	var out model.SetPasswordResponse
	if err := c.post(ctx, "admin/set-password/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile fetches the signed-in administrator's profile.
func (c *Client) GetProfile(ctx context.Context) (*model.ProfileResponse, error) {
	var out model.ProfileResponse
	if err := c.get(ctx, "admin/profile/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile edits the signed-in administrator's name and phone.
// The endpoint accepts multipart form data only.
func (c *Client) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, field := range []struct{ name, value string }{
		{"name", req.Name},
		{"phone", req.Phone},
	} {
		if err := mw.WriteField(field.name, field.value); err != nil {
			return nil, Unexpected(fmt.Errorf("write profile field %s: %w", field.name, err))
		}
	}
	if err := mw.Close(); err != nil {
		return nil, Unexpected(fmt.Errorf("close profile form: %w", err))
	}

	var out model.ProfileResponse
	r := request{
		method:      http.MethodPatch,
		path:        "admin/profile/",
		rawBody:     &buf,
		contentType: mw.FormDataContentType(),
	}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword changes the signed-in administrator's password.
func (c *Client) ChangePassword(ctx context.Context, req model.ChangePasswordRequest) (*model.MessageResponse, error) {
	var out model.MessageResponse
	if err := c.post(ctx, "authentication/change-password/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
