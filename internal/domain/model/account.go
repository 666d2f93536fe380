//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "github.com/guregu/null/v6"

// LoginRequest is the payload for POST admin/login/.
type LoginRequest struct {
	Email      string `json:"email"       validate:"required,email"`
	Password   string `json:"password"    validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// Tokens is the JWT pair issued by the backend.
type Tokens struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// AccountUser is the administrator identity returned at login.
type AccountUser struct {
	ID       ID     `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Data    struct {
		Tokens Tokens      `json:"tokens"`
		User   AccountUser `json:"user"`
	} `json:"data"`
}

// SendOTPRequest starts the password reset flow.
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest exchanges the emailed code for a reset token.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp"   validate:"required,numeric,min=4,max=8"`
}

// VerifyOTPResponse carries the reset token.
type VerifyOTPResponse struct {
	Message string `json:"message"`
	Data    struct {
		ResetToken string `json:"reset_token"`
	} `json:"data"`
}

// SetPasswordRequest completes the password reset flow.
type SetPasswordRequest struct {
	Token     string `json:"token"     validate:"required"`
	Password1 string `json:"password1" validate:"required,min=8,max=128"`
	Password2 string `json:"password2" validate:"required,eqfield=Password1"`
}

// SetPasswordResponse is returned after a reset; the backend signs the user in.
type SetPasswordResponse struct {
	Message string `json:"message"`
	Data    struct {
		Tokens Tokens `json:"tokens"`
	} `json:"data"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message"`
}

// RoleOption is a selectable role on the profile screen.
type RoleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Profile is the signed-in administrator's own account.
type Profile struct {
	ID             ID           `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Image          null.String  `json:"image"`
	Role           string       `json:"role"`
	RoleDisplay    string       `json:"role_display"`
	IsVerified     bool         `json:"is_verified"`
	DateJoined     string       `json:"date_joined"`
	LastLogin      string       `json:"last_login"`
	AvailableRoles []RoleOption `json:"available_roles"`
}

// ProfileResponse is the body of GET and PATCH admin/profile/.
type ProfileResponse struct {
	Message string  `json:"message"`
	Data    Profile `json:"data"`
}

// UpdateProfileRequest is the closed payload for PATCH admin/profile/ (sent as multipart form fields).
type UpdateProfileRequest struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

// ChangePasswordRequest is the payload for POST authentication/change-password/.
type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password"     validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128,nefield=OldPassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}
