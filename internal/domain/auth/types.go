package auth

// Package auth contains domain-level types for dashboard sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role is the administrator's privilege tier as reported by the backend at login.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole normalizes a backend role string. Unknown values map to RoleAdmin,
// the least privileged tier that may use the dashboard.
func ParseRole(v string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(v))) {
	case RoleSuperAdmin, "super_admin", "super-admin":
		return RoleSuperAdmin
	default:
		return RoleAdmin
	}
}

// Identity is the signed-in administrator as returned by the backend login.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   Role
}

// Session is the server-side record we persist for a signed-in administrator.
// ID is an opaque session identifier carried in the session cookie; the backend
// tokens never leave the server.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	RememberMe   bool      `json:"remember_me,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsSuperAdmin reports whether the session may manage other administrators.
func (s Session) IsSuperAdmin() bool { return s.Role == RoleSuperAdmin }

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }

// DisplayName is the name shown in the layout header.
func (s Session) DisplayName() string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return s.Email
}
