package config

import "time"

const (
	defaultSessionTTL    = 12 * time.Hour
	defaultRememberMeTTL = 30 * 24 * time.Hour
	defaultLoginRate     = 10
)

// AuthConfig groups session and login configuration.
type AuthConfig struct {
	// SessionTTL is the session lifetime used when the access token carries no expiry.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"12h"`

	// RememberMeTTL replaces SessionTTL when the user ticks "remember me".
	RememberMeTTL time.Duration `env:"AUTH_REMEMBER_ME_TTL" envDefault:"720h"`

	// LoginRateLimit is the number of login attempts allowed per client IP per minute.
	LoginRateLimit int `env:"AUTH_LOGIN_RATE_LIMIT" envDefault:"10"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = defaultSessionTTL
	}
	if a.RememberMeTTL <= 0 {
		a.RememberMeTTL = defaultRememberMeTTL
	}
	if a.RememberMeTTL < a.SessionTTL {
		a.RememberMeTTL = a.SessionTTL
	}
	if a.LoginRateLimit < 1 {
		a.LoginRateLimit = defaultLoginRate
	}
}
