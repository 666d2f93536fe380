package config

import (
	"strings"
	"time"
)

const (
	defaultBackendTimeout = 30 * time.Second
	maxBackendTimeout     = 5 * time.Minute
)

// BackendConfig describes the REST backend every dashboard screen is built on.
type BackendConfig struct {
	// BaseURL is the API root; endpoint paths are resolved relative to it.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000/api/"`

	// Timeout bounds a single backend request. There are no retries.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// UserAgent is sent with every backend request.
	UserAgent string `env:"USER_AGENT" envDefault:"subscription-admin"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimSpace(b.BaseURL)
	if b.BaseURL != "" && !strings.HasSuffix(b.BaseURL, "/") {
		b.BaseURL += "/"
	}
	if b.Timeout <= 0 {
		b.Timeout = defaultBackendTimeout
	}
	if b.Timeout > maxBackendTimeout {
		b.Timeout = maxBackendTimeout
	}
}
