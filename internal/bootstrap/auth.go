package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/target/subscription-admin/config"
	"github.com/target/subscription-admin/internal/adapters/devauth"
	redisadapter "github.com/target/subscription-admin/internal/adapters/redis"
	"github.com/target/subscription-admin/internal/ports"
	"github.com/target/subscription-admin/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	Redis       config.RedisConfig
	RedisClient redis.UniversalClient
	Accounts    ports.AccountAPI
	IsDev       bool
	Logger      *slog.Logger
}

// BuildSessionStore picks the session backend. Redis is required outside dev mode;
// in dev mode a missing client falls back to an in-memory store.
//
//nolint:ireturn // the store is chosen at runtime.
func BuildSessionStore(cfg AuthConfig) ports.SessionStore {
	if cfg.RedisClient != nil {
		return redisadapter.NewSessionStore(cfg.RedisClient, redisadapter.WithPrefix(cfg.Redis.SessionPrefix))
	}
	if !cfg.IsDev {
		return nil
	}
	if cfg.Logger != nil {
		cfg.Logger.Warn("redis unavailable; using in-memory sessions (dev mode only)")
	}
	return devauth.NewSessionStore(nil)
}

// BuildAuthService creates the auth service. It returns nil when no session store is available.
func BuildAuthService(cfg AuthConfig, sessions ports.SessionStore) *service.AuthService {
	if sessions == nil || cfg.Accounts == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: session store or backend client not configured")
		}
		return nil
	}
	return service.NewAuthService(service.AuthServiceOptions{
		Accounts: cfg.Accounts,
		Sessions: sessions,
		Config: service.AuthSessionConfig{
			SessionTTL:    cfg.Auth.SessionTTL,
			RememberMeTTL: cfg.Auth.RememberMeTTL,
			Logger:        cfg.Logger,
		},
	})
}
