package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/target/subscription-admin/config"
	"github.com/target/subscription-admin/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	if err = bootstrap.ValidateConfig(&cfg); err != nil {
		return err
	}
	logStartupInfo(ctx, logger, &cfg)

	redisClient, err := connectRedis(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	backend, err := bootstrap.NewBackendClient(cfg.Backend, logger)
	if err != nil {
		return err
	}

	sessions := bootstrap.BuildSessionStore(bootstrap.AuthConfig{
		Redis:       cfg.Redis,
		RedisClient: redisClient,
		IsDev:       cfg.IsDev,
		Logger:      logger,
	})

	services := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:   &cfg,
		Backend:  backend,
		Sessions: sessions,
		Logger:   logger,
	})

	return bootstrap.RunServicesWithShutdown(&bootstrap.ServiceOrchestrationConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting subscription admin",
		"addr", cfg.HTTP.Addr,
		"backend", cfg.Backend.BaseURL,
		"dev", cfg.IsDev,
		"session_ttl", cfg.Auth.SessionTTL.String())
}

// connectRedis reaches the session store. In dev mode an unreachable Redis is tolerated
// and sessions fall back to memory.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func connectRedis(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client, err := bootstrap.ConnectRedis(bootstrap.RedisConnectConfig{Redis: cfg.Redis, Logger: logger})
	if err == nil {
		return client, nil
	}
	if cfg.IsDev {
		logger.WarnContext(ctx, "redis unavailable in dev mode", "error", err)
		return nil, nil
	}
	return nil, fmt.Errorf("connect redis: %w", err)
}
