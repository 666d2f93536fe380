package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/target/subscription-admin/config"
	"github.com/target/subscription-admin/internal/adapters/backendapi"
	"github.com/target/subscription-admin/internal/domain/model"
	"github.com/target/subscription-admin/internal/ports"
	"github.com/target/subscription-admin/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth           *service.AuthService
	Users          *service.UserService
	Administrators *service.AdministratorService
	Payments       *service.PaymentService
	Plans          *service.PlanService
	Subscriptions  *service.SubscriptionService
	APIKeys        *service.APIKeyService
	Profile        *service.ProfileService
	Policies       *service.PolicyService
	Dashboard      *service.DashboardService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config   *config.AppConfig
	Backend  ports.BackendAPI
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// NewBackendClient builds the REST client every service talks through.
func NewBackendClient(cfg config.BackendConfig, logger *slog.Logger) (*backendapi.Client, error) {
	client, err := backendapi.NewClient(backendapi.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}
	return client, nil
}

// NewServices wires the domain services onto the backend client and session store.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	api := deps.Backend
	pageSize := model.DefaultPageSize

	return ServiceContainer{
		Auth: BuildAuthService(AuthConfig{
			Auth:     deps.Config.Auth,
			Accounts: api,
			Logger:   logger,
		}, deps.Sessions),
		Users:          service.NewUserService(service.UserServiceOptions{API: api, Logger: logger}),
		Administrators: service.NewAdministratorService(service.AdministratorServiceOptions{API: api, Logger: logger}),
		Payments:       service.NewPaymentService(service.PaymentServiceOptions{API: api, Logger: logger}),
		Plans:          service.NewPlanService(service.PlanServiceOptions{API: api, PageSize: pageSize, Logger: logger}),
		Subscriptions: service.NewSubscriptionService(service.SubscriptionServiceOptions{
			API:    api,
			Limits: service.SubscriptionLimits{Subscriptions: pageSize, Customers: pageSize},
			Logger: logger,
		}),
		APIKeys:   service.NewAPIKeyService(service.APIKeyServiceOptions{API: api, Logger: logger}),
		Profile:   service.NewProfileService(service.ProfileServiceOptions{API: api, Sessions: deps.Sessions, Logger: logger}),
		Policies:  service.NewPolicyService(service.PolicyServiceOptions{API: api, Logger: logger}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{Overview: api, Subscriptions: api, Logger: logger}),
	}
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown starts the HTTP server and blocks until a shutdown signal
// is received or the server fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Services.Auth == nil {
		return errors.New("auth service is not configured; set REDIS_URI or run with DEV=true")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
		ErrCh:    errCh,
	})

	return waitForShutdown(shutdownConfig{
		ctx:             ctx,
		cancel:          cancel,
		errCh:           errCh,
		httpServer:      server,
		shutdownTimeout: cfg.Config.HTTP.ShutdownTimeout,
		logger:          logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	ctx             context.Context
	cancel          context.CancelFunc
	errCh           <-chan error
	signals         <-chan os.Signal
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// waitForShutdown waits for shutdown signal or server error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := cfg.signals
	if quit == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(ch)
		quit = ch
	}

	select {
	case <-quit:
		cfg.logger.Info("shutting down...")
		cfg.cancel()
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("HTTP server error", "error", err)
		cfg.cancel()
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop drains in-flight requests within the shutdown timeout.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.httpServer == nil {
		return nil
	}
	return ShutdownHTTPServer(ShutdownConfig{
		Context: context.WithoutCancel(cfg.ctx),
		Server:  cfg.httpServer,
		Timeout: cfg.shutdownTimeout,
		Logger:  cfg.logger,
	})
}
