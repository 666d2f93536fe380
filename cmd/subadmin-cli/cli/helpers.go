package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
	"github.com/target/subscription-admin/internal/service"
)

// commandTimeout bounds every backend round trip made by a single command.
const commandTimeout = 60 * time.Second

// app bundles what a command needs to talk to the backend.
type app struct {
	profile profile
	client  *backendapi.Client
	logger  *slog.Logger
	out     io.Writer
}

func newApp(cmd *cobra.Command) (*app, error) {
	p := currentProfile()
	logger := newLogger(stderr(cmd))
	client, err := backendapi.NewClient(backendapi.Config{
		BaseURL:   p.BackendURL,
		UserAgent: "subadmin-cli",
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	return &app{profile: p, client: client, logger: logger, out: cmd.OutOrStdout()}, nil
}

func newLogger(w io.Writer) *slog.Logger {
	if !verbose {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// authed returns a context carrying the profile's access token.
func (a *app) authed(cmd *cobra.Command) (context.Context, context.CancelFunc, error) {
	token, err := a.profile.token()
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	return backendapi.ContextWithToken(ctx, token), cancel, nil
}

func (a *app) users() *service.UserService {
	return service.NewUserService(service.UserServiceOptions{API: a.client, Logger: a.logger})
}

func (a *app) administrators() *service.AdministratorService {
	return service.NewAdministratorService(service.AdministratorServiceOptions{API: a.client, Logger: a.logger})
}

func (a *app) payments() *service.PaymentService {
	return service.NewPaymentService(service.PaymentServiceOptions{API: a.client, Logger: a.logger})
}

func (a *app) plans(pageSize int) *service.PlanService {
	return service.NewPlanService(service.PlanServiceOptions{API: a.client, PageSize: pageSize, Logger: a.logger})
}

func (a *app) subscriptions(limit int) *service.SubscriptionService {
	return service.NewSubscriptionService(service.SubscriptionServiceOptions{
		API:    a.client,
		Limits: service.SubscriptionLimits{Subscriptions: limit, Customers: limit},
		Logger: a.logger,
	})
}

func (a *app) apiKeys() *service.APIKeyService {
	return service.NewAPIKeyService(service.APIKeyServiceOptions{API: a.client, Logger: a.logger})
}

func (a *app) dashboard() *service.DashboardService {
	return service.NewDashboardService(service.DashboardServiceOptions{
		Overview:      a.client,
		Subscriptions: a.client,
		Logger:        a.logger,
	})
}

// withSession runs fn with an authenticated context, the app and the selected printer.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, a *app, p printer) error) error {
	p, err := currentPrinter()
	if err != nil {
		return err
	}
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	ctx, cancel, err := a.authed(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	return fn(ctx, a, p)
}

// readSecret prompts on stderr and reads a line without echo when stdin is a terminal.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(stderr(cmd), prompt)
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(stderr(cmd))
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(b), nil
	}
	line, err := readLine(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

// readLine reads up to a newline one byte at a time so consecutive prompts share stdin.
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			sb.WriteByte(buf[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.TrimRight(sb.String(), "\r"), nil
}

// confirm asks a yes/no question unless --yes was given.
func confirm(cmd *cobra.Command, assumeYes bool, question string) (bool, error) {
	if assumeYes {
		return true, nil
	}
	fmt.Fprintf(stderr(cmd), "%s This action cannot be undone. [y/N]: ", question)
	line, err := readLine(cmd.InOrStdin())
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		fmt.Fprintln(stderr(cmd), "Aborted.")
		return false, nil
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
