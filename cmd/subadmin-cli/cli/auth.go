package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/target/subscription-admin/internal/domain/model"
	"github.com/target/subscription-admin/internal/validate"
)

func newLoginCmd() *cobra.Command {
	var (
		email      string
		rememberMe bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the tokens in the profile",
		Example: `  subadmin-cli login --email admin@example.com
  SUBADMIN_BACKEND_URL=https://api.example.com/api/ subadmin-cli login --email admin@example.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogin(cmd, email, rememberMe)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "administrator email (required)")
	cmd.Flags().BoolVar(&rememberMe, "remember-me", false, "request a long-lived session")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runLogin(cmd *cobra.Command, email string, rememberMe bool) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	password, err := readSecret(cmd, "Password: ")
	if err != nil {
		return err
	}
	req := model.LoginRequest{Email: strings.TrimSpace(email), Password: password, RememberMe: rememberMe}
	if err := validate.Struct(req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()
	resp, err := a.client.Login(ctx, req)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if resp.Data.Tokens.Access == "" {
		return fmt.Errorf("login: backend returned no access token")
	}

	path := profilePath()
	stored, err := loadProfile(path)
	if err != nil {
		return err
	}
	stored.BackendURL = a.profile.BackendURL
	stored.Email = req.Email
	stored.AccessToken = resp.Data.Tokens.Access
	stored.RefreshToken = resp.Data.Tokens.Refresh
	if err := saveProfile(path, stored); err != nil {
		return err
	}

	name := resp.Data.User.Name
	if name == "" {
		name = req.Email
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (profile %s)\n", name, path)
	return nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := profilePath()
			stored, err := loadProfile(path)
			if err != nil {
				return err
			}
			if stored.AccessToken == "" && stored.RefreshToken == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			stored.AccessToken, stored.RefreshToken = "", ""
			if err := saveProfile(path, stored); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in administrator's profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			resp, err := a.client.GetProfile(ctx)
			if err != nil {
				return err
			}
			prof := resp.Data
			var t table
			t.add("Name", prof.Name)
			t.add("Email", prof.Email)
			t.add("Phone", orDash(prof.Phone))
			t.add("Role", orDash(prof.RoleDisplay))
			t.add("Joined", orDash(prof.DateJoined))
			t.add("Last login", orDash(prof.LastLogin))
			t.footer = "Backend: " + a.profile.BackendURL
			return p.print(a.out, prof, t)
		},
	}
}
