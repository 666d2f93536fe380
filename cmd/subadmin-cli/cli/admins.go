package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/target/subscription-admin/internal/domain/model"
)

func newAdminsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "admins",
		Aliases: []string{"admin", "administrators"},
		Short:   "Manage dashboard administrators",
	}

	cmd.AddCommand(newAdminsListCmd())
	cmd.AddCommand(newAdminsCreateCmd())
	cmd.AddCommand(newAdminsDeleteCmd())

	return cmd
}

// ---------- admins list ----------

func newAdminsListCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List administrators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				st, err := loadList(ctx, a.administrators().NewList(page))
				if err != nil {
					return err
				}
				t := table{header: []string{"ID", "NAME", "EMAIL", "PHONE", "ACCESS", "ACTIVE", "JOINED"}}
				for _, adm := range st.Items {
					t.add(adm.ID.String(), adm.Name, adm.Email, orDash(adm.Phone), adm.AccessLevel,
						yesNo(adm.IsActive), orDash(adm.DateJoined))
				}
				t.footer = pageFooter(st.Meta)
				return p.print(a.out, resultOf(st), t)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")

	return cmd
}

// ---------- admins create ----------

func newAdminsCreateCmd() *cobra.Command {
	var (
		name    string
		email   string
		phone   string
		access  string
		pwStdin bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator",
		Long:  "Create a dashboard administrator. The password is prompted for twice unless --password-stdin is set.",
		Example: `  subadmin-cli admins create --name "Ada Admin" --email ada@example.com
  echo "$PW" | subadmin-cli admins create --name Ops --email ops@example.com --access-level superadmin --password-stdin`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readNewPassword(cmd, pwStdin)
			if err != nil {
				return err
			}
			req := model.CreateAdministratorRequest{
				Name:          strings.TrimSpace(name),
				Email:         strings.TrimSpace(email),
				ContactNumber: strings.TrimSpace(phone),
				AccessLevel:   model.AccessLevel(strings.ToLower(strings.TrimSpace(access))),
				Password:      password,
			}
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				created, err := a.administrators().Create(ctx, nil, req)
				if err != nil {
					return err
				}
				var t table
				t.add("Created administrator", created.Email)
				t.add("ID", created.ID.String())
				t.add("Access level", created.AccessLevel)
				return p.print(a.out, created, t)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&email, "email", "", "login email (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "contact number")
	cmd.Flags().StringVar(&access, "access-level", string(model.AccessLevelAdmin), "admin or superadmin")
	cmd.Flags().BoolVar(&pwStdin, "password-stdin", false, "read the password from stdin without confirmation")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// readNewPassword prompts for a password and its confirmation.
func readNewPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		pw, err := readLine(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return pw, nil
	}
	pw, err := readSecret(cmd, "Password: ")
	if err != nil {
		return "", err
	}
	again, err := readSecret(cmd, "Confirm password: ")
	if err != nil {
		return "", err
	}
	if pw != again {
		return "", errors.New("passwords do not match")
	}
	return pw, nil
}

// ---------- admins delete ----------

func newAdminsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <administrator-id>",
		Short: "Delete an administrator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(cmd, yes, fmt.Sprintf("Delete administrator %s?", args[0]))
			if err != nil || !ok {
				return err
			}
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				if err := a.administrators().Delete(ctx, nil, args[0]); err != nil {
					return err
				}
				return p.message(a.out, fmt.Sprintf("Administrator %s deleted.", args[0]))
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
