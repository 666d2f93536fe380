package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/target/subscription-admin/internal/domain/model"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "List and moderate platform users",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersToggleCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

// ---------- users list ----------

func newUsersListCmd() *cobra.Command {
	var (
		page   int
		filter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Example: `  subadmin-cli users list --filter subscribers --page 2
  subadmin-cli users list -o json -q "items[?is_disabled].email"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				return runUsersList(ctx, a, p, page, model.ParseUserFilter(filter))
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringVar(&filter, "filter", string(model.UserFilterAll), "all, free or subscribers")

	return cmd
}

func runUsersList(ctx context.Context, a *app, p printer, page int, filter model.UserFilter) error {
	st, err := loadList(ctx, a.users().NewList(page, filter))
	if err != nil {
		return err
	}

	t := table{header: []string{"#", "ID", "NAME", "EMAIL", "PLAN", "JOINED", "DISABLED"}}
	for _, u := range st.Items {
		plan := u.Subscription.Name
		if u.Subscription.IsFree {
			plan = "Free"
		}
		t.add(u.SlNo, u.ID.String(), orDash(u.User.Name), u.Email, orDash(plan), orDash(u.DateJoined), yesNo(u.IsDisabled))
	}
	t.footer = fmt.Sprintf("%s  [all %d, free %d, subscribers %d]", pageFooter(st.Meta),
		st.Counts[string(model.UserFilterAll)],
		st.Counts[string(model.UserFilterFree)],
		st.Counts[string(model.UserFilterSubscribers)])
	return p.print(a.out, resultOf(st), t)
}

// ---------- users toggle ----------

func newUsersToggleCmd() *cobra.Command {
	var disable, enable bool

	cmd := &cobra.Command{
		Use:   "toggle <user-id>",
		Short: "Disable or re-enable a user",
		Example: `  subadmin-cli users toggle 42 --disable
  subadmin-cli users toggle 42 --enable`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if disable == enable {
				return errors.New("exactly one of --disable or --enable is required")
			}
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				if err := a.users().SetDisabled(ctx, nil, args[0], disable); err != nil {
					return err
				}
				state := "enabled"
				if disable {
					state = "disabled"
				}
				return p.message(a.out, fmt.Sprintf("User %s %s.", args[0], state))
			})
		},
	}

	cmd.Flags().BoolVar(&disable, "disable", false, "disable the user")
	cmd.Flags().BoolVar(&enable, "enable", false, "re-enable the user")

	return cmd
}

// ---------- users delete ----------

func newUsersDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(cmd, yes, fmt.Sprintf("Delete user %s?", args[0]))
			if err != nil || !ok {
				return err
			}
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				if err := a.users().Delete(ctx, nil, args[0]); err != nil {
					return err
				}
				return p.message(a.out, fmt.Sprintf("User %s deleted.", args[0]))
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
