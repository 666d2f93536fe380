package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPlansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"plan"},
		Short:   "Manage subscription plans",
	}

	cmd.AddCommand(newPlansListCmd())
	cmd.AddCommand(newPlansSyncCmd())
	cmd.AddCommand(newPlansDeleteCmd())

	return cmd
}

// ---------- plans list ----------

func newPlansListCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				st, err := loadList(ctx, a.plans(pageSize).NewList(page))
				if err != nil {
					return err
				}
				t := table{header: []string{"ID", "NAME", "SLUG", "TYPE", "PRICE", "INTERVAL", "SUBSCRIBERS", "SYNCED"}}
				for _, pl := range st.Items {
					price := pl.DisplayPrice
					if price == "" {
						price = strings.TrimSpace(pl.Price + " " + strings.ToUpper(pl.Currency))
					}
					interval := "-"
					if pl.Interval != "" {
						interval = fmt.Sprintf("%d %s", max(pl.IntervalCount, 1), pl.Interval)
					}
					t.add(pl.ID.String(), pl.Name, pl.Slug, pl.PlanType, price, interval,
						fmt.Sprint(pl.SubscriberCount), yesNo(pl.StripeSynced))
				}
				t.footer = pageFooter(st.Meta)
				return p.print(a.out, resultOf(st), t)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "plans per page")

	return cmd
}

// ---------- plans sync ----------

func newPlansSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push every plan to the payment processor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				resp, err := a.plans(0).Sync(ctx, nil)
				if err != nil {
					return err
				}
				var t table
				t.add("Synced", fmt.Sprint(resp.Synced))
				t.add("Failed", fmt.Sprint(resp.Failed))
				t.footer = resp.Message
				return p.print(a.out, resp, t)
			})
		},
	}
}

// ---------- plans delete ----------

func newPlansDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <plan-id>...",
		Short: "Delete one or more plans",
		Long:  "Delete a single plan, or several at once through the bulk endpoint.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(cmd, yes, fmt.Sprintf("Delete %d plan(s) [%s]?", len(args), strings.Join(args, ", ")))
			if err != nil || !ok {
				return err
			}
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				svc := a.plans(0)
				if len(args) == 1 {
					if err := svc.Delete(ctx, nil, args[0]); err != nil {
						return err
					}
					return p.message(a.out, fmt.Sprintf("Plan %s deleted.", args[0]))
				}
				resp, err := svc.DeleteMany(ctx, nil, args)
				if err != nil {
					return err
				}
				var t table
				t.add("Deleted", fmt.Sprint(resp.Deleted))
				t.add("Failed", fmt.Sprint(resp.Failed))
				t.footer = resp.Message
				return p.print(a.out, resp, t)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
