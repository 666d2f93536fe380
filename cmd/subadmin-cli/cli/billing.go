package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/target/subscription-admin/internal/domain/model"
	"github.com/target/subscription-admin/internal/service"
)

func newSubscriptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subs"},
		Short:   "Inspect customer subscriptions",
	}
	cmd.AddCommand(newSubscriptionsListCmd())
	return cmd
}

func newSubscriptionsListCmd() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				st, err := loadList(ctx, a.subscriptions(limit).NewSubscriptionList(page))
				if err != nil {
					return err
				}
				t := table{header: []string{"ID", "CUSTOMER", "PLAN", "STATUS", "TRIAL", "PERIOD END", "CANCELS"}}
				for _, s := range st.Items {
					t.add(s.ID.String(), s.CustomerEmail, orDash(s.Plan.Name), s.Status, yesNo(s.IsTrial),
						orDash(s.CurrentPeriodEnd.String), yesNo(s.CancelAtPeriodEnd))
				}
				t.footer = pageFooter(st.Meta)
				return p.print(a.out, resultOf(st), t)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "subscriptions per page")

	return cmd
}

func newCustomersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Inspect billing customers",
	}
	cmd.AddCommand(newCustomersListCmd())
	return cmd
}

func newCustomersListCmd() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List billing customers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				st, err := loadList(ctx, a.subscriptions(limit).NewCustomerList(page))
				if err != nil {
					return err
				}
				t := table{header: []string{"ID", "NAME", "EMAIL", "STRIPE ID", "ACTIVE SUB", "DELINQUENT"}}
				for _, c := range st.Items {
					t.add(c.ID.String(), c.DisplayName(), c.Email, orDash(c.StripeCustomerID),
						yesNo(c.HasActiveSubscription), yesNo(c.Delinquent))
				}
				t.footer = pageFooter(st.Meta)
				return p.print(a.out, resultOf(st), t)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "customers per page")

	return cmd
}

// dashboardResult is the structured output of the dashboard command. Failed sections are omitted
// and listed under errors.
type dashboardResult struct {
	Overview *model.DashboardOverviewResponse     `json:"overview,omitempty"`
	Stats    *model.SubscriptionDashboardResponse `json:"stats,omitempty"`
	Chart    *model.SubscriptionChartResponse     `json:"chart,omitempty"`
	Errors   map[string]string                    `json:"errors,omitempty"`
}

func newDashboardCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show headline figures and subscription growth",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				d, err := a.dashboard().Load(ctx, months)
				if err != nil {
					return err
				}
				res := dashboardResult{Overview: d.Overview, Stats: d.Stats, Chart: d.Chart}
				for section, sectionErr := range map[string]error{
					"overview": d.OverviewErr, "stats": d.StatsErr, "chart": d.ChartErr,
				} {
					if sectionErr != nil {
						if res.Errors == nil {
							res.Errors = map[string]string{}
						}
						res.Errors[section] = sectionErr.Error()
					}
				}
				return p.print(a.out, res, dashboardTable(d))
			})
		},
	}

	cmd.Flags().IntVar(&months, "months", model.DefaultChartMonths, "growth chart range in months (1-24)")

	return cmd
}

func dashboardTable(d *service.Dashboard) table {
	t := table{header: []string{"METRIC", "VALUE", "CHANGE"}}
	if d.Overview != nil {
		o := d.Overview.Data
		t.add("Total users", fmt.Sprint(o.Stats.TotalUsers), "")
		t.add("Subscribers", fmt.Sprint(o.Stats.TotalSubscribers), "")
		t.add("New users", fmt.Sprint(o.Stats.NewUsers), "")
		t.add("Conversion rate", fmt.Sprintf("%.1f%%", o.DetailedStats.Subscribers.ConversionRate), "")
	} else {
		t.add("Overview", "unavailable", "")
	}
	if d.Stats != nil {
		s := d.Stats.Stats
		t.add("Total revenue", s.TotalRevenue.Value, s.TotalRevenue.Change)
		t.add("Active subscriptions", s.ActiveSubs.Value, s.ActiveSubs.Change)
		t.add("Churn rate", s.ChurnRate.Value, s.ChurnRate.Change)
		t.add("MRR", s.MRR.Value, s.MRR.Change)
	} else {
		t.add("Subscription stats", "unavailable", "")
	}
	if d.Chart != nil {
		for _, pt := range d.Chart.ChartData {
			t.add("  "+pt.Label, fmt.Sprintf("+%d / -%d", pt.NewSubscriptions, pt.Canceled), fmt.Sprintf("net %d", pt.NetGrowth))
		}
		t.footer = fmt.Sprintf("Last %d months: %d new, %d canceled, net %d",
			d.ChartMonths, d.Chart.Summary.TotalNewSubscriptions, d.Chart.Summary.TotalCanceled, d.Chart.Summary.NetGrowth)
	} else {
		t.footer = "Growth chart unavailable."
	}
	return t
}
