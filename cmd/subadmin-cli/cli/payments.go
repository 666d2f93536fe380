package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/target/subscription-admin/internal/domain/model"
)

func newPaymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Inspect recorded payments",
	}
	cmd.AddCommand(newPaymentsListCmd())
	return cmd
}

func newPaymentsListCmd() *cobra.Command {
	var (
		page   int
		status string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List payments",
		Example: `  subadmin-cli payments list --status failed`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				st, err := loadList(ctx, a.payments().NewList(page, model.ParsePaymentStatus(status)))
				if err != nil {
					return err
				}
				t := table{header: []string{"#", "USER", "EMAIL", "PLAN", "AMOUNT", "STATUS", "METHOD", "CREATED"}}
				for _, pay := range st.Items {
					amount := pay.Amount
					if amount == "" {
						amount = fmt.Sprintf("%.2f %s", pay.AmountRaw, pay.Currency)
					}
					t.add(pay.SerialNo, orDash(pay.UserName), pay.Email, orDash(pay.PlanName), amount,
						pay.Status, orDash(pay.PaymentMethod), orDash(pay.CreatedAt))
				}
				t.footer = pageFooter(st.Meta)
				return p.print(a.out, resultOf(st), t)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringVar(&status, "status", string(model.PaymentStatusAll), "all, succeeded, pending or failed")

	return cmd
}
