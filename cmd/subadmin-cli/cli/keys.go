package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/target/subscription-admin/internal/domain/model"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"apikeys", "api-keys"},
		Short:   "Inspect and set third-party API keys",
	}

	cmd.AddCommand(newKeysListCmd())
	cmd.AddCommand(newKeysSetCmd())

	return cmd
}

// ---------- keys list ----------

func newKeysListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List API keys; secret values are masked by the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				st, err := loadList(ctx, a.apiKeys().NewList())
				if err != nil {
					return err
				}
				if category != "" {
					kept := st.Items[:0]
					for _, k := range st.Items {
						if strings.EqualFold(k.Category, category) {
							kept = append(kept, k)
						}
					}
					st.Items = kept
				}
				t := table{header: []string{"CATEGORY", "KEY", "LABEL", "SET", "VALUE"}}
				for _, k := range st.Items {
					t.add(orDash(k.Category), k.Key, k.Label, yesNo(k.IsSet), orDash(k.Value))
				}
				t.footer = fmt.Sprintf("%d of %d configured", st.Counts["configured"], st.Counts["total"])
				return p.print(a.out, resultOf(st), t)
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only show keys in this category")

	return cmd
}

// ---------- keys set ----------

func newKeysSetCmd() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "set <key>",
		Short: "Set the value of an API key",
		Long:  "Set the value of an API key. The value is prompted for without echo, or read from stdin with --value-stdin.",
		Example: `  subadmin-cli keys set STRIPE_SECRET_KEY
  printf %s "$KEY" | subadmin-cli keys set OPENAI_API_KEY --value-stdin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				value string
				err   error
			)
			if fromStdin {
				value, err = readLine(cmd.InOrStdin())
			} else {
				value, err = readSecret(cmd, "Value: ")
			}
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, a *app, p printer) error {
				req := model.UpdateAPIKeyRequest{Value: value}
				if err := a.apiKeys().Update(ctx, nil, args[0], req); err != nil {
					return err
				}
				return p.message(a.out, fmt.Sprintf("API key %s updated.", args[0]))
			})
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "value-stdin", false, "read the value from stdin")

	return cmd
}
