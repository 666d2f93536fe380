package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Default backend API root when neither the profile nor the environment sets one.
const defaultBackendURL = "http://localhost:8000/api/"

var (
	cfgFile      string
	backendURL   string
	outputFormat string
	outputQuery  string
	verbose      bool
)

// Execute creates the root command tree and runs it.
func Execute(version, commit, date string) error {
	return newRootCmd(version, commit, date).Execute()
}

func newRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subadmin-cli",
		Short: "Operate the subscription platform from a terminal",
		Long: `subadmin-cli drives the subscription platform's admin API: moderate users,
manage administrators and plans, inspect payments and subscriptions, and
rotate third-party API keys.

Sign in once with "subadmin-cli login"; the tokens are kept in ~/.subadmin.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "profile file (default is $HOME/.subadmin.yaml)")
	cmd.PersistentFlags().StringVar(&backendURL, "backend-url", "", "backend API root (overrides the profile)")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatTable, "output format: table, json or yaml")
	cmd.PersistentFlags().StringVarP(&outputQuery, "query", "q", "", "JMESPath expression applied to json/yaml output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log backend calls to stderr")

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newLogoutCmd())
	cmd.AddCommand(newWhoamiCmd())
	cmd.AddCommand(newUsersCmd())
	cmd.AddCommand(newAdminsCmd())
	cmd.AddCommand(newPaymentsCmd())
	cmd.AddCommand(newPlansCmd())
	cmd.AddCommand(newKeysCmd())
	cmd.AddCommand(newSubscriptionsCmd())
	cmd.AddCommand(newCustomersCmd())
	cmd.AddCommand(newDashboardCmd())
	cmd.AddCommand(newVersionCmd(version, commit, date))

	return cmd
}

func initConfig() {
	viper.SetConfigFile(profilePath())
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("SUBADMIN")
	viper.AutomaticEnv()
	viper.SetDefault(keyBackendURL, defaultBackendURL)
	_ = viper.ReadInConfig() // the profile is optional until login
}

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout(), version, commit, date)
		},
	}
}

func printVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "subadmin-cli %s (commit %s, built %s)\n", version, commit, date)
}

func stderr(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stderr
	}
	return cmd.ErrOrStderr()
}
