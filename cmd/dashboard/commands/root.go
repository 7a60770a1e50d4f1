package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/order_management/internal/config"
	"github.com/Skotchmaster/order_management/internal/dashboard"
	"github.com/Skotchmaster/order_management/internal/logging"
)

var (
	// Global flags
	apiURL     string
	verbose    bool
	jsonOutput bool

	cfg config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Order Management dashboard",
	Long: `Terminal dashboard for the order management service.

Without a subcommand it starts the interactive orders view. The order list is
fetched once per session; press r in the interactive view to refresh it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var w io.Writer = io.Discard
		if verbose {
			w = os.Stderr
		}
		slog.SetDefault(logging.NewWithWriter(w, cfg.LogLevel).With("component", "dashboard"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, dashboard.StatusAll)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg = config.Load()

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", cfg.APIURL, "Base URL of the order management API")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func newClient() *dashboard.Client {
	return dashboard.NewClient(apiURL, cfg.HTTPClientTimeout)
}
