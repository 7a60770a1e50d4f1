package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/order_management/cmd/dashboard/tui"
	"github.com/Skotchmaster/order_management/internal/dashboard"
)

var tuiStatus string

// tuiCmd starts the interactive orders view
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive orders view",
	Long: `Interactive orders view.

Keys:
  f / tab   cycle the status filter (All, Pending, Shipped, Delivered)
  s         sort the current view by quantity, largest first
  r         refetch orders from the API
  q         quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, tuiStatus)
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiStatus, "status", dashboard.StatusAll, "Initial status filter")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, status string) error {
	cache := dashboard.NewOrderCache(newClient(), cfg.CacheTTL)
	model := tui.NewOrdersModel(cmd.Context(), cache, status)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
