package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/order_management/cmd/dashboard/output"
	"github.com/Skotchmaster/order_management/internal/dashboard"
	"github.com/Skotchmaster/order_management/internal/transport"
)

var (
	// Orders flags
	ordersStatus string
	sortQuantity bool
)

// ordersCmd prints the order list once
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List orders",
	Long: `Fetch the orders and print them as a table.

Examples:
  dashboard orders                          # All orders
  dashboard orders --status Shipped         # Only shipped orders
  dashboard orders --sort-quantity --json   # Largest quantity first, as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !dashboard.IsStatusOption(ordersStatus) {
			return fmt.Errorf("unknown status %q, want one of %v", ordersStatus, dashboard.StatusOptions())
		}
		cache := dashboard.NewOrderCache(newClient(), cfg.CacheTTL)
		return runOrders(cmd, cache, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	ordersCmd.Flags().StringVar(&ordersStatus, "status", dashboard.StatusAll, "Filter by order status")
	ordersCmd.Flags().BoolVar(&sortQuantity, "sort-quantity", false, "Sort by quantity, largest first")
	rootCmd.AddCommand(ordersCmd)
}

// runOrders never fails on a fetch error: it reports it and prints an
// empty list.
func runOrders(cmd *cobra.Command, cache *dashboard.OrderCache, stdout, stderr io.Writer) error {
	orders, err := cache.Get(cmd.Context())
	if err != nil {
		slog.Warn("fetch_orders_failed", "error", err)
		output.Error(stderr, "Failed to load orders.")
		output.Muted(stderr, "%v", err)
	}

	orders = dashboard.FilterByStatus(orders, ordersStatus)
	if sortQuantity {
		orders = dashboard.SortByQuantity(orders)
	}

	return printOrders(stdout, orders)
}

func printOrders(w io.Writer, orders []transport.OrderResponse) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(orders)
	}

	output.Title(w, "📝 Orders List")
	fmt.Fprintln(w, output.OrdersTable(orders))
	output.Muted(w, "%d orders", len(orders))
	return nil
}
