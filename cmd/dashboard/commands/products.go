package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/order_management/cmd/dashboard/output"
	"github.com/Skotchmaster/order_management/internal/transport"
)

// productsCmd prints the product catalog
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		products, err := newClient().FetchProducts(cmd.Context())
		if err != nil {
			slog.Warn("fetch_products_failed", "error", err)
			output.Error(cmd.ErrOrStderr(), "Failed to load products.")
			output.Muted(cmd.ErrOrStderr(), "%v", err)
			products = []transport.ProductResponse{}
		}

		if jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(products)
		}

		output.Title(w, "🛒 Products")
		fmt.Fprintln(w, output.ProductsTable(products))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
}
