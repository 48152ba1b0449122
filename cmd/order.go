package cmd

import (
	"context"
	"fmt"
	"os"

	"furniture-store/core/config"
	"furniture-store/core/logger"
	"furniture-store/feature/catalog"
	"furniture-store/feature/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// orderCmd represents the order command
var orderCmd = &cobra.Command{
	Use:   "order [variant]",
	Short: "Order a matched chair and table set",
	Long: `Orders one chair and one table from a single furniture family (hatil or
otobi) and prints the delivery receipt. Without an argument the variant is
taken from configuration (STORE_VARIANT).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		variant := ""
		if len(args) == 1 {
			variant = args[0]
		}
		runOrder(cmd.Context(), variant)
	},
}

func init() {
	RootCmd.AddCommand(orderCmd)
}

func runOrder(ctx context.Context, variant string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logg.Sync()

	// CLI argument overrides the configured variant
	if variant == "" {
		variant = cfg.Store.Variant
	}

	shop, err := store.ForVariant(catalog.Variant(variant), logg)
	if err != nil {
		logg.Fatal("Unsupported furniture variant", zap.String("variant", variant), zap.Error(err))
	}

	logg.Info("Ordering furniture...", zap.String("variant", variant))
	receipt := shop.OrderFurniture(ctx)

	printReceipt(receipt)
}

// printReceipt writes the human-readable order summary to the console.
func printReceipt(r *store.Receipt) {
	fmt.Println("\n--- Delivery Receipt ---")
	fmt.Printf("Order ID:   %s\n", r.OrderID)
	fmt.Printf("Variant:    %s\n", r.Variant)
	fmt.Println("Delivered:")
	for _, item := range r.Items {
		fmt.Printf("- %s %s\n", r.Variant, item)
	}
	fmt.Println("------------------------")
}
