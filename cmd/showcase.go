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

// showcaseCmd represents the showcase command
var showcaseCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Order from every furniture family in sequence",
	Long: `Runs the order flow once per supported variant, in order, demonstrating
that each family delivers a matched chair and table set.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShowcase(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(showcaseCmd)
}

func runShowcase(ctx context.Context) {
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

	for _, v := range catalog.Variants() {
		shop, err := store.ForVariant(v, logg)
		if err != nil {
			logg.Fatal("Unsupported furniture variant", zap.String("variant", string(v)), zap.Error(err))
		}

		logg.Info("Ordering furniture...", zap.String("variant", string(v)))
		receipt := shop.OrderFurniture(ctx)

		printReceipt(receipt)
	}
}
