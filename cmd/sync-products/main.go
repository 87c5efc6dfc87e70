package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/config"
	"github.com/dressforpleasure/storefront/internal/domain"
	"github.com/dressforpleasure/storefront/internal/service"
	"github.com/dressforpleasure/storefront/internal/stripe"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/sync-products/main.go <products.json>")
		fmt.Println("Example: go run cmd/sync-products/main.go catalog-export.json")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Stripe.SecretKey == "" {
		fmt.Fprintln(os.Stderr, "STRIPE_SECRET_KEY is required")
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Read product list
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read product file: %v\n", err)
		os.Exit(1)
	}

	var products []domain.SyncProduct
	if err := json.Unmarshal(data, &products); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse product file: %v\n", err)
		os.Exit(1)
	}

	// Run the sync
	billing := stripe.NewClient(cfg.Stripe, logger)
	syncService := service.NewCatalogSyncService(billing, logger)

	result := syncService.Sync(context.Background(), products)

	fmt.Printf("Synced %d of %d products\n", result.SyncedCount, len(products))
	for _, p := range result.Products {
		fmt.Printf("  %s -> product %s, price %s\n", p.AirtableID, p.StripeProductID, p.StripePriceID)
	}
	if result.SyncedCount < len(products) {
		fmt.Printf("%d products failed, see log output above\n", len(products)-result.SyncedCount)
		os.Exit(1)
	}
}
