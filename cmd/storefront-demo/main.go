package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/domain"
	"github.com/dressforpleasure/storefront/internal/storefront"
)

// Walks the storefront state container through a typical session against
// the built-in sample catalog. Cart and preferences persist in the state
// directory, so a second run starts with the previous cart.
func main() {
	stateDir := ".storefront"
	if len(os.Args) > 1 {
		stateDir = os.Args[1]
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	storage, err := storefront.NewFileStorage(stateDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open state directory: %v\n", err)
		os.Exit(1)
	}

	store := storefront.NewStore(storefront.SampleCatalog{}, storage, logger)

	unsubscribe := store.Subscribe(func(ev storefront.Event) {
		if ev.Type == storefront.EventNotification && ev.Notification != nil {
			fmt.Printf("  [%s] %s\n", ev.Notification.Level, ev.Notification.Message)
		}
	})
	defer unsubscribe()

	if err := store.LoadCatalog(context.Background()); err != nil {
		os.Exit(1)
	}

	previous := store.Cart()
	if previous.Count > 0 {
		fmt.Printf("Restored cart: %d items, %.2f EUR\n\n", previous.Count, previous.Total)
	}

	fmt.Printf("Catalog (%d products):\n", len(store.Products()))
	for _, p := range store.Visible() {
		fmt.Printf("  %7.2f EUR  %s (%s)\n", p.Price, p.Name, p.Category.DisplayName())
	}

	store.FilterByCategory(domain.CategoryOberteile)
	fmt.Printf("\nFilter %s: %d products\n", domain.CategoryOberteile.DisplayName(), len(store.Visible()))

	results := store.Search("seide")
	fmt.Printf("Search \"seide\": %d hits\n\n", len(results))

	if visible := store.Visible(); len(visible) > 0 {
		store.AddToCart(visible[0], 1)
	}

	cart := store.Cart()
	fmt.Printf("\nCart: %d items, %.2f EUR (saved to %s)\n", cart.Count, cart.Total, stateDir)
}
