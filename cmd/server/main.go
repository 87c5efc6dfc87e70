package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/airtable"
	"github.com/dressforpleasure/storefront/internal/api"
	"github.com/dressforpleasure/storefront/internal/config"
	"github.com/dressforpleasure/storefront/internal/n8n"
	"github.com/dressforpleasure/storefront/internal/service"
	"github.com/dressforpleasure/storefront/internal/stripe"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Outbound clients
	customers := airtable.NewClient(cfg.Airtable, logger)
	workflows := n8n.NewClient(cfg.N8N, logger)
	billing := stripe.NewClient(cfg.Stripe, logger)

	// Services
	services := api.Services{
		Contact:    service.NewContactService(customers, workflows, logger),
		Newsletter: service.NewNewsletterService(customers, workflows, cfg.Newsletter, logger),
		Sync:       service.NewCatalogSyncService(billing, logger),
	}

	router := api.NewRouter(cfg, services, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
