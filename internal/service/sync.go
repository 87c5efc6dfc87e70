package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/domain"
)

// SyncResult reports the outcome of one sync batch. Partial success is the
// expected steady state: SyncedCount against the submitted total tells the
// operator what still needs attention.
type SyncResult struct {
	SyncedCount int                    `json:"synced_count"`
	Products    []domain.SyncedProduct `json:"products"`
}

type catalogSyncService struct {
	billing BillingGateway
	logger  *zap.Logger
}

// NewCatalogSyncService creates a new billing catalog sync service
func NewCatalogSyncService(billing BillingGateway, logger *zap.Logger) *catalogSyncService {
	return &catalogSyncService{
		billing: billing,
		logger:  logger,
	}
}

// Sync creates a billing product and price for each record in order. A
// failed item is logged and skipped; it never aborts the batch, and there
// is no rollback for items already created.
func (s *catalogSyncService) Sync(ctx context.Context, products []domain.SyncProduct) SyncResult {
	result := SyncResult{
		Products: make([]domain.SyncedProduct, 0, len(products)),
	}

	for _, product := range products {
		productID, err := s.billing.CreateProduct(ctx, product)
		if err != nil {
			s.logger.Error("Failed to sync product",
				zap.String("airtable_id", product.AirtableID),
				zap.String("name", product.Name),
				zap.Error(err))
			continue
		}

		priceID, err := s.billing.CreatePrice(ctx, productID, product)
		if err != nil {
			s.logger.Error("Failed to create price",
				zap.String("airtable_id", product.AirtableID),
				zap.String("stripe_product_id", productID),
				zap.Error(err))
			continue
		}

		result.Products = append(result.Products, domain.SyncedProduct{
			AirtableID:      product.AirtableID,
			StripeProductID: productID,
			StripePriceID:   priceID,
			Name:            product.Name,
			Price:           product.Price,
		})
	}

	result.SyncedCount = len(result.Products)

	s.logger.Info("Catalog sync finished",
		zap.Int("submitted", len(products)),
		zap.Int("synced", result.SyncedCount))

	return result
}
