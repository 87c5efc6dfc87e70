package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/domain"
	"github.com/dressforpleasure/storefront/internal/service"
)

// CatalogSyncService batch-syncs catalog products to the billing provider.
type CatalogSyncService interface {
	Sync(ctx context.Context, products []domain.SyncProduct) service.SyncResult
}

// SyncRequest represents the catalog sync payload
type SyncRequest struct {
	Products []domain.SyncProduct `json:"products"`
}

// HandleSyncProducts handles POST /api/sync-stripe-products
func HandleSyncProducts(svc CatalogSyncService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SyncRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": []string{"Ungültiger Request-Body"},
			})
			return
		}
		if req.Products == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": []string{"products ist erforderlich"},
			})
			return
		}

		result := svc.Sync(c.Request.Context(), req.Products)

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"synced_count": result.SyncedCount,
			"products":     result.Products,
		})
	}
}
