package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/service"
)

// ContactService handles contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, req service.ContactRequest, meta service.RequestMeta) (*service.ContactResult, error)
}

// HandleContactForm handles POST /api/contact-form
func HandleContactForm(svc ContactService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": []string{"Ungültiger Request-Body"},
			})
			return
		}

		meta := service.MetaFromHeader(c.Request.Header, "unknown")

		result, err := svc.Submit(c.Request.Context(), req, meta)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  result.Message,
			"ticketId": result.TicketID,
		})
	}
}
