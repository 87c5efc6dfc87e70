package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/service"
)

// NewsletterService handles newsletter signups.
type NewsletterService interface {
	Signup(ctx context.Context, req service.NewsletterRequest, meta service.RequestMeta) (*service.NewsletterResult, error)
}

// HandleNewsletterSignup handles POST /api/newsletter-signup
func HandleNewsletterSignup(svc NewsletterService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.NewsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": []string{"Ungültiger Request-Body"},
			})
			return
		}

		meta := service.MetaFromHeader(c.Request.Header, "de")

		result, err := svc.Signup(c.Request.Context(), req, meta)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"message":         result.Message,
			"welcomeDiscount": result.WelcomeDiscount,
			"welcomeCode":     result.WelcomeCode,
			"doubleOptIn":     result.DoubleOptIn,
		})
	}
}
