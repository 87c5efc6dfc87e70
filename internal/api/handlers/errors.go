package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/pkg/errors"
)

// respondError maps service errors onto the HTTP error contract. Internal
// detail stays in the logs; responses only carry the taxonomy.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var validationErr *errors.ErrValidation
	if stderrors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": validationErr.Details,
		})
		return
	}

	var conflictErr *errors.ErrConflict
	if stderrors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Already subscribed",
			"message": conflictErr.Message,
		})
		return
	}

	logger.Error("Request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString("request_id")),
		zap.Error(err))

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"message": "Ein Fehler ist aufgetreten. Bitte versuchen Sie es später erneut.",
	})
}
