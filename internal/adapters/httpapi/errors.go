package httpapi

import (
	"errors"
	"net/http"

	"yatube/internal/core/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto status codes. Validation errors on
// forms are answered by the handlers themselves, together with the form.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	if ve, ok := apperror.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Fields})
		return
	}
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperror.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		logger.Error("❌ Request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// malformed answers requests whose body could not be bound at all.
func malformed(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"__all__": "malformed request body"}})
}
