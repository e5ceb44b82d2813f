package handler

import (
	"net/http"

	"macrolog/internal/logger"
	"macrolog/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses: validation
// failures are 400, missing entities 404, everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
