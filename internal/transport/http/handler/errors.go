package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/internal/domain"
)

const (
	errInternalServer = "Internal server error"
	errInvalidBody    = "invalid request body"
)

// respondError is the single error boundary for all handlers. A tagged
// domain error is written as its status plus {"message"}; anything else
// (and any 5xx-class domain error) becomes a logged 500 with a generic
// message so internals never reach the client.
func respondError(c *gin.Context, logger *slog.Logger, op string, err error) {
	var apiErr *domain.Error
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		c.JSON(apiErr.Status, gin.H{"message": apiErr.Message})
		return
	}

	logger.ErrorContext(c.Request.Context(), op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
}
