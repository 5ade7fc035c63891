package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"valuation-service/internal/domain"
)

// mapDomainError translates the domain taxonomy to HTTP. Internal failures
// pass the message through verbatim; the client drives debugging from it.
func mapDomainError(c *gin.Context, err error) {
	var notFound *domain.ModelNotFoundError

	switch {
	case errors.Is(err, domain.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
