package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/shop"
)

// respondError maps engine errors onto HTTP statuses: lookup misses are 404,
// validation failures 400, everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound), errors.Is(err, repository.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, shop.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
