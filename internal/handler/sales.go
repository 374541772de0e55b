package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/shop"
)

type SalesHandler struct {
	Repo *repository.Repository
}

func (h *SalesHandler) ListSales(c *gin.Context) {
	c.JSON(http.StatusOK, h.Repo.Sales())
}

// Summary returns the dashboard totals computed from the frozen receipts.
func (h *SalesHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, shop.ComputeProfitSummary(h.Repo.Sales()))
}
