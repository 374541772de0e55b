package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/shop"
)

type StockHandler struct {
	Repo *repository.Repository
	Shop *shop.Service
}

func (h *StockHandler) ListStock(c *gin.Context) {
	c.JSON(http.StatusOK, h.Repo.Stock())
}

func (h *StockHandler) AddProduct(c *gin.Context) {
	var req shop.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.Shop.AddProduct(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *StockHandler) UpdateProduct(c *gin.Context) {
	var req shop.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.Shop.UpdateProduct(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *StockHandler) DeleteProduct(c *gin.Context) {
	if err := h.Repo.DeleteProduct(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// SellCash sells one unit of the product for cash.
func (h *StockHandler) SellCash(c *gin.Context) {
	sale, err := h.Shop.SellCash(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sold for cash", "sale": sale})
}

type sellCreditRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Condition  string `json:"condition"`
}

// SellCredit sells one unit on khata: the sale is recorded and the selling
// price is added to the customer's account as a credit entry.
func (h *StockHandler) SellCredit(c *gin.Context) {
	var req sellCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sale, entry, err := h.Shop.SellOnCredit(c.Param("id"), req.CustomerID, req.Condition)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sold on credit", "sale": sale, "khata_entry": entry})
}
