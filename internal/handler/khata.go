package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/models"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/shop"
)

type KhataHandler struct {
	Repo *repository.Repository
	Shop *shop.Service
}

type customerWithBalance struct {
	models.Customer
	Balance float64 `json:"balance"`
}

// ListCustomers returns every customer with the current khata balance.
func (h *KhataHandler) ListCustomers(c *gin.Context) {
	customers := h.Repo.Customers()
	balances := shop.ComputeBalances(h.Repo.KhataEntries())

	out := make([]customerWithBalance, 0, len(customers))
	for _, cust := range customers {
		out = append(out, customerWithBalance{Customer: cust, Balance: balances[cust.ID]})
	}
	c.JSON(http.StatusOK, out)
}

func (h *KhataHandler) CreateCustomer(c *gin.Context) {
	var req shop.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.Shop.AddCustomer(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *KhataHandler) UpdateCustomer(c *gin.Context) {
	var req shop.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.Shop.UpdateCustomer(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes the customer and all their khata entries.
func (h *KhataHandler) DeleteCustomer(c *gin.Context) {
	if err := h.Repo.DeleteCustomer(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer and their khata deleted"})
}

// CustomerKhata returns one customer's ledger: the entries newest first plus
// the running balance.
func (h *KhataHandler) CustomerKhata(c *gin.Context) {
	id := c.Param("id")
	customer, ok := h.Repo.CustomerByID(id)
	if !ok {
		respondError(c, repository.ErrCustomerNotFound)
		return
	}

	entries := h.Repo.EntriesForCustomer(id)
	balances := shop.ComputeBalances(entries)

	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
		"entries":  entries,
		"balance":  balances[id],
	})
}

func (h *KhataHandler) AddEntry(c *gin.Context) {
	var req shop.EntryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.Shop.AddKhataEntry(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Summary returns the portfolio view: per-customer balances plus the counts
// and the total receivable.
func (h *KhataHandler) Summary(c *gin.Context) {
	customers := h.Repo.Customers()
	balances := shop.ComputeBalances(h.Repo.KhataEntries())

	c.JSON(http.StatusOK, gin.H{
		"balances": balances,
		"summary":  shop.ComputeKhataSummary(customers, balances),
	})
}
