package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/models"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
)

// ResetConfirmation is the phrase the owner must type before the store is
// wiped. Matches the final prompt of the reset flow in the UI.
const ResetConfirmation = "DELETE ALL DATA"

type SettingsHandler struct {
	Repo *repository.Repository
}

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.Repo.Settings())
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req models.AppSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Repo.UpdateSettings(req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Repo.Settings())
}

// backupPayload is the export document: every collection plus the settings
// record, pretty-printed so the owner can read and hand-restore it.
type backupPayload struct {
	Stock        []models.Product    `json:"stock"`
	Sales        []models.SaleRecord `json:"sales"`
	Customers    []models.Customer   `json:"customers"`
	KhataEntries []models.KhataEntry `json:"khataEntries"`
	Settings     models.AppSettings  `json:"settings"`
}

func (h *SettingsHandler) Backup(c *gin.Context) {
	payload := backupPayload{
		Stock:        h.Repo.Stock(),
		Sales:        h.Repo.Sales(),
		Customers:    h.Repo.Customers(),
		KhataEntries: h.Repo.KhataEntries(),
		Settings:     h.Repo.Settings(),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build backup"})
		return
	}

	filename := fmt.Sprintf("vishwakarma-store-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}

type resetRequest struct {
	Confirm string `json:"confirm" binding:"required"`
}

// Reset wipes all store data. The exact confirmation phrase is required;
// anything else leaves the data untouched.
func (h *SettingsHandler) Reset(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Confirm != ResetConfirmation {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Type %q to confirm the reset", ResetConfirmation)})
		return
	}
	if err := h.Repo.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All data has been deleted"})
}
