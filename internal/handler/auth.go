package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/utils"
)

type AuthHandler struct {
	Repo        *repository.Repository
	JWTSecret   string
	ExpireHours int
}

func (h *AuthHandler) tokenTTL() time.Duration {
	return time.Duration(h.ExpireHours) * time.Hour
}

// Status reports whether a PIN exists, so the client knows to show the lock
// screen or the first-run PIN setup.
func (h *AuthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pin_set": h.Repo.PinSet()})
}

type setPinRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// SetPin configures the PIN on first run and unlocks immediately.
func (h *AuthHandler) SetPin(c *gin.Context) {
	var req setPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.Repo.PinSet() {
		c.JSON(http.StatusConflict, gin.H{"error": "PIN is already set"})
		return
	}
	if err := utils.ValidatePin(req.Pin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := utils.HashPin(req.Pin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash PIN"})
		return
	}
	if err := h.Repo.SetPinHash(hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save PIN"})
		return
	}

	token, err := utils.GenerateToken(h.JWTSecret, h.tokenTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type unlockRequest struct {
	Pin string `json:"pin" binding:"required"`
}

func (h *AuthHandler) Unlock(c *gin.Context) {
	var req unlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.Repo.PinSet() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PIN has been set"})
		return
	}
	if !utils.CheckPin(req.Pin, h.Repo.PinHash()) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect PIN"})
		return
	}

	token, err := utils.GenerateToken(h.JWTSecret, h.tokenTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type changePinRequest struct {
	OldPin string `json:"old_pin" binding:"required"`
	NewPin string `json:"new_pin" binding:"required"`
}

func (h *AuthHandler) ChangePin(c *gin.Context) {
	var req changePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.Repo.PinSet() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PIN has been set"})
		return
	}
	if !utils.CheckPin(req.OldPin, h.Repo.PinHash()) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect current PIN"})
		return
	}
	if err := utils.ValidatePin(req.NewPin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := utils.HashPin(req.NewPin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash PIN"})
		return
	}
	if err := h.Repo.SetPinHash(hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save PIN"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PIN updated successfully"})
}
