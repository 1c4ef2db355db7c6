package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/models"
	"github.com/kamesh952/KalmHolidays/services/wishlist"
)

// WishlistHandler exposes the wishlist collection over HTTP.
type WishlistHandler struct {
	service wishlist.Service
	logger  *zap.Logger
}

func NewWishlistHandler(service wishlist.Service, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{service: service, logger: logger}
}

// ListHandler returns the persisted wishlist.
func (h *WishlistHandler) ListHandler(c *gin.Context) {
	entries := h.service.List(c.Request.Context())
	if entries == nil {
		entries = []models.WishlistEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": entries})
}

// ToggleHandler adds the entry when absent and removes it when present.
func (h *WishlistHandler) ToggleHandler(c *gin.Context) {
	var entry models.WishlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if entry.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	outcome, err := h.service.Toggle(c.Request.Context(), entry)
	if err != nil {
		h.logger.Error("wishlist toggle failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update wishlist"})
		return
	}

	message := entry.Label + " added to wishlist!"
	if outcome == wishlist.OutcomeRemoved {
		message = entry.Label + " removed from wishlist!"
	}
	c.JSON(http.StatusOK, gin.H{"outcome": outcome, "message": message})
}

// RemoveHandler drops the entry with the given catalog id.
func (h *WishlistHandler) RemoveHandler(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("wishlist remove failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update wishlist"})
		return
	}
	if !removed {
		c.JSON(http.StatusOK, gin.H{"removed": false, "message": "Item was not in the wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true, "message": "Removed from wishlist"})
}
