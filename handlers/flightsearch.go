package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/services/flightsearch"
)

// FlightSearchHandler persists the search form draft between page loads.
// The draft is local form state only; saving it notifies nobody.
type FlightSearchHandler struct {
	drafts *flightsearch.DraftStore
	logger *zap.Logger
}

func NewFlightSearchHandler(drafts *flightsearch.DraftStore, logger *zap.Logger) *FlightSearchHandler {
	return &FlightSearchHandler{drafts: drafts, logger: logger}
}

func (h *FlightSearchHandler) GetDraftHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"draft": h.drafts.Load(c.Request.Context())})
}

func (h *FlightSearchHandler) SaveDraftHandler(c *gin.Context) {
	var draft flightsearch.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.drafts.Save(c.Request.Context(), draft); err != nil {
		h.logger.Error("draft save failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *FlightSearchHandler) ClearDraftHandler(c *gin.Context) {
	if err := h.drafts.Clear(c.Request.Context()); err != nil {
		h.logger.Error("draft clear failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": flightsearch.DefaultDraft()})
}
