package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamesh952/KalmHolidays/services/catalog"
)

// CatalogHandler serves the static inventory the frontend renders.
type CatalogHandler struct {
	catalog catalog.Service
}

func NewCatalogHandler(cat catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) DestinationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": h.catalog.Destinations()})
}

func (h *CatalogHandler) CarsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cars": h.catalog.Cars()})
}

func (h *CatalogHandler) AirportsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"airports": h.catalog.Airports()})
}

func (h *CatalogHandler) HotelLocationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": h.catalog.HotelLocations()})
}
