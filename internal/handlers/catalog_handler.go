package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/httpresp"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

// CatalogHandler serves the reference tables ads point at.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

func (h *CatalogHandler) ListInstruments(c *gin.Context) {
	var instruments []models.Instrument
	if err := h.db.Order("name ASC").Find(&instruments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_instruments", "Error listing instruments.")
		return
	}
	httpresp.List(c, instruments)
}

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	var locations []models.Location
	if err := h.db.Order("name ASC").Find(&locations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_locations", "Error listing locations.")
		return
	}
	httpresp.List(c, locations)
}
