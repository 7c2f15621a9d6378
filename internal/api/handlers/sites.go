package handlers

import (
	"net/http"

	"solar-sizing/internal/api/models"
	"solar-sizing/internal/data"
	"solar-sizing/internal/weather"

	"github.com/gin-gonic/gin"
)

// SitesHandler serves the preset site catalog and free-text geocoding.
type SitesHandler struct {
	weather *weather.Client
}

func NewSitesHandler(client *weather.Client) *SitesHandler {
	if client == nil {
		client = weather.NewClient()
	}
	return &SitesHandler{weather: client}
}

// ListSites handles GET /api/v1/sites
func (h *SitesHandler) ListSites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sites": data.PresetSites()})
}

// Geocode handles GET /api/v1/geocode?name=...
func (h *SitesHandler) Geocode(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "query parameter \"name\" is required",
			},
		})
		return
	}

	place, err := h.weather.Geocode(name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.GeocodeResponse{
		Name:      place.Name,
		Country:   place.Country,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
	})
}
