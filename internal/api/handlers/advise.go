package handlers

import (
	"net/http"

	"solar-sizing/internal/analysis"
	"solar-sizing/internal/api/models"
	"solar-sizing/internal/config"
	"solar-sizing/internal/model"
	"solar-sizing/internal/pv"
	"solar-sizing/internal/weather"

	"github.com/gin-gonic/gin"
)

// AdviseHandler computes daily surplus/deficit aggregates and the storage
// sizing recommendation. No battery is dispatched here: sizing works on the
// raw net-load distribution.
type AdviseHandler struct {
	weather *weather.Client
}

func NewAdviseHandler(client *weather.Client) *AdviseHandler {
	if client == nil {
		client = weather.NewClient()
	}
	return &AdviseHandler{weather: client}
}

// RunAdvise handles POST /api/v1/advise
func (h *AdviseHandler) RunAdvise(c *gin.Context) {
	var req models.AdviseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	station := model.StationConfig{
		CapacityKW:       req.Station.CapacityKW,
		PerformanceRatio: req.Station.PerformanceRatio,
	}.ApplyDefaults()
	if err := station.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_STATION",
				Message: err.Error(),
			},
		})
		return
	}

	lat, lon, err := resolveSite(h.weather, req.Site)
	if err != nil {
		writeError(c, err)
		return
	}

	// Sizing wants a representative distribution of days, so the archive
	// year is the default here, unlike simulate.
	mode := req.Mode
	if mode == "" {
		mode = config.ModeArchive
	}
	samples, err := fetchSamples(h.weather, mode, lat, lon)
	if err != nil {
		writeError(c, err)
		return
	}

	generationKW := pv.Simulate(samples, station)

	loadKW, err := buildLoadSeries(req.LoadKW, samples, station.CapacityKW)
	if err != nil {
		writeError(c, err)
		return
	}

	days, err := analysis.AggregateDaily(sampleTimes(samples), loadKW, generationKW)
	if err != nil {
		writeError(c, err)
		return
	}
	rec, err := analysis.Recommend(days)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AdviseResponse{
		Status: "completed",
		Days:   convertDays(days),
		Recommendation: models.Recommendation{
			Warranted:            rec.Warranted,
			RecommendedPowerKW:   rec.RecommendedPowerKW,
			RecommendedEnergyKWh: rec.RecommendedEnergyKWh,
			P90EffectiveKWh:      rec.P90EffectiveKWh,
			RetainedDays:         rec.RetainedDays,
			TotalDays:            rec.TotalDays,
		},
	})
}
