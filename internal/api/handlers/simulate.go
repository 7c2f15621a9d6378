package handlers

import (
	"net/http"

	"solar-sizing/internal/api/models"
	"solar-sizing/internal/model"
	"solar-sizing/internal/pv"
	"solar-sizing/internal/simulate"
	"solar-sizing/internal/weather"

	"github.com/gin-gonic/gin"
)

// SimulateHandler runs the full pipeline: weather fetch -> PV simulate ->
// load align -> battery dispatch.
type SimulateHandler struct {
	weather *weather.Client
}

func NewSimulateHandler(client *weather.Client) *SimulateHandler {
	if client == nil {
		client = weather.NewClient()
	}
	return &SimulateHandler{weather: client}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
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

	batt, err := model.NewBattery(model.BatteryParams{
		EnergyCapacityKWh: req.Battery.EnergyCapacityKWh,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_BATTERY",
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

	samples, err := fetchSamples(h.weather, req.Mode, lat, lon)
	if err != nil {
		writeError(c, err)
		return
	}
	if req.Options.LimitHours > 0 && req.Options.LimitHours < len(samples) {
		samples = samples[:req.Options.LimitHours]
	}

	generationKW := pv.Simulate(samples, station)

	loadKW, err := buildLoadSeries(req.LoadKW, samples, station.CapacityKW)
	if err != nil {
		writeError(c, err)
		return
	}

	engine := simulate.New()
	result, err := engine.Run(samples, generationKW, loadKW, batt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	response := models.SimulateResponse{
		Status:  "completed",
		Summary: buildSummary(result, station.CapacityKW),
	}
	if req.Options.IncludeLedger {
		response.Ledger = convertLedger(result.Ledger)
	}
	c.JSON(http.StatusOK, response)
}
