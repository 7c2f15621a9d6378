package handlers

import (
	"errors"
	"net/http"
	"time"

	"solar-sizing/internal/analysis"
	"solar-sizing/internal/api/models"
	"solar-sizing/internal/config"
	"solar-sizing/internal/load"
	"solar-sizing/internal/model"
	"solar-sizing/internal/simulate"
	"solar-sizing/internal/weather"

	"github.com/gin-gonic/gin"
)

// resolveSite turns a site request into coordinates: explicit lat/lon wins,
// otherwise the free-text name is geocoded.
func resolveSite(client *weather.Client, site models.SiteRequest) (lat, lon float64, err error) {
	if site.Latitude != nil || site.Longitude != nil {
		if site.Latitude == nil || site.Longitude == nil {
			return 0, 0, errors.New("latitude and longitude must be provided together")
		}
		return *site.Latitude, *site.Longitude, nil
	}
	if site.Name == "" {
		return 0, 0, errors.New("site requires coordinates or a name")
	}
	place, err := client.Geocode(site.Name)
	if err != nil {
		return 0, 0, err
	}
	return place.Latitude, place.Longitude, nil
}

// fetchSamples fetches the weather series for the requested mode.
func fetchSamples(client *weather.Client, mode string, lat, lon float64) ([]model.WeatherSample, error) {
	switch mode {
	case config.ModeArchive:
		return client.FetchHistoricalYear(lat, lon)
	case config.ModeForecast, "":
		return client.FetchForecast(lat, lon, 7)
	default:
		return nil, errors.New("mode must be \"forecast\" or \"archive\"")
	}
}

func sampleTimes(samples []model.WeatherSample) []time.Time {
	times := make([]time.Time, len(samples))
	for i, s := range samples {
		times[i] = s.Time
	}
	return times
}

// buildLoadSeries aligns the uploaded sequence onto the weather horizon, or
// synthesizes the default workday profile when none was uploaded.
func buildLoadSeries(raw []float64, samples []model.WeatherSample, capacityKW float64) ([]float64, error) {
	if len(raw) == 0 {
		return load.DefaultProfile(sampleTimes(samples), capacityKW), nil
	}
	return load.Align(raw, len(samples))
}

// writeError maps core and collaborator errors to the JSON error envelope.
func writeError(c *gin.Context, err error) {
	var wErr *weather.WeatherError
	if errors.As(err, &wErr) {
		status := http.StatusBadGateway
		if wErr.StatusCode == http.StatusTooManyRequests {
			status = http.StatusTooManyRequests
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    wErr.Code,
				Message: wErr.Message,
				Details: map[string]interface{}{
					"provider_status": wErr.StatusCode,
				},
			},
		})
		return
	}

	var nfErr *weather.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SITE_NOT_FOUND",
				Message: nfErr.Error(),
			},
		})
		return
	}

	if errors.Is(err, load.ErrEmptySeries) || errors.Is(err, analysis.ErrEmptySeries) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EMPTY_SERIES",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

func buildSummary(res *simulate.Result, capacityKW float64) models.RunSummary {
	summary := models.RunSummary{
		Hours: len(res.Ledger),

		TotalGenerationKWh:  res.TotalGenerationKWh,
		TotalLoadKWh:        res.TotalLoadKWh,
		UtilizationHours:    res.UtilizationHours(capacityKW),
		SelfConsumptionRate: res.SelfConsumptionRate,

		EnergyChargedKWh:    res.EnergyChargedKWh,
		EnergyDischargedKWh: res.EnergyDischargedKWh,
		GridImportKWh:       res.GridImportKWh,
		GridExportKWh:       res.GridExportKWh,
		FinalSOCKWh:         res.FinalSOCKWh,
	}
	if len(res.Ledger) > 0 {
		summary.Window = models.TimeWindow{
			Start: res.Ledger[0].Time,
			End:   res.Ledger[len(res.Ledger)-1].Time,
		}
	}
	return summary
}

func convertLedger(ledger []simulate.LedgerRow) []models.LedgerRow {
	out := make([]models.LedgerRow, len(ledger))
	for i, row := range ledger {
		out[i] = models.LedgerRow{
			Index:          row.Index,
			Time:           row.Time,
			TemperatureC:   row.TemperatureC,
			IrradianceWM2:  row.IrradianceWM2,
			GenerationKW:   row.GenerationKW,
			LoadKW:         row.LoadKW,
			NetLoadKW:      row.NetLoadKW,
			Action:         string(row.Action),
			BatteryPowerKW: row.BatteryPowerKW,
			SOCStartKWh:    row.SOCStartKWh,
			SOCEndKWh:      row.SOCEndKWh,
			GridPowerKW:    row.GridPowerKW,
		}
	}
	return out
}

func convertDays(days []analysis.DailyAggregate) []models.DailyRow {
	out := make([]models.DailyRow, len(days))
	for i, d := range days {
		out[i] = models.DailyRow{
			Date:                d.Date.Format("2006-01-02"),
			GenerationKWh:       d.GenerationKWh,
			LoadKWh:             d.LoadKWh,
			SurplusKWh:          d.SurplusKWh,
			DeficitKWh:          d.DeficitKWh,
			EffectiveStorageKWh: d.EffectiveStorageKWh,
		}
	}
	return out
}
