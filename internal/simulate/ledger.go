package simulate

import (
	"time"

	"solar-sizing/internal/model"
)

// LedgerRow is one hour of simulation output.
// This is the primary artifact for "what happened" in a run.
type LedgerRow struct {
	Index int

	Time time.Time

	TemperatureC  float64
	IrradianceWM2 float64

	GenerationKW float64
	LoadKW       float64
	NetLoadKW    float64

	Action model.Action

	// BatteryPowerKW is signed: positive = discharging, negative = charging.
	BatteryPowerKW float64
	SOCStartKWh    float64
	SOCEndKWh      float64

	// GridPowerKW is net load after battery action: positive = importing,
	// negative = exporting.
	GridPowerKW float64
}

// Result aggregates a full run. Energy totals are exact because steps are
// hourly (kW over one hour = kWh).
type Result struct {
	Ledger []LedgerRow

	TotalGenerationKWh  float64
	TotalLoadKWh        float64
	EnergyChargedKWh    float64
	EnergyDischargedKWh float64
	GridImportKWh       float64
	GridExportKWh       float64

	// SelfConsumptionRate is the share of generation consumed on site
	// (directly or via the battery), 0..1. Zero when nothing was generated.
	SelfConsumptionRate float64

	FinalSOCKWh float64
}

// UtilizationHours is the equivalent full-capacity generation hours for the
// simulated horizon, a proxy for the local solar resource.
func (r *Result) UtilizationHours(capacityKW float64) float64 {
	if capacityKW <= 0 {
		return 0
	}
	return r.TotalGenerationKWh / capacityKW
}
