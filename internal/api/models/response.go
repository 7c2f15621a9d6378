package models

import "time"

// SimulateResponse represents the response from a simulation run.
type SimulateResponse struct {
	Status  string      `json:"status"`
	Summary RunSummary  `json:"summary"`
	Ledger  []LedgerRow `json:"ledger,omitempty"`
}

// RunSummary contains aggregated simulation results.
type RunSummary struct {
	Hours  int        `json:"hours"`
	Window TimeWindow `json:"window"`

	TotalGenerationKWh  float64 `json:"total_generation_kwh"`
	TotalLoadKWh        float64 `json:"total_load_kwh"`
	UtilizationHours    float64 `json:"utilization_hours"`
	SelfConsumptionRate float64 `json:"self_consumption_rate"`

	EnergyChargedKWh    float64 `json:"energy_charged_kwh"`
	EnergyDischargedKWh float64 `json:"energy_discharged_kwh"`
	GridImportKWh       float64 `json:"grid_import_kwh"`
	GridExportKWh       float64 `json:"grid_export_kwh"`
	FinalSOCKWh         float64 `json:"final_soc_kwh"`
}

// TimeWindow represents a time range.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LedgerRow represents one hour of the simulation ledger.
type LedgerRow struct {
	Index          int       `json:"index"`
	Time           time.Time `json:"time"`
	TemperatureC   float64   `json:"temperature_c"`
	IrradianceWM2  float64   `json:"irradiance_wm2"`
	GenerationKW   float64   `json:"generation_kw"`
	LoadKW         float64   `json:"load_kw"`
	NetLoadKW      float64   `json:"net_load_kw"`
	Action         string    `json:"action"` // "CHARGING", "DISCHARGING", "IDLE"
	BatteryPowerKW float64   `json:"battery_power_kw"`
	SOCStartKWh    float64   `json:"soc_start_kwh"`
	SOCEndKWh      float64   `json:"soc_end_kwh"`
	GridPowerKW    float64   `json:"grid_power_kw"`
}

// AdviseResponse carries the daily aggregates and sizing recommendation.
type AdviseResponse struct {
	Status         string         `json:"status"`
	Days           []DailyRow     `json:"days"`
	Recommendation Recommendation `json:"recommendation"`
}

// DailyRow is one calendar day of surplus/deficit aggregation.
type DailyRow struct {
	Date                string  `json:"date"` // YYYY-MM-DD
	GenerationKWh       float64 `json:"generation_kwh"`
	LoadKWh             float64 `json:"load_kwh"`
	SurplusKWh          float64 `json:"surplus_kwh"`
	DeficitKWh          float64 `json:"deficit_kwh"`
	EffectiveStorageKWh float64 `json:"effective_storage_kwh"`
}

// Recommendation is the storage sizing result. When warranted is false the
// ratings are omitted: storage is not advised for this site/load pairing.
type Recommendation struct {
	Warranted bool `json:"warranted"`

	RecommendedPowerKW   float64 `json:"recommended_power_kw,omitempty"`
	RecommendedEnergyKWh float64 `json:"recommended_energy_kwh,omitempty"`
	P90EffectiveKWh      float64 `json:"p90_effective_kwh,omitempty"`

	RetainedDays int `json:"retained_days"`
	TotalDays    int `json:"total_days"`
}

// CapacityResponse is the area-based capacity estimate.
type CapacityResponse struct {
	CapacityKW  float64 `json:"capacity_kw"`
	DensityWM2  float64 `json:"density_wm2"`
	AreaSqm     float64 `json:"area_sqm"`
	InstallType string  `json:"install_type"`
}

// GeocodeResponse is a resolved place.
type GeocodeResponse struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
