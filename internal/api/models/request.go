package models

// SiteRequest locates the station. Either explicit coordinates or a
// free-text name (resolved via geocoding) must be provided. Coordinates are
// pointers so that a legitimate 0 (equator, prime meridian) is
// distinguishable from "not supplied".
type SiteRequest struct {
	Name      string   `json:"name,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// StationRequest defines PV station parameters.
type StationRequest struct {
	CapacityKW       float64 `json:"capacity_kw" binding:"required"`
	PerformanceRatio float64 `json:"performance_ratio,omitempty"` // default 0.82
}

// BatteryRequest defines storage parameters; zero capacity disables dispatch.
type BatteryRequest struct {
	EnergyCapacityKWh float64 `json:"energy_capacity_kwh,omitempty"`
}

// SimulateOptions contains optional simulation parameters.
type SimulateOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
	LimitHours    int  `json:"limit_hours,omitempty"`    // 0 = all
}

// SimulateRequest represents the request body for running a simulation.
type SimulateRequest struct {
	Site    SiteRequest    `json:"site" binding:"required"`
	Mode    string         `json:"mode,omitempty"` // "forecast" (default) or "archive"
	Station StationRequest `json:"station" binding:"required"`
	Battery BatteryRequest `json:"battery,omitempty"`

	// LoadKW is the raw uploaded load sequence (any length >= 1); it is
	// aligned to the weather horizon by truncation or cyclic tiling.
	// Empty means "use the default workday profile".
	LoadKW []float64 `json:"load_kw,omitempty"`

	Options SimulateOptions `json:"options,omitempty"`
}

// AdviseRequest asks for daily aggregation and a storage-sizing
// recommendation. Dispatch is not simulated; the advisor works on the raw
// net-load distribution.
type AdviseRequest struct {
	Site    SiteRequest    `json:"site" binding:"required"`
	Mode    string         `json:"mode,omitempty"` // default "archive" for annual sizing
	Station StationRequest `json:"station" binding:"required"`

	LoadKW []float64 `json:"load_kw,omitempty"`
}

// CapacityRequest estimates installable capacity from buildable area.
type CapacityRequest struct {
	AreaSqm     float64 `json:"area_sqm" binding:"required"`
	InstallType string  `json:"install_type" binding:"required"` // "ground" or "roof"
}
