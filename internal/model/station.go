package model

import "errors"

// StationConfig defines the PV station parameters for a simulation run.
// Units:
// - CapacityKW: kW installed DC capacity
// - PerformanceRatio: 0..1, system-wide loss factor
// - TempCoefficient: output change per °C of cell temperature above 25°C
//   (crystalline silicon is about -0.4%/°C)
// - CellTempOffset: °C of cell heating per W/m² of irradiance
type StationConfig struct {
	CapacityKW       float64
	PerformanceRatio float64
	TempCoefficient  float64
	CellTempOffset   float64
}

const (
	DefaultPerformanceRatio = 0.82
	DefaultTempCoefficient  = -0.004
	DefaultCellTempOffset   = 0.025
)

// ApplyDefaults fills the fixed model constants when unset so callers only
// have to provide capacity (and optionally PR).
func (s StationConfig) ApplyDefaults() StationConfig {
	if s.PerformanceRatio == 0 {
		s.PerformanceRatio = DefaultPerformanceRatio
	}
	if s.TempCoefficient == 0 {
		s.TempCoefficient = DefaultTempCoefficient
	}
	if s.CellTempOffset == 0 {
		s.CellTempOffset = DefaultCellTempOffset
	}
	return s
}

func (s StationConfig) Validate() error {
	if s.CapacityKW <= 0 {
		return errors.New("CapacityKW must be > 0")
	}
	if s.PerformanceRatio <= 0 || s.PerformanceRatio >= 1 {
		return errors.New("PerformanceRatio must be in (0, 1)")
	}
	if s.TempCoefficient > 0 {
		return errors.New("TempCoefficient must be <= 0")
	}
	if s.CellTempOffset < 0 {
		return errors.New("CellTempOffset must be >= 0")
	}
	return nil
}
