package pv

import "solar-sizing/internal/model"

// Reference conditions the temperature correction is anchored to.
const (
	ReferenceCellTempC     = 25.0
	ReferenceIrradianceWM2 = 1000.0
)

// Generation converts one hourly weather sample into PV output power (kW):
//
//	cell_temp  = ambient + CellTempOffset * GHI
//	correction = 1 + TempCoefficient * (cell_temp - 25)
//	output     = capacity * (GHI / 1000) * PR * correction
//
// The correction factor is deliberately not clamped: it exceeds 1 on cold
// days and drops below 1 on hot ones. The final output is clamped at zero,
// since hot-cell low-irradiance corners can otherwise go negative.
func Generation(sample model.WeatherSample, station model.StationConfig) float64 {
	cellTemp := sample.TemperatureC + station.CellTempOffset*sample.IrradianceWM2
	correction := 1 + station.TempCoefficient*(cellTemp-ReferenceCellTempC)

	out := station.CapacityKW * (sample.IrradianceWM2 / ReferenceIrradianceWM2) * station.PerformanceRatio * correction
	if out < 0 {
		return 0
	}
	return out
}

// Simulate maps a weather series to a generation series, index-aligned with
// the input. Pure and element-wise; no state is carried between hours.
func Simulate(samples []model.WeatherSample, station model.StationConfig) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = Generation(s, station)
	}
	return out
}
