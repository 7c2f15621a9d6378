package model

import "time"

// WeatherSample is one hour of weather at the site.
// Timestamps carry the site-local offset reported by the provider.
type WeatherSample struct {
	Time time.Time `json:"time"`

	// TemperatureC is the 2m ambient air temperature in °C.
	TemperatureC float64 `json:"temperature_c"`
	// IrradianceWM2 is global horizontal irradiance (shortwave radiation) in W/m².
	IrradianceWM2 float64 `json:"irradiance_wm2"`
}
