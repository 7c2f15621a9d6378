package load

import "time"

// Workday fractions of station capacity used when no load file is supplied:
// a factory-style curve running 08:00-18:00.
const (
	workdayStartHour = 8
	workdayEndHour   = 18
	workdayFraction  = 0.6
	offHoursFraction = 0.1
)

// DefaultProfile synthesizes an hourly load series from the sample
// timestamps, sized relative to the station capacity.
func DefaultProfile(times []time.Time, capacityKW float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		h := t.Hour()
		if h >= workdayStartHour && h <= workdayEndHour {
			out[i] = capacityKW * workdayFraction
		} else {
			out[i] = capacityKW * offHoursFraction
		}
	}
	return out
}
