package analysis

import (
	"math"
	"sort"
)

const (
	// Days shifting less than this are treated as noise (rainy or idle days)
	// and excluded from sizing.
	noiseFloorKWh = 1.0

	// Sizing picks the day the battery covers in 90% of retained days, so a
	// handful of extreme days do not dictate the rating.
	sizingQuantile = 0.90

	// Recommended energy is inflated for a 90% usable depth-of-discharge
	// ceiling, and power assumes a 2-hour-duration system.
	usableDepthOfDischarge = 0.9
	systemDurationHours    = 2.0
)

// Recommendation is the storage sizing derived from the daily aggregates.
// When Warranted is false the ratings are zero and mean "don't install
// storage", not "install zero".
type Recommendation struct {
	Warranted bool

	RecommendedPowerKW   float64
	RecommendedEnergyKWh float64
	P90EffectiveKWh      float64

	RetainedDays int
	TotalDays    int
}

// Recommend derives a battery rating from the distribution of per-day
// effective storage. Days at or below the noise floor are dropped first; if
// nothing survives, storage is explicitly not warranted.
func Recommend(days []DailyAggregate) (Recommendation, error) {
	if len(days) == 0 {
		return Recommendation{}, ErrEmptySeries
	}

	retained := make([]float64, 0, len(days))
	for _, d := range days {
		if d.EffectiveStorageKWh > noiseFloorKWh {
			retained = append(retained, d.EffectiveStorageKWh)
		}
	}

	rec := Recommendation{
		RetainedDays: len(retained),
		TotalDays:    len(days),
	}
	if len(retained) == 0 {
		return rec, nil
	}

	sort.Float64s(retained)
	p90 := percentileSorted(retained, sizingQuantile)

	rec.Warranted = true
	rec.P90EffectiveKWh = p90
	rec.RecommendedEnergyKWh = p90 / usableDepthOfDischarge
	rec.RecommendedPowerKW = rec.RecommendedEnergyKWh / systemDurationHours
	return rec, nil
}

// percentileSorted uses linear interpolation between order statistics.
func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
