package analysis

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrEmptySeries is returned when there are no hours to aggregate.
var ErrEmptySeries = errors.New("net-load series is empty")

// DailyAggregate summarizes one calendar day of the net-load series.
type DailyAggregate struct {
	// Date is midnight of the day in the series' local offset.
	Date time.Time

	GenerationKWh float64
	LoadKWh       float64

	// SurplusKWh is the day's total generation excess (negative net-load
	// hours, sign-flipped). DeficitKWh is the total shortfall.
	SurplusKWh float64
	DeficitKWh float64

	// EffectiveStorageKWh = min(surplus, deficit): the energy plausibly
	// shiftable within the day. No multi-day carryover is assumed.
	EffectiveStorageKWh float64

	Hours int
}

// AggregateDaily folds the hourly series into per-day records, grouped by
// the local calendar day of each timestamp. Day records come out in
// first-seen order, which for an ordered series is chronological.
func AggregateDaily(times []time.Time, loadKW, generationKW []float64) ([]DailyAggregate, error) {
	if len(times) == 0 {
		return nil, ErrEmptySeries
	}
	if len(loadKW) != len(times) || len(generationKW) != len(times) {
		return nil, fmt.Errorf("series lengths differ: times=%d load=%d generation=%d", len(times), len(loadKW), len(generationKW))
	}

	var days []DailyAggregate
	index := map[time.Time]int{}

	for i, ts := range times {
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
		j, ok := index[day]
		if !ok {
			j = len(days)
			index[day] = j
			days = append(days, DailyAggregate{Date: day})
		}

		d := &days[j]
		d.GenerationKWh += generationKW[i]
		d.LoadKWh += loadKW[i]

		net := loadKW[i] - generationKW[i]
		if net < 0 {
			d.SurplusKWh += -net
		} else {
			d.DeficitKWh += net
		}
		d.Hours++
	}

	for i := range days {
		days[i].EffectiveStorageKWh = math.Min(days[i].SurplusKWh, days[i].DeficitKWh)
	}
	return days, nil
}
