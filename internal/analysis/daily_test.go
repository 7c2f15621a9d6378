package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayHours(day time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = day.Add(time.Duration(i) * time.Hour)
	}
	return out
}

func TestAggregateDaily_SingleDay(t *testing.T) {
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	times := dayHours(day, 4)
	load := []float64{10, 10, 10, 10}
	gen := []float64{30, 30, 0, 0}

	days, err := AggregateDaily(times, load, gen)
	require.NoError(t, err)
	require.Len(t, days, 1)

	d := days[0]
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d.Date)
	assert.Equal(t, 4, d.Hours)
	assert.InDelta(t, 60.0, d.GenerationKWh, 1e-9)
	assert.InDelta(t, 40.0, d.LoadKWh, 1e-9)
	assert.InDelta(t, 40.0, d.SurplusKWh, 1e-9)
	assert.InDelta(t, 20.0, d.DeficitKWh, 1e-9)
	assert.InDelta(t, 20.0, d.EffectiveStorageKWh, 1e-9)
}

func TestAggregateDaily_EffectiveIsSymmetric(t *testing.T) {
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	times := dayHours(day, 4)

	// Swapping load and generation swaps surplus/deficit but leaves the
	// shiftable energy unchanged.
	a := []float64{10, 10, 10, 10}
	b := []float64{30, 30, 0, 0}

	d1, err := AggregateDaily(times, a, b)
	require.NoError(t, err)
	d2, err := AggregateDaily(times, b, a)
	require.NoError(t, err)

	assert.Equal(t, d1[0].SurplusKWh, d2[0].DeficitKWh)
	assert.Equal(t, d1[0].DeficitKWh, d2[0].SurplusKWh)
	assert.Equal(t, d1[0].EffectiveStorageKWh, d2[0].EffectiveStorageKWh)
}

func TestAggregateDaily_SplitsByCalendarDay(t *testing.T) {
	start := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)
	times := dayHours(start, 4) // 22:00, 23:00, 00:00, 01:00

	load := []float64{5, 5, 5, 5}
	gen := []float64{0, 0, 0, 0}

	days, err := AggregateDaily(times, load, gen)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), days[1].Date)
	assert.Equal(t, 2, days[0].Hours)
	assert.Equal(t, 2, days[1].Hours)
}

func TestAggregateDaily_Errors(t *testing.T) {
	_, err := AggregateDaily(nil, nil, nil)
	assert.ErrorIs(t, err, ErrEmptySeries)

	times := dayHours(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 2)
	_, err = AggregateDaily(times, []float64{1}, []float64{1, 2})
	assert.Error(t, err)
}
