package load

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign_ExactLength(t *testing.T) {
	out, err := Align([]float64{10, 20, 30}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, out)
}

func TestAlign_Truncates(t *testing.T) {
	out, err := Align([]float64{10, 20, 30, 40, 50}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, out)
}

func TestAlign_TilesCyclically(t *testing.T) {
	out, err := Align([]float64{10, 20, 30}, 7)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 10, 20, 30, 10}, out)
}

func TestAlign_EmptyInput(t *testing.T) {
	_, err := Align(nil, 24)
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = Align([]float64{}, 24)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestAlign_BadTargetLength(t *testing.T) {
	_, err := Align([]float64{1}, 0)
	assert.Error(t, err)
}

func TestDefaultProfile_WorkdayShape(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	times := make([]time.Time, 24)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * time.Hour)
	}

	out := DefaultProfile(times, 100)
	require.Len(t, out, 24)

	assert.Equal(t, 10.0, out[0])  // midnight
	assert.Equal(t, 10.0, out[7])  // last off hour
	assert.Equal(t, 60.0, out[8])  // workday starts
	assert.Equal(t, 60.0, out[12]) // noon
	assert.Equal(t, 60.0, out[18]) // workday ends (inclusive)
	assert.Equal(t, 10.0, out[19])
	assert.Equal(t, 10.0, out[23])
}

func TestDefaultProfile_ScalesWithCapacity(t *testing.T) {
	noon := []time.Time{time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}

	assert.Equal(t, []float64{30.0}, DefaultProfile(noon, 50))
	assert.Equal(t, []float64{300.0}, DefaultProfile(noon, 500))
}
