package data

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-sizing/internal/model"
)

func TestFindSite_CaseInsensitive(t *testing.T) {
	s, ok := FindSite("shanghai")
	require.True(t, ok)
	assert.Equal(t, "Shanghai", s.Name)
	assert.InDelta(t, 31.23, s.Latitude, 1e-9)
	assert.InDelta(t, 121.47, s.Longitude, 1e-9)

	_, ok = FindSite("Atlantis")
	assert.False(t, ok)
}

func TestWeatherJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather", "shanghai.json")

	ds := &WeatherDataset{
		Latitude:  31.23,
		Longitude: 121.47,
		Mode:      "forecast",
		FetchedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		Samples: []model.WeatherSample{
			{Time: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), TemperatureC: 28, IrradianceWM2: 850},
		},
	}

	require.NoError(t, SaveWeatherJSON(ds, path))

	got, err := LoadWeatherJSON(path)
	require.NoError(t, err)
	assert.Equal(t, ds.Mode, got.Mode)
	require.Len(t, got.Samples, 1)
	assert.Equal(t, 850.0, got.Samples[0].IrradianceWM2)
	assert.True(t, ds.Samples[0].Time.Equal(got.Samples[0].Time))
}

func TestLoadWeatherJSON_Missing(t *testing.T) {
	_, err := LoadWeatherJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
