package weather

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient()
	c.ForecastBaseURL = srv.URL
	c.ArchiveBaseURL = srv.URL
	c.GeocodeBaseURL = srv.URL
	c.Client = srv.Client()
	return c
}

const forecastPayload = `{
	"timezone": "Asia/Shanghai",
	"utc_offset_seconds": 28800,
	"hourly": {
		"time": ["2025-06-01T00:00", "2025-06-01T01:00", "2025-06-01T02:00"],
		"temperature_2m": [22.1, 21.8, 21.5],
		"shortwave_radiation": [0, 0, 15.5]
	}
}`

func TestFetchForecast_ParsesHourlySeries(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	samples, err := c.FetchForecast(31.23, 121.47, 3)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, []string{"31.2300"}, gotQuery["latitude"])
	assert.Equal(t, []string{"temperature_2m,shortwave_radiation"}, gotQuery["hourly"])
	assert.Equal(t, []string{"3"}, gotQuery["forecast_days"])
	assert.Equal(t, []string{"auto"}, gotQuery["timezone"])

	assert.Equal(t, 22.1, samples[0].TemperatureC)
	assert.Equal(t, 15.5, samples[2].IrradianceWM2)

	// Timestamps carry the provider's local offset.
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.FixedZone("Asia/Shanghai", 28800))
	assert.True(t, samples[0].Time.Equal(want))
}

func TestFetchArchive_UsesDateRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/archive", r.URL.Path)
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-12-31", r.URL.Query().Get("end_date"))
		_, _ = w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	samples, err := c.FetchArchive(31.23, 121.47, start, end)
	require.NoError(t, err)
	assert.Len(t, samples, 3)
}

func TestFetchHistoricalYear_SpansExactly365Days(t *testing.T) {
	var start, end string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/archive", r.URL.Path)
		start = r.URL.Query().Get("start_date")
		end = r.URL.Query().Get("end_date")
		_, _ = w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.FetchHistoricalYear(31.23, 121.47)
	require.NoError(t, err)

	startDay, err := time.Parse("2006-01-02", start)
	require.NoError(t, err)
	endDay, err := time.Parse("2006-01-02", end)
	require.NoError(t, err)

	// Inclusive date range: 364 days between endpoints = 365 days of data.
	assert.Equal(t, 364, int(endDay.Sub(startDay).Hours()/24))
	assert.True(t, endDay.Before(time.Now()))
}

func TestFetchHourly_EmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hourly": {"time": [], "temperature_2m": [], "shortwave_radiation": []}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.FetchForecast(0, 0, 7)
	var werr *WeatherError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "EMPTY_PAYLOAD", werr.Code)
}

func TestFetchHourly_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hourly": {"time": ["2025-06-01T00:00"], "temperature_2m": [], "shortwave_radiation": [10]}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.FetchForecast(0, 0, 7)
	var werr *WeatherError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "MALFORMED_PAYLOAD", werr.Code)
}

func TestFetchHourly_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.FetchForecast(0, 0, 7)
	var werr *WeatherError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", werr.Code)
	assert.Equal(t, http.StatusTooManyRequests, werr.StatusCode)
}

func TestFetchHourly_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.FetchForecast(0, 0, 7)
	var werr *WeatherError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "API_ERROR", werr.Code)
}

func TestFetchHourly_ValidatesParams(t *testing.T) {
	c := NewClient()

	_, err := c.FetchHourly(FetchParams{Latitude: 91, ForecastDays: 7})
	assert.Error(t, err)

	_, err = c.FetchHourly(FetchParams{Longitude: 200, ForecastDays: 7})
	assert.Error(t, err)

	// Archive mode without dates.
	_, err = c.FetchHourly(FetchParams{})
	assert.Error(t, err)

	// Inverted range.
	_, err = c.FetchHourly(FetchParams{
		StartDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Error(t, err)
}

func TestGeocode_ResolvesBestMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "Shanghai", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		_, _ = w.Write([]byte(`{"results": [{"name": "Shanghai", "country": "China", "latitude": 31.22, "longitude": 121.46}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	place, err := c.Geocode("Shanghai")
	require.NoError(t, err)
	assert.Equal(t, "Shanghai", place.Name)
	assert.Equal(t, "China", place.Country)
	assert.InDelta(t, 31.22, place.Latitude, 1e-9)
}

func TestGeocode_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Geocode("Atlantis")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Atlantis", nf.Name)
}

func TestGeocode_EmptyName(t *testing.T) {
	c := NewClient()
	_, err := c.Geocode("   ")
	assert.Error(t, err)
}
