package weather

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"solar-sizing/internal/model"
)

// Client fetches hourly temperature and irradiance from Open-Meteo.
// Two endpoints cover the two modes: the forecast API for "next N days" and
// the archive API for historical date ranges. Neither requires an API key.
type Client struct {
	ForecastBaseURL string
	ArchiveBaseURL  string
	GeocodeBaseURL  string
	Client          *http.Client
}

func NewClient() *Client {
	return &Client{
		ForecastBaseURL: "https://api.open-meteo.com",
		ArchiveBaseURL:  "https://archive-api.open-meteo.com",
		GeocodeBaseURL:  "https://geocoding-api.open-meteo.com",
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WeatherError represents a failed or unusable provider response. The core
// treats it as "no simulation possible" rather than simulating against
// fabricated values.
type WeatherError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *WeatherError) Error() string {
	return e.Message
}

// FetchParams defines one weather query.
type FetchParams struct {
	Latitude  float64
	Longitude float64

	// Forecast mode when ForecastDays > 0, otherwise archive mode over
	// [StartDate, EndDate].
	ForecastDays int
	StartDate    time.Time
	EndDate      time.Time
}

func (p FetchParams) validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90, 90]", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180, 180]", p.Longitude)
	}
	if p.ForecastDays == 0 {
		if p.StartDate.IsZero() || p.EndDate.IsZero() {
			return fmt.Errorf("start_date and end_date are required in archive mode")
		}
		if p.StartDate.After(p.EndDate) {
			return fmt.Errorf("start_date must be before end_date")
		}
	}
	return nil
}

// FetchForecast returns an ordered hourly series for the next `days` days.
func (c *Client) FetchForecast(lat, lon float64, days int) ([]model.WeatherSample, error) {
	if days <= 0 {
		days = 7
	}
	return c.FetchHourly(FetchParams{Latitude: lat, Longitude: lon, ForecastDays: days})
}

// FetchArchive returns an ordered hourly series for a historical date range.
func (c *Client) FetchArchive(lat, lon float64, start, end time.Time) ([]model.WeatherSample, error) {
	return c.FetchHourly(FetchParams{Latitude: lat, Longitude: lon, StartDate: start, EndDate: end})
}

// FetchHistoricalYear returns the past 365 days ending yesterday, the series
// used for annual storage sizing. Both endpoints are inclusive, so the start
// sits 364 days before the end.
func (c *Client) FetchHistoricalYear(lat, lon float64) ([]model.WeatherSample, error) {
	end := time.Now().AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -364)
	return c.FetchArchive(lat, lon, start, end)
}

// FetchHourly executes one weather query and parses the hourly payload.
func (c *Client) FetchHourly(params FetchParams) ([]model.WeatherSample, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	// Check cache first (only if enabled for development).
	cache := GetCache()
	if cache != nil {
		key := GenerateCacheKey(params)
		if cached, found := cache.Get(key); found {
			log.Printf("[OpenMeteo] Cache hit: %d samples (lat=%.4f, lon=%.4f)",
				len(cached), params.Latitude, params.Longitude)
			return cached, nil
		}
	}

	u, err := c.buildURL(params)
	if err != nil {
		return nil, err
	}

	log.Printf("[OpenMeteo] Request: GET %s (lat=%.4f, lon=%.4f)", u.Path, params.Latitude, params.Longitude)

	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("[OpenMeteo] Request failed: %v (duration: %v)", err, duration)
		return nil, &WeatherError{
			Code:    "REQUEST_FAILED",
			Message: fmt.Sprintf("weather request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	log.Printf("[OpenMeteo] Response: %d %s (duration: %v)", resp.StatusCode, resp.Status, duration)

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusTooManyRequests:
		return nil, &WeatherError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    "weather provider rate limit exceeded",
		}
	default:
		return nil, &WeatherError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("weather provider returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &WeatherError{
			StatusCode: resp.StatusCode,
			Code:       "DECODE_ERROR",
			Message:    fmt.Sprintf("failed to decode weather response: %v", err),
		}
	}

	samples, err := payload.toSamples()
	if err != nil {
		return nil, err
	}

	log.Printf("[OpenMeteo] Success: received %d hourly samples (lat=%.4f, lon=%.4f)",
		len(samples), params.Latitude, params.Longitude)

	if cache := GetCache(); cache != nil {
		cache.Set(GenerateCacheKey(params), samples)
	}
	return samples, nil
}

func (c *Client) buildURL(params FetchParams) (*url.URL, error) {
	base := c.ArchiveBaseURL + "/v1/archive"
	if params.ForecastDays > 0 {
		base = c.ForecastBaseURL + "/v1/forecast"
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(params.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(params.Longitude, 'f', 4, 64))
	q.Set("hourly", "temperature_2m,shortwave_radiation")
	q.Set("timezone", "auto")
	if params.ForecastDays > 0 {
		q.Set("forecast_days", strconv.Itoa(params.ForecastDays))
	} else {
		q.Set("start_date", params.StartDate.Format("2006-01-02"))
		q.Set("end_date", params.EndDate.Format("2006-01-02"))
	}
	u.RawQuery = q.Encode()
	return u, nil
}

// openMeteoResponse matches the JSON shape of both the forecast and archive
// endpoints for the hourly variables we request.
type openMeteoResponse struct {
	Timezone         string `json:"timezone"`
	UTCOffsetSeconds int    `json:"utc_offset_seconds"`

	Hourly struct {
		Time               []string  `json:"time"`
		Temperature2M      []float64 `json:"temperature_2m"`
		ShortwaveRadiation []float64 `json:"shortwave_radiation"`
	} `json:"hourly"`
}

// Open-Meteo returns local times without an offset, e.g. "2024-06-01T13:00".
const openMeteoTimeLayout = "2006-01-02T15:04"

func (r openMeteoResponse) toSamples() ([]model.WeatherSample, error) {
	n := len(r.Hourly.Time)
	if n == 0 {
		return nil, &WeatherError{
			Code:    "EMPTY_PAYLOAD",
			Message: "weather provider returned no hourly data",
		}
	}
	if len(r.Hourly.Temperature2M) != n || len(r.Hourly.ShortwaveRadiation) != n {
		return nil, &WeatherError{
			Code: "MALFORMED_PAYLOAD",
			Message: fmt.Sprintf("hourly array lengths differ: time=%d temperature=%d irradiance=%d",
				n, len(r.Hourly.Temperature2M), len(r.Hourly.ShortwaveRadiation)),
		}
	}

	loc := time.UTC
	if r.Timezone != "" {
		loc = time.FixedZone(r.Timezone, r.UTCOffsetSeconds)
	}

	samples := make([]model.WeatherSample, n)
	for i := 0; i < n; i++ {
		ts, err := time.ParseInLocation(openMeteoTimeLayout, r.Hourly.Time[i], loc)
		if err != nil {
			return nil, &WeatherError{
				Code:    "MALFORMED_PAYLOAD",
				Message: fmt.Sprintf("bad hourly timestamp %q: %v", r.Hourly.Time[i], err),
			}
		}
		samples[i] = model.WeatherSample{
			Time:          ts,
			TemperatureC:  r.Hourly.Temperature2M[i],
			IrradianceWM2: r.Hourly.ShortwaveRadiation[i],
		}
	}
	return samples, nil
}
