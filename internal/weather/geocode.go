package weather

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// Place is one geocoding result.
type Place struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NotFoundError is returned when a free-text place name resolves to nothing.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no location found for %q", e.Name)
}

type geocodeResponse struct {
	Results []Place `json:"results"`
}

// Geocode resolves a free-text place name to coordinates using the
// Open-Meteo geocoding API, taking the best match.
func (c *Client) Geocode(name string) (Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Place{}, fmt.Errorf("place name is required")
	}

	u, err := url.Parse(c.GeocodeBaseURL + "/v1/search")
	if err != nil {
		return Place{}, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("name", name)
	q.Set("count", "1")
	u.RawQuery = q.Encode()

	log.Printf("[Geocode] Request: GET %s (name=%q)", u.Path, name)

	resp, err := c.Client.Get(u.String())
	if err != nil {
		return Place{}, &WeatherError{
			Code:    "REQUEST_FAILED",
			Message: fmt.Sprintf("geocoding request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, &WeatherError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("geocoding provider returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Place{}, &WeatherError{
			StatusCode: resp.StatusCode,
			Code:       "DECODE_ERROR",
			Message:    fmt.Sprintf("failed to decode geocoding response: %v", err),
		}
	}
	if len(payload.Results) == 0 {
		return Place{}, &NotFoundError{Name: name}
	}

	p := payload.Results[0]
	log.Printf("[Geocode] Resolved %q -> %s, %s (%.4f, %.4f)", name, p.Name, p.Country, p.Latitude, p.Longitude)
	return p, nil
}
