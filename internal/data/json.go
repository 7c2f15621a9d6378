package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"solar-sizing/internal/model"
)

// WeatherDataset is the on-disk shape of a fetched weather series, so CLI
// runs can simulate offline against a previously fetched file.
type WeatherDataset struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Mode      string    `json:"mode"` // "forecast" or "archive"
	FetchedAt time.Time `json:"fetched_at"`

	Samples []model.WeatherSample `json:"samples"`
}

// LoadWeatherJSON loads a saved weather dataset from a JSON file.
func LoadWeatherJSON(path string) (*WeatherDataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather file: %w", err)
	}
	var ds WeatherDataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse weather file: %w", err)
	}
	return &ds, nil
}

// SaveWeatherJSON saves a weather dataset to a JSON file.
func SaveWeatherJSON(ds *WeatherDataset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal weather dataset: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write weather file: %w", err)
	}
	return nil
}
