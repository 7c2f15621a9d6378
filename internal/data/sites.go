package data

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Site is a named set of coordinates a user can pick instead of entering
// raw latitude/longitude.
type Site struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PresetSites returns the built-in site catalog. Free-text geocoding covers
// everything else.
func PresetSites() []Site {
	return []Site{
		{Name: "Shanghai", Latitude: 31.23, Longitude: 121.47},
		{Name: "Beijing", Latitude: 39.90, Longitude: 116.41},
		{Name: "Shenzhen", Latitude: 22.54, Longitude: 114.06},
		{Name: "Urumqi", Latitude: 43.83, Longitude: 87.62},
		{Name: "Berlin", Latitude: 52.52, Longitude: 13.41},
		{Name: "Madrid", Latitude: 40.42, Longitude: -3.70},
		{Name: "Phoenix", Latitude: 33.45, Longitude: -112.07},
	}
}

// FindSite looks up a preset site by name, case-insensitively.
func FindSite(name string) (Site, bool) {
	for _, s := range PresetSites() {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Site{}, false
}

// LoadSites loads a user-provided site catalog from a JSON file.
func LoadSites(path string) ([]Site, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites file: %w", err)
	}
	var sites []Site
	if err := json.Unmarshal(raw, &sites); err != nil {
		return nil, fmt.Errorf("failed to parse sites file: %w", err)
	}
	return sites, nil
}
