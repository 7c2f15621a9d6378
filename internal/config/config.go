package config

import (
	"errors"
	"fmt"
	"os"

	"solar-sizing/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Station StationConfig `yaml:"station"`
	Battery BatteryConfig `yaml:"battery"`

	// Mode selects the weather source: "forecast" (next 7 days) or
	// "archive" (past 365 days).
	Mode string `yaml:"mode"`
}

type SiteConfig struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

type StationConfig struct {
	CapacityKW       float64 `yaml:"capacity_kw"`
	PerformanceRatio float64 `yaml:"performance_ratio"`
}

type BatteryConfig struct {
	// 0 disables dispatch simulation.
	EnergyCapacityKWh float64 `yaml:"energy_capacity_kwh"`
}

const (
	ModeForecast = "forecast"
	ModeArchive  = "archive"
)

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) ApplyDefaults() {
	if c.Mode == "" {
		c.Mode = ModeForecast
	}
	if c.Station.PerformanceRatio == 0 {
		c.Station.PerformanceRatio = model.DefaultPerformanceRatio
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Mode != ModeForecast && c.Mode != ModeArchive {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeForecast, ModeArchive, c.Mode)
	}
	if c.Site.Latitude < -90 || c.Site.Latitude > 90 {
		return fmt.Errorf("site latitude %.4f out of range [-90, 90]", c.Site.Latitude)
	}
	if c.Site.Longitude < -180 || c.Site.Longitude > 180 {
		return fmt.Errorf("site longitude %.4f out of range [-180, 180]", c.Site.Longitude)
	}
	if err := c.Station.ToModelConfig().Validate(); err != nil {
		return fmt.Errorf("station config invalid: %w", err)
	}
	// Validate battery params by constructing a model.Battery.
	if _, err := model.NewBattery(c.Battery.ToModelParams()); err != nil {
		return fmt.Errorf("battery config invalid: %w", err)
	}
	return nil
}

func (s StationConfig) ToModelConfig() model.StationConfig {
	return model.StationConfig{
		CapacityKW:       s.CapacityKW,
		PerformanceRatio: s.PerformanceRatio,
	}.ApplyDefaults()
}

func (b BatteryConfig) ToModelParams() model.BatteryParams {
	return model.BatteryParams{
		EnergyCapacityKWh: b.EnergyCapacityKWh,
	}
}

// MergeStation overlays non-zero fields from override onto base. Used when
// API requests override a config-file station.
func MergeStation(base, override StationConfig) StationConfig {
	out := base
	if override.CapacityKW != 0 {
		out.CapacityKW = override.CapacityKW
	}
	if override.PerformanceRatio != 0 {
		out.PerformanceRatio = override.PerformanceRatio
	}
	return out
}
