package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"solar-sizing/internal/analysis"
	"solar-sizing/internal/config"
	"solar-sizing/internal/data"
	"solar-sizing/internal/load"
	"solar-sizing/internal/model"
	"solar-sizing/internal/pv"
	"solar-sizing/internal/simulate"
	"solar-sizing/internal/weather"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "fetch":
		cmdFetch(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "advise":
		cmdAdvise(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli fetch --site Shanghai --mode archive --out weather.json")
	fmt.Println("  cli simulate --weather weather.json --config examples/config.yaml --load load.csv --out results/dispatch.csv")
	fmt.Println("  cli advise --weather weather.json --config examples/config.yaml --load load.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - fetch saves an hourly weather series so simulate/advise can run offline")
	fmt.Println("  - simulate outputs CSV with action=CHARGING/IDLE/DISCHARGING per hour")
	fmt.Println("  - advise prints per-day surplus/deficit and the storage sizing recommendation")
}

func cmdFetch(args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	site := fs.String("site", "", "Preset site name or free-text place (geocoded)")
	lat := fs.Float64("lat", 0, "Latitude (overrides --site)")
	lon := fs.Float64("lon", 0, "Longitude (overrides --site)")
	mode := fs.String("mode", config.ModeForecast, "forecast (next 7 days) or archive (past 365 days)")
	days := fs.Int("days", 7, "Forecast days (forecast mode only)")
	outPath := fs.String("out", "weather.json", "Output JSON path")
	_ = fs.Parse(args)

	client := weather.NewClient()

	latitude, longitude := *lat, *lon
	if latitude == 0 && longitude == 0 {
		if *site == "" {
			fmt.Println("--site or --lat/--lon is required")
			os.Exit(2)
		}
		if preset, ok := data.FindSite(*site); ok {
			latitude, longitude = preset.Latitude, preset.Longitude
		} else {
			place, err := client.Geocode(*site)
			if err != nil {
				panic(err)
			}
			latitude, longitude = place.Latitude, place.Longitude
		}
	}

	var samples []model.WeatherSample
	var err error
	switch *mode {
	case config.ModeForecast:
		samples, err = client.FetchForecast(latitude, longitude, *days)
	case config.ModeArchive:
		samples, err = client.FetchHistoricalYear(latitude, longitude)
	default:
		fmt.Printf("unsupported mode: %q\n", *mode)
		os.Exit(2)
	}
	if err != nil {
		panic(err)
	}

	ds := &data.WeatherDataset{
		Latitude:  latitude,
		Longitude: longitude,
		Mode:      *mode,
		FetchedAt: time.Now(),
		Samples:   samples,
	}
	if err := data.SaveWeatherJSON(ds, *outPath); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d hourly samples to %s\n", len(samples), *outPath)
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	weatherPath := fs.String("weather", "weather.json", "Path to fetched weather JSON")
	cfgPath := fs.String("config", "", "Path to YAML config")
	loadPath := fs.String("load", "", "Optional load CSV (first numeric column); default workday profile otherwise")
	outPath := fs.String("out", "results/dispatch.csv", "Output CSV path")
	n := fs.Int("n", 0, "Optional: limit to first N hours (0=all)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	samples, generationKW, loadKW, station := buildSeries(*weatherPath, *loadPath, *n, cfg)

	batt, err := model.NewBattery(cfg.Battery.ToModelParams())
	if err != nil {
		panic(err)
	}

	engine := simulate.New()
	res, err := engine.Run(samples, generationKW, loadKW, batt)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := simulate.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	fmt.Printf("Generation=%.1f kWh  Load=%.1f kWh  Utilization=%.0f h  Self-consumption=%.1f%%\n",
		res.TotalGenerationKWh, res.TotalLoadKWh, res.UtilizationHours(station.CapacityKW), res.SelfConsumptionRate*100)
	if batt.Enabled() {
		fmt.Printf("Charged=%.1f kWh  Discharged=%.1f kWh  Final SOC=%.1f kWh\n",
			res.EnergyChargedKWh, res.EnergyDischargedKWh, res.FinalSOCKWh)
	}
}

func cmdAdvise(args []string) {
	fs := flag.NewFlagSet("advise", flag.ExitOnError)
	weatherPath := fs.String("weather", "weather.json", "Path to fetched weather JSON")
	cfgPath := fs.String("config", "", "Path to YAML config")
	loadPath := fs.String("load", "", "Optional load CSV (first numeric column)")
	showDays := fs.Int("days", 14, "Number of day rows to print (0=all)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	samples, generationKW, loadKW, _ := buildSeries(*weatherPath, *loadPath, 0, cfg)

	times := make([]time.Time, len(samples))
	for i, s := range samples {
		times[i] = s.Time
	}
	days, err := analysis.AggregateDaily(times, loadKW, generationKW)
	if err != nil {
		panic(err)
	}
	rec, err := analysis.Recommend(days)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-12s %-10s %-10s %-10s %-10s %-10s\n", "date", "gen_kwh", "load_kwh", "surplus", "deficit", "effective")
	limit := len(days)
	if *showDays > 0 && *showDays < limit {
		limit = *showDays
	}
	for _, d := range days[:limit] {
		fmt.Printf("%-12s %-10.1f %-10.1f %-10.1f %-10.1f %-10.1f\n",
			d.Date.Format("2006-01-02"), d.GenerationKWh, d.LoadKWh, d.SurplusKWh, d.DeficitKWh, d.EffectiveStorageKWh)
	}
	if limit < len(days) {
		fmt.Printf("... (%d more days)\n", len(days)-limit)
	}

	fmt.Println("")
	if !rec.Warranted {
		fmt.Printf("No storage warranted: %d of %d days shift more than the noise floor.\n", rec.RetainedDays, rec.TotalDays)
		return
	}
	fmt.Printf("Recommended: %.0f kW / %.0f kWh (2-hour system)\n", rec.RecommendedPowerKW, rec.RecommendedEnergyKWh)
	fmt.Printf("Sized from P90 of %d retained days (of %d): %.1f kWh\n", rec.RetainedDays, rec.TotalDays, rec.P90EffectiveKWh)
}

// buildSeries loads the weather dataset and produces the aligned
// generation/load series for it.
func buildSeries(weatherPath, loadPath string, n int, cfg *config.Config) ([]model.WeatherSample, []float64, []float64, model.StationConfig) {
	ds, err := data.LoadWeatherJSON(weatherPath)
	if err != nil {
		panic(err)
	}
	samples := ds.Samples
	if n > 0 && n < len(samples) {
		samples = samples[:n]
	}
	if len(samples) == 0 {
		panic("no samples in weather file")
	}

	station := cfg.Station.ToModelConfig()
	generationKW := pv.Simulate(samples, station)

	var loadKW []float64
	if loadPath != "" {
		raw, err := data.ReadLoadFile(loadPath)
		if err != nil {
			panic(err)
		}
		loadKW, err = load.Align(raw, len(samples))
		if err != nil {
			panic(err)
		}
	} else {
		times := make([]time.Time, len(samples))
		for i, s := range samples {
			times[i] = s.Time
		}
		loadKW = load.DefaultProfile(times, station.CapacityKW)
	}

	return samples, generationKW, loadKW, station
}
