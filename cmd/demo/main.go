package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"solar-sizing/internal/analysis"
	"solar-sizing/internal/load"
	"solar-sizing/internal/model"
	"solar-sizing/internal/pv"
	"solar-sizing/internal/simulate"
)

// Demo:
// - Generate a synthetic clear-sky week of hourly weather
// - Run the PV model, default load profile, and greedy battery dispatch
// - Print ledger rows and a storage sizing recommendation
func main() {
	days := flag.Int("days", 7, "Number of synthetic days")
	capacityKW := flag.Float64("capacity", 100, "Station capacity (kW)")
	battKWh := flag.Float64("battery", 200, "Battery energy capacity (kWh, 0=disabled)")
	outCSV := flag.String("out", "", "Optional path to write ledger CSV (e.g. results/dispatch.csv)")
	flag.Parse()

	samples := syntheticWeather(*days)

	station := model.StationConfig{CapacityKW: *capacityKW}.ApplyDefaults()
	if err := station.Validate(); err != nil {
		panic(err)
	}
	generationKW := pv.Simulate(samples, station)

	times := make([]time.Time, len(samples))
	for i, s := range samples {
		times[i] = s.Time
	}
	loadKW := load.DefaultProfile(times, station.CapacityKW)

	batt, err := model.NewBattery(model.BatteryParams{EnergyCapacityKWh: *battKWh})
	if err != nil {
		panic(err)
	}

	engine := simulate.New()
	result, err := engine.Run(samples, generationKW, loadKW, batt)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Simulated %d hours, station=%.0f kW, battery=%.0f kWh\n\n", len(samples), station.CapacityKW, *battKWh)

	for i := 0; i < minInt(24, len(result.Ledger)); i++ {
		r := result.Ledger[i]
		fmt.Printf(
			"%s ghi=%6.1f  gen=%6.1f  load=%6.1f  action=%-11s  batt=%6.1f  soc=%.1f->%.1f  grid=%6.1f\n",
			r.Time.Format("2006-01-02 15:04"),
			r.IrradianceWM2,
			r.GenerationKW,
			r.LoadKW,
			string(r.Action),
			r.BatteryPowerKW,
			r.SOCStartKWh,
			r.SOCEndKWh,
			r.GridPowerKW,
		)
	}

	if *outCSV != "" {
		if err := simulate.WriteLedgerCSV(*outCSV, result.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nGeneration=%.1f kWh  Load=%.1f kWh  Import=%.1f kWh  Export=%.1f kWh  Final SOC=%.1f kWh\n",
		result.TotalGenerationKWh, result.TotalLoadKWh, result.GridImportKWh, result.GridExportKWh, result.FinalSOCKWh)

	daily, err := analysis.AggregateDaily(times, loadKW, generationKW)
	if err != nil {
		panic(err)
	}
	rec, err := analysis.Recommend(daily)
	if err != nil {
		panic(err)
	}
	if rec.Warranted {
		fmt.Printf("Sizing: %.0f kW / %.0f kWh from P90=%.1f kWh over %d/%d days\n",
			rec.RecommendedPowerKW, rec.RecommendedEnergyKWh, rec.P90EffectiveKWh, rec.RetainedDays, rec.TotalDays)
	} else {
		fmt.Printf("Sizing: no storage warranted (%d/%d days above noise floor)\n", rec.RetainedDays, rec.TotalDays)
	}
}

// syntheticWeather builds a clear-sky series: irradiance follows a half-sine
// between 06:00 and 18:00 peaking at 900 W/m2, ambient temperature a gentler
// sine peaking mid-afternoon.
func syntheticWeather(days int) []model.WeatherSample {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.WeatherSample, 0, days*24)
	for d := 0; d < days; d++ {
		for h := 0; h < 24; h++ {
			t := start.AddDate(0, 0, d).Add(time.Duration(h) * time.Hour)
			ghi := 0.0
			if h >= 6 && h <= 18 {
				ghi = 900 * math.Sin(math.Pi*float64(h-6)/12)
			}
			temp := 20 + 8*math.Sin(math.Pi*float64(h-8)/16)
			out = append(out, model.WeatherSample{
				Time:          t,
				TemperatureC:  temp,
				IrradianceWM2: ghi,
			})
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
