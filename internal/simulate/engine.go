package simulate

import (
	"fmt"

	"solar-sizing/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run walks the aligned hourly series in order, applying the battery's
// greedy charge/discharge rule to each hour's net load. The scan is
// inherently serial: hour i+1 depends on hour i's ending SOC.
//
// batt may be nil or zero-capacity, in which case battery power is zero for
// every hour and grid power equals net load.
func (e *Engine) Run(samples []model.WeatherSample, generationKW, loadKW []float64, batt *model.Battery) (*Result, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no weather samples")
	}
	if len(generationKW) != len(samples) {
		return nil, fmt.Errorf("generation series length %d does not match weather length %d", len(generationKW), len(samples))
	}
	if len(loadKW) != len(samples) {
		return nil, fmt.Errorf("load series length %d does not match weather length %d", len(loadKW), len(samples))
	}

	res := &Result{Ledger: make([]LedgerRow, 0, len(samples))}

	for i, s := range samples {
		net := loadKW[i] - generationKW[i]

		var hour model.HourResult
		if batt.Enabled() {
			var err error
			hour, err = batt.ApplyNetLoad(net)
			if err != nil {
				return nil, fmt.Errorf("hour %d apply net load: %w", i, err)
			}
		}

		grid := net - hour.BatteryPowerKW

		res.Ledger = append(res.Ledger, LedgerRow{
			Index: i,

			Time: s.Time,

			TemperatureC:  s.TemperatureC,
			IrradianceWM2: s.IrradianceWM2,

			GenerationKW: generationKW[i],
			LoadKW:       loadKW[i],
			NetLoadKW:    net,

			Action: model.ActionFromPowerKW(hour.BatteryPowerKW),

			BatteryPowerKW: hour.BatteryPowerKW,
			SOCStartKWh:    hour.SOCStart,
			SOCEndKWh:      hour.SOCEnd,

			GridPowerKW: grid,
		})

		res.TotalGenerationKWh += generationKW[i]
		res.TotalLoadKWh += loadKW[i]
		if hour.BatteryPowerKW < 0 {
			res.EnergyChargedKWh += -hour.BatteryPowerKW
		} else {
			res.EnergyDischargedKWh += hour.BatteryPowerKW
		}
		if grid > 0 {
			res.GridImportKWh += grid
		} else {
			res.GridExportKWh += -grid
		}
	}

	if batt != nil {
		res.FinalSOCKWh = batt.State.SOCKWh
	}
	if res.TotalGenerationKWh > 0 {
		// Exported energy is the only generation not used on site;
		// battery-charged surplus counts as self-consumed.
		res.SelfConsumptionRate = (res.TotalGenerationKWh - res.GridExportKWh) / res.TotalGenerationKWh
	}

	return res, nil
}
