package simulate

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"time",
		"temperature_c",
		"irradiance_wm2",
		"generation_kw",
		"load_kw",
		"net_load_kw",
		"action",
		"battery_power_kw",
		"soc_start_kwh",
		"soc_end_kwh",
		"grid_power_kw",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			fmtTime(r.Time),
			fmtFloat(r.TemperatureC),
			fmtFloat(r.IrradianceWM2),
			fmtFloat(r.GenerationKW),
			fmtFloat(r.LoadKW),
			fmtFloat(r.NetLoadKW),
			string(r.Action),
			fmtFloat(r.BatteryPowerKW),
			fmtFloat(r.SOCStartKWh),
			fmtFloat(r.SOCEndKWh),
			fmtFloat(r.GridPowerKW),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
