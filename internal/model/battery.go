package model

import (
	"errors"
	"fmt"
	"math"
)

// BatteryParams defines the storage system parameters.
// Units:
// - EnergyCapacityKWh: kWh; 0 disables dispatch simulation entirely
// - MaxCRate: max charge/discharge power as a fraction of capacity per hour
//   (0.5 = a 2-hour system)
// - InitialSOCFraction: starting state of charge as a fraction of capacity
type BatteryParams struct {
	EnergyCapacityKWh  float64
	MaxCRate           float64
	InitialSOCFraction float64
}

const (
	DefaultMaxCRate           = 0.5
	DefaultInitialSOCFraction = 0.5
)

// BatteryState captures mutable state.
type BatteryState struct {
	// SOCKWh is the stored energy in kWh, always within [0, EnergyCapacityKWh].
	SOCKWh float64
}

// Battery is a convenience wrapper bundling params + state.
type Battery struct {
	Params BatteryParams
	State  BatteryState
}

func NewBattery(params BatteryParams) (*Battery, error) {
	if params.MaxCRate == 0 {
		params.MaxCRate = DefaultMaxCRate
	}
	if params.InitialSOCFraction == 0 {
		params.InitialSOCFraction = DefaultInitialSOCFraction
	}
	b := &Battery{
		Params: params,
		State:  BatteryState{SOCKWh: params.InitialSOCFraction * params.EnergyCapacityKWh},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Battery) Validate() error {
	p := b.Params
	if p.EnergyCapacityKWh < 0 {
		return errors.New("EnergyCapacityKWh must be >= 0")
	}
	if p.MaxCRate <= 0 || p.MaxCRate > 1 {
		return errors.New("MaxCRate must be in (0, 1]")
	}
	if p.InitialSOCFraction < 0 || p.InitialSOCFraction > 1 {
		return errors.New("InitialSOCFraction must be in [0, 1]")
	}
	if b.State.SOCKWh < 0 || b.State.SOCKWh > p.EnergyCapacityKWh {
		return errors.New("initial SOC must be within [0, EnergyCapacityKWh]")
	}
	return nil
}

// Enabled reports whether the battery participates in dispatch at all.
func (b *Battery) Enabled() bool {
	return b != nil && b.Params.EnergyCapacityKWh > 0
}

// MaxPowerKW is the per-hour charge/discharge power limit implied by the C rate.
func (b *Battery) MaxPowerKW() float64 {
	return b.Params.MaxCRate * b.Params.EnergyCapacityKWh
}

// HourResult captures what happened in one hourly step.
type HourResult struct {
	// BatteryPowerKW is signed: positive = discharging to load,
	// negative = charging from surplus.
	BatteryPowerKW float64
	SOCStart       float64
	SOCEnd         float64
}

// socEpsilon absorbs float rounding in the invariant check; the transition
// rule itself keeps SOC in bounds by construction.
const socEpsilon = 1e-9

// ApplyNetLoad advances the battery by one hour given the net load
// (load - generation, kW). Surplus hours charge, deficit hours discharge,
// both capped by the SOC bound and the C-rate power limit. With hourly
// steps, kW and kWh are numerically interchangeable here.
//
// No round-trip efficiency, SOC floor, or degradation is modeled; these are
// deliberate first-pass sizing assumptions.
func (b *Battery) ApplyNetLoad(netLoadKW float64) (HourResult, error) {
	if !b.Enabled() {
		var res HourResult
		if b != nil {
			res.SOCStart = b.State.SOCKWh
			res.SOCEnd = b.State.SOCKWh
		}
		return res, nil
	}

	res := HourResult{SOCStart: b.State.SOCKWh, SOCEnd: b.State.SOCKWh}
	capacity := b.Params.EnergyCapacityKWh
	limit := b.MaxPowerKW()

	switch {
	case netLoadKW < 0:
		headroom := capacity - b.State.SOCKWh
		charge := math.Min(-netLoadKW, math.Min(headroom, limit))
		b.State.SOCKWh += charge
		res.BatteryPowerKW = -charge
	case netLoadKW > 0:
		discharge := math.Min(netLoadKW, math.Min(b.State.SOCKWh, limit))
		b.State.SOCKWh -= discharge
		res.BatteryPowerKW = discharge
	}

	res.SOCEnd = b.State.SOCKWh
	if res.SOCEnd < -socEpsilon || res.SOCEnd > capacity+socEpsilon {
		return res, fmt.Errorf("state of charge %.6f kWh left [0, %.6f]", res.SOCEnd, capacity)
	}
	return res, nil
}
