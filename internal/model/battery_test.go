package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBattery_Defaults(t *testing.T) {
	b, err := NewBattery(BatteryParams{EnergyCapacityKWh: 200})
	require.NoError(t, err)

	assert.Equal(t, 0.5, b.Params.MaxCRate)
	assert.Equal(t, 0.5, b.Params.InitialSOCFraction)
	assert.Equal(t, 100.0, b.State.SOCKWh)
	assert.Equal(t, 100.0, b.MaxPowerKW())
	assert.True(t, b.Enabled())
}

func TestNewBattery_ZeroCapacityDisabled(t *testing.T) {
	b, err := NewBattery(BatteryParams{})
	require.NoError(t, err)

	assert.False(t, b.Enabled())
	assert.Zero(t, b.State.SOCKWh)
}

func TestNewBattery_Invalid(t *testing.T) {
	_, err := NewBattery(BatteryParams{EnergyCapacityKWh: -1})
	assert.Error(t, err)

	_, err = NewBattery(BatteryParams{EnergyCapacityKWh: 100, MaxCRate: 1.5})
	assert.Error(t, err)

	_, err = NewBattery(BatteryParams{EnergyCapacityKWh: 100, InitialSOCFraction: 2})
	assert.Error(t, err)
}

func TestBattery_NilSafe(t *testing.T) {
	var b *Battery
	assert.False(t, b.Enabled())

	// Both deficit and surplus hours are inert on a nil battery.
	for _, net := range []float64{50, -50, 0} {
		res, err := b.ApplyNetLoad(net)
		require.NoError(t, err)
		assert.Zero(t, res.BatteryPowerKW)
		assert.Zero(t, res.SOCStart)
		assert.Zero(t, res.SOCEnd)
	}
}

func TestApplyNetLoad_ChargeLimitedByCRate(t *testing.T) {
	b, err := NewBattery(BatteryParams{EnergyCapacityKWh: 100, InitialSOCFraction: 0.1})
	require.NoError(t, err)

	// 200 kW surplus, but the 0.5C limit caps charging at 50 kW.
	res, err := b.ApplyNetLoad(-200)
	require.NoError(t, err)
	assert.Equal(t, -50.0, res.BatteryPowerKW)
	assert.Equal(t, 10.0, res.SOCStart)
	assert.Equal(t, 60.0, res.SOCEnd)
}

func TestApplyNetLoad_ChargeLimitedByHeadroom(t *testing.T) {
	b, err := NewBattery(BatteryParams{EnergyCapacityKWh: 100, InitialSOCFraction: 0.8})
	require.NoError(t, err)

	res, err := b.ApplyNetLoad(-200)
	require.NoError(t, err)
	assert.Equal(t, -20.0, res.BatteryPowerKW)
	assert.Equal(t, 100.0, res.SOCEnd)

	// Full battery charges nothing.
	res, err = b.ApplyNetLoad(-200)
	require.NoError(t, err)
	assert.Zero(t, res.BatteryPowerKW)
	assert.Equal(t, 100.0, res.SOCEnd)
}

func TestApplyNetLoad_DischargeLimitedByStored(t *testing.T) {
	b, err := NewBattery(BatteryParams{EnergyCapacityKWh: 100, InitialSOCFraction: 0.3})
	require.NoError(t, err)

	res, err := b.ApplyNetLoad(45)
	require.NoError(t, err)
	assert.Equal(t, 30.0, res.BatteryPowerKW)
	assert.Zero(t, res.SOCEnd)

	// Empty battery discharges nothing.
	res, err = b.ApplyNetLoad(45)
	require.NoError(t, err)
	assert.Zero(t, res.BatteryPowerKW)
	assert.Zero(t, res.SOCEnd)
}

func TestApplyNetLoad_IdleOnZeroNet(t *testing.T) {
	b, err := NewBattery(BatteryParams{EnergyCapacityKWh: 100})
	require.NoError(t, err)

	res, err := b.ApplyNetLoad(0)
	require.NoError(t, err)
	assert.Zero(t, res.BatteryPowerKW)
	assert.Equal(t, res.SOCStart, res.SOCEnd)
}

func TestApplyNetLoad_SOCAlwaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b, err := NewBattery(BatteryParams{EnergyCapacityKWh: 250})
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		net := (rng.Float64() - 0.5) * 1000
		res, err := b.ApplyNetLoad(net)
		require.NoError(t, err, "step %d net=%v", i, net)
		require.GreaterOrEqual(t, res.SOCEnd, 0.0)
		require.LessOrEqual(t, res.SOCEnd, 250.0)
	}
}

func TestActionFromPowerKW(t *testing.T) {
	assert.Equal(t, ActionCharging, ActionFromPowerKW(-10))
	assert.Equal(t, ActionIdle, ActionFromPowerKW(0))
	assert.Equal(t, ActionDischarging, ActionFromPowerKW(10))
}
