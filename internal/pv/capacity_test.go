package pv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCapacity_GroundMount(t *testing.T) {
	est, err := EstimateCapacity(1000, InstallGroundMount)
	require.NoError(t, err)

	assert.InDelta(t, 60.0, est.CapacityKW, 1e-9)
	assert.Equal(t, 60.0, est.DensityWM2)
	assert.Equal(t, InstallGroundMount, est.InstallType)
}

func TestEstimateCapacity_FlatRoof(t *testing.T) {
	est, err := EstimateCapacity(500, InstallFlatRoof)
	require.NoError(t, err)

	assert.InDelta(t, 55.0, est.CapacityKW, 1e-9)
	assert.Equal(t, 110.0, est.DensityWM2)
}

func TestEstimateCapacity_InvalidArea(t *testing.T) {
	_, err := EstimateCapacity(0, InstallGroundMount)
	assert.Error(t, err)

	_, err = EstimateCapacity(-10, InstallFlatRoof)
	assert.Error(t, err)
}

func TestEstimateCapacity_UnknownType(t *testing.T) {
	_, err := EstimateCapacity(100, InstallType("carport"))
	assert.Error(t, err)
}
