package pv

import "fmt"

// InstallType selects the packing density used to estimate installable
// capacity from buildable area.
type InstallType string

const (
	// InstallGroundMount assumes row spacing, ~15-20 m²/kW.
	InstallGroundMount InstallType = "ground"
	// InstallFlatRoof assumes flush rooftop packing, ~8-10 m²/kW.
	InstallFlatRoof InstallType = "roof"
)

// Empirical power densities in W/m².
const (
	groundMountDensityWM2 = 60
	flatRoofDensityWM2    = 110
)

// CapacityEstimate is the suggested station size for a given usable area.
type CapacityEstimate struct {
	CapacityKW  float64
	DensityWM2  float64
	AreaSqm     float64
	InstallType InstallType
}

// EstimateCapacity converts usable area (m²) into a suggested capacity.
func EstimateCapacity(areaSqm float64, installType InstallType) (CapacityEstimate, error) {
	if areaSqm <= 0 {
		return CapacityEstimate{}, fmt.Errorf("area must be > 0, got %.2f", areaSqm)
	}

	var density float64
	switch installType {
	case InstallGroundMount:
		density = groundMountDensityWM2
	case InstallFlatRoof:
		density = flatRoofDensityWM2
	default:
		return CapacityEstimate{}, fmt.Errorf("unsupported install type: %q", installType)
	}

	return CapacityEstimate{
		CapacityKW:  areaSqm * density / 1000,
		DensityWM2:  density,
		AreaSqm:     areaSqm,
		InstallType: installType,
	}, nil
}
