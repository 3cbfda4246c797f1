package simulator

import "math"

// Geometry and unit helpers. All pure; degenerate inputs return 0 so a bad
// geometry can never propagate NaN or Inf into the output series.

const (
	cubicInchesPerLiter = 61.023744
	nmPerLbFt           = 1.35581795
	atmospherePsi       = 14.7
	hpConversionRpm     = 5252.0
)

// DisplacementLiters converts bore/stroke/cylinder count to swept volume.
func DisplacementLiters(cylinders int, boreMm, strokeMm float64) float64 {
	if cylinders <= 0 || boreMm <= 0 || strokeMm <= 0 {
		return 0
	}
	boreCm := boreMm / 10
	strokeCm := strokeMm / 10
	return math.Pi / 4 * boreCm * boreCm * strokeCm * float64(cylinders) / 1000
}

func LitersToCubicInches(liters float64) float64 {
	return liters * cubicInchesPerLiter
}

// MeanPistonSpeedMps is the average linear piston velocity, two strokes per
// revolution.
func MeanPistonSpeedMps(strokeMm float64, rpm int) float64 {
	if strokeMm <= 0 || rpm <= 0 {
		return 0
	}
	return 2 * (strokeMm / 1000) * float64(rpm) / 60
}

// TorqueFromBmep inverts the brake-mean-effective-pressure relation for a
// four stroke cycle: torque = BMEP * V / (4*pi).
func TorqueFromBmep(bmepBar, displacementL float64) float64 {
	if bmepBar <= 0 || displacementL <= 0 {
		return 0
	}
	pa := bmepBar * 1e5
	nm := pa * (displacementL / 1000) / (4 * math.Pi)
	return nm / nmPerLbFt
}

// BmepFromTorque is the psi form of the same relation. 150.8 is the classic
// per-cubic-inch constant, so displacement converts to CID first.
func BmepFromTorque(torqueLbFt, displacementL float64) float64 {
	if displacementL <= 0 {
		return 0
	}
	return 150.8 * torqueLbFt / LitersToCubicInches(displacementL)
}

// AirflowCfm is the theoretical four-stroke pumping volume scaled by
// volumetric efficiency.
func AirflowCfm(displacementL float64, rpm int, veFraction float64) float64 {
	if displacementL <= 0 || rpm <= 0 || veFraction <= 0 {
		return 0
	}
	return LitersToCubicInches(displacementL) * float64(rpm) / 3456 * veFraction
}

// Horsepower is always derived from torque, never computed independently.
func Horsepower(torqueLbFt float64, rpm int) float64 {
	if rpm <= 0 {
		return 0
	}
	return torqueLbFt * float64(rpm) / hpConversionRpm
}

func PressureRatio(boostPsi float64) float64 {
	if boostPsi <= 0 {
		return 1
	}
	return 1 + boostPsi/atmospherePsi
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
