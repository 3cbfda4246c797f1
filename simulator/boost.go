package simulator

import "dyno/model"

// Compression/boost interaction. RPM independent, resolved once per run.

const (
	compressionFactorMin = 0.85
	compressionFactorMax = 1.15
)

// compressionFactor scales torque by how far the chosen compression ratio
// sits from the fuel's ideal. Gasoline and methanol bend back quadratically
// as knock proximity eats the gain; diesel stays linear.
func compressionFactor(props FuelProperties, fuel model.FuelType, compressionRatio float64) float64 {
	d := compressionRatio - props.IdealCR
	var f float64
	switch fuel {
	case model.FuelDiesel:
		f = 1 + 0.010*d
	case model.FuelMethanol:
		f = 1 + 0.020*d - 0.002*d*d
	default:
		f = 1 + 0.020*d - 0.004*d*d
	}
	return clamp(f, compressionFactorMin, compressionFactorMax)
}

// ResolveBoost returns the compression scaling factor and the knock-limited
// effective boost for a run. Naturally aspirated configurations always
// resolve to zero boost. For boosted gasoline the cap derives from the knock
// ceiling itself: CR * (1 + boost/14.7) <= ceiling, so safe boost falls
// roughly linearly as compression ratio rises. Diesel and methanol pass the
// requested boost through.
func ResolveBoost(props FuelProperties, fuel model.FuelType, induction model.InductionType, compressionRatio, requestedPsi float64) (float64, float64) {
	factor := compressionFactor(props, fuel, compressionRatio)

	if induction == model.InductionNaturallyAspirated {
		return factor, 0
	}

	boost := requestedPsi
	if boost < 0 {
		boost = 0
	}
	if fuel == model.FuelGasoline && compressionRatio > 0 {
		safe := (props.KnockCeiling/compressionRatio - 1) * atmospherePsi
		if safe < 0 {
			safe = 0
		}
		if boost > safe {
			boost = safe
		}
	}
	return factor, boost
}
