package simulator

import (
	"fmt"

	"dyno/model"
)

// FuelProperties are the hand-tuned per-fuel constants. Bands are empirical,
// not physical law; the canonical values here replace the spread of
// historical variants.
type FuelProperties struct {
	DensityLbPerGal float64
	BsfcNA          float64 // lb fuel per hp-hr, naturally aspirated
	BsfcBoosted     float64 // lb fuel per hp-hr under boost
	KnockCeiling    float64 // limit on compressionRatio * pressureRatio
	IdealCR         float64 // compression ratio the fuel is happiest at
	EnergyBonus     float64 // flat torque multiplier vs the gasoline baseline
}

var fuelTable = map[model.FuelType]FuelProperties{
	model.FuelGasoline: {
		DensityLbPerGal: 6.2,
		BsfcNA:          0.45,
		BsfcBoosted:     0.60,
		KnockCeiling:    18.0,
		IdealCR:         10.8,
		EnergyBonus:     1.0,
	},
	model.FuelDiesel: {
		DensityLbPerGal: 7.1,
		BsfcNA:          0.38,
		BsfcBoosted:     0.40,
		KnockCeiling:    32.0,
		IdealCR:         17.0,
		EnergyBonus:     1.0,
	},
	model.FuelMethanol: {
		DensityLbPerGal: 6.6,
		BsfcNA:          0.72,
		BsfcBoosted:     0.85,
		KnockCeiling:    28.0,
		IdealCR:         13.5,
		EnergyBonus:     1.15, // charge cooling + latent heat
	},
}

// ResolveFuel looks up the property record for a fuel type. Unknown values
// are rejected, never silently defaulted.
func ResolveFuel(f model.FuelType) (FuelProperties, error) {
	p, ok := fuelTable[f]
	if !ok {
		return FuelProperties{}, fmt.Errorf("unknown fuel type %q", f)
	}
	return p, nil
}

func (p FuelProperties) Bsfc(boosted bool) float64 {
	if boosted {
		return p.BsfcBoosted
	}
	return p.BsfcNA
}
