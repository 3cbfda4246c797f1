package simulator

import (
	"math"
	"testing"

	"dyno/model"
)

func TestResolveBoostNAIsZero(t *testing.T) {
	props, _ := ResolveFuel(model.FuelGasoline)
	for _, requested := range []float64{0, 10, 30} {
		_, eff := ResolveBoost(props, model.FuelGasoline, model.InductionNaturallyAspirated, 11.0, requested)
		if eff != 0 {
			t.Errorf("NA requested %v psi: effective = %v, want 0", requested, eff)
		}
	}
}

func TestResolveBoostGasolineKnockCap(t *testing.T) {
	props, _ := ResolveFuel(model.FuelGasoline)
	cr := 11.0
	_, eff := ResolveBoost(props, model.FuelGasoline, model.InductionTurbocharged, cr, 18)
	safe := (props.KnockCeiling/cr - 1) * 14.7
	if math.Abs(eff-safe) > 1e-9 {
		t.Errorf("effective boost = %v, want knock-limited %v", eff, safe)
	}
	// A mild request under the cap passes through.
	_, eff = ResolveBoost(props, model.FuelGasoline, model.InductionTurbocharged, cr, 5)
	if eff != 5 {
		t.Errorf("effective boost = %v, want 5", eff)
	}
	// Safe boost shrinks as compression ratio rises.
	_, effLow := ResolveBoost(props, model.FuelGasoline, model.InductionTurbocharged, 9.0, 30)
	_, effHigh := ResolveBoost(props, model.FuelGasoline, model.InductionTurbocharged, 12.0, 30)
	if effHigh >= effLow {
		t.Errorf("higher CR should cap harder: %v >= %v", effHigh, effLow)
	}
}

func TestResolveBoostDieselMethanolPassThrough(t *testing.T) {
	for _, fuel := range []model.FuelType{model.FuelDiesel, model.FuelMethanol} {
		props, _ := ResolveFuel(fuel)
		_, eff := ResolveBoost(props, fuel, model.InductionTurbocharged, props.IdealCR, 25)
		if eff != 25 {
			t.Errorf("%s: effective boost = %v, want 25", fuel, eff)
		}
	}
}

func TestCompressionFactorBounds(t *testing.T) {
	for fuel := range fuelTable {
		props, _ := ResolveFuel(fuel)
		for _, cr := range []float64{2, 8, 12, 17, 25, 40} {
			f := compressionFactor(props, fuel, cr)
			if f < compressionFactorMin || f > compressionFactorMax {
				t.Errorf("%s CR %v: factor %v outside [%v, %v]", fuel, cr, f, compressionFactorMin, compressionFactorMax)
			}
		}
		// At the ideal compression ratio the factor is neutral.
		if f := compressionFactor(props, fuel, props.IdealCR); math.Abs(f-1) > 1e-9 {
			t.Errorf("%s at ideal CR: factor = %v, want 1", fuel, f)
		}
	}
}
