package simulator

import (
	"fmt"

	"dyno/model"
)

// Archetype is the closed set of shape models. Dispatch is by lookup, so an
// unknown fuel/induction/valvetrain combination is an error instead of a
// silent fallthrough.
type Archetype string

const (
	ArchNAPushrod    Archetype = "na-pushrod"
	ArchNAOhc        Archetype = "na-ohc"
	ArchTurbo        Archetype = "turbo"
	ArchSupercharged Archetype = "supercharged"
	ArchDieselLight  Archetype = "diesel-light"
	ArchDieselHeavy  Archetype = "diesel-heavy"
	ArchMethanol     Archetype = "methanol"
)

const dieselHeavyThresholdL = 8.0

// curveSpec is the per-archetype tuning data. One shape engine (curve.go)
// reads these; the per-archetype formula copies of the historical variants
// collapse into this table.
type curveSpec struct {
	BaseBmepBar float64 // peak BMEP at reference VE, before tech/size/compression scaling

	PeakRpmFrac float64 // peak-torque rpm as a fraction of redline
	PlateauFrac float64 // width of the flat top, fraction of redline

	LowFloor float64 // torque fraction at the bottom of the grid
	RiseExp  float64
	HighFloor float64 // torque fraction approached at redline
	FallExp   float64

	SizeThresholdL float64 // displacement beyond this starts the size penalty
	SizeFloor      float64

	Spool spoolSpec
}

// spoolSpec models forced-induction boost buildup as a static rpm-indexed
// multiplier. Not a time-domain transient: boost is a function of steady
// state rpm only.
type spoolSpec struct {
	Enabled        bool
	StartFrac      float64 // no boost below this fraction of redline
	FullFrac       float64 // full boost at and above this fraction
	FullRpm        int     // absolute override: full boost by this rpm (superchargers)
	TaperStartFrac float64 // extra top-end boost taper starts here
	TaperFloor     float64 // boost contribution retained at redline
}

var archetypeTable = map[Archetype]curveSpec{
	ArchNAPushrod: {
		BaseBmepBar: 11.0,
		PeakRpmFrac: 0.60, PlateauFrac: 0.04,
		LowFloor: 0.40, RiseExp: 0.8,
		HighFloor: 0.35, FallExp: 1.1,
		SizeThresholdL: 2.0, SizeFloor: 0.80,
	},
	ArchNAOhc: {
		BaseBmepBar: 11.5,
		PeakRpmFrac: 0.65, PlateauFrac: 0.04, // pushed up for DOHC at dispatch
		LowFloor: 0.40, RiseExp: 0.8,
		HighFloor: 0.40, FallExp: 1.0,
		SizeThresholdL: 2.0, SizeFloor: 0.80,
	},
	ArchTurbo: {
		BaseBmepBar: 11.0,
		PeakRpmFrac: 0.60, PlateauFrac: 0.15,
		LowFloor: 0.45, RiseExp: 0.9,
		HighFloor: 0.40, FallExp: 1.0,
		SizeThresholdL: 3.0, SizeFloor: 0.75,
		Spool: spoolSpec{
			Enabled:   true,
			StartFrac: 0.25, FullFrac: 0.45,
			TaperStartFrac: 0.85, TaperFloor: 0.75,
		},
	},
	ArchSupercharged: {
		BaseBmepBar: 11.0,
		PeakRpmFrac: 0.60, PlateauFrac: 0.15,
		LowFloor: 0.45, RiseExp: 0.9,
		HighFloor: 0.40, FallExp: 1.0,
		SizeThresholdL: 3.0, SizeFloor: 0.75,
		Spool: spoolSpec{
			Enabled: true,
			FullRpm: 1500, // belt driven, full boost almost immediately
			TaperStartFrac: 0.90, TaperFloor: 0.90, // parasitic/heat losses, not lag
		},
	},
	ArchDieselLight: {
		BaseBmepBar: 14.0,
		PeakRpmFrac: 0.35, PlateauFrac: 0.30,
		LowFloor: 0.55, RiseExp: 0.7,
		HighFloor: 0.45, FallExp: 0.9,
		SizeThresholdL: 6.0, SizeFloor: 0.75,
		Spool: spoolSpec{
			Enabled:   true,
			StartFrac: 0.15, FullFrac: 0.35,
			TaperStartFrac: 0.95, TaperFloor: 0.95,
		},
	},
	ArchDieselHeavy: {
		BaseBmepBar: 15.0,
		PeakRpmFrac: 0.30, PlateauFrac: 0.35,
		LowFloor: 0.60, RiseExp: 0.6,
		HighFloor: 0.50, FallExp: 0.9,
		SizeThresholdL: 6.0, SizeFloor: 0.70,
		Spool: spoolSpec{
			Enabled:   true,
			StartFrac: 0.15, FullFrac: 0.35,
			TaperStartFrac: 0.95, TaperFloor: 0.95,
		},
	},
	ArchMethanol: {
		// DOHC naturally aspirated shape with extra high-rpm torque retention;
		// the flat energy bonus lives in the fuel table.
		BaseBmepBar: 11.5,
		PeakRpmFrac: 0.70, PlateauFrac: 0.05,
		LowFloor: 0.40, RiseExp: 0.9,
		HighFloor: 0.45, FallExp: 1.0,
		SizeThresholdL: 2.0, SizeFloor: 0.80,
	},
}

// techFactorTable is the valvetrain "tech factor" applied to the peak torque
// magnitude. Four valves per cylinder add two points on top.
var techFactorTable = map[model.ValvetrainType]float64{
	model.ValvetrainPushrod: 0.94,
	model.ValvetrainSOHC:    1.00,
	model.ValvetrainDOHC:    1.03,
}

// naPeakFracTable places the naturally aspirated torque peak by valvetrain.
var naPeakFracTable = map[model.ValvetrainType]float64{
	model.ValvetrainPushrod: 0.60,
	model.ValvetrainSOHC:    0.65,
	model.ValvetrainDOHC:    0.70,
}

func techFactor(v model.ValvetrainType, valvesPerCylinder int) float64 {
	f, ok := techFactorTable[v]
	if !ok {
		return 1
	}
	if valvesPerCylinder >= 4 {
		f += 0.02
	}
	return f
}

// resolveArchetype maps (fuel, induction, valvetrain, displacement) onto the
// closed archetype set and returns a copy of its curve constants. Boosted
// methanol rides the turbo/supercharger shapes with methanol fuel
// properties; the dedicated methanol archetype is the naturally aspirated
// case.
func resolveArchetype(cfg *model.EngineConfig, displacementL float64) (Archetype, curveSpec, error) {
	var arch Archetype
	switch cfg.Fuel {
	case model.FuelDiesel:
		if displacementL >= dieselHeavyThresholdL {
			arch = ArchDieselHeavy
		} else {
			arch = ArchDieselLight
		}
	case model.FuelGasoline, model.FuelMethanol:
		switch cfg.Induction {
		case model.InductionTurbocharged:
			arch = ArchTurbo
		case model.InductionSupercharged:
			arch = ArchSupercharged
		case model.InductionNaturallyAspirated:
			if cfg.Fuel == model.FuelMethanol {
				arch = ArchMethanol
			} else if cfg.Valvetrain == model.ValvetrainPushrod {
				arch = ArchNAPushrod
			} else {
				arch = ArchNAOhc
			}
		default:
			return "", curveSpec{}, fmt.Errorf("unknown induction type %q", cfg.Induction)
		}
	default:
		return "", curveSpec{}, fmt.Errorf("unknown fuel type %q", cfg.Fuel)
	}

	spec, ok := archetypeTable[arch]
	if !ok {
		return "", curveSpec{}, fmt.Errorf("no curve constants for archetype %q", arch)
	}
	if arch == ArchNAOhc {
		if frac, ok := naPeakFracTable[cfg.Valvetrain]; ok {
			spec.PeakRpmFrac = frac
		}
	}
	return arch, spec, nil
}
