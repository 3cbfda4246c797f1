package simulator

import (
	"fmt"

	"dyno/model"
)

// Simulator runs one engine configuration through the full pipeline:
// validate -> resolve fuel properties -> resolve compression/boost -> build
// the rpm grid -> shape model -> penalty layer -> per-point metrics ->
// summary. Each Run is a pure, single-pass call; a Simulator holds nothing
// but a snapshot of the read-only config tables, so it is safe to share.
type Simulator struct {
	cfg Config
}

func NewSimulator() *Simulator {
	return &Simulator{cfg: simCfg}
}

// ValidationError reports a rejected configuration. No partial result is
// ever produced for one of these.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid engine config: %s: %s", e.Field, e.Reason)
}

// Validate rejects configurations the pipeline cannot simulate. Out-of-range
// values that have a safe correction (redline above the ceiling) are not
// errors; Run clamps those and surfaces a warning instead.
func (s *Simulator) Validate(ec *model.EngineConfig) error {
	if ec.Cylinders <= 0 {
		return &ValidationError{"cylinders", "must be a positive integer"}
	}
	if ec.BoreMm <= 0 {
		return &ValidationError{"bore_mm", "must be positive"}
	}
	if ec.StrokeMm <= 0 {
		return &ValidationError{"stroke_mm", "must be positive"}
	}
	if ec.CompressionRatio <= 1 {
		return &ValidationError{"compression_ratio", "must be greater than 1"}
	}
	if ec.RedlineRpm < s.cfg.RedlineFloor {
		return &ValidationError{"redline_rpm", fmt.Sprintf("below practical minimum %d", s.cfg.RedlineFloor)}
	}
	if ec.RpmStep <= 0 {
		return &ValidationError{"rpm_step", "must be positive"}
	}
	if ec.RpmStep >= ec.RedlineRpm {
		return &ValidationError{"rpm_step", "must be smaller than redline"}
	}
	if _, err := ResolveFuel(ec.Fuel); err != nil {
		return &ValidationError{"fuel", err.Error()}
	}
	switch ec.Induction {
	case model.InductionNaturallyAspirated, model.InductionTurbocharged, model.InductionSupercharged:
	default:
		return &ValidationError{"induction", fmt.Sprintf("unknown induction type %q", ec.Induction)}
	}
	if _, ok := techFactorTable[ec.Valvetrain]; !ok {
		return &ValidationError{"valvetrain", fmt.Sprintf("unknown valvetrain type %q", ec.Valvetrain)}
	}
	if ec.BoostPsi < 0 {
		return &ValidationError{"boost_psi", "must not be negative"}
	}
	if ec.SizePenaltyPercentPerLiter < 0 {
		return &ValidationError{"size_penalty_percent_per_liter", "must not be negative"}
	}
	return nil
}

// Run executes one simulation to completion and returns the ordered series.
func (s *Simulator) Run(ec *model.EngineConfig) (*model.SimulationResult, error) {
	if err := s.Validate(ec); err != nil {
		return nil, err
	}

	cfg := *ec
	var warnings []string
	if cfg.RedlineRpm > s.cfg.RedlineCeiling {
		warnings = append(warnings,
			fmt.Sprintf("redline %d rpm clamped to practical ceiling %d", cfg.RedlineRpm, s.cfg.RedlineCeiling))
		cfg.RedlineRpm = s.cfg.RedlineCeiling
	}
	if cfg.Induction == model.InductionNaturallyAspirated {
		cfg.BoostPsi = 0
	}
	if cfg.ValvesPerCylinder <= 0 {
		cfg.ValvesPerCylinder = 2
	}
	if cfg.PeakVEPercent <= 0 {
		cfg.PeakVEPercent = s.cfg.ReferenceVEPercent
	}
	if cfg.PistonSpeedLimitMps <= 0 {
		cfg.PistonSpeedLimitMps = s.cfg.DefaultPistonSpeedLimitMps
	}
	if cfg.SizePenaltyPercentPerLiter == 0 {
		cfg.SizePenaltyPercentPerLiter = s.cfg.DefaultSizePenaltyPerLiter
	}

	displacement := DisplacementLiters(cfg.Cylinders, cfg.BoreMm, cfg.StrokeMm)
	if displacement <= 0 {
		return nil, &ValidationError{"geometry", "displacement resolves to zero"}
	}

	props, err := ResolveFuel(cfg.Fuel)
	if err != nil {
		return nil, err
	}
	_, spec, err := resolveArchetype(&cfg, displacement)
	if err != nil {
		return nil, err
	}
	compFactor, effectiveBoost := ResolveBoost(props, cfg.Fuel, cfg.Induction, cfg.CompressionRatio, cfg.BoostPsi)

	grid := buildRpmGrid(s.cfg.RpmStart, cfg.RedlineRpm, cfg.RpmStep)

	// Peak torque magnitude and the rpm-independent multipliers.
	peakTorque := TorqueFromBmep(spec.BaseBmepBar, displacement) *
		techFactor(cfg.Valvetrain, cfg.ValvesPerCylinder) *
		compFactor * props.EnergyBonus
	veScale := veScaleFactor(cfg.PeakVEPercent, s.cfg.ReferenceVEPercent)
	sizeF := sizeFactor(displacement, spec.SizeThresholdL, cfg.SizePenaltyPercentPerLiter, spec.SizeFloor)
	knockF := knockFactor(cfg.CompressionRatio, effectiveBoost, props.KnockCeiling)
	flat := veScale * sizeF * knockF

	bsfc := props.Bsfc(effectiveBoost > 0)

	points := make([]model.RpmPoint, 0, len(grid))
	for _, rpm := range grid {
		shape := spec.shapeAt(rpm, s.cfg.RpmStart, cfg.RedlineRpm)
		boostMult := spec.boostMultAt(rpm, s.cfg.RpmStart, cfg.RedlineRpm, effectiveBoost)
		speed := MeanPistonSpeedMps(cfg.StrokeMm, rpm)
		speedF := pistonSpeedFactor(speed, cfg.PistonSpeedLimitMps)

		torque := peakTorque * shape * boostMult * flat * speedF
		hp := Horsepower(torque, rpm)
		ve := (cfg.PeakVEPercent / 100) * shape * boostMult * sizeF * knockF * speedF

		var fuelGal float64
		if props.DensityLbPerGal > 0 {
			fuelGal = hp * bsfc / props.DensityLbPerGal
		}
		points = append(points, model.RpmPoint{
			Rpm:            rpm,
			TorqueLbFt:     torque,
			HorsepowerHp:   hp,
			EffectiveVE:    ve,
			PistonSpeedMps: speed,
			BmepPsi:        BmepFromTorque(torque, displacement),
			AirflowCfm:     AirflowCfm(displacement, rpm, ve),
			FuelLbPerHr:    hp * bsfc,
			FuelGalPerHr:   fuelGal,
		})
	}

	return &model.SimulationResult{
		Points:             points,
		DisplacementLiters: displacement,
		FuelDensityLbGal:   props.DensityLbPerGal,
		EffectiveBoostPsi:  effectiveBoost,
		Summary:            summarize(points, displacement),
		Warnings:           warnings,
	}, nil
}

// buildRpmGrid samples from the configured start up to and including redline
// in fixed steps.
func buildRpmGrid(start, redlineRpm, step int) []int {
	grid := make([]int, 0, (redlineRpm-start)/step+1)
	for rpm := start; rpm <= redlineRpm; rpm += step {
		grid = append(grid, rpm)
	}
	return grid
}

// summarize scans the series for the peaks. Strict comparison keeps the
// first point of a flat plateau as the peak.
func summarize(points []model.RpmPoint, displacementL float64) model.Summary {
	var sum model.Summary
	if len(points) == 0 {
		return sum
	}
	peakHpIdx := 0
	for i, p := range points {
		if p.HorsepowerHp > points[peakHpIdx].HorsepowerHp {
			peakHpIdx = i
		}
		if p.TorqueLbFt > sum.PeakTorqueLbFt {
			sum.PeakTorqueLbFt = p.TorqueLbFt
			sum.PeakTorqueRpm = p.Rpm
		}
	}
	peak := points[peakHpIdx]
	sum.PeakHp = peak.HorsepowerHp
	sum.PeakHpRpm = peak.Rpm
	if displacementL > 0 {
		sum.HpPerLiter = peak.HorsepowerHp / displacementL
	}
	sum.BmepAtPeakHpPsi = peak.BmepPsi
	sum.AirflowAtPeakHpCfm = peak.AirflowCfm
	sum.FuelAtPeakHpLbPerHr = peak.FuelLbPerHr
	sum.FuelAtPeakHpGalPerHr = peak.FuelGalPerHr
	return sum
}
