package simulator

import "math"

// The shape engine. One rise/plateau/fall evaluator plus one spool
// multiplier cover every archetype; the constants in archetype.go are the
// only thing that differs between them.

// shapeAt returns the torque fraction (0..1 of the peak magnitude) at one
// rpm: a power-law rise from LowFloor up to the peak, a flat plateau, then a
// power-law fall toward HighFloor at redline.
func (s curveSpec) shapeAt(rpm, rpmStart, redlineRpm int) float64 {
	peakRpm := s.PeakRpmFrac * float64(redlineRpm)
	plateauEnd := peakRpm + s.PlateauFrac*float64(redlineRpm)
	r := float64(rpm)

	if r <= peakRpm {
		span := peakRpm - float64(rpmStart)
		if span <= 0 {
			return 1
		}
		x := clamp((r-float64(rpmStart))/span, 0, 1)
		return s.LowFloor + (1-s.LowFloor)*math.Pow(x, s.RiseExp)
	}
	if r <= plateauEnd {
		return 1
	}
	span := float64(redlineRpm) - plateauEnd
	if span <= 0 {
		return 1
	}
	t := clamp((r-plateauEnd)/span, 0, 1)
	return 1 - (1-s.HighFloor)*math.Pow(t, s.FallExp)
}

// boostMultAt returns the torque multiplier contributed by forced induction
// at one rpm. Below spool start the engine behaves naturally aspirated
// (multiplier 1); the boost contribution then ramps to the full pressure
// ratio and tapers again near redline.
func (s curveSpec) boostMultAt(rpm, rpmStart, redlineRpm int, effectiveBoostPsi float64) float64 {
	if !s.Spool.Enabled || effectiveBoostPsi <= 0 {
		return 1
	}
	full := PressureRatio(effectiveBoostPsi) - 1

	var spoolStart, spoolFull float64
	if s.Spool.FullRpm > 0 {
		spoolStart = float64(rpmStart)
		spoolFull = float64(s.Spool.FullRpm)
	} else {
		spoolStart = s.Spool.StartFrac * float64(redlineRpm)
		spoolFull = s.Spool.FullFrac * float64(redlineRpm)
	}

	r := float64(rpm)
	ramp := 1.0
	if r <= spoolStart {
		ramp = 0
	} else if r < spoolFull && spoolFull > spoolStart {
		ramp = (r - spoolStart) / (spoolFull - spoolStart)
	}

	retain := 1.0
	taperStart := s.Spool.TaperStartFrac * float64(redlineRpm)
	if s.Spool.TaperStartFrac > 0 && r > taperStart && float64(redlineRpm) > taperStart {
		t := (r - taperStart) / (float64(redlineRpm) - taperStart)
		retain = 1 - (1-s.Spool.TaperFloor)*clamp(t, 0, 1)
	}

	return 1 + full*ramp*retain
}
