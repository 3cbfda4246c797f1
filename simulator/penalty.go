package simulator

import "math"

// Global penalty layer. Every factor is an independent multiplier on torque;
// they compose by straight multiplication, order does not matter.

const (
	pistonSpeedPenaltySlope = 2.0
	pistonSpeedPenaltyFloor = 0.5

	knockPenaltyExp   = 0.9
	knockPenaltyFloor = 0.55
)

// pistonSpeedFactor degrades linearly with the fractional excess over the
// configured mean piston speed limit, floored so the curve never collapses.
func pistonSpeedFactor(speedMps, limitMps float64) float64 {
	if limitMps <= 0 || speedMps <= limitMps {
		return 1
	}
	excess := speedMps/limitMps - 1
	return clamp(1-pistonSpeedPenaltySlope*excess, pistonSpeedPenaltyFloor, 1)
}

// sizeFactor penalizes displacement beyond the archetype threshold at the
// user-configured percent per liter.
func sizeFactor(displacementL, thresholdL, pctPerLiter, floor float64) float64 {
	if displacementL <= thresholdL || pctPerLiter <= 0 {
		return 1
	}
	return clamp(1-(pctPerLiter/100)*(displacementL-thresholdL), floor, 1)
}

// veScaleFactor normalizes the user peak VE against the reference VE.
func veScaleFactor(peakVEPercent, referencePercent float64) float64 {
	if peakVEPercent <= 0 || referencePercent <= 0 {
		return 1
	}
	return peakVEPercent / referencePercent
}

// knockFactor softens torque once compressionRatio * pressureRatio exceeds
// the fuel's knock ceiling. Sub-linear rather than a cliff: mild overshoot
// costs little, severe overshoot saturates at the floor. Exactly at the
// ceiling the factor is 1.
func knockFactor(compressionRatio, effectiveBoostPsi, ceiling float64) float64 {
	if ceiling <= 0 || compressionRatio <= 0 {
		return 1
	}
	crpr := compressionRatio * PressureRatio(effectiveBoostPsi)
	if crpr <= ceiling {
		return 1
	}
	return clamp(math.Pow(ceiling/crpr, knockPenaltyExp), knockPenaltyFloor, 1)
}
