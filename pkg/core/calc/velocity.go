// Package calc implements the scoring arithmetic shared by the lifecycle
// benchmarking pipeline: velocity interpolation, operational adjustments,
// readiness sub-scores, and aggregate score blending.
package calc

// =============================================================================
// VELOCITY SCORING
// =============================================================================

// Raw velocity score bounds. A hospital at the bottom of its stage's expected
// growth range scores 25; at the top, 100.
const (
	VelocityScoreFloor   = 25.0
	VelocityScoreCeiling = 100.0
)

// VelocityScore interpolates an actual growth rate (percentage points) onto
// the stage's expected [min, max] range:
//
//	score = 100                            if actual >= max
//	score = 25                             if actual <= min
//	score = 25 + 75*(actual-min)/(max-min) otherwise
//
// The static tables guarantee max > min; the guard covers configurable
// override tables where that invariant could be violated.
func VelocityScore(actualGrowthPct, rangeMin, rangeMax float64) float64 {
	if rangeMax <= rangeMin {
		// Degenerate range from a bad override. Neutral midpoint.
		return (VelocityScoreFloor + VelocityScoreCeiling) / 2
	}
	switch {
	case actualGrowthPct >= rangeMax:
		return VelocityScoreCeiling
	case actualGrowthPct <= rangeMin:
		return VelocityScoreFloor
	default:
		span := VelocityScoreCeiling - VelocityScoreFloor
		return VelocityScoreFloor + span*(actualGrowthPct-rangeMin)/(rangeMax-rangeMin)
	}
}

// =============================================================================
// OPERATIONAL MULTIPLIER
// =============================================================================

// OccupancyFactor maps an occupancy rate (decimal) to its adjustment factor.
func OccupancyFactor(occupancy float64) float64 {
	switch {
	case occupancy >= 0.85:
		return 1.2
	case occupancy >= 0.75:
		return 1.1
	case occupancy >= 0.65:
		return 1.0
	default:
		return 0.9
	}
}

// SatisfactionFactor maps a patient satisfaction score (0-100) to its factor.
func SatisfactionFactor(satisfaction float64) float64 {
	switch {
	case satisfaction >= 85:
		return 1.1
	case satisfaction >= 80:
		return 1.05
	default:
		return 0.95
	}
}

// ARDaysFactor maps days in accounts receivable to its factor. Faster
// collections score above 1.
func ARDaysFactor(daysInAR float64) float64 {
	switch {
	case daysInAR <= 30:
		return 1.1
	case daysInAR <= 40:
		return 1.0
	default:
		return 0.9
	}
}

// OperationalMultiplier is the unweighted mean of the three step-function
// factors. With neutral inputs it is exactly 1.0.
func OperationalMultiplier(occupancy, satisfaction, daysInAR float64) float64 {
	return (OccupancyFactor(occupancy) + SatisfactionFactor(satisfaction) + ARDaysFactor(daysInAR)) / 3
}
