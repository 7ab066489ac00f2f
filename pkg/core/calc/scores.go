package calc

import "math"

// =============================================================================
// AGGREGATE VELOCITY SCORE
// =============================================================================

// componentScore grades an actual value against a target on a 0-100 scale.
// Meeting the target scores 100; a declining actual floors at 0 so the scale
// holds; a zero target is ungradeable and scores a neutral 50 rather than
// dividing by zero.
func componentScore(actual, target float64) float64 {
	if target == 0 {
		return 50
	}
	score := 100 * actual / target
	if score < 0 {
		return 0
	}
	return math.Min(100, score)
}

// RevenueScore grades actual revenue growth (percentage points) against the
// benchmark revenue growth target.
func RevenueScore(actualGrowthPct, targetGrowthPct float64) float64 {
	return componentScore(actualGrowthPct, targetGrowthPct)
}

// EfficiencyScore grades occupancy (as a percentage) against a 75% baseline
// plus the benchmark occupancy growth target.
func EfficiencyScore(occupancyPct, occupancyGrowthTarget float64) float64 {
	return componentScore(occupancyPct, 75+occupancyGrowthTarget)
}

// QualityScore grades patient satisfaction against a 75-point baseline plus
// the benchmark satisfaction improvement target.
func QualityScore(satisfaction, satisfactionImprovementTarget float64) float64 {
	return componentScore(satisfaction, 75+satisfactionImprovementTarget)
}

// OverallVelocityScore is the unweighted mean of the three component scores.
func OverallVelocityScore(revenueScore, efficiencyScore, qualityScore float64) float64 {
	return (revenueScore + efficiencyScore + qualityScore) / 3
}
