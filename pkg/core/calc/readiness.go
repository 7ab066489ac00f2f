package calc

import "math"

// =============================================================================
// STAGE READINESS
// =============================================================================

// NeutralSubScore is used when a threshold is missing or non-positive, so a
// bad table entry degrades to "halfway ready" instead of dividing by zero.
const NeutralSubScore = 0.5

// ReadinessSubScore measures progress toward a single threshold, capped at
// 1.0. It is deliberately not floored: a negative actual (e.g. an operating
// loss against a margin threshold) produces a negative sub-score that drags
// the mean down.
func ReadinessSubScore(actual, threshold float64) float64 {
	if threshold <= 0 {
		return NeutralSubScore
	}
	return math.Min(1.0, actual/threshold)
}

// ReadinessScore is the unweighted mean of the sub-scores.
func ReadinessScore(subScores ...float64) float64 {
	if len(subScores) == 0 {
		return NeutralSubScore
	}
	var sum float64
	for _, s := range subScores {
		sum += s
	}
	return sum / float64(len(subScores))
}

// ProgressionTimeline stretches the base timeline when readiness is low:
//
//	timeline = max(base, base * (2 - readiness))
//
// Readiness 1.0 keeps the base; readiness 0 doubles it.
func ProgressionTimeline(baseMonths int, readiness float64) int {
	stretched := float64(baseMonths) * (2 - readiness)
	if stretched < float64(baseMonths) {
		return baseMonths
	}
	return int(stretched)
}

// ProgressionProbability maps readiness onto [0.2, 0.95].
func ProgressionProbability(readiness float64) float64 {
	return math.Min(0.95, readiness*0.8+0.2)
}
