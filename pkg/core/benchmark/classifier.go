package benchmark

import (
	"hospital_intelligence/pkg/core/calc"
	"hospital_intelligence/pkg/core/lifecycle"
	"hospital_intelligence/pkg/models"
)

// Adjusted-score thresholds for tier assignment.
const (
	breakthroughThreshold = 90.0
	acceleratingThreshold = 75.0
	steadyThreshold       = 50.0
	slowThreshold         = 25.0
)

// Neutral operational defaults used when the raw metric is absent, chosen so
// each step function lands on its 1.0 / 0.95-band midpoint.
const (
	defaultOccupancy    = 0.70
	defaultSatisfaction = 75.0
	defaultARDays       = 35.0
)

// Classifier maps actual growth, adjusted by operational performance, onto a
// velocity tier relative to the stage's expected growth range.
type Classifier struct {
	stages map[lifecycle.Stage]lifecycle.StageDefinition
}

// NewClassifier creates a classifier backed by the static stage table.
func NewClassifier() *Classifier {
	return &Classifier{stages: lifecycle.StageDefinitionTable}
}

// NewClassifierWithTable creates a classifier with an override stage table
// (configuration-supplied thresholds).
func NewClassifierWithTable(stages map[lifecycle.Stage]lifecycle.StageDefinition) *Classifier {
	return &Classifier{stages: stages}
}

// Classify returns the velocity tier for a profile plus raw operational
// metrics. For a fixed stage and operational multiplier the result is
// monotonic in revenue growth.
func (c *Classifier) Classify(profile lifecycle.HospitalLifecycleProfile, m *models.HospitalMetrics) lifecycle.VelocityTier {
	adjusted := c.AdjustedScore(profile, m)
	switch {
	case adjusted >= breakthroughThreshold:
		return lifecycle.TierBreakthrough
	case adjusted >= acceleratingThreshold:
		return lifecycle.TierAccelerating
	case adjusted >= steadyThreshold:
		return lifecycle.TierSteady
	case adjusted >= slowThreshold:
		return lifecycle.TierSlow
	default:
		return lifecycle.TierDeclining
	}
}

// AdjustedScore computes the operationally-adjusted velocity score
// underlying the tier assignment. Exposed for diagnostics and reporting.
func (c *Classifier) AdjustedScore(profile lifecycle.HospitalLifecycleProfile, m *models.HospitalMetrics) float64 {
	def, ok := c.stages[profile.Stage]
	if !ok {
		// Unknown stage from an override table: fall back to the static entry.
		def = lifecycle.StageDefinitionTable[lifecycle.StageForAge(profile.AgeYears)]
	}

	actualPct := profile.RevenueGrowthRate * 100
	raw := calc.VelocityScore(actualPct, def.GrowthMin, def.GrowthMax)

	multiplier := calc.OperationalMultiplier(
		m.Occupancy(defaultOccupancy),
		m.Satisfaction(defaultSatisfaction),
		m.ARDays(defaultARDays),
	)
	return raw * multiplier
}
