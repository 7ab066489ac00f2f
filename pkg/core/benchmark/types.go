// Package benchmark classifies a hospital's growth velocity relative to its
// lifecycle stage and generates the dynamic performance targets that follow
// from that classification.
package benchmark

import "hospital_intelligence/pkg/core/lifecycle"

// VelocityBenchmarks is the derived target record for one analysis.
// All targets are non-negative; milestone months satisfy short <= medium <= long.
// Never mutated after generation.
type VelocityBenchmarks struct {
	Stage        lifecycle.Stage        `json:"stage"`
	VelocityTier lifecycle.VelocityTier `json:"velocity_tier"`

	// Targets in percentage points unless noted.
	RevenueGrowthTarget           float64 `json:"revenue_growth_target"`
	MarginImprovementTarget       float64 `json:"margin_improvement_target"`
	ARDaysReductionTarget         float64 `json:"ar_days_reduction_target"` // days
	CollectionImprovementTarget   float64 `json:"collection_improvement_target"`
	OccupancyGrowthTarget         float64 `json:"occupancy_growth_target"`
	EfficiencyGainTarget          float64 `json:"efficiency_gain_target"`
	SatisfactionImprovementTarget float64 `json:"satisfaction_improvement_target"` // points
	QualityImprovementTarget      float64 `json:"quality_improvement_target"`

	// Milestone horizons in whole months.
	ShortTermMilestoneMonths  int `json:"short_term_milestone_months"`
	MediumTermMilestoneMonths int `json:"medium_term_milestone_months"`
	LongTermMilestoneMonths   int `json:"long_term_milestone_months"`
}
