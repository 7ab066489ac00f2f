package benchmark

import (
	"math"

	"hospital_intelligence/pkg/core/lifecycle"
)

// Per-field policy caps. These are consulting policy constants, not derived
// values: no matter how aggressive the tier, we never recommend more than
// e.g. 3pp of margin improvement in one cycle.
const (
	marginImprovementCap       = 3.0
	arDaysReductionCap         = 10.0
	collectionImprovementCap   = 2.5
	occupancyGrowthCap         = 5.0
	efficiencyGainCap          = 4.0
	satisfactionImprovementCap = 4.0
	qualityImprovementCap      = 3.0
)

// Proportionality factors tying each derived target to the revenue target.
const (
	marginFactor       = 0.10
	arDaysFactor       = 0.25
	collectionFactor   = 0.08
	occupancyFactor    = 0.15
	efficiencyFactor   = 0.12
	satisfactionFactor = 0.10
	qualityFactor      = 0.08
)

// Milestone scaling: 12-month base scaled per horizon, then by the tier's
// timeline acceleration.
const (
	milestoneBaseMonths = 12.0
	shortTermScale      = 0.5
	mediumTermScale     = 1.5
	longTermScale       = 2.5
)

// Generator produces VelocityBenchmarks from a profile and velocity tier.
// Purely arithmetic: given valid enum inputs it always succeeds.
type Generator struct {
	stages map[lifecycle.Stage]lifecycle.StageDefinition
	tiers  map[lifecycle.VelocityTier]lifecycle.VelocityModel
}

// NewGenerator creates a generator backed by the static tables.
func NewGenerator() *Generator {
	return &Generator{
		stages: lifecycle.StageDefinitionTable,
		tiers:  lifecycle.VelocityModelTable,
	}
}

// Generate computes the dynamic targets for the stage baseline scaled by the
// tier's multipliers.
func (g *Generator) Generate(profile lifecycle.HospitalLifecycleProfile, tier lifecycle.VelocityTier) VelocityBenchmarks {
	def, ok := g.stages[profile.Stage]
	if !ok {
		def = lifecycle.StageDefinitionTable[lifecycle.StageForAge(profile.AgeYears)]
	}
	model, ok := g.tiers[tier]
	if !ok {
		model = lifecycle.VelocityModelTable[lifecycle.TierSteady]
	}

	baseRevenueGrowth := (def.GrowthMin + def.GrowthMax) / 2
	revenueTarget := baseRevenueGrowth * model.RevenueMultiplier

	capped := func(factor, multiplier, cap float64) float64 {
		return math.Min(cap, revenueTarget*factor*multiplier)
	}

	return VelocityBenchmarks{
		Stage:        profile.Stage,
		VelocityTier: tier,

		RevenueGrowthTarget:           revenueTarget,
		MarginImprovementTarget:       capped(marginFactor, 1.0, marginImprovementCap),
		ARDaysReductionTarget:         capped(arDaysFactor, 1.0, arDaysReductionCap),
		CollectionImprovementTarget:   capped(collectionFactor, 1.0, collectionImprovementCap),
		OccupancyGrowthTarget:         capped(occupancyFactor, model.EfficiencyMultiplier, occupancyGrowthCap),
		EfficiencyGainTarget:          capped(efficiencyFactor, model.EfficiencyMultiplier, efficiencyGainCap),
		SatisfactionImprovementTarget: capped(satisfactionFactor, model.QualityMultiplier, satisfactionImprovementCap),
		QualityImprovementTarget:      capped(qualityFactor, model.QualityMultiplier, qualityImprovementCap),

		ShortTermMilestoneMonths:  milestoneMonths(shortTermScale, model.TimelineAcceleration),
		MediumTermMilestoneMonths: milestoneMonths(mediumTermScale, model.TimelineAcceleration),
		LongTermMilestoneMonths:   milestoneMonths(longTermScale, model.TimelineAcceleration),
	}
}

// milestoneMonths floors the scaled horizon to a whole month. The horizon
// scales are strictly increasing, so short <= medium <= long holds for any
// positive acceleration.
func milestoneMonths(horizonScale, acceleration float64) int {
	return int(math.Floor(milestoneBaseMonths * horizonScale * acceleration))
}
