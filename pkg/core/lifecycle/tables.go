package lifecycle

import "fmt"

// =============================================================================
// STAGE DEFINITION TABLE
// =============================================================================

// StageDefinition describes what is expected of a hospital in a given stage.
// Growth ranges are expressed in percentage points (15 = 15% YoY revenue growth).
type StageDefinition struct {
	Stage Stage

	// MaxAgeYears is the inclusive upper age bound of the stage band.
	// The terminal stage has no upper bound (see StageForAge).
	MaxAgeYears int

	// Expected annual revenue growth range for the stage.
	// Invariant: GrowthMax > GrowthMin (validated at init).
	GrowthMin float64
	GrowthMax float64

	FocusAreas        []string
	TypicalChallenges []string
}

// StageDefinitionTable maps each lifecycle stage to its definition.
// Age bands: startup ≤2, growth ≤7, expansion ≤15, maturity ≤25, else established.
var StageDefinitionTable = map[Stage]StageDefinition{
	StageStartup: {
		Stage:       StageStartup,
		MaxAgeYears: 2,
		GrowthMin:   20,
		GrowthMax:   60,
		FocusAreas:  []string{"patient acquisition", "clinical credibility", "cash flow stabilization"},
		TypicalChallenges: []string{
			"low occupancy while reputation builds",
			"high fixed costs against a thin revenue base",
			"recruiting senior clinicians",
		},
	},
	StageGrowth: {
		Stage:       StageGrowth,
		MaxAgeYears: 7,
		GrowthMin:   15,
		GrowthMax:   45,
		FocusAreas:  []string{"service line expansion", "referral network depth", "operational process maturity"},
		TypicalChallenges: []string{
			"scaling clinical quality with volume",
			"working capital strain from receivables",
			"retaining mid-level staff",
		},
	},
	StageExpansion: {
		Stage:       StageExpansion,
		MaxAgeYears: 15,
		GrowthMin:   10,
		GrowthMax:   30,
		FocusAreas:  []string{"multi-site or bed expansion", "payer mix optimization", "brand differentiation"},
		TypicalChallenges: []string{
			"capital allocation across competing expansion options",
			"maintaining culture across units",
			"rising competitive intensity",
		},
	},
	StageMaturity: {
		Stage:       StageMaturity,
		MaxAgeYears: 25,
		GrowthMin:   5,
		GrowthMax:   18,
		FocusAreas:  []string{"margin protection", "clinical excellence programs", "technology modernization"},
		TypicalChallenges: []string{
			"growth plateau in the core catchment",
			"aging infrastructure",
			"defending share against newer entrants",
		},
	},
	StageEstablished: {
		Stage:       StageEstablished,
		MaxAgeYears: -1, // no upper bound
		GrowthMin:   2,
		GrowthMax:   10,
		FocusAreas:  []string{"institutional reputation", "teaching and research", "succession and governance"},
		TypicalChallenges: []string{
			"organizational inertia",
			"legacy cost structures",
			"disruption from specialty-focused competitors",
		},
	},
}

// StageForAge classifies an age in years into a lifecycle stage.
// Bands are inclusive on the upper end: age 2 is still startup, age 7 growth.
func StageForAge(ageYears int) Stage {
	switch {
	case ageYears <= 2:
		return StageStartup
	case ageYears <= 7:
		return StageGrowth
	case ageYears <= 15:
		return StageExpansion
	case ageYears <= 25:
		return StageMaturity
	default:
		return StageEstablished
	}
}

// =============================================================================
// VELOCITY MODEL TABLE
// =============================================================================

// VelocityModel holds the multipliers applied to stage-baseline targets for a
// given velocity tier, and the acceleration factor applied to milestone
// timelines (values < 1 compress the timeline).
type VelocityModel struct {
	Tier                 VelocityTier
	RevenueMultiplier    float64
	EfficiencyMultiplier float64
	QualityMultiplier    float64
	TimelineAcceleration float64
}

// VelocityModelTable maps each velocity tier to its target multipliers.
var VelocityModelTable = map[VelocityTier]VelocityModel{
	TierBreakthrough: {TierBreakthrough, 2.0, 1.5, 1.3, 0.7},
	TierAccelerating: {TierAccelerating, 1.5, 1.25, 1.15, 0.85},
	TierSteady:       {TierSteady, 1.0, 1.0, 1.0, 1.0},
	TierSlow:         {TierSlow, 0.7, 0.85, 0.9, 1.25},
	TierDeclining:    {TierDeclining, 0.5, 0.7, 0.8, 1.5},
}

// =============================================================================
// PROGRESSION FRAMEWORK TABLE
// =============================================================================

// ProgressionRequirements defines the minimum bar a hospital must clear to
// progress from one stage to the next. Thresholds are positive by table
// invariant; readiness scoring treats a non-positive threshold as neutral.
type ProgressionRequirements struct {
	MinAgeMonths          int
	MarginThreshold       float64 // operating margin (decimal)
	OccupancyThreshold    float64 // occupancy rate (decimal)
	SatisfactionThreshold float64 // patient satisfaction (0-100)
	TurnoverCeiling       float64 // maximum acceptable staff turnover (decimal)
	BaseTimelineMonths    int
}

// ProgressionFrameworkTable is keyed by "<current>_to_<next>" stage pairs.
// A missing entry is not an error: readiness falls back to neutral defaults.
var ProgressionFrameworkTable = map[string]ProgressionRequirements{
	"startup_to_growth": {
		MinAgeMonths:          24,
		MarginThreshold:       0.05,
		OccupancyThreshold:    0.60,
		SatisfactionThreshold: 70,
		TurnoverCeiling:       0.30,
		BaseTimelineMonths:    18,
	},
	"growth_to_expansion": {
		MinAgeMonths:          60,
		MarginThreshold:       0.08,
		OccupancyThreshold:    0.70,
		SatisfactionThreshold: 75,
		TurnoverCeiling:       0.25,
		BaseTimelineMonths:    24,
	},
	"expansion_to_maturity": {
		MinAgeMonths:          120,
		MarginThreshold:       0.10,
		OccupancyThreshold:    0.75,
		SatisfactionThreshold: 80,
		TurnoverCeiling:       0.22,
		BaseTimelineMonths:    36,
	},
	"maturity_to_established": {
		MinAgeMonths:          240,
		MarginThreshold:       0.12,
		OccupancyThreshold:    0.78,
		SatisfactionThreshold: 82,
		TurnoverCeiling:       0.20,
		BaseTimelineMonths:    48,
	},
}

// TransitionKey builds the lookup key for ProgressionFrameworkTable.
func TransitionKey(current, next Stage) string {
	return fmt.Sprintf("%s_to_%s", current, next)
}

// validateTables enforces the structural invariants the scoring math relies
// on. Violations are programming errors in the tables, so we panic at init.
func validateTables() {
	for stage, def := range StageDefinitionTable {
		if def.GrowthMax <= def.GrowthMin {
			panic(fmt.Sprintf("lifecycle: stage %s growth range invalid (min=%.1f max=%.1f)", stage, def.GrowthMin, def.GrowthMax))
		}
	}
	for key, req := range ProgressionFrameworkTable {
		if req.MinAgeMonths <= 0 || req.BaseTimelineMonths <= 0 {
			panic(fmt.Sprintf("lifecycle: transition %s has non-positive months", key))
		}
	}
	for tier, model := range VelocityModelTable {
		if model.TimelineAcceleration <= 0 {
			panic(fmt.Sprintf("lifecycle: tier %s has non-positive timeline acceleration", tier))
		}
	}
}

func init() {
	validateTables()
}
