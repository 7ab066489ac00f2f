// Package lifecycle defines the hospital lifecycle model: stages, growth
// velocity tiers, and the static tables that drive stage classification,
// velocity benchmarking, and stage progression.
package lifecycle

// Stage represents a hospital's lifecycle stage, determined solely by age.
type Stage string

const (
	StageStartup     Stage = "startup"
	StageGrowth      Stage = "growth"
	StageExpansion   Stage = "expansion"
	StageMaturity    Stage = "maturity"
	StageEstablished Stage = "established"
)

// StageOrder is the fixed progression order. Established is terminal.
var StageOrder = []Stage{
	StageStartup,
	StageGrowth,
	StageExpansion,
	StageMaturity,
	StageEstablished,
}

// Ordinal returns the position of the stage in the progression order,
// or -1 for an unknown stage.
func (s Stage) Ordinal() int {
	for i, stage := range StageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// Next returns the following stage in the progression order.
// The terminal stage returns itself.
func (s Stage) Next() Stage {
	idx := s.Ordinal()
	if idx < 0 || idx == len(StageOrder)-1 {
		return s
	}
	return StageOrder[idx+1]
}

// IsTerminal reports whether the stage has no successor.
func (s Stage) IsTerminal() bool {
	return s == StageEstablished
}

// VelocityTier is a stage-relative classification of growth performance.
type VelocityTier string

const (
	TierBreakthrough VelocityTier = "breakthrough"
	TierAccelerating VelocityTier = "accelerating"
	TierSteady       VelocityTier = "steady"
	TierSlow         VelocityTier = "slow"
	TierDeclining    VelocityTier = "declining"
)

// tierRank orders tiers from worst to best for monotonicity comparisons.
var tierRank = map[VelocityTier]int{
	TierDeclining:    0,
	TierSlow:         1,
	TierSteady:       2,
	TierAccelerating: 3,
	TierBreakthrough: 4,
}

// Rank returns the ordinal rank of the tier (declining=0 ... breakthrough=4),
// or -1 for an unknown tier.
func (t VelocityTier) Rank() int {
	if r, ok := tierRank[t]; ok {
		return r
	}
	return -1
}

// HospitalLifecycleProfile is an immutable snapshot derived once per analysis.
// All growth rates are decimals (0.15 = 15%).
type HospitalLifecycleProfile struct {
	AgeYears             int     `json:"age_years"`
	Stage                Stage   `json:"stage"`
	RevenueGrowthRate    float64 `json:"revenue_growth_rate"`
	BedGrowthRate        float64 `json:"bed_growth_rate"`
	PatientGrowthRate    float64 `json:"patient_growth_rate"`
	ServiceExpansionRate float64 `json:"service_expansion_rate"`
	CityTier             string  `json:"city_tier"`
	CompetitionDensity   string  `json:"competition_density"`
	MarketMaturity       string  `json:"market_maturity"`

	// EstimatedFields lists inputs that were absent and replaced by a
	// deterministic fallback, for inclusion in validation notes.
	EstimatedFields []string `json:"estimated_fields,omitempty"`
}
