package progression

import (
	"fmt"

	"hospital_intelligence/pkg/core/calc"
	"hospital_intelligence/pkg/core/lifecycle"
	"hospital_intelligence/pkg/models"
)

// maxListEntries caps the risk and enabler lists. Checks run in a fixed
// order; the first three that fire win (policy, not ranked by magnitude).
const maxListEntries = 3

// RoadmapBuilder computes stage-progression roadmaps against the progression
// framework table. Missing framework entries fall back to neutral defaults
// rather than erroring: the roadmap never blocks the report.
type RoadmapBuilder struct {
	framework map[string]lifecycle.ProgressionRequirements
}

// NewRoadmapBuilder creates a builder backed by the static framework table.
func NewRoadmapBuilder() *RoadmapBuilder {
	return &RoadmapBuilder{framework: lifecycle.ProgressionFrameworkTable}
}

// NewRoadmapBuilderWithTable creates a builder with an override table.
func NewRoadmapBuilderWithTable(framework map[string]lifecycle.ProgressionRequirements) *RoadmapBuilder {
	return &RoadmapBuilder{framework: framework}
}

// Build derives the roadmap for a profile plus raw metrics.
func (b *RoadmapBuilder) Build(profile lifecycle.HospitalLifecycleProfile, m *models.HospitalMetrics) StageProgressionRoadmap {
	current := profile.Stage
	if current.IsTerminal() {
		return terminalRoadmap(current)
	}
	next := current.Next()

	req, ok := b.framework[lifecycle.TransitionKey(current, next)]
	if !ok {
		// Unknown transition: neutral requirements so every sub-score
		// resolves to 0.5 below.
		req = lifecycle.ProgressionRequirements{BaseTimelineMonths: 24}
	}

	readiness := b.readiness(profile, m, req)

	roadmap := StageProgressionRoadmap{
		CurrentStage:           current,
		NextStage:              next,
		ReadinessScore:         readiness,
		TimelineMonths:         calc.ProgressionTimeline(req.BaseTimelineMonths, readiness),
		ProgressionProbability: calc.ProgressionProbability(readiness),

		FinancialMilestones:      financialMilestones(req),
		OperationalMilestones:    operationalMilestones(req),
		InfrastructureMilestones: infrastructureMilestones(next),
		CapabilityMilestones:     capabilityMilestones(next),

		Risks:    identifyRisks(profile, m),
		Enablers: identifyEnablers(profile, m),
	}
	return roadmap
}

// readiness is the unweighted mean of the financial, operational, and age
// sub-scores, clamped to [0,1]. Sub-scores themselves are capped at 1 but not
// floored, so a deep operating loss can drag the mean below zero before the
// final clamp; the clamp keeps timeline and probability in their documented
// ranges.
func (b *RoadmapBuilder) readiness(profile lifecycle.HospitalLifecycleProfile, m *models.HospitalMetrics, req lifecycle.ProgressionRequirements) float64 {
	financial := calc.NeutralSubScore
	if m.OperatingMargin != nil {
		financial = calc.ReadinessSubScore(*m.OperatingMargin, req.MarginThreshold)
	}

	operational := calc.NeutralSubScore
	if m.OccupancyRate != nil {
		operational = calc.ReadinessSubScore(*m.OccupancyRate, req.OccupancyThreshold)
	}

	age := calc.ReadinessSubScore(float64(profile.AgeYears), float64(req.MinAgeMonths)/12)

	score := calc.ReadinessScore(financial, operational, age)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// terminalRoadmap represents "already at the last stage": nothing to progress
// to, so the timeline is zero and the probability is certain.
func terminalRoadmap(stage lifecycle.Stage) StageProgressionRoadmap {
	return StageProgressionRoadmap{
		CurrentStage:           stage,
		NextStage:              stage,
		ReadinessScore:         1.0,
		TimelineMonths:         0,
		ProgressionProbability: 1.0,
		FinancialMilestones:    []string{"Sustain operating margin and reinvestment capacity"},
		OperationalMilestones:  []string{"Maintain occupancy and satisfaction at established-stage norms"},
		InfrastructureMilestones: []string{
			"Rolling modernization of clinical infrastructure",
		},
		CapabilityMilestones: []string{
			"Leadership succession and institutional knowledge retention",
		},
	}
}

func financialMilestones(req lifecycle.ProgressionRequirements) []string {
	if req.MarginThreshold <= 0 {
		return []string{"Establish a stable operating margin baseline"}
	}
	return []string{
		fmt.Sprintf("Reach a sustained operating margin of %.0f%%", req.MarginThreshold*100),
		"Bring receivables collection onto a predictable monthly cycle",
	}
}

func operationalMilestones(req lifecycle.ProgressionRequirements) []string {
	milestones := []string{}
	if req.OccupancyThreshold > 0 {
		milestones = append(milestones, fmt.Sprintf("Hold occupancy above %.0f%%", req.OccupancyThreshold*100))
	}
	if req.SatisfactionThreshold > 0 {
		milestones = append(milestones, fmt.Sprintf("Raise patient satisfaction past %.0f", req.SatisfactionThreshold))
	}
	if req.TurnoverCeiling > 0 {
		milestones = append(milestones, fmt.Sprintf("Keep staff turnover under %.0f%%", req.TurnoverCeiling*100))
	}
	if len(milestones) == 0 {
		milestones = append(milestones, "Stabilize core operational metrics")
	}
	return milestones
}

func infrastructureMilestones(next lifecycle.Stage) []string {
	switch next {
	case lifecycle.StageGrowth:
		return []string{"Commission remaining licensed beds", "Stand up a basic HIS/EMR stack"}
	case lifecycle.StageExpansion:
		return []string{"Secure capacity for the next bed or site expansion", "Upgrade diagnostic capability to expansion-stage breadth"}
	case lifecycle.StageMaturity:
		return []string{"Consolidate multi-unit operations onto shared systems"}
	default:
		return []string{"Plan long-horizon facility renewal"}
	}
}

func capabilityMilestones(next lifecycle.Stage) []string {
	switch next {
	case lifecycle.StageGrowth:
		return []string{"Build a referral development function", "Formalize clinical governance"}
	case lifecycle.StageExpansion:
		return []string{"Develop a second tier of clinical leadership", "Institutionalize quality and safety programs"}
	case lifecycle.StageMaturity:
		return []string{"Build data-driven service line management"}
	default:
		return []string{"Develop teaching and research partnerships"}
	}
}

// identifyRisks runs the fixed-order boolean risk checks and keeps the first
// three that fire.
func identifyRisks(profile lifecycle.HospitalLifecycleProfile, m *models.HospitalMetrics) []string {
	var risks []string
	add := func(condition bool, text string) {
		if condition && len(risks) < maxListEntries {
			risks = append(risks, text)
		}
	}

	add(m.OperatingMargin != nil && *m.OperatingMargin < 0.08,
		"Thin operating margin limits reinvestment capacity")
	add(profile.CompetitionDensity == "high",
		"High competitive density in the catchment area")
	add(m.StaffTurnoverRate != nil && *m.StaffTurnoverRate > 0.25,
		"Elevated staff turnover threatens service continuity")
	add(profile.AgeYears < 3,
		"Limited operating history increases execution risk")

	return risks
}

// identifyEnablers mirrors identifyRisks for positive signals.
func identifyEnablers(profile lifecycle.HospitalLifecycleProfile, m *models.HospitalMetrics) []string {
	var enablers []string
	add := func(condition bool, text string) {
		if condition && len(enablers) < maxListEntries {
			enablers = append(enablers, text)
		}
	}

	add(profile.RevenueGrowthRate > 0.15,
		"Revenue momentum well above stage expectations")
	add(m.PatientSatisfactionScore != nil && *m.PatientSatisfactionScore > 80,
		"Strong patient satisfaction supports referral growth")
	add(m.OccupancyRate != nil && *m.OccupancyRate > 0.80,
		"High occupancy demonstrates durable demand")
	add(profile.CityTier == "tier_1" || profile.CityTier == "tier_2",
		"Favorable metro market with depth of demand")

	return enablers
}
