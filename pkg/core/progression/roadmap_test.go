package progression

import (
	"math"
	"testing"

	"hospital_intelligence/pkg/core/lifecycle"
	"hospital_intelligence/pkg/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestBuildGrowthToExpansion(t *testing.T) {
	b := NewRoadmapBuilder()

	profile := lifecycle.HospitalLifecycleProfile{
		AgeYears:          7,
		Stage:             lifecycle.StageGrowth,
		RevenueGrowthRate: 0.28,
		CityTier:          "tier_2",
	}
	m := &models.HospitalMetrics{
		OperatingMargin: floatPtr(0.11), // 0.11/0.08 capped -> 1.0
		OccupancyRate:   floatPtr(0.72), // 0.72/0.70 capped -> 1.0
	}

	r := b.Build(profile, m)

	if r.NextStage != lifecycle.StageExpansion {
		t.Errorf("expected expansion, got %s", r.NextStage)
	}
	// All three sub-scores cap at 1.0 (age 7y against a 5y minimum).
	if r.ReadinessScore != 1.0 {
		t.Errorf("expected readiness 1.0, got %f", r.ReadinessScore)
	}
	// Full readiness keeps the 24-month base timeline.
	if r.TimelineMonths != 24 {
		t.Errorf("expected 24-month timeline, got %d", r.TimelineMonths)
	}
	if r.ProgressionProbability != 0.95 {
		t.Errorf("expected probability capped at 0.95, got %f", r.ProgressionProbability)
	}

	if len(r.FinancialMilestones) == 0 || len(r.OperationalMilestones) == 0 ||
		len(r.InfrastructureMilestones) == 0 || len(r.CapabilityMilestones) == 0 {
		t.Error("all four milestone groups should be populated")
	}
}

func TestBuildPartialReadiness(t *testing.T) {
	b := NewRoadmapBuilder()

	// Startup at age 1 against the 24-month minimum: age sub-score 0.5.
	// Margin 0.025/0.05 = 0.5; occupancy 0.30/0.60 = 0.5. Mean 0.5.
	profile := lifecycle.HospitalLifecycleProfile{
		AgeYears: 1, Stage: lifecycle.StageStartup,
	}
	m := &models.HospitalMetrics{
		OperatingMargin: floatPtr(0.025),
		OccupancyRate:   floatPtr(0.30),
	}

	r := b.Build(profile, m)
	if math.Abs(r.ReadinessScore-0.5) > 1e-9 {
		t.Errorf("expected readiness 0.5, got %f", r.ReadinessScore)
	}
	// 18 * (2 - 0.5) = 27 months.
	if r.TimelineMonths != 27 {
		t.Errorf("expected 27-month timeline, got %d", r.TimelineMonths)
	}
	// 0.5*0.8 + 0.2 = 0.6
	if math.Abs(r.ProgressionProbability-0.6) > 1e-9 {
		t.Errorf("expected probability 0.6, got %f", r.ProgressionProbability)
	}
}

func TestBuildDeepLossClampsReadiness(t *testing.T) {
	b := NewRoadmapBuilder()

	// A heavy operating loss produces a negative financial sub-score; the
	// final readiness clamp keeps timeline and probability in range.
	profile := lifecycle.HospitalLifecycleProfile{
		AgeYears: 0, Stage: lifecycle.StageStartup,
	}
	m := &models.HospitalMetrics{
		OperatingMargin: floatPtr(-0.50),
		OccupancyRate:   floatPtr(0.10),
	}

	r := b.Build(profile, m)
	if r.ReadinessScore < 0 || r.ReadinessScore > 1 {
		t.Errorf("readiness out of [0,1]: %f", r.ReadinessScore)
	}
	if r.ProgressionProbability < 0.2 || r.ProgressionProbability > 0.95 {
		t.Errorf("probability out of [0.2, 0.95]: %f", r.ProgressionProbability)
	}
	if r.TimelineMonths < 18 {
		t.Errorf("timeline below the stage base: %d", r.TimelineMonths)
	}
}

func TestBuildTerminalStage(t *testing.T) {
	b := NewRoadmapBuilder()

	profile := lifecycle.HospitalLifecycleProfile{
		AgeYears: 40, Stage: lifecycle.StageEstablished,
	}
	r := b.Build(profile, &models.HospitalMetrics{})

	if r.NextStage != lifecycle.StageEstablished {
		t.Errorf("terminal next stage should be itself, got %s", r.NextStage)
	}
	if r.TimelineMonths != 0 {
		t.Errorf("terminal timeline should be 0, got %d", r.TimelineMonths)
	}
	if r.ReadinessScore != 1.0 || r.ProgressionProbability != 1.0 {
		t.Errorf("terminal readiness/probability should be 1.0, got %f/%f",
			r.ReadinessScore, r.ProgressionProbability)
	}
	if len(r.FinancialMilestones) == 0 || len(r.OperationalMilestones) == 0 {
		t.Error("terminal roadmap still carries maintenance milestones")
	}
}

func TestBuildMissingFrameworkEntry(t *testing.T) {
	// An empty override table: every transition is unknown, so readiness
	// resolves to neutral 0.5 against a 24-month default base.
	b := NewRoadmapBuilderWithTable(map[string]lifecycle.ProgressionRequirements{})

	profile := lifecycle.HospitalLifecycleProfile{
		AgeYears: 7, Stage: lifecycle.StageGrowth,
	}
	r := b.Build(profile, &models.HospitalMetrics{})

	if math.Abs(r.ReadinessScore-0.5) > 1e-9 {
		t.Errorf("expected neutral readiness 0.5, got %f", r.ReadinessScore)
	}
	// 24 * 1.5 = 36
	if r.TimelineMonths != 36 {
		t.Errorf("expected 36-month fallback timeline, got %d", r.TimelineMonths)
	}
}

func TestRisksAndEnablersCapped(t *testing.T) {
	b := NewRoadmapBuilder()

	// All four risk checks fire; the list keeps the first three.
	profile := lifecycle.HospitalLifecycleProfile{
		AgeYears:           1,
		Stage:              lifecycle.StageStartup,
		RevenueGrowthRate:  0.30,
		CompetitionDensity: "high",
		CityTier:           "tier_1",
	}
	m := &models.HospitalMetrics{
		OperatingMargin:          floatPtr(0.02),
		StaffTurnoverRate:        floatPtr(0.30),
		PatientSatisfactionScore: floatPtr(88),
		OccupancyRate:            floatPtr(0.85),
	}

	r := b.Build(profile, m)
	if len(r.Risks) != maxListEntries {
		t.Errorf("expected %d risks, got %d: %v", maxListEntries, len(r.Risks), r.Risks)
	}
	if len(r.Enablers) != maxListEntries {
		t.Errorf("expected %d enablers, got %d: %v", maxListEntries, len(r.Enablers), r.Enablers)
	}
	// Fixed check order: the margin risk fires first.
	if r.Risks[0] != "Thin operating margin limits reinvestment capacity" {
		t.Errorf("unexpected first risk: %q", r.Risks[0])
	}
}

func TestNoRisksForHealthyMatureHospital(t *testing.T) {
	b := NewRoadmapBuilder()

	profile := lifecycle.HospitalLifecycleProfile{
		AgeYears: 20, Stage: lifecycle.StageMaturity,
		RevenueGrowthRate:  0.08,
		CompetitionDensity: "low",
	}
	m := &models.HospitalMetrics{
		OperatingMargin:   floatPtr(0.15),
		StaffTurnoverRate: floatPtr(0.10),
	}

	r := b.Build(profile, m)
	if len(r.Risks) != 0 {
		t.Errorf("expected no risks, got %v", r.Risks)
	}
}
