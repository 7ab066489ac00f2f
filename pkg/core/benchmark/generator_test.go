package benchmark

import (
	"math"
	"testing"

	"hospital_intelligence/pkg/core/lifecycle"
)

func TestGenerateGrowthSteady(t *testing.T) {
	g := NewGenerator()
	b := g.Generate(growthProfile(0.28), lifecycle.TierSteady)

	// Growth range [15, 45] -> midpoint 30, steady multiplier 1.0.
	if math.Abs(b.RevenueGrowthTarget-30) > 1e-9 {
		t.Errorf("revenue target: expected 30, got %f", b.RevenueGrowthTarget)
	}
	// 30 * 0.10 = 3.0, exactly at the margin cap.
	if math.Abs(b.MarginImprovementTarget-3.0) > 1e-9 {
		t.Errorf("margin target: expected 3.0, got %f", b.MarginImprovementTarget)
	}
	// 30 * 0.25 = 7.5, under the 10-day cap.
	if math.Abs(b.ARDaysReductionTarget-7.5) > 1e-9 {
		t.Errorf("AR target: expected 7.5, got %f", b.ARDaysReductionTarget)
	}
	// 30 * 0.08 = 2.4
	if math.Abs(b.CollectionImprovementTarget-2.4) > 1e-9 {
		t.Errorf("collection target: expected 2.4, got %f", b.CollectionImprovementTarget)
	}
	// 30 * 0.15 * 1.0 = 4.5
	if math.Abs(b.OccupancyGrowthTarget-4.5) > 1e-9 {
		t.Errorf("occupancy target: expected 4.5, got %f", b.OccupancyGrowthTarget)
	}
	// 30 * 0.10 * 1.0 = 3.0
	if math.Abs(b.SatisfactionImprovementTarget-3.0) > 1e-9 {
		t.Errorf("satisfaction target: expected 3.0, got %f", b.SatisfactionImprovementTarget)
	}

	// Steady acceleration 1.0: 6 / 18 / 30 month milestones.
	if b.ShortTermMilestoneMonths != 6 || b.MediumTermMilestoneMonths != 18 || b.LongTermMilestoneMonths != 30 {
		t.Errorf("milestones: expected 6/18/30, got %d/%d/%d",
			b.ShortTermMilestoneMonths, b.MediumTermMilestoneMonths, b.LongTermMilestoneMonths)
	}
}

func TestGenerateBreakthroughHitsCaps(t *testing.T) {
	g := NewGenerator()
	startup := lifecycle.HospitalLifecycleProfile{
		AgeYears: 1, Stage: lifecycle.StageStartup, RevenueGrowthRate: 0.50,
	}
	b := g.Generate(startup, lifecycle.TierBreakthrough)

	// Startup midpoint 40 x breakthrough 2.0 = 80pp revenue target.
	if math.Abs(b.RevenueGrowthTarget-80) > 1e-9 {
		t.Errorf("revenue target: expected 80, got %f", b.RevenueGrowthTarget)
	}
	// Derived targets saturate at their policy caps: 80*0.10=8 -> 3,
	// 80*0.25=20 -> 10.
	if b.MarginImprovementTarget != marginImprovementCap {
		t.Errorf("margin should be capped at %f, got %f", marginImprovementCap, b.MarginImprovementTarget)
	}
	if b.ARDaysReductionTarget != arDaysReductionCap {
		t.Errorf("AR reduction should be capped at %f, got %f", arDaysReductionCap, b.ARDaysReductionTarget)
	}

	// Breakthrough acceleration 0.7 compresses milestones:
	// floor(6*0.7)=4, floor(18*0.7)=12, floor(30*0.7)=21.
	if b.ShortTermMilestoneMonths != 4 || b.MediumTermMilestoneMonths != 12 || b.LongTermMilestoneMonths != 21 {
		t.Errorf("milestones: expected 4/12/21, got %d/%d/%d",
			b.ShortTermMilestoneMonths, b.MediumTermMilestoneMonths, b.LongTermMilestoneMonths)
	}
}

func TestGenerateAllCombinationsWellFormed(t *testing.T) {
	g := NewGenerator()
	tiers := []lifecycle.VelocityTier{
		lifecycle.TierBreakthrough, lifecycle.TierAccelerating,
		lifecycle.TierSteady, lifecycle.TierSlow, lifecycle.TierDeclining,
	}

	for _, stage := range lifecycle.StageOrder {
		for _, tier := range tiers {
			p := lifecycle.HospitalLifecycleProfile{Stage: stage, AgeYears: 10}
			b := g.Generate(p, tier)

			for name, v := range map[string]float64{
				"revenue":      b.RevenueGrowthTarget,
				"margin":       b.MarginImprovementTarget,
				"ar":           b.ARDaysReductionTarget,
				"collection":   b.CollectionImprovementTarget,
				"occupancy":    b.OccupancyGrowthTarget,
				"efficiency":   b.EfficiencyGainTarget,
				"satisfaction": b.SatisfactionImprovementTarget,
				"quality":      b.QualityImprovementTarget,
			} {
				if v < 0 {
					t.Errorf("%s/%s: %s target negative: %f", stage, tier, name, v)
				}
			}

			if !(b.ShortTermMilestoneMonths <= b.MediumTermMilestoneMonths &&
				b.MediumTermMilestoneMonths <= b.LongTermMilestoneMonths) {
				t.Errorf("%s/%s: milestones not ordered: %d/%d/%d", stage, tier,
					b.ShortTermMilestoneMonths, b.MediumTermMilestoneMonths, b.LongTermMilestoneMonths)
			}
			if b.ShortTermMilestoneMonths < 1 {
				t.Errorf("%s/%s: short milestone below one month: %d", stage, tier, b.ShortTermMilestoneMonths)
			}
		}
	}
}

func TestGenerateUnknownTierFallsBackToSteady(t *testing.T) {
	g := NewGenerator()
	p := growthProfile(0.28)
	got := g.Generate(p, lifecycle.VelocityTier("bogus"))
	want := g.Generate(p, lifecycle.TierSteady)
	if got.RevenueGrowthTarget != want.RevenueGrowthTarget {
		t.Errorf("unknown tier should fall back to steady: %f vs %f",
			got.RevenueGrowthTarget, want.RevenueGrowthTarget)
	}
}
