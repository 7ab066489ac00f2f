package lifecycle

import (
	"testing"
	"time"

	"hospital_intelligence/pkg/models"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, 6, 15, 0, 0, 0, 0, time.UTC)
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestBuildProfileBasics(t *testing.T) {
	b := &ProfileBuilder{Now: fixedClock(2026)}

	m := &models.HospitalMetrics{
		Name:              "City Care",
		EstablishedYear:   2019, // age 7 -> growth
		RevenueGrowthRate: floatPtr(0.28),
		BedGrowthRate:     floatPtr(0.10),
		PatientGrowthRate: floatPtr(0.20),
		Tier:              "tier_2",
	}

	p := b.Build(m)
	if p.AgeYears != 7 {
		t.Errorf("expected age 7, got %d", p.AgeYears)
	}
	if p.Stage != StageGrowth {
		t.Errorf("expected growth stage, got %s", p.Stage)
	}
	if p.RevenueGrowthRate != 0.28 {
		t.Errorf("expected revenue growth passed through, got %f", p.RevenueGrowthRate)
	}
	if len(p.EstimatedFields) != 0 {
		t.Errorf("no fields should be estimated, got %v", p.EstimatedFields)
	}
}

func TestRevenueGrowthEstimation(t *testing.T) {
	b := &ProfileBuilder{Now: fixedClock(2026)}

	// High occupancy: 0.08 base + 0.05 bonus = 0.13
	high := b.Build(&models.HospitalMetrics{
		Name: "A", EstablishedYear: 2020,
		OccupancyRate: floatPtr(0.90),
	})
	if abs(high.RevenueGrowthRate-0.13) > 1e-9 {
		t.Errorf("expected estimate 0.13 for 90%% occupancy, got %f", high.RevenueGrowthRate)
	}

	// Low occupancy: 0.08 - 0.03 = 0.05
	low := b.Build(&models.HospitalMetrics{
		Name: "B", EstablishedYear: 2020,
		OccupancyRate: floatPtr(0.50),
	})
	if abs(low.RevenueGrowthRate-0.05) > 1e-9 {
		t.Errorf("expected estimate 0.05 for 50%% occupancy, got %f", low.RevenueGrowthRate)
	}

	// Mid occupancy keeps the market baseline.
	mid := b.Build(&models.HospitalMetrics{
		Name: "C", EstablishedYear: 2020,
		OccupancyRate: floatPtr(0.70),
	})
	if abs(mid.RevenueGrowthRate-0.08) > 1e-9 {
		t.Errorf("expected estimate 0.08 for 70%% occupancy, got %f", mid.RevenueGrowthRate)
	}

	if len(high.EstimatedFields) == 0 {
		t.Error("estimated revenue growth should be recorded")
	}
}

func TestGrowthRateDefaults(t *testing.T) {
	b := &ProfileBuilder{Now: fixedClock(2026)}

	p := b.Build(&models.HospitalMetrics{
		Name: "D", EstablishedYear: 2015,
		RevenueGrowthRate: floatPtr(0.20),
	})

	// patient growth defaults to 80% of revenue growth
	if abs(p.PatientGrowthRate-0.16) > 1e-9 {
		t.Errorf("expected patient growth 0.16, got %f", p.PatientGrowthRate)
	}
	if p.BedGrowthRate != 0.05 {
		t.Errorf("expected bed growth default 0.05, got %f", p.BedGrowthRate)
	}
	if p.ServiceExpansionRate != 1.0 {
		t.Errorf("expected service expansion default 1.0, got %f", p.ServiceExpansionRate)
	}
}

func TestFutureEstablishedYearClampsToStartup(t *testing.T) {
	b := &ProfileBuilder{Now: fixedClock(2026)}

	p := b.Build(&models.HospitalMetrics{Name: "E", EstablishedYear: 2027})
	if p.AgeYears != 0 {
		t.Errorf("expected age clamped to 0, got %d", p.AgeYears)
	}
	if p.Stage != StageStartup {
		t.Errorf("expected startup stage for zero age, got %s", p.Stage)
	}
	if len(p.EstimatedFields) == 0 {
		t.Error("age clamp should be recorded for validation notes")
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
