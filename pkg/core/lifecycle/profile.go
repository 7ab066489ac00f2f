package lifecycle

import (
	"time"

	"hospital_intelligence/pkg/models"
)

// Baseline assumptions used when growth metrics are absent from the input.
const (
	// baseMarketGrowth is the assumed healthcare market revenue growth.
	baseMarketGrowth = 0.08
	// highOccupancyBonus is added when occupancy suggests demand outstrips supply.
	highOccupancyBonus = 0.05
	// lowOccupancyPenalty is subtracted when occupancy signals weak demand.
	lowOccupancyPenalty = 0.03

	defaultBedGrowthRate        = 0.05
	defaultServiceExpansionRate = 1.0
)

// ProfileBuilder derives a HospitalLifecycleProfile from raw metrics.
// Every missing optional field has a deterministic fallback, so building a
// profile never fails.
type ProfileBuilder struct {
	// Now supplies the reference time for age calculation. Overridable in tests.
	Now func() time.Time
}

// NewProfileBuilder creates a builder using the wall clock.
func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{Now: time.Now}
}

// Build derives the lifecycle profile for a hospital.
// A future established year would produce a negative age; we clamp to zero
// (classifying as startup) and record the clamp as an estimated field so the
// caller can surface it in validation notes.
func (b *ProfileBuilder) Build(m *models.HospitalMetrics) HospitalLifecycleProfile {
	var estimated []string

	age := b.Now().Year() - m.EstablishedYear
	if age < 0 {
		age = 0
		estimated = append(estimated, "age_years clamped to 0 (established year in the future)")
	}

	revenueGrowth, wasEstimated := b.revenueGrowth(m)
	if wasEstimated {
		estimated = append(estimated, "revenue_growth_rate estimated from market baseline and occupancy")
	}

	patientGrowth := revenueGrowth * 0.8
	if m.PatientGrowthRate != nil {
		patientGrowth = *m.PatientGrowthRate
	} else {
		estimated = append(estimated, "patient_growth_rate defaulted to 80% of revenue growth")
	}

	bedGrowth := defaultBedGrowthRate
	if m.BedGrowthRate != nil {
		bedGrowth = *m.BedGrowthRate
	}

	serviceExpansion := defaultServiceExpansionRate
	if m.ServiceExpansionRate != nil {
		serviceExpansion = *m.ServiceExpansionRate
	}

	return HospitalLifecycleProfile{
		AgeYears:             age,
		Stage:                StageForAge(age),
		RevenueGrowthRate:    revenueGrowth,
		BedGrowthRate:        bedGrowth,
		PatientGrowthRate:    patientGrowth,
		ServiceExpansionRate: serviceExpansion,
		CityTier:             m.Tier,
		CompetitionDensity:   m.CompetitionDensity,
		MarketMaturity:       m.MarketMaturity,
		EstimatedFields:      estimated,
	}
}

// revenueGrowth returns the provided growth rate, or estimates one from the
// market baseline adjusted by occupancy. The bool reports whether the value
// was estimated.
func (b *ProfileBuilder) revenueGrowth(m *models.HospitalMetrics) (float64, bool) {
	if m.RevenueGrowthRate != nil {
		return *m.RevenueGrowthRate, false
	}

	estimate := baseMarketGrowth
	if m.OccupancyRate != nil {
		switch occ := *m.OccupancyRate; {
		case occ > 0.85:
			estimate += highOccupancyBonus
		case occ < 0.60:
			estimate -= lowOccupancyPenalty
		}
	}
	return estimate, true
}
