package models

import "encoding/json"

// HospitalMetrics is the raw input record for one analysis run. Name and
// EstablishedYear are required; every other field is optional and, when nil,
// is replaced by a deterministic fallback during profile construction.
// Rates are decimals (0.72 = 72%); satisfaction is on a 0-100 scale.
type HospitalMetrics struct {
	Name            string `json:"name"`
	EstablishedYear int    `json:"established_year"`

	Tier          string   `json:"tier,omitempty"` // "tier_1", "tier_2", "tier_3"
	BedCount      *int     `json:"bed_count,omitempty"`
	AnnualRevenue *float64 `json:"annual_revenue,omitempty"`

	// Growth metrics
	RevenueGrowthRate    *float64 `json:"revenue_growth_rate,omitempty"`
	BedGrowthRate        *float64 `json:"bed_growth_rate,omitempty"`
	PatientGrowthRate    *float64 `json:"patient_growth_rate,omitempty"`
	ServiceExpansionRate *float64 `json:"service_expansion_rate,omitempty"`

	// Operational metrics
	OccupancyRate            *float64 `json:"occupancy_rate,omitempty"`
	OperatingMargin          *float64 `json:"operating_margin,omitempty"`
	DaysInAR                 *float64 `json:"days_in_ar,omitempty"`
	CollectionRate           *float64 `json:"collection_rate,omitempty"`
	PatientSatisfactionScore *float64 `json:"patient_satisfaction_score,omitempty"`
	StaffTurnoverRate        *float64 `json:"staff_turnover_rate,omitempty"`

	// Market context
	City               string `json:"city,omitempty"`
	CompetitionDensity string `json:"competition_density,omitempty"` // "low", "medium", "high"
	MarketMaturity     string `json:"market_maturity,omitempty"`     // "emerging", "developing", "mature"
}

// UnmarshalJSON accepts the alternate field names some upstream exporters use
// for the growth metrics. The canonical name wins when both are present.
func (m *HospitalMetrics) UnmarshalJSON(data []byte) error {
	type plain HospitalMetrics
	aux := struct {
		*plain
		BedExpansionRate        *float64 `json:"bed_expansion_rate,omitempty"`
		PatientVolumeGrowthRate *float64 `json:"patient_volume_growth_rate,omitempty"`
	}{plain: (*plain)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if m.BedGrowthRate == nil {
		m.BedGrowthRate = aux.BedExpansionRate
	}
	if m.PatientGrowthRate == nil {
		m.PatientGrowthRate = aux.PatientVolumeGrowthRate
	}
	return nil
}

// Occupancy returns the occupancy rate or the given default when absent.
func (m *HospitalMetrics) Occupancy(def float64) float64 {
	if m.OccupancyRate != nil {
		return *m.OccupancyRate
	}
	return def
}

// Satisfaction returns the satisfaction score or the given default when absent.
func (m *HospitalMetrics) Satisfaction(def float64) float64 {
	if m.PatientSatisfactionScore != nil {
		return *m.PatientSatisfactionScore
	}
	return def
}

// ARDays returns days in accounts receivable or the given default when absent.
func (m *HospitalMetrics) ARDays(def float64) float64 {
	if m.DaysInAR != nil {
		return *m.DaysInAR
	}
	return def
}

// Margin returns the operating margin or the given default when absent.
func (m *HospitalMetrics) Margin(def float64) float64 {
	if m.OperatingMargin != nil {
		return *m.OperatingMargin
	}
	return def
}

// Turnover returns the staff turnover rate or the given default when absent.
func (m *HospitalMetrics) Turnover(def float64) float64 {
	if m.StaffTurnoverRate != nil {
		return *m.StaffTurnoverRate
	}
	return def
}
