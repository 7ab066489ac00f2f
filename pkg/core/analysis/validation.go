package analysis

import (
	"fmt"
	"time"

	"hospital_intelligence/pkg/models"
)

// ValidationError reports a raw input field outside its declared range.
// It is raised synchronously during request construction, before any scoring,
// and is surfaced directly to the caller with no retry.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NewRequest validates raw metrics and wraps them in a request.
// Optional fields that are absent are NOT errors (they get fallbacks later);
// present fields must be inside their declared ranges.
func NewRequest(m *models.HospitalMetrics) (*HospitalAnalysisRequest, error) {
	if m == nil {
		return nil, &ValidationError{Field: "metrics", Message: "metrics record is required"}
	}
	if m.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "hospital name is required"}
	}

	currentYear := time.Now().Year()
	if m.EstablishedYear < 1900 || m.EstablishedYear > currentYear+1 {
		return nil, &ValidationError{
			Field:   "established_year",
			Message: fmt.Sprintf("must be between 1900 and %d, got %d", currentYear+1, m.EstablishedYear),
		}
	}

	if err := checkRange("occupancy_rate", m.OccupancyRate, 0, 1); err != nil {
		return nil, err
	}
	if err := checkRange("operating_margin", m.OperatingMargin, -1, 1); err != nil {
		return nil, err
	}
	if err := checkRange("collection_rate", m.CollectionRate, 0, 1); err != nil {
		return nil, err
	}
	if err := checkRange("staff_turnover_rate", m.StaffTurnoverRate, 0, 1); err != nil {
		return nil, err
	}
	if err := checkRange("patient_satisfaction_score", m.PatientSatisfactionScore, 0, 100); err != nil {
		return nil, err
	}
	if m.DaysInAR != nil && *m.DaysInAR < 0 {
		return nil, &ValidationError{Field: "days_in_ar", Message: "must be non-negative"}
	}
	if m.BedCount != nil && *m.BedCount < 0 {
		return nil, &ValidationError{Field: "bed_count", Message: "must be non-negative"}
	}

	return &HospitalAnalysisRequest{Metrics: m}, nil
}

func checkRange(field string, value *float64, min, max float64) error {
	if value == nil {
		return nil
	}
	if *value < min || *value > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %g and %g, got %g", min, max, *value),
		}
	}
	return nil
}
