package store

import (
	"context"
	"fmt"

	"hospital_intelligence/pkg/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HospitalRepo reads raw hospital metric rows that feed analysis requests.
type HospitalRepo struct {
	pool *pgxpool.Pool
}

// NewHospitalRepo creates a new hospital repository.
func NewHospitalRepo(pool *pgxpool.Pool) *HospitalRepo {
	return &HospitalRepo{pool: pool}
}

// GetHospital loads one hospital's latest metrics by name. Nullable columns
// map onto the optional pointer fields of HospitalMetrics.
func (r *HospitalRepo) GetHospital(ctx context.Context, name string) (*models.HospitalMetrics, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT
			h.name, h.established_year, h.tier, h.bed_count, h.city, h.competition_density, h.market_maturity,
			f.annual_revenue, f.revenue_growth_rate, f.operating_margin, f.days_in_ar, f.collection_rate,
			o.occupancy_rate, o.bed_growth_rate, o.patient_growth_rate, o.service_expansion_rate, o.staff_turnover_rate,
			q.patient_satisfaction_score
		FROM hospitals h
		LEFT JOIN financial_metrics f ON f.hospital_id = h.id
		LEFT JOIN operational_metrics o ON o.hospital_id = h.id
		LEFT JOIN quality_metrics q ON q.hospital_id = h.id
		WHERE h.name = $1
		ORDER BY f.period_end DESC NULLS LAST
		LIMIT 1
	`

	var m models.HospitalMetrics
	var tier, city, competition, maturity *string

	err := r.pool.QueryRow(ctx, query, name).Scan(
		&m.Name, &m.EstablishedYear, &tier, &m.BedCount, &city, &competition, &maturity,
		&m.AnnualRevenue, &m.RevenueGrowthRate, &m.OperatingMargin, &m.DaysInAR, &m.CollectionRate,
		&m.OccupancyRate, &m.BedGrowthRate, &m.PatientGrowthRate, &m.ServiceExpansionRate, &m.StaffTurnoverRate,
		&m.PatientSatisfactionScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load hospital %s: %w", name, err)
	}

	if tier != nil {
		m.Tier = *tier
	}
	if city != nil {
		m.City = *city
	}
	if competition != nil {
		m.CompetitionDensity = *competition
	}
	if maturity != nil {
		m.MarketMaturity = *maturity
	}

	return &m, nil
}

// ListHospitals returns the names of all hospitals with metric rows, for
// batch pipeline runs.
func (r *HospitalRepo) ListHospitals(ctx context.Context) ([]string, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	rows, err := r.pool.Query(ctx, `SELECT name FROM hospitals ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
