package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hospital_intelligence/pkg/core/analysis"

	"github.com/jackc/pgx/v5"
)

// AnalysisRepository abstracts result persistence so the pipeline runner can
// be tested with an in-memory implementation.
type AnalysisRepository interface {
	Save(ctx context.Context, result *analysis.HospitalAnalysisResult) error
	Load(ctx context.Context, hospitalName string) (*analysis.HospitalAnalysisResult, error)
}

// AnalysisRepo stores full analysis results as JSONB, keyed by hospital name.
type AnalysisRepo struct{}

// NewAnalysisRepo creates a new repository instance.
func NewAnalysisRepo() *AnalysisRepo {
	return &AnalysisRepo{}
}

// Schema assumption (managed by migrations elsewhere):
//
// CREATE TABLE IF NOT EXISTS hospital_analyses (
//   hospital_name TEXT PRIMARY KEY,
//   analysis_id   UUID,
//   status        TEXT,
//   result_json   JSONB,
//   updated_at    TIMESTAMPTZ
// );

// Save persists the result using an upsert keyed by hospital name. A single
// JSONB blob keeps the schema stable while the result shape evolves.
func (r *AnalysisRepo) Save(ctx context.Context, result *analysis.HospitalAnalysisResult) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	query := `
		INSERT INTO hospital_analyses (hospital_name, analysis_id, status, result_json, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (hospital_name)
		DO UPDATE SET
			analysis_id = EXCLUDED.analysis_id,
			status = EXCLUDED.status,
			result_json = EXCLUDED.result_json,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = pool.Exec(ctx, query, result.HospitalName, result.AnalysisID, string(result.Status), jsonData, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	return nil
}

// Load retrieves the most recent analysis result for a hospital.
func (r *AnalysisRepo) Load(ctx context.Context, hospitalName string) (*analysis.HospitalAnalysisResult, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT result_json FROM hospital_analyses WHERE hospital_name = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, hospitalName).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no analysis found for hospital %s", hospitalName)
		}
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}

	var result analysis.HospitalAnalysisResult
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}

	return &result, nil
}
