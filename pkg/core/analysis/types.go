// Package analysis orchestrates the lifecycle benchmarking pipeline:
// profile derivation, velocity classification, benchmark generation,
// progression roadmapping, and score aggregation.
package analysis

import (
	"time"

	"hospital_intelligence/pkg/core/benchmark"
	"hospital_intelligence/pkg/core/lifecycle"
	"hospital_intelligence/pkg/core/progression"
	"hospital_intelligence/pkg/models"
)

// maxRecommendations caps each recommendation list on the result.
const maxRecommendations = 4

// HospitalAnalysisRequest carries validated raw hospital metrics for one run.
// Construct via NewRequest, which enforces the field-level range invariants.
type HospitalAnalysisRequest struct {
	Metrics *models.HospitalMetrics `json:"metrics"`
}

// LifecycleBenchmarkResult is the aggregate root returned to callers.
// It owns one profile, one benchmarks record, and one roadmap; no mutation
// after construction, and no cross-request caching of this object.
type LifecycleBenchmarkResult struct {
	ID           string    `json:"id"`
	HospitalName string    `json:"hospital_name"`
	AnalyzedAt   time.Time `json:"analyzed_at"`

	Profile    lifecycle.HospitalLifecycleProfile  `json:"profile"`
	Benchmarks benchmark.VelocityBenchmarks        `json:"benchmarks"`
	Roadmap    progression.StageProgressionRoadmap `json:"roadmap"`

	// VelocityScore is in [0,100]; StageReadinessScore in [0,1].
	VelocityScore       float64 `json:"velocity_score"`
	StageReadinessScore float64 `json:"stage_readiness_score"`

	StrategicRecommendations   []string `json:"strategic_recommendations"`
	OperationalRecommendations []string `json:"operational_recommendations"`
}

// AnalysisStatus marks whether the outer pipeline completed.
type AnalysisStatus string

const (
	StatusCompleted AnalysisStatus = "COMPLETED"
	StatusFailed    AnalysisStatus = "FAILED"
)

// HospitalAnalysisResult is the flat outer record assembled for API callers
// and persistence. On pipeline failure it carries StatusFailed with zeroed
// numeric fields and the error message in the summary, never a raw exception.
type HospitalAnalysisResult struct {
	AnalysisID   string         `json:"analysis_id"`
	HospitalName string         `json:"hospital_name"`
	Status       AnalysisStatus `json:"status"`
	AnalyzedAt   time.Time      `json:"analyzed_at"`

	LifecycleStage string  `json:"lifecycle_stage"`
	VelocityTier   string  `json:"velocity_tier"`
	NextStage      string  `json:"next_stage"`
	VelocityScore  float64 `json:"velocity_score"`
	ReadinessScore float64 `json:"readiness_score"`

	Result *LifecycleBenchmarkResult `json:"result,omitempty"`

	ExecutiveSummary string   `json:"executive_summary"`
	ReportText       string   `json:"report_text,omitempty"`
	ValidationNotes  []string `json:"validation_notes,omitempty"`
}
