package analysis

import (
	"fmt"
	"time"

	"hospital_intelligence/pkg/core/benchmark"
	"hospital_intelligence/pkg/core/calc"
	"hospital_intelligence/pkg/core/lifecycle"
	"hospital_intelligence/pkg/core/progression"
	"hospital_intelligence/pkg/models"

	"github.com/google/uuid"
)

// Neutral defaults for score aggregation when operational metrics are absent.
// Kept in sync with the classifier's defaults so the two components grade the
// same hospital consistently.
const (
	defaultOccupancy    = 0.70
	defaultSatisfaction = 75.0
)

// BenchmarkingEngine runs the full lifecycle benchmarking pipeline for one
// hospital: profile -> velocity tier -> benchmarks + roadmap -> scores.
// The pipeline is a single directed chain; no component calls back into an
// earlier one and no state is shared between runs, so engines are safe for
// concurrent use.
type BenchmarkingEngine struct {
	profiles   *lifecycle.ProfileBuilder
	classifier *benchmark.Classifier
	generator  *benchmark.Generator
	roadmaps   *progression.RoadmapBuilder
}

// NewBenchmarkingEngine creates an engine backed by the static tables.
func NewBenchmarkingEngine() *BenchmarkingEngine {
	return &BenchmarkingEngine{
		profiles:   lifecycle.NewProfileBuilder(),
		classifier: benchmark.NewClassifier(),
		generator:  benchmark.NewGenerator(),
		roadmaps:   progression.NewRoadmapBuilder(),
	}
}

// SetProfileBuilder injects a custom profile builder (e.g. a fixed clock for
// tests).
func (e *BenchmarkingEngine) SetProfileBuilder(b *lifecycle.ProfileBuilder) {
	e.profiles = b
}

// SetClassifier injects a classifier backed by override tables.
func (e *BenchmarkingEngine) SetClassifier(c *benchmark.Classifier) {
	e.classifier = c
}

// SetRoadmapBuilder injects a roadmap builder backed by override tables.
func (e *BenchmarkingEngine) SetRoadmapBuilder(b *progression.RoadmapBuilder) {
	e.roadmaps = b
}

// Analyze executes the scoring pipeline for a validated request.
// Deterministic for identical input except for the generated id and
// timestamp.
func (e *BenchmarkingEngine) Analyze(req *HospitalAnalysisRequest) (*LifecycleBenchmarkResult, error) {
	if req == nil || req.Metrics == nil {
		return nil, fmt.Errorf("analysis request is nil")
	}
	m := req.Metrics

	// 1. Profile derivation (never fails; missing fields get fallbacks).
	profile := e.profiles.Build(m)

	// 2. Velocity classification.
	tier := e.classifier.Classify(profile, m)

	// 3. Benchmarks and roadmap both consume the profile.
	benchmarks := e.generator.Generate(profile, tier)
	roadmap := e.roadmaps.Build(profile, m)

	// 4. Score aggregation.
	velocityScore := e.aggregateVelocityScore(profile, m, benchmarks)

	result := &LifecycleBenchmarkResult{
		ID:           uuid.NewString(),
		HospitalName: m.Name,
		AnalyzedAt:   time.Now(),

		Profile:    profile,
		Benchmarks: benchmarks,
		Roadmap:    roadmap,

		VelocityScore:       velocityScore,
		StageReadinessScore: roadmap.ReadinessScore,

		StrategicRecommendations:   strategicRecommendations(profile, tier, roadmap),
		OperationalRecommendations: operationalRecommendations(m, benchmarks),
	}
	return result, nil
}

// AnalyzeHospital is the outer entry point: it validates, runs the pipeline,
// and converts any failure into a FAILED result record with zeroed numeric
// fields instead of propagating the error. Validation errors are the one
// exception: they are returned to the caller directly.
func (e *BenchmarkingEngine) AnalyzeHospital(req *HospitalAnalysisRequest) (result *HospitalAnalysisResult) {
	name := ""
	if req != nil && req.Metrics != nil {
		name = req.Metrics.Name
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[Engine] PANIC during analysis of %s: %v\n", name, r)
			result = failedResult(name, fmt.Sprintf("%v", r))
		}
	}()

	core, err := e.Analyze(req)
	if err != nil {
		fmt.Printf("[Engine] Analysis failed for %s: %v\n", name, err)
		return failedResult(name, err.Error())
	}

	return &HospitalAnalysisResult{
		AnalysisID:   core.ID,
		HospitalName: core.HospitalName,
		Status:       StatusCompleted,
		AnalyzedAt:   core.AnalyzedAt,

		LifecycleStage: string(core.Profile.Stage),
		VelocityTier:   string(core.Benchmarks.VelocityTier),
		NextStage:      string(core.Roadmap.NextStage),
		VelocityScore:  core.VelocityScore,
		ReadinessScore: core.StageReadinessScore,

		Result:           core,
		ExecutiveSummary: executiveSummary(core),
		ValidationNotes:  core.Profile.EstimatedFields,
	}
}

// aggregateVelocityScore blends the revenue, efficiency, and quality
// component scores into the overall [0,100] velocity score.
func (e *BenchmarkingEngine) aggregateVelocityScore(profile lifecycle.HospitalLifecycleProfile, m *models.HospitalMetrics, b benchmark.VelocityBenchmarks) float64 {
	revenue := calc.RevenueScore(profile.RevenueGrowthRate*100, b.RevenueGrowthTarget)
	efficiency := calc.EfficiencyScore(m.Occupancy(defaultOccupancy)*100, b.OccupancyGrowthTarget)
	quality := calc.QualityScore(m.Satisfaction(defaultSatisfaction), b.SatisfactionImprovementTarget)
	return calc.OverallVelocityScore(revenue, efficiency, quality)
}

// failedResult builds the FAILED record: zero numerics, message embedded in
// the summary, never a raw exception to the caller.
func failedResult(name, message string) *HospitalAnalysisResult {
	return &HospitalAnalysisResult{
		AnalysisID:       uuid.NewString(),
		HospitalName:     name,
		Status:           StatusFailed,
		AnalyzedAt:       time.Now(),
		ExecutiveSummary: fmt.Sprintf("Analysis could not be completed: %s", message),
		ValidationNotes:  []string{message},
	}
}

func executiveSummary(r *LifecycleBenchmarkResult) string {
	return fmt.Sprintf(
		"%s is a %s-stage hospital (%d years) on a %s growth trajectory. "+
			"Overall velocity score %.1f/100; readiness for the %s stage %.0f%% "+
			"with an estimated %d-month transition window.",
		r.HospitalName, r.Profile.Stage, r.Profile.AgeYears, r.Benchmarks.VelocityTier,
		r.VelocityScore, r.Roadmap.NextStage, r.StageReadinessScore*100,
		r.Roadmap.TimelineMonths,
	)
}

// strategicRecommendations derives stage/tier-level guidance, capped at
// maxRecommendations in fixed order.
func strategicRecommendations(profile lifecycle.HospitalLifecycleProfile, tier lifecycle.VelocityTier, roadmap progression.StageProgressionRoadmap) []string {
	var recs []string
	add := func(condition bool, text string) {
		if condition && len(recs) < maxRecommendations {
			recs = append(recs, text)
		}
	}

	add(tier == lifecycle.TierBreakthrough || tier == lifecycle.TierAccelerating,
		"Reinvest outperformance into the next stage's infrastructure ahead of plan")
	add(tier == lifecycle.TierSlow || tier == lifecycle.TierDeclining,
		"Prioritize stabilizing core volumes before committing expansion capital")
	add(!profile.Stage.IsTerminal() && roadmap.ProgressionProbability >= 0.7,
		fmt.Sprintf("Begin formal preparation for the %s stage transition", roadmap.NextStage))
	add(!profile.Stage.IsTerminal() && roadmap.ProgressionProbability < 0.5,
		"Close the largest readiness gaps before targeting stage progression")
	add(profile.CompetitionDensity == "high",
		"Differentiate on service lines where competitive density is lowest")
	add(profile.Stage.IsTerminal(),
		"Defend institutional position through clinical excellence and reputation programs")

	if len(recs) == 0 {
		recs = append(recs, "Maintain the current operating trajectory and monitor stage benchmarks")
	}
	return recs
}

// operationalRecommendations derives metric-level guidance against the
// generated benchmarks, capped at maxRecommendations in fixed order.
func operationalRecommendations(m *models.HospitalMetrics, b benchmark.VelocityBenchmarks) []string {
	var recs []string
	add := func(condition bool, text string) {
		if condition && len(recs) < maxRecommendations {
			recs = append(recs, text)
		}
	}

	add(m.Occupancy(defaultOccupancy) < 0.70,
		fmt.Sprintf("Lift occupancy toward the %.1fpp growth target through referral development", b.OccupancyGrowthTarget))
	add(m.ARDays(35) > 40,
		fmt.Sprintf("Reduce days in AR by %.0f days via billing cycle automation", b.ARDaysReductionTarget))
	add(m.Satisfaction(defaultSatisfaction) < 80,
		fmt.Sprintf("Target a %.1f-point satisfaction improvement with discharge follow-up", b.SatisfactionImprovementTarget))
	add(m.Margin(0.10) < 0.10,
		fmt.Sprintf("Pursue the %.1fpp margin improvement target through payer mix and cost control", b.MarginImprovementTarget))

	if len(recs) == 0 {
		recs = append(recs, "Sustain operational metrics at current levels; targets are being met")
	}
	return recs
}
