// Package progression builds stage-progression roadmaps: how ready a hospital
// is to advance to its next lifecycle stage, how long the transition should
// take, and what stands in the way.
package progression

import "hospital_intelligence/pkg/core/lifecycle"

// StageProgressionRoadmap describes the path from the current stage to the
// next one. For the terminal stage NextStage == CurrentStage and
// TimelineMonths == 0. Built once per analysis; never mutated.
type StageProgressionRoadmap struct {
	CurrentStage lifecycle.Stage `json:"current_stage"`
	NextStage    lifecycle.Stage `json:"next_stage"`

	ReadinessScore         float64 `json:"readiness_score"`          // [0,1] after clamping
	TimelineMonths         int     `json:"progression_timeline_months"`
	ProgressionProbability float64 `json:"progression_probability"` // [0.2, 0.95]; 1.0 at terminal

	FinancialMilestones      []string `json:"financial_milestones"`
	OperationalMilestones    []string `json:"operational_milestones"`
	InfrastructureMilestones []string `json:"infrastructure_milestones"`
	CapabilityMilestones     []string `json:"capability_milestones"`

	// Risks and enablers are each capped at 3 entries, in fixed check order.
	Risks    []string `json:"risks"`
	Enablers []string `json:"enablers"`
}
