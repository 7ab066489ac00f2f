// Package report formats a LifecycleBenchmarkResult into a human-readable
// multi-section report. Presentation only: every numeric field is reproduced
// verbatim from the result, with no additional computation.
package report

import (
	"fmt"
	"strings"

	"hospital_intelligence/pkg/core/analysis"
)

// Generate renders the full Markdown report: executive summary, performance
// targets, progression roadmap, and risks & enablers.
func Generate(r *analysis.HospitalAnalysisResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Lifecycle Benchmarking Report: %s\n\n", r.HospitalName))
	sb.WriteString(fmt.Sprintf("Analysis ID: %s | Generated: %s | Status: %s\n\n",
		r.AnalysisID, r.AnalyzedAt.Format("2006-01-02 15:04"), r.Status))

	sb.WriteString("## Executive Summary\n\n")
	sb.WriteString(r.ExecutiveSummary)
	sb.WriteString("\n\n")

	if r.Status == analysis.StatusFailed || r.Result == nil {
		writeValidationNotes(&sb, r.ValidationNotes)
		return sb.String()
	}
	core := r.Result

	sb.WriteString("## Lifecycle Position\n\n")
	sb.WriteString(fmt.Sprintf("- Lifecycle stage: **%s** (age %d years)\n", core.Profile.Stage, core.Profile.AgeYears))
	sb.WriteString(fmt.Sprintf("- Growth velocity tier: **%s**\n", core.Benchmarks.VelocityTier))
	sb.WriteString(fmt.Sprintf("- Revenue growth rate: %.1f%%\n", core.Profile.RevenueGrowthRate*100))
	sb.WriteString(fmt.Sprintf("- Overall velocity score: %.1f / 100\n\n", core.VelocityScore))

	sb.WriteString("## Performance Targets\n\n")
	b := core.Benchmarks
	sb.WriteString(fmt.Sprintf("- Revenue growth target: %.1f%%\n", b.RevenueGrowthTarget))
	sb.WriteString(fmt.Sprintf("- Margin improvement target: %.1fpp\n", b.MarginImprovementTarget))
	sb.WriteString(fmt.Sprintf("- AR days reduction target: %.1f days\n", b.ARDaysReductionTarget))
	sb.WriteString(fmt.Sprintf("- Collection rate improvement target: %.1fpp\n", b.CollectionImprovementTarget))
	sb.WriteString(fmt.Sprintf("- Occupancy growth target: %.1fpp\n", b.OccupancyGrowthTarget))
	sb.WriteString(fmt.Sprintf("- Efficiency gain target: %.1fpp\n", b.EfficiencyGainTarget))
	sb.WriteString(fmt.Sprintf("- Satisfaction improvement target: %.1f points\n", b.SatisfactionImprovementTarget))
	sb.WriteString(fmt.Sprintf("- Quality improvement target: %.1fpp\n", b.QualityImprovementTarget))
	sb.WriteString(fmt.Sprintf("- Milestones: %d / %d / %d months (short / medium / long term)\n\n",
		b.ShortTermMilestoneMonths, b.MediumTermMilestoneMonths, b.LongTermMilestoneMonths))

	sb.WriteString("## Progression Roadmap\n\n")
	rm := core.Roadmap
	if rm.CurrentStage == rm.NextStage {
		sb.WriteString(fmt.Sprintf("%s is at the terminal **%s** stage; the roadmap focuses on sustaining position.\n\n",
			r.HospitalName, rm.CurrentStage))
	} else {
		sb.WriteString(fmt.Sprintf("- Next stage: **%s**\n", rm.NextStage))
		sb.WriteString(fmt.Sprintf("- Readiness score: %.2f\n", rm.ReadinessScore))
		sb.WriteString(fmt.Sprintf("- Progression probability: %.0f%%\n", rm.ProgressionProbability*100))
		sb.WriteString(fmt.Sprintf("- Estimated timeline: %d months\n\n", rm.TimelineMonths))
	}
	writeList(&sb, "Financial milestones", rm.FinancialMilestones)
	writeList(&sb, "Operational milestones", rm.OperationalMilestones)
	writeList(&sb, "Infrastructure milestones", rm.InfrastructureMilestones)
	writeList(&sb, "Capability milestones", rm.CapabilityMilestones)

	sb.WriteString("## Risks & Enablers\n\n")
	if len(rm.Risks) == 0 {
		sb.WriteString("No material progression risks identified.\n\n")
	} else {
		writeList(&sb, "Risks", rm.Risks)
	}
	if len(rm.Enablers) == 0 {
		sb.WriteString("No standout enablers identified.\n\n")
	} else {
		writeList(&sb, "Enablers", rm.Enablers)
	}

	sb.WriteString("## Recommendations\n\n")
	writeList(&sb, "Strategic", core.StrategicRecommendations)
	writeList(&sb, "Operational", core.OperationalRecommendations)

	writeValidationNotes(&sb, r.ValidationNotes)

	return sb.String()
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("**%s**\n\n", heading))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s\n", item))
	}
	sb.WriteString("\n")
}

func writeValidationNotes(sb *strings.Builder, notes []string) {
	if len(notes) == 0 {
		return
	}
	sb.WriteString("## Validation Notes\n\n")
	for _, note := range notes {
		sb.WriteString(fmt.Sprintf("- %s\n", note))
	}
	sb.WriteString("\n")
}
