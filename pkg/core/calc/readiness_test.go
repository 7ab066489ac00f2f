package calc

import (
	"math"
	"testing"
)

func TestReadinessSubScore(t *testing.T) {
	// Over-achievement caps at 1.0.
	if got := ReadinessSubScore(0.15, 0.08); got != 1.0 {
		t.Errorf("expected cap at 1.0, got %f", got)
	}
	// Halfway there.
	if got := ReadinessSubScore(0.04, 0.08); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expected 0.5, got %f", got)
	}
	// Not floored: a loss against a margin threshold goes negative.
	if got := ReadinessSubScore(-0.04, 0.08); math.Abs(got+0.5) > 1e-9 {
		t.Errorf("expected -0.5, got %f", got)
	}
	// Non-positive threshold degrades to neutral, never divides by zero.
	if got := ReadinessSubScore(0.5, 0); got != NeutralSubScore {
		t.Errorf("zero threshold: expected neutral %f, got %f", NeutralSubScore, got)
	}
	if got := ReadinessSubScore(0.5, -1); got != NeutralSubScore {
		t.Errorf("negative threshold: expected neutral, got %f", got)
	}
}

func TestReadinessScoreMean(t *testing.T) {
	if got := ReadinessScore(1.0, 0.5, 0.0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expected mean 0.5, got %f", got)
	}
	if got := ReadinessScore(); got != NeutralSubScore {
		t.Errorf("no sub-scores: expected neutral, got %f", got)
	}
}

func TestProgressionTimeline(t *testing.T) {
	// Full readiness keeps the base.
	if got := ProgressionTimeline(24, 1.0); got != 24 {
		t.Errorf("expected 24, got %d", got)
	}
	// Zero readiness doubles it.
	if got := ProgressionTimeline(24, 0.0); got != 48 {
		t.Errorf("expected 48, got %d", got)
	}
	// Half readiness: 24 * 1.5 = 36.
	if got := ProgressionTimeline(24, 0.5); got != 36 {
		t.Errorf("expected 36, got %d", got)
	}
	// Never below base even if readiness exceeds 1.
	if got := ProgressionTimeline(24, 1.5); got != 24 {
		t.Errorf("expected floor at base 24, got %d", got)
	}
}

func TestProgressionProbability(t *testing.T) {
	// readiness 0 -> 0.2; readiness 1 -> capped at 0.95
	if got := ProgressionProbability(0); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("expected 0.2, got %f", got)
	}
	if got := ProgressionProbability(1); got != 0.95 {
		t.Errorf("expected cap 0.95, got %f", got)
	}
	// readiness 0.5 -> 0.6
	if got := ProgressionProbability(0.5); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("expected 0.6, got %f", got)
	}

	// Bounds hold across the clamped readiness domain.
	for r := 0.0; r <= 1.0; r += 0.05 {
		p := ProgressionProbability(r)
		if p < 0.2 || p > 0.95 {
			t.Fatalf("probability out of [0.2, 0.95] at readiness %f: %f", r, p)
		}
	}
}
