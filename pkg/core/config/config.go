// Package config supplies typed override values for the static benchmarking
// tables. Precedence is resolved by ordinary struct construction: a field the
// override file sets wins, everything else keeps the table default. No
// string-keyed fallback chains.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"hospital_intelligence/pkg/core/lifecycle"
)

// StageOverride adjusts the expected growth range for one stage. Zero-valued
// fields mean "keep the default".
type StageOverride struct {
	GrowthMin *float64 `yaml:"growth_min" json:"growth_min"`
	GrowthMax *float64 `yaml:"growth_max" json:"growth_max"`
}

// TransitionOverride adjusts progression thresholds for one stage pair.
type TransitionOverride struct {
	MinAgeMonths          *int     `yaml:"min_age_months" json:"min_age_months"`
	MarginThreshold       *float64 `yaml:"margin_threshold" json:"margin_threshold"`
	OccupancyThreshold    *float64 `yaml:"occupancy_threshold" json:"occupancy_threshold"`
	SatisfactionThreshold *float64 `yaml:"satisfaction_threshold" json:"satisfaction_threshold"`
	TurnoverCeiling       *float64 `yaml:"turnover_ceiling" json:"turnover_ceiling"`
	BaseTimelineMonths    *int     `yaml:"base_timeline_months" json:"base_timeline_months"`
}

// Overrides is the full override document. All sections are optional.
type Overrides struct {
	Stages      map[string]StageOverride      `yaml:"stages" json:"stages"`           // keyed by stage name
	Transitions map[string]TransitionOverride `yaml:"transitions" json:"transitions"` // keyed by "<from>_to_<to>"
}

// Load reads an override file. The format follows the extension: .yaml/.yml
// via yaml, anything else (.hjson, .json) via hjson, which accepts strict
// JSON as a subset.
func Load(path string) (*Overrides, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var overrides Overrides
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &overrides); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	default:
		if err := hjson.Unmarshal(raw, &overrides); err != nil {
			return nil, fmt.Errorf("failed to parse HJSON config %s: %w", path, err)
		}
	}
	return &overrides, nil
}

// StageTable materializes the effective stage definition table: static
// defaults with any overridden growth bounds applied. Override values that
// would break the band invariants (max > min >= 0) are rejected.
func (o *Overrides) StageTable() (map[lifecycle.Stage]lifecycle.StageDefinition, error) {
	table := make(map[lifecycle.Stage]lifecycle.StageDefinition, len(lifecycle.StageDefinitionTable))
	for stage, def := range lifecycle.StageDefinitionTable {
		table[stage] = def
	}
	if o == nil {
		return table, nil
	}

	for name, ov := range o.Stages {
		stage := lifecycle.Stage(name)
		def, ok := table[stage]
		if !ok {
			return nil, fmt.Errorf("config: unknown stage %q", name)
		}
		if ov.GrowthMin != nil {
			def.GrowthMin = *ov.GrowthMin
		}
		if ov.GrowthMax != nil {
			def.GrowthMax = *ov.GrowthMax
		}
		if def.GrowthMin < 0 {
			// A negative band would flow through to negative benchmark targets.
			return nil, fmt.Errorf("config: stage %q growth minimum must be non-negative, got %.1f",
				name, def.GrowthMin)
		}
		if def.GrowthMax <= def.GrowthMin {
			return nil, fmt.Errorf("config: stage %q growth range invalid after override (min=%.1f max=%.1f)",
				name, def.GrowthMin, def.GrowthMax)
		}
		table[stage] = def
	}
	return table, nil
}

// FrameworkTable materializes the effective progression framework table.
func (o *Overrides) FrameworkTable() (map[string]lifecycle.ProgressionRequirements, error) {
	table := make(map[string]lifecycle.ProgressionRequirements, len(lifecycle.ProgressionFrameworkTable))
	for key, req := range lifecycle.ProgressionFrameworkTable {
		table[key] = req
	}
	if o == nil {
		return table, nil
	}

	for key, ov := range o.Transitions {
		req, ok := table[key]
		if !ok {
			return nil, fmt.Errorf("config: unknown transition %q", key)
		}
		if ov.MinAgeMonths != nil {
			req.MinAgeMonths = *ov.MinAgeMonths
		}
		if ov.MarginThreshold != nil {
			req.MarginThreshold = *ov.MarginThreshold
		}
		if ov.OccupancyThreshold != nil {
			req.OccupancyThreshold = *ov.OccupancyThreshold
		}
		if ov.SatisfactionThreshold != nil {
			req.SatisfactionThreshold = *ov.SatisfactionThreshold
		}
		if ov.TurnoverCeiling != nil {
			req.TurnoverCeiling = *ov.TurnoverCeiling
		}
		if ov.BaseTimelineMonths != nil {
			req.BaseTimelineMonths = *ov.BaseTimelineMonths
		}
		if req.MinAgeMonths <= 0 || req.BaseTimelineMonths <= 0 {
			return nil, fmt.Errorf("config: transition %q has non-positive months after override", key)
		}
		table[key] = req
	}
	return table, nil
}
