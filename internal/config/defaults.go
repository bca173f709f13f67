package config

import (
	_ "embed"
)

//go:embed defaults/floorlie.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration. Used as
// the last-resort fallback when even the embedded YAML fails to parse.
func DefaultConfig() GameConfig {
	return GameConfig{
		Mask: MaskSettings{
			DurationMS: 2000,
			CooldownMS: 3000,
		},
		Scoring: ScoringSettings{
			FastThresholdS:        30,
			MediumThresholdS:      60,
			UsagePenaltyThreshold: 5,
		},
		Runtime: RuntimeSettings{
			TickRate: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `config init`
// style tooling.
func DefaultYAML() []byte {
	return defaultYAML
}
