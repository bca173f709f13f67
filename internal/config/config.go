// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"time"

	"github.com/floorlie/floorlie/internal/core"
	"github.com/floorlie/floorlie/internal/game"
)

// GameConfig contains all tunable settings for a play session.
type GameConfig struct {
	Mask    MaskSettings    `yaml:"mask"`
	Scoring ScoringSettings `yaml:"scoring"`
	Runtime RuntimeSettings `yaml:"runtime"`
}

// MaskSettings defines the reveal mask timers.
type MaskSettings struct {
	DurationMS int `yaml:"duration_ms"`
	CooldownMS int `yaml:"cooldown_ms"`
}

// ScoringSettings defines the star rating thresholds.
type ScoringSettings struct {
	FastThresholdS        int `yaml:"fast_threshold_s"`
	MediumThresholdS      int `yaml:"medium_threshold_s"`
	UsagePenaltyThreshold int `yaml:"usage_penalty_threshold"`
}

// RuntimeSettings defines platform-level tuning.
type RuntimeSettings struct {
	TickRate int `yaml:"tick_rate"`
}

// ToGame converts the YAML-facing config into the game core's config.
func (c GameConfig) ToGame() game.Config {
	return game.Config{
		Mask: game.MaskConfig{
			Duration: time.Duration(c.Mask.DurationMS) * time.Millisecond,
			Cooldown: time.Duration(c.Mask.CooldownMS) * time.Millisecond,
		},
		Score: game.ScoreConfig{
			FastThreshold:         time.Duration(c.Scoring.FastThresholdS) * time.Second,
			MediumThreshold:       time.Duration(c.Scoring.MediumThresholdS) * time.Second,
			UsagePenaltyThreshold: c.Scoring.UsagePenaltyThreshold,
		},
	}
}

// ToRuntime converts the YAML-facing config into the platform runtime config.
func (c GameConfig) ToRuntime() core.RuntimeConfig {
	rc := core.DefaultRuntimeConfig()
	if c.Runtime.TickRate > 0 {
		rc.TickRate = c.Runtime.TickRate
	}
	return rc
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the string names a known preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ApplyPreset adjusts the mask timers for a difficulty preset.
// Fixed leaves the loaded config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Mask.DurationMS = cfg.Mask.DurationMS * 3 / 2
		cfg.Mask.CooldownMS = cfg.Mask.CooldownMS * 2 / 3
		cfg.Scoring.UsagePenaltyThreshold += 3
	case DifficultyHard:
		cfg.Mask.DurationMS = cfg.Mask.DurationMS * 2 / 3
		cfg.Mask.CooldownMS = cfg.Mask.CooldownMS * 3 / 2
		if cfg.Scoring.UsagePenaltyThreshold > 2 {
			cfg.Scoring.UsagePenaltyThreshold -= 2
		}
	}
}
