package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mask.DurationMS != 2000 || cfg.Mask.CooldownMS != 3000 {
		t.Errorf("mask defaults = %+v", cfg.Mask)
	}
	if cfg.Scoring.FastThresholdS != 30 || cfg.Scoring.MediumThresholdS != 60 {
		t.Errorf("scoring defaults = %+v", cfg.Scoring)
	}
	if cfg.Runtime.TickRate != 30 {
		t.Errorf("tick rate = %d, want 30", cfg.Runtime.TickRate)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := `mask:
  duration_ms: 1000
  cooldown_ms: 5000
scoring:
  usage_penalty_threshold: 2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mask.DurationMS != 1000 || cfg.Mask.CooldownMS != 5000 {
		t.Errorf("mask = %+v", cfg.Mask)
	}
	if cfg.Scoring.UsagePenaltyThreshold != 2 {
		t.Errorf("penalty threshold = %d, want 2", cfg.Scoring.UsagePenaltyThreshold)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit config path must be an error")
	}
}

func TestToGame(t *testing.T) {
	cfg := DefaultConfig()
	gc := cfg.ToGame()

	if gc.Mask.Duration != 2*time.Second || gc.Mask.Cooldown != 3*time.Second {
		t.Errorf("mask config = %+v", gc.Mask)
	}
	if gc.Score.FastThreshold != 30*time.Second || gc.Score.MediumThreshold != time.Minute {
		t.Errorf("score config = %+v", gc.Score)
	}
	if gc.Score.UsagePenaltyThreshold != 5 {
		t.Errorf("penalty threshold = %d, want 5", gc.Score.UsagePenaltyThreshold)
	}
}

func TestToRuntimeFallsBackOnZeroRate(t *testing.T) {
	var cfg GameConfig
	if got := cfg.ToRuntime().TickRate; got != 30 {
		t.Errorf("tick rate = %d, want default 30", got)
	}
}

func TestApplyPreset(t *testing.T) {
	t.Run("easy lengthens the mask", func(t *testing.T) {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, DifficultyEasy)
		if cfg.Mask.DurationMS <= 2000 || cfg.Mask.CooldownMS >= 3000 {
			t.Errorf("easy preset = %+v", cfg.Mask)
		}
		if cfg.Scoring.UsagePenaltyThreshold != 8 {
			t.Errorf("penalty threshold = %d, want 8", cfg.Scoring.UsagePenaltyThreshold)
		}
	})

	t.Run("hard shortens the mask", func(t *testing.T) {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, DifficultyHard)
		if cfg.Mask.DurationMS >= 2000 || cfg.Mask.CooldownMS <= 3000 {
			t.Errorf("hard preset = %+v", cfg.Mask)
		}
		if cfg.Scoring.UsagePenaltyThreshold != 3 {
			t.Errorf("penalty threshold = %d, want 3", cfg.Scoring.UsagePenaltyThreshold)
		}
	})

	t.Run("fixed and normal leave the config alone", func(t *testing.T) {
		for _, p := range []DifficultyPreset{DifficultyFixed, DifficultyNormal} {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, p)
			if cfg != DefaultConfig() {
				t.Errorf("%s preset changed the config", p)
			}
		}
	})
}

func TestValidPreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if !ValidPreset(s) {
			t.Errorf("ValidPreset(%q) = false", s)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("unknown preset accepted")
	}
}
