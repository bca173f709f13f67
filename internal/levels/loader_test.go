package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/floorlie/floorlie/internal/game"
	"github.com/floorlie/floorlie/internal/levels/formats"
)

func levelConfig(durMS, coolMS, fastS, medS, penalty int) *formats.YAMLConfig {
	return &formats.YAMLConfig{
		MaskDurationMS:        durMS,
		MaskCooldownMS:        coolMS,
		FastThresholdS:        fastS,
		MediumThresholdS:      medS,
		UsagePenaltyThreshold: penalty,
	}
}

func writeLevel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing level fixture: %v", err)
	}
	return path
}

const validLevel = `id: test-level
name: Test Level
size:
  w: 3
  h: 2
rows:
  - "S#E"
  - ".~."
`

func TestLoadFileValid(t *testing.T) {
	dir := t.TempDir()
	path := writeLevel(t, dir, "test.yaml", validLevel)

	lvl, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if lvl.ID != "test-level" || lvl.Name != "Test Level" {
		t.Errorf("level metadata = %q / %q", lvl.ID, lvl.Name)
	}
	if lvl.Width != 3 || lvl.Height != 2 {
		t.Errorf("size = %dx%d, want 3x2", lvl.Width, lvl.Height)
	}

	g, err := lvl.ToGrid()
	if err != nil {
		t.Fatalf("ToGrid: %v", err)
	}
	if g.Start() != game.C(0, 0) || g.Exit() != game.C(2, 0) {
		t.Errorf("start %v, exit %v", g.Start(), g.Exit())
	}
}

func TestToGridRejectsBadLevels(t *testing.T) {
	cases := []struct {
		name string
		lvl  Level
		code string
	}{
		{
			name: "ragged rows",
			lvl:  Level{ID: "x", Width: 3, Height: 2, Rows: []string{"S#E", ".~"}},
			code: game.CodeNotRectangular,
		},
		{
			name: "row count mismatch",
			lvl:  Level{ID: "x", Width: 3, Height: 3, Rows: []string{"S#E", ".~."}},
			code: game.CodeBadDimensions,
		},
		{
			name: "unknown token",
			lvl:  Level{ID: "x", Width: 3, Height: 1, Rows: []string{"S?E"}},
			code: game.CodeBadToken,
		},
		{
			name: "no start",
			lvl:  Level{ID: "x", Width: 3, Height: 1, Rows: []string{".#E"}},
			code: game.CodeNoStart,
		},
		{
			name: "two exits",
			lvl:  Level{ID: "x", Width: 4, Height: 1, Rows: []string{"S#EE"}},
			code: game.CodeMultipleExit,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.lvl.ToGrid()
			var ile *game.InvalidLevelError
			if !errors.As(err, &ile) {
				t.Fatalf("error = %v, want InvalidLevelError", err)
			}
			if ile.Code != tc.code {
				t.Errorf("code = %s, want %s", ile.Code, tc.code)
			}
		})
	}
}

func TestLoadAllIncludesBuiltins(t *testing.T) {
	lvls, err := NewLoader("").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(lvls) == 0 {
		t.Fatal("no builtin levels")
	}
	for _, lvl := range lvls {
		if _, err := lvl.ToGrid(); err != nil {
			t.Errorf("builtin level %s is invalid: %v", lvl.ID, err)
		}
	}
}

func TestLoadAllDiskShadowsBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "override.yaml", `id: 01-first-steps
name: Replaced
size: {w: 3, h: 1}
rows: ["S#E"]
`)

	lvl, err := NewLoader(dir).LoadByID("01-first-steps")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if lvl.Name != "Replaced" {
		t.Errorf("name = %q, want disk level to shadow the builtin", lvl.Name)
	}
}

func TestLoadAllSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "good.yaml", validLevel)
	writeLevel(t, dir, "broken.yaml", "id: [not\n  valid yaml")
	writeLevel(t, dir, "notes.txt", "ignored")

	lvls, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	found := false
	for _, lvl := range lvls {
		if lvl.ID == "test-level" {
			found = true
		}
	}
	if !found {
		t.Error("valid level missing from LoadAll result")
	}
}

func TestGameConfigOverrides(t *testing.T) {
	base := game.DefaultConfig()
	lvl := Level{
		ID: "x", Width: 3, Height: 1, Rows: []string{"S#E"},
	}

	if got := lvl.GameConfig(base); got != base {
		t.Error("level without overrides must return the base config")
	}

	lvl.Config = levelConfig(1500, 0, 0, 90, 3)
	cfg := lvl.GameConfig(base)
	if cfg.Mask.Duration != 1500*time.Millisecond {
		t.Errorf("mask duration = %v, want 1.5s", cfg.Mask.Duration)
	}
	if cfg.Mask.Cooldown != base.Mask.Cooldown {
		t.Error("unset override must keep the base cooldown")
	}
	if cfg.Score.MediumThreshold != 90*time.Second {
		t.Errorf("medium threshold = %v, want 90s", cfg.Score.MediumThreshold)
	}
	if cfg.Score.UsagePenaltyThreshold != 3 {
		t.Errorf("usage penalty threshold = %d, want 3", cfg.Score.UsagePenaltyThreshold)
	}
}

func TestSaveValidatesFirst(t *testing.T) {
	dir := t.TempDir()
	bad := Level{ID: "bad", Width: 3, Height: 1, Rows: []string{"S#."}}

	path := filepath.Join(dir, "bad.yaml")
	if err := Save(bad, path); err == nil {
		t.Fatal("Save accepted a level without an exit")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid level must not be written to disk")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	lvl := Level{
		ID: "rt", Name: "Round Trip",
		Width: 3, Height: 2,
		Rows:   []string{"S#E", ".~."},
		Config: levelConfig(0, 4000, 0, 0, 0),
	}

	path := filepath.Join(dir, "rt.yaml")
	if err := Save(lvl, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if back.ID != lvl.ID || back.Name != lvl.Name {
		t.Errorf("metadata changed: %q / %q", back.ID, back.Name)
	}
	if len(back.Rows) != 2 || back.Rows[1] != ".~." {
		t.Errorf("rows changed: %v", back.Rows)
	}
	if back.Config == nil || back.Config.MaskCooldownMS != 4000 {
		t.Errorf("config changed: %+v", back.Config)
	}
}
