// Package levels provides level loading and saving. It depends on game
// but game does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/floorlie/floorlie/internal/game"
	"github.com/floorlie/floorlie/internal/levels/formats"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Rows     []string
	Config   *formats.YAMLConfig
	FilePath string
}

// ToGrid builds and validates the tile grid for this level.
func (l Level) ToGrid() (*game.Grid, error) {
	if len(l.Rows) != l.Height {
		return nil, &game.InvalidLevelError{
			Code:    game.CodeBadDimensions,
			Message: fmt.Sprintf("level %s: %d rows, declared height %d", l.ID, len(l.Rows), l.Height),
		}
	}

	tiles := make([]game.Kind, 0, l.Width*l.Height)
	for y, row := range l.Rows {
		runes := []rune(row)
		if len(runes) != l.Width {
			return nil, &game.InvalidLevelError{
				Code:    game.CodeNotRectangular,
				Message: fmt.Sprintf("level %s: row %d has %d tiles, want %d", l.ID, y, len(runes), l.Width),
			}
		}
		for _, r := range runes {
			k, err := game.ParseKind(r)
			if err != nil {
				return nil, err
			}
			tiles = append(tiles, k)
		}
	}

	return game.NewGrid(l.Width, l.Height, tiles)
}

// GameConfig merges the level's overrides onto a base configuration.
func (l Level) GameConfig(base game.Config) game.Config {
	cfg := base
	if l.Config == nil {
		return cfg
	}
	if l.Config.MaskDurationMS > 0 {
		cfg.Mask.Duration = time.Duration(l.Config.MaskDurationMS) * time.Millisecond
	}
	if l.Config.MaskCooldownMS > 0 {
		cfg.Mask.Cooldown = time.Duration(l.Config.MaskCooldownMS) * time.Millisecond
	}
	if l.Config.FastThresholdS > 0 {
		cfg.Score.FastThreshold = time.Duration(l.Config.FastThresholdS) * time.Second
	}
	if l.Config.MediumThresholdS > 0 {
		cfg.Score.MediumThreshold = time.Duration(l.Config.MediumThresholdS) * time.Second
	}
	if l.Config.UsagePenaltyThreshold > 0 {
		cfg.Score.UsagePenaltyThreshold = l.Config.UsagePenaltyThreshold
	}
	return cfg
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	levels := Builtin()

	if l.Root != "" {
		disk, err := l.loadDir()
		if err != nil {
			return nil, err
		}
		// Disk levels shadow builtins with the same ID.
		byID := make(map[string]int, len(levels))
		for i, lvl := range levels {
			byID[lvl.ID] = i
		}
		for _, lvl := range disk {
			if i, ok := byID[lvl.ID]; ok {
				levels[i] = lvl
			} else {
				levels = append(levels, lvl)
			}
		}
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

func (l *Loader) loadDir() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Rows:     parsed.Rows,
		Config:   parsed.Config,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Save validates a level and writes it to path as YAML. Validation
// happens before anything touches the disk.
func Save(lvl Level, path string) error {
	if _, err := lvl.ToGrid(); err != nil {
		return err
	}

	data, err := formats.MarshalYAML(formats.Level{
		ID:     lvl.ID,
		Name:   lvl.Name,
		Width:  lvl.Width,
		Height: lvl.Height,
		Rows:   lvl.Rows,
		Config: lvl.Config,
	})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating level directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing level file %s: %w", path, err)
	}
	return nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
