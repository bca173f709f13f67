// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Size   YAMLSize    `yaml:"size"`
	Rows   []string    `yaml:"rows"`
	Config *YAMLConfig `yaml:"config,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLConfig holds optional per-level overrides of the game settings.
// Zero values mean "use the global configuration".
type YAMLConfig struct {
	MaskDurationMS        int `yaml:"mask_duration_ms,omitempty"`
	MaskCooldownMS        int `yaml:"mask_cooldown_ms,omitempty"`
	FastThresholdS        int `yaml:"fast_threshold_s,omitempty"`
	MediumThresholdS      int `yaml:"medium_threshold_s,omitempty"`
	UsagePenaltyThreshold int `yaml:"usage_penalty_threshold,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID     string
	Name   string
	Width  int
	Height int
	Rows   []string
	Config *YAMLConfig
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	width := yl.Size.W
	height := yl.Size.H
	if width == 0 && len(yl.Rows) > 0 {
		// Dimensions may be implied by the row layout.
		width = len([]rune(yl.Rows[0]))
		height = len(yl.Rows)
	}

	return Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  width,
		Height: height,
		Rows:   yl.Rows,
		Config: yl.Config,
	}, nil
}

// MarshalYAML serializes a level back to its YAML file format.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:     l.ID,
		Name:   l.Name,
		Size:   YAMLSize{W: l.Width, H: l.Height},
		Rows:   l.Rows,
		Config: l.Config,
	}
	data, err := yaml.Marshal(yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
