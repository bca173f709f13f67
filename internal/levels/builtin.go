package levels

import (
	"embed"
	"fmt"
	"path"

	"github.com/floorlie/floorlie/internal/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded campaign levels. The assets are part of
// the binary, so a parse failure here is a build defect.
func Builtin() []Level {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(fmt.Sprintf("reading embedded levels: %v", err))
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("reading embedded level %s: %v", e.Name(), err))
		}
		parsed, err := formats.ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("parsing embedded level %s: %v", e.Name(), err))
		}
		levels = append(levels, Level{
			ID:     parsed.ID,
			Name:   parsed.Name,
			Width:  parsed.Width,
			Height: parsed.Height,
			Rows:   parsed.Rows,
			Config: parsed.Config,
		})
	}
	return levels
}
