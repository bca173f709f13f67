// Package editor provides an in-game level editor. It works on a raw
// tile buffer so intermediate states may be invalid; validation happens
// once, at save time.
package editor

import (
	"github.com/floorlie/floorlie/internal/game"
	"github.com/floorlie/floorlie/internal/levels"
)

// Editor is a mutable level under construction.
type Editor struct {
	id     string
	name   string
	width  int
	height int
	tiles  []game.Kind

	cursor game.Coord
	dirty  bool
}

// New creates an editor for a blank level filled with empty tiles.
func New(id, name string, width, height int) *Editor {
	return &Editor{
		id:     id,
		name:   name,
		width:  width,
		height: height,
		tiles:  make([]game.Kind, width*height),
	}
}

// FromLevel creates an editor seeded with an existing level's tiles.
func FromLevel(lvl levels.Level) (*Editor, error) {
	g, err := lvl.ToGrid()
	if err != nil {
		return nil, err
	}

	e := New(lvl.ID, lvl.Name, lvl.Width, lvl.Height)
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			k, _ := g.TileAt(x, y)
			e.tiles[y*lvl.Width+x] = k
		}
	}
	return e, nil
}

// ID returns the level identifier being edited.
func (e *Editor) ID() string {
	return e.id
}

// Name returns the level display name.
func (e *Editor) Name() string {
	return e.name
}

// SetName updates the level display name.
func (e *Editor) SetName(name string) {
	e.name = name
	e.dirty = true
}

// Width returns the grid width.
func (e *Editor) Width() int {
	return e.width
}

// Height returns the grid height.
func (e *Editor) Height() int {
	return e.height
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() game.Coord {
	return e.cursor
}

// MoveCursor shifts the cursor one cell, clamped to the grid.
func (e *Editor) MoveCursor(d game.Dir) {
	next := e.cursor.Step(d)
	if next.X < 0 || next.X >= e.width || next.Y < 0 || next.Y >= e.height {
		return
	}
	e.cursor = next
}

// TileAt returns the tile under the given cell.
func (e *Editor) TileAt(x, y int) game.Kind {
	if x < 0 || x >= e.width || y < 0 || y >= e.height {
		return game.KindEmpty
	}
	return e.tiles[y*e.width+x]
}

// Place sets the tile under the cursor. Placing a start or exit clears
// any previous one so the level keeps at most one of each.
func (e *Editor) Place(k game.Kind) {
	if k == game.KindStart || k == game.KindExit {
		for i, t := range e.tiles {
			if t == k {
				e.tiles[i] = game.KindEmpty
			}
		}
	}
	e.tiles[e.cursor.Y*e.width+e.cursor.X] = k
	e.dirty = true
}

// Dirty reports whether the level has unsaved changes.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// Rows renders the tile buffer as token strings.
func (e *Editor) Rows() []string {
	rows := make([]string, e.height)
	for y := 0; y < e.height; y++ {
		runes := make([]rune, e.width)
		for x := 0; x < e.width; x++ {
			runes[x] = e.tiles[y*e.width+x].Rune()
		}
		rows[y] = string(runes)
	}
	return rows
}

// Level assembles the current state into a level definition.
func (e *Editor) Level() levels.Level {
	return levels.Level{
		ID:     e.id,
		Name:   e.name,
		Width:  e.width,
		Height: e.height,
		Rows:   e.Rows(),
	}
}

// Validate checks whether the current state forms a playable level.
func (e *Editor) Validate() error {
	_, err := e.Level().ToGrid()
	return err
}

// Save validates the level and writes it to path. The editor stays
// dirty when validation fails.
func (e *Editor) Save(path string) error {
	if err := levels.Save(e.Level(), path); err != nil {
		return err
	}
	e.dirty = false
	return nil
}
