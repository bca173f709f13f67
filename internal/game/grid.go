package game

import "fmt"

// Grid is a rectangular arrangement of tiles plus the designated start
// and exit coordinates. Tiles are stored in row-major order:
// index = y*W + x. A grid is read-only during a play session; only the
// level editor mutates it, via SetTile.
type Grid struct {
	w     int
	h     int
	tiles []Kind
	start Coord
	exit  Coord
}

// NewGrid builds a grid from row-major tiles and validates the level
// invariants: the tile slice matches w*h and the grid contains exactly
// one Start and one Exit tile.
func NewGrid(w, h int, tiles []Kind) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, &InvalidLevelError{
			Code:    CodeBadDimensions,
			Message: fmt.Sprintf("grid dimensions %dx%d are not positive", w, h),
		}
	}
	if len(tiles) != w*h {
		return nil, &InvalidLevelError{
			Code:    CodeBadDimensions,
			Message: fmt.Sprintf("%d tiles do not fill a %dx%d grid", len(tiles), w, h),
		}
	}

	g := &Grid{
		w:     w,
		h:     h,
		tiles: make([]Kind, len(tiles)),
	}
	copy(g.tiles, tiles)

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the Start/Exit cardinality invariant and refreshes
// the cached start/exit coordinates. The editor calls this at save
// time; a grid may transiently violate the invariant mid-edit.
func (g *Grid) Validate() error {
	starts, exits := 0, 0
	for i, k := range g.tiles {
		c := C(i%g.w, i/g.w)
		switch k {
		case KindStart:
			starts++
			g.start = c
		case KindExit:
			exits++
			g.exit = c
		}
	}

	switch {
	case starts == 0:
		return &InvalidLevelError{Code: CodeNoStart, Message: "level has no start tile"}
	case starts > 1:
		return &InvalidLevelError{Code: CodeMultipleStart, Message: fmt.Sprintf("level has %d start tiles", starts)}
	case exits == 0:
		return &InvalidLevelError{Code: CodeNoExit, Message: "level has no exit tile"}
	case exits > 1:
		return &InvalidLevelError{Code: CodeMultipleExit, Message: fmt.Sprintf("level has %d exit tiles", exits)}
	}
	return nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the grid height in tiles.
func (g *Grid) Height() int {
	return g.h
}

// InBounds returns true if the coordinate is within the grid extents.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// TileAt returns the tile kind at (x, y), or ErrOutOfBounds if the
// coordinate lies outside [0,w)×[0,h).
func (g *Grid) TileAt(x, y int) (Kind, error) {
	if !g.InBounds(C(x, y)) {
		return KindEmpty, fmt.Errorf("tile at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return g.tiles[y*g.w+x], nil
}

// SetTile replaces the tile at (x, y). This is the level editor's
// mutation contract: Start/Exit cardinality is not enforced here, only
// at Validate/save time. Out-of-bounds coordinates are rejected.
func (g *Grid) SetTile(x, y int, k Kind) error {
	if !g.InBounds(C(x, y)) {
		return fmt.Errorf("set tile at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	g.tiles[y*g.w+x] = k
	return nil
}

// Start returns the cached start coordinate.
func (g *Grid) Start() Coord {
	return g.start
}

// Exit returns the cached exit coordinate.
func (g *Grid) Exit() Coord {
	return g.exit
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Kind, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{
		w:     g.w,
		h:     g.h,
		tiles: tiles,
		start: g.start,
		exit:  g.exit,
	}
}

// Rows renders the grid back into row-major token strings, one string
// per row. Used by the level store when saving.
func (g *Grid) Rows() []string {
	rows := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		row := make([]rune, g.w)
		for x := 0; x < g.w; x++ {
			row[x] = g.tiles[y*g.w+x].Rune()
		}
		rows[y] = string(row)
	}
	return rows
}
