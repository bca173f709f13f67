package game

import (
	"errors"
	"testing"
)

// gridFromRows builds a grid from token strings, failing the test on error.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := parseRows(rows)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	return g
}

func parseRows(rows []string) (*Grid, error) {
	h := len(rows)
	w := len(rows[0])
	tiles := make([]Kind, 0, w*h)
	for _, row := range rows {
		for _, r := range row {
			k, err := ParseKind(r)
			if err != nil {
				return nil, err
			}
			tiles = append(tiles, k)
		}
	}
	return NewGrid(w, h, tiles)
}

func TestGridStartExitCached(t *testing.T) {
	g := gridFromRows(t,
		"S##",
		".~#",
		"..E",
	)

	if !g.Start().Equal(C(0, 0)) {
		t.Errorf("Start() = %v, want (0,0)", g.Start())
	}
	if !g.Exit().Equal(C(2, 2)) {
		t.Errorf("Exit() = %v, want (2,2)", g.Exit())
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Errorf("dimensions = %dx%d, want 3x3", g.Width(), g.Height())
	}
}

func TestGridTileAt(t *testing.T) {
	g := gridFromRows(t,
		"S#~",
		"..E",
	)

	k, err := g.TileAt(2, 0)
	if err != nil {
		t.Fatalf("TileAt(2,0) failed: %v", err)
	}
	if k != KindFake {
		t.Errorf("TileAt(2,0) = %s, want fake", k)
	}

	for _, c := range []Coord{C(-1, 0), C(0, -1), C(3, 0), C(0, 2)} {
		if _, err := g.TileAt(c.X, c.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("TileAt%v error = %v, want ErrOutOfBounds", c, err)
		}
	}
}

func TestGridCardinalityValidation(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		code string
	}{
		{"no start", []string{"##", ".E"}, CodeNoStart},
		{"two starts", []string{"SS", ".E"}, CodeMultipleStart},
		{"no exit", []string{"S#", ".."}, CodeNoExit},
		{"two exits", []string{"SE", ".E"}, CodeMultipleExit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseRows(tc.rows)
			var invalid *InvalidLevelError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidLevelError, got %v", err)
			}
			if invalid.Code != tc.code {
				t.Errorf("error code = %s, want %s", invalid.Code, tc.code)
			}
		})
	}
}

func TestGridBadDimensions(t *testing.T) {
	for _, tc := range []struct {
		name  string
		w, h  int
		tiles []Kind
	}{
		{"mismatched tile count", 2, 2, make([]Kind, 3)},
		{"zero width", 0, 2, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.w, tc.h, tc.tiles)
			var invalid *InvalidLevelError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidLevelError, got %v", err)
			}
			if invalid.Code != CodeBadDimensions {
				t.Errorf("error code = %s, want %s", invalid.Code, CodeBadDimensions)
			}
		})
	}
}

func TestGridSetTileDefersValidation(t *testing.T) {
	g := gridFromRows(t,
		"S#",
		".E",
	)

	// Mid-edit the grid may hold two starts; only Validate complains.
	if err := g.SetTile(1, 0, KindStart); err != nil {
		t.Fatalf("SetTile failed: %v", err)
	}
	if err := g.Validate(); err == nil {
		t.Error("Validate should reject a grid with two start tiles")
	}

	if err := g.SetTile(5, 5, KindReal); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetTile out of bounds error = %v, want ErrOutOfBounds", err)
	}
}

func TestGridRowsRoundTrip(t *testing.T) {
	rows := []string{
		"S#~",
		"..E",
	}
	g := gridFromRows(t, rows...)

	got := g.Rows()
	if len(got) != len(rows) {
		t.Fatalf("Rows() returned %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], rows[i])
		}
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := gridFromRows(t,
		"S#",
		".E",
	)
	clone := g.Clone()

	if err := clone.SetTile(1, 0, KindFake); err != nil {
		t.Fatalf("SetTile failed: %v", err)
	}

	orig, _ := g.TileAt(1, 0)
	if orig != KindReal {
		t.Error("mutating a clone should not affect the original grid")
	}
}
