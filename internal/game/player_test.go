package game

import (
	"testing"
	"time"
)

// playerFixture returns a player on the start tile of a small level:
//
//	S # ~
//	. # E
func playerFixture(t *testing.T) (*Player, *Grid, *MaskController) {
	t.Helper()
	g := gridFromRows(t,
		"S#~",
		".#E",
	)
	return NewPlayer(g.Start()), g, NewMaskController(testMaskConfig())
}

func TestPlayerMoveAccepted(t *testing.T) {
	p, g, m := playerFixture(t)

	if got := p.AttemptMove(DirRight, g, m); got != MoveAccepted {
		t.Fatalf("move onto real tile = %s, want accepted", got)
	}
	if !p.Position().Equal(C(1, 0)) {
		t.Errorf("position = %v, want (1,0)", p.Position())
	}
}

func TestPlayerMoveBlockedAtBounds(t *testing.T) {
	p, g, m := playerFixture(t)

	if got := p.AttemptMove(DirUp, g, m); got != MoveBlocked {
		t.Fatalf("move out of bounds = %s, want blocked", got)
	}
	if !p.Position().Equal(g.Start()) {
		t.Error("blocked move must not change position")
	}
}

func TestPlayerEmptyTileFatalRegardlessOfMask(t *testing.T) {
	p, g, m := playerFixture(t)

	if got := p.AttemptMove(DirDown, g, m); got != MoveFatal {
		t.Fatalf("unmasked move onto empty = %s, want fatal", got)
	}
	if !p.Position().Equal(g.Start()) {
		t.Error("fatal move must not change position")
	}

	// The mask does not protect against empty tiles.
	m.Toggle()
	if got := p.AttemptMove(DirDown, g, m); got != MoveFatal {
		t.Errorf("masked move onto empty = %s, want fatal", got)
	}
}

func TestPlayerFakeTileDependsOnMask(t *testing.T) {
	p, g, m := playerFixture(t)
	p.AttemptMove(DirRight, g, m) // onto (1,0)

	if got := p.AttemptMove(DirRight, g, m); got != MoveFatal {
		t.Fatalf("unmasked move onto fake = %s, want fatal", got)
	}

	m.Toggle()
	if got := p.AttemptMove(DirRight, g, m); got != MoveAccepted {
		t.Errorf("masked move onto fake = %s, want accepted", got)
	}
	if !p.Position().Equal(C(2, 0)) {
		t.Errorf("position = %v, want (2,0)", p.Position())
	}
}

func TestPlayerMaskExpiryRestoresDanger(t *testing.T) {
	p, g, m := playerFixture(t)
	p.AttemptMove(DirRight, g, m)

	m.Toggle()
	m.Tick(5 * time.Second) // Reveal long over

	if got := p.AttemptMove(DirRight, g, m); got != MoveFatal {
		t.Errorf("move onto fake after mask expiry = %s, want fatal", got)
	}
}

func TestPlayerFacingUpdatesOnEveryIntent(t *testing.T) {
	p, g, m := playerFixture(t)

	p.AttemptMove(DirUp, g, m) // Blocked, but facing still updates
	if p.Facing() != DirUp {
		t.Errorf("facing = %s, want Up", p.Facing())
	}
}

func TestPlayerReset(t *testing.T) {
	p, g, m := playerFixture(t)
	p.AttemptMove(DirRight, g, m)

	p.Reset(g.Start())
	if !p.Position().Equal(g.Start()) {
		t.Errorf("position after reset = %v, want %v", p.Position(), g.Start())
	}
}
