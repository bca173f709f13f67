package game

// MoveOutcome is the result of resolving a movement intent.
type MoveOutcome uint8

const (
	// MoveAccepted: the player moved one cell to the target.
	MoveAccepted MoveOutcome = iota
	// MoveBlocked: the target is out of bounds; position unchanged.
	MoveBlocked
	// MoveFatal: the target tile is unsafe; position unchanged and the
	// caller ends the run as Fallen.
	MoveFatal
)

// String returns a human-readable name for the outcome.
func (o MoveOutcome) String() string {
	switch o {
	case MoveAccepted:
		return "accepted"
	case MoveBlocked:
		return "blocked"
	case MoveFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Player owns the grid position and facing for one session.
type Player struct {
	pos    Coord
	facing Dir
}

// NewPlayer creates a player at the given start coordinate.
func NewPlayer(start Coord) *Player {
	return &Player{pos: start, facing: DirDown}
}

// Reset places the player back on the start coordinate.
func (p *Player) Reset(start Coord) {
	p.pos = start
	p.facing = DirDown
}

// Position returns the player's current grid coordinate.
func (p *Player) Position() Coord {
	return p.pos
}

// Facing returns the direction of the last movement intent.
func (p *Player) Facing() Dir {
	return p.facing
}

// AttemptMove resolves a movement intent against the grid and the mask
// state. Movement is always exactly one cell. A target outside the grid
// is Blocked; a target whose tile is unsafe under the current mask
// state is Fatal; otherwise the player moves and the intent is
// Accepted. Blocked and Fatal moves leave the position unchanged.
func (p *Player) AttemptMove(d Dir, grid *Grid, mask *MaskController) MoveOutcome {
	p.facing = d

	target := p.pos.Step(d)
	if !grid.InBounds(target) {
		return MoveBlocked
	}

	tile, err := grid.TileAt(target.X, target.Y)
	if err != nil {
		// Unreachable after the bounds check; treat as blocked.
		return MoveBlocked
	}

	if !tile.IsSafe(mask.Active()) {
		return MoveFatal
	}

	p.pos = target
	return MoveAccepted
}
