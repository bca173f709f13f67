package game

import "time"

// Snapshot is a read-only view of the session for the renderer. The
// core never formats state for display; the platform layer reads a
// snapshot each frame and draws from it.
type Snapshot struct {
	PlayerX int
	PlayerY int
	Facing  Dir

	MaskActive        bool
	MaskState         MaskState
	TimeRemaining     time.Duration
	CooldownRemaining time.Duration
	UsageCount        int

	Elapsed time.Duration
	Outcome Outcome
	Result  *Result // Non-nil only once the run has terminated
}

// Snapshot captures the current session state.
func (r *Run) Snapshot() Snapshot {
	pos := r.player.Position()
	return Snapshot{
		PlayerX:           pos.X,
		PlayerY:           pos.Y,
		Facing:            r.player.Facing(),
		MaskActive:        r.mask.Active(),
		MaskState:         r.mask.State(),
		TimeRemaining:     r.mask.TimeRemaining(),
		CooldownRemaining: r.mask.CooldownRemaining(),
		UsageCount:        r.mask.UsageCount(),
		Elapsed:           r.elapsed,
		Outcome:           r.outcome,
		Result:            r.result,
	}
}
