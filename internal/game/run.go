package game

import "time"

// Outcome is the run state: InProgress until the player falls or
// reaches the exit, then terminal.
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeFallen
	OutcomeWon
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeFallen:
		return "fallen"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Config bundles the per-session tuning for a run.
type Config struct {
	Mask  MaskConfig
	Score ScoreConfig
}

// DefaultConfig returns the default run configuration.
func DefaultConfig() Config {
	return Config{
		Mask:  DefaultMaskConfig(),
		Score: DefaultScoreConfig(),
	}
}

// Run is the session aggregate for one attempt at a level. It owns the
// grid, player and mask controller, advances elapsed time on Tick, and
// caches the score result once the run terminates. Callers must
// serialize all calls; a Run is driven by a single game loop.
type Run struct {
	grid    *Grid
	player  *Player
	mask    *MaskController
	cfg     Config
	elapsed time.Duration
	outcome Outcome
	result  *Result
}

// NewRun creates a session for the given grid and starts it.
func NewRun(grid *Grid, cfg Config) *Run {
	r := &Run{
		grid:   grid,
		player: NewPlayer(grid.Start()),
		mask:   NewMaskController(cfg.Mask),
		cfg:    cfg,
	}
	r.Start()
	return r
}

// Start resets the session to a fresh attempt: player on the start
// tile, mask inactive with zeroed timers and usage count, elapsed time
// zero, outcome in progress. Restarting leaks nothing from the prior
// attempt.
func (r *Run) Start() {
	r.player.Reset(r.grid.Start())
	r.mask.Reset()
	r.elapsed = 0
	r.outcome = OutcomeInProgress
	r.result = nil
}

// Tick advances elapsed time and the mask timers by dt. No-op once the
// run has terminated.
func (r *Run) Tick(dt time.Duration) {
	if r.outcome != OutcomeInProgress {
		return
	}
	r.elapsed += dt
	r.mask.Tick(dt)
}

// HandleMove resolves a movement intent. A Fatal outcome ends the run
// as Fallen; an Accepted move onto the exit tile ends it as Won. On a
// terminal outcome the score result is computed and cached. No-op once
// the run has terminated.
func (r *Run) HandleMove(d Dir) MoveOutcome {
	if r.outcome != OutcomeInProgress {
		return MoveBlocked
	}

	outcome := r.player.AttemptMove(d, r.grid, r.mask)
	switch outcome {
	case MoveFatal:
		r.finish(OutcomeFallen)
	case MoveAccepted:
		if r.player.Position().Equal(r.grid.Exit()) {
			r.finish(OutcomeWon)
		}
	}
	return outcome
}

// HandleMaskToggle forwards a mask toggle intent. Returns true if the
// mask state changed. No-op once the run has terminated.
func (r *Run) HandleMaskToggle() bool {
	if r.outcome != OutcomeInProgress {
		return false
	}
	return r.mask.Toggle()
}

func (r *Run) finish(o Outcome) {
	r.outcome = o
	res := ComputeResult(r.elapsed, r.mask.UsageCount(), o == OutcomeWon, r.cfg.Score)
	r.result = &res
}

// Outcome returns the current run outcome.
func (r *Run) Outcome() Outcome {
	return r.outcome
}

// Elapsed returns the time accumulated while the run was active.
func (r *Run) Elapsed() time.Duration {
	return r.elapsed
}

// Grid returns the level grid owned by this session.
func (r *Run) Grid() *Grid {
	return r.grid
}

// Result returns the cached score result, or nil while in progress.
func (r *Run) Result() *Result {
	return r.result
}
