package game

import "time"

// MaskState identifies the mask state machine's current state.
type MaskState uint8

const (
	// MaskInactive: mask is off and ready to activate.
	MaskInactive MaskState = iota
	// MaskActive: mask is revealing tile truth, reveal timer counting down.
	MaskActive
	// MaskCooling: mask is off and recharging, cooldown counting down.
	MaskCooling
)

// String returns a human-readable name for the state.
func (s MaskState) String() string {
	switch s {
	case MaskInactive:
		return "inactive"
	case MaskActive:
		return "active"
	case MaskCooling:
		return "cooling"
	default:
		return "unknown"
	}
}

// MaskConfig holds the mask timing parameters.
type MaskConfig struct {
	Duration time.Duration // How long a reveal lasts
	Cooldown time.Duration // Recharge time after each use
}

// DefaultMaskConfig returns the default mask timing.
func DefaultMaskConfig() MaskConfig {
	return MaskConfig{
		Duration: 2 * time.Second,
		Cooldown: 3 * time.Second,
	}
}

// MaskController owns the mask on/off state, the remaining reveal time,
// the remaining cooldown and the per-session usage count. It advances
// only through Tick with a caller-supplied dt; it never reads a clock.
type MaskController struct {
	cfg               MaskConfig
	state             MaskState
	timeRemaining     time.Duration
	cooldownRemaining time.Duration
	usageCount        int
}

// NewMaskController creates a mask controller in the Inactive state.
func NewMaskController(cfg MaskConfig) *MaskController {
	return &MaskController{cfg: cfg}
}

// Reset returns the controller to the Inactive state with zeroed timers.
// The usage count is cleared; a new session starts fresh.
func (m *MaskController) Reset() {
	m.state = MaskInactive
	m.timeRemaining = 0
	m.cooldownRemaining = 0
	m.usageCount = 0
}

// Toggle requests a mask state change. Activating from Inactive starts
// a reveal and counts a usage. Toggling while Active ends the reveal
// early and charges the full cooldown regardless of how much reveal
// time was consumed. Toggling while Cooling is rejected silently.
// Returns true if the state changed.
func (m *MaskController) Toggle() bool {
	switch m.state {
	case MaskInactive:
		m.state = MaskActive
		m.timeRemaining = m.cfg.Duration
		m.usageCount++
		return true
	case MaskActive:
		m.startCooldown()
		return true
	case MaskCooling:
		return false
	default:
		return false
	}
}

// Tick advances the mask timers by dt. Timers clamp to zero and trigger
// their state transition exactly when they expire: Active → Cooling at
// the end of a reveal, Cooling → Inactive when recharged.
func (m *MaskController) Tick(dt time.Duration) {
	switch m.state {
	case MaskActive:
		m.timeRemaining -= dt
		if m.timeRemaining <= 0 {
			m.startCooldown()
		}
	case MaskCooling:
		m.cooldownRemaining -= dt
		if m.cooldownRemaining <= 0 {
			m.state = MaskInactive
			m.cooldownRemaining = 0
		}
	}
}

func (m *MaskController) startCooldown() {
	m.state = MaskCooling
	m.timeRemaining = 0
	m.cooldownRemaining = m.cfg.Cooldown
}

// Active returns true only while the mask is revealing tile truth.
func (m *MaskController) Active() bool {
	return m.state == MaskActive
}

// State returns the current state machine state.
func (m *MaskController) State() MaskState {
	return m.state
}

// TimeRemaining returns the remaining reveal time (zero unless Active).
func (m *MaskController) TimeRemaining() time.Duration {
	return m.timeRemaining
}

// CooldownRemaining returns the remaining recharge time (zero unless Cooling).
func (m *MaskController) CooldownRemaining() time.Duration {
	return m.cooldownRemaining
}

// UsageCount returns how many times the mask was activated this session.
func (m *MaskController) UsageCount() int {
	return m.usageCount
}
