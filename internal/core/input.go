package core

// Action represents a semantic game intent, abstracted from physical
// key presses. The game core consumes intents, never raw device events.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveUp            // W, Up arrow
	ActionMoveDown          // S, Down arrow
	ActionMoveLeft          // A, Left arrow
	ActionMoveRight         // D, Right arrow
	ActionToggleMask        // M, Space - reveal tile truth
	ActionRestart           // R - restart the current attempt
	ActionEnterEditor       // E - open the level editor
	ActionConfirm           // Enter - confirm selection in menus
	ActionBack              // Esc - back to menu
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionToggleMask:
		return "ToggleMask"
	case ActionRestart:
		return "Restart"
	case ActionEnterEditor:
		return "EnterEditor"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the intents triggered between two simulation
// ticks. The platform fills it from key events and drains it each tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
