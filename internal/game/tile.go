// Package game provides the core gameplay state machine for The Floor
// Is a Lie: grid movement, the mask timer/cooldown cycle, tile-truth
// resolution and scoring. This package is UI-agnostic and deterministic;
// it never reads the wall clock and performs no I/O.
package game

import "fmt"

// Kind represents the category of a grid cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindReal
	KindFake
	KindStart
	KindExit
)

// String returns the level-file token for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindReal:
		return "real"
	case KindFake:
		return "fake"
	case KindStart:
		return "start"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Rune returns the single-character token used in level file rows.
func (k Kind) Rune() rune {
	switch k {
	case KindEmpty:
		return '.'
	case KindReal:
		return '#'
	case KindFake:
		return '~'
	case KindStart:
		return 'S'
	case KindExit:
		return 'E'
	default:
		return '?'
	}
}

// ParseKind maps a level-file token rune to a tile kind.
func ParseKind(r rune) (Kind, error) {
	switch r {
	case '.', ' ':
		return KindEmpty, nil
	case '#':
		return KindReal, nil
	case '~':
		return KindFake, nil
	case 'S', 's':
		return KindStart, nil
	case 'E', 'e':
		return KindExit, nil
	default:
		return KindEmpty, &InvalidLevelError{
			Code:    CodeBadToken,
			Message: fmt.Sprintf("unknown tile token %q", r),
		}
	}
}

// IsSafe reports whether a tile of this kind can be stepped on without
// falling, given the current mask state. Real, Start and Exit are always
// safe; Empty is never safe; Fake is safe only while the mask is active.
func (k Kind) IsSafe(maskActive bool) bool {
	switch k {
	case KindReal, KindStart, KindExit:
		return true
	case KindFake:
		return maskActive
	case KindEmpty:
		return false
	default:
		return false
	}
}
