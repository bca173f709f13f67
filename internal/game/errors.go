package game

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by grid lookups outside the grid extents.
// Movement is bounds-checked before lookup, so hitting this during play
// indicates a caller bug rather than a game event.
var ErrOutOfBounds = errors.New("coordinate out of grid bounds")

// InvalidLevelError describes malformed level data. It is raised at
// load or save time, never mid-session. Always returned as a pointer
// so errors.As(err, **InvalidLevelError) matches across packages.
type InvalidLevelError struct {
	Code    string
	Message string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level [%s] %s", e.Code, e.Message)
}

// Validation error codes.
const (
	CodeNotRectangular = "NOT_RECTANGULAR"
	CodeBadDimensions  = "BAD_DIMENSIONS"
	CodeNoStart        = "NO_START"
	CodeMultipleStart  = "MULTIPLE_START"
	CodeNoExit         = "NO_EXIT"
	CodeMultipleExit   = "MULTIPLE_EXIT"
	CodeBadToken       = "BAD_TOKEN"
)
