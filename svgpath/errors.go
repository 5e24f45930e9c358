package svgpath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPathState is returned when drawing on a closed path.
	ErrInvalidPathState = errors.New("invalid path state")

	// ErrMalformedInput is returned for coordinates or angles
	// which can't produce valid path data.
	ErrMalformedInput = errors.New("malformed input")
)

// StateError reports the drawing operation rejected
// because of the path state.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("svgpath: cannot call %s on a %s path", e.Op, e.State)
}

func (e *StateError) Unwrap() error { return ErrInvalidPathState }
