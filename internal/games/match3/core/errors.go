package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrNotResident is returned when a tile is not in the cell its coordinates name.
	ErrNotResident = errors.New("tile is not resident in the grid")
	// ErrSwapInFlight is returned when a swap participant is already animating.
	ErrSwapInFlight = errors.New("swap already in flight")
	// ErrUnknownDirection is returned for a swap direction outside left/right/top/bottom.
	ErrUnknownDirection = errors.New("unknown swap direction")
	// ErrEmptyGroup is reported when a removal group has no members.
	ErrEmptyGroup = errors.New("empty removal group")
	// ErrInvalidOptions is returned by NewBoard for unusable dimensions or alphabets.
	ErrInvalidOptions = errors.New("invalid board options")
)

// InvariantError reports a programming error caught by the board. The
// offending operation is dropped and the grid is left untouched.
type InvariantError struct {
	Code string
	Err  error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("[%s] %v", e.Code, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
