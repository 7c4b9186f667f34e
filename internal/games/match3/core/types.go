// Package core provides the grid, match and animation state machine for the
// match-3 puzzle. This package is UI-agnostic and deterministic: every state
// change happens inside Board.Step or one of the touch handlers.
package core

// TileType is the color key of a tile. It is the only field compared when
// looking for runs.
type TileType uint8

// TileID identifies a tile in the board arena. IDs are never reused.
type TileID int

// MinRun is the shortest run of equal tiles that is removed.
const MinRun = 3

// DefaultTileTypes is the size of the tile alphabet.
const DefaultTileTypes = 5

// Status is the state of the board state machine.
type Status uint8

const (
	StatusIdle Status = iota
	StatusSelectStart
	StatusSelectMove
	StatusSelectEnd
	StatusRemoving
	StatusFalling
	StatusBlocked
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusSelectStart:
		return "SelectStart"
	case StatusSelectMove:
		return "SelectMove"
	case StatusSelectEnd:
		return "SelectEnd"
	case StatusRemoving:
		return "Removing"
	case StatusFalling:
		return "Falling"
	case StatusBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// Selecting reports whether the status belongs to a touch gesture.
func (s Status) Selecting() bool {
	return s == StatusSelectStart || s == StatusSelectMove || s == StatusSelectEnd
}

// Direction is the side a swapped tile travels towards.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirTop
	DirBottom
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four swap directions.
func (d Direction) Valid() bool {
	return d <= DirBottom
}
