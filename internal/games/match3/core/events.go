package core

// Event is emitted by the board for collaborators such as the scorekeeper.
// Events are queued during a tick and returned in the StepResult.
type Event interface {
	event()
}

// StatusChanged is emitted on every state machine transition.
type StatusChanged struct {
	From Status
	To   Status
}

// SwapApplied is emitted when a swap arc lands and the two tiles have
// exchanged cells. A and B carry the post-swap coordinates.
type SwapApplied struct {
	A TileInfo
	B TileInfo
}

// GroupsRemoved is emitted once per settle cycle that finds matches.
// Cascade is 0 for matches caused directly by a swap and grows by one for
// each refill that produces new matches.
type GroupsRemoved struct {
	Groups  [][]TileInfo
	Cascade int
}

// Tiles returns the total number of tiles across all groups.
func (e GroupsRemoved) Tiles() int {
	n := 0
	for _, grp := range e.Groups {
		n += len(grp)
	}
	return n
}

// RoundSettled is emitted when the board reaches Blocked or Idle with no
// pending animation after a swap.
type RoundSettled struct {
	Status   Status
	Cascades int
	Removed  int
}

func (StatusChanged) event() {}
func (SwapApplied) event()   {}
func (GroupsRemoved) event() {}
func (RoundSettled) event()  {}

// StepResult is returned by Board.Step.
type StepResult struct {
	Tick   uint64
	Status Status
	Events []Event
}
