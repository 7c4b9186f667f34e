package core

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

// Snapshot captures the board contents for determinism checks and replay
// verification.
type Snapshot struct {
	Tick   uint64
	Status Status
	Types  [][]TileType
	Hash   uint64
}

// Snapshot returns the current contents. Removed tiles waiting for a refill
// are included with their old type.
func (b *Board) Snapshot() Snapshot {
	types := b.grid.Types()
	return Snapshot{
		Tick:   b.tick,
		Status: b.status,
		Types:  types,
		Hash:   hashTypes(b.status, types),
	}
}

func hashTypes(status Status, types [][]TileType) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	binary.LittleEndian.PutUint16(buf[:2], uint16(len(types)))
	if len(types) > 0 {
		binary.LittleEndian.PutUint16(buf[2:], uint16(len(types[0])))
	}
	h.Write(buf[:])
	h.Write([]byte{byte(status)})
	for _, row := range types {
		for _, tt := range row {
			h.Write([]byte{byte(tt)})
		}
	}
	return h.Sum64()
}

// String renders the types as digits, one row per line.
func (s Snapshot) String() string {
	var sb strings.Builder
	for _, row := range s.Types {
		for _, tt := range row {
			sb.WriteByte('0' + byte(tt)%10)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
