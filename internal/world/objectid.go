package world

import "sync/atomic"

// ObjectIDGenerator generates unique actor IDs.
//
// ID ranges (convention):
//
//	0x00000000            : invalid / "no target"
//	0x10000000 - 0x1FFFFFFF: players
//	0x20000000 - 0x2FFFFFFF: creatures
type ObjectIDGenerator struct {
	nextPlayerID   atomic.Uint32
	nextCreatureID atomic.Uint32
}

const (
	playerIDBase   = 0x10000000
	creatureIDBase = 0x20000000
)

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(playerIDBase)
	gen.nextCreatureID.Store(creatureIDBase)
	return gen
}

// NextPlayerID generates the next player ID. Thread-safe.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextCreatureID generates the next creature ID. Thread-safe.
func (g *ObjectIDGenerator) NextCreatureID() uint32 {
	return g.nextCreatureID.Add(1)
}

// IsPlayerID reports whether id falls in the player range.
func IsPlayerID(id uint32) bool {
	return id > playerIDBase && id < creatureIDBase
}
