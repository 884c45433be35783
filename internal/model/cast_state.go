package model

import (
	"github.com/google/uuid"

	"github.com/udisondev/abilitycast/internal/data"
)

// CastState is an accepted, not yet resolved timed cast.
type CastState struct {
	ID      uuid.UUID
	Ability *data.Ability
	// TargetID is locked at acceptance; 0 means no explicit target.
	TargetID uint32
	Timer    *Timer
	// Fresh is set for the tick in which the cast was accepted;
	// the timer starts advancing on the following tick.
	Fresh bool
}

// NewCastState creates a cast for ability against targetID.
func NewCastState(ability *data.Ability, targetID uint32) *CastState {
	return &CastState{
		ID:       uuid.New(),
		Ability:  ability,
		TargetID: targetID,
		Timer:    NewTimer(ability.CastDuration),
		Fresh:    true,
	}
}

// Progress implements Progressive as (elapsed, total) in seconds.
func (c *CastState) Progress() (float64, float64) {
	return c.Timer.Progress()
}
