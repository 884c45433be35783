package model

import (
	"github.com/google/uuid"

	"github.com/udisondev/abilitycast/internal/data"
)

// LastingEffect is an active status condition on an actor.
type LastingEffect struct {
	Kind      data.LastingKind
	AbilityID data.AbilityID
	SourceID  uint32
	Timer     *Timer
	Fresh     bool
}

// NewLastingEffect creates a lasting effect instance.
func NewLastingEffect(l data.Lasting, abilityID data.AbilityID, sourceID uint32) *LastingEffect {
	return &LastingEffect{
		Kind:      l.Kind,
		AbilityID: abilityID,
		SourceID:  sourceID,
		Timer:     NewTimer(l.Duration),
		Fresh:     true,
	}
}

// PeriodicEffect is an active damage- or heal-over-time on an actor.
// Interval and Duration advance independently every tick.
type PeriodicEffect struct {
	ID        uuid.UUID
	Momentary data.Momentary
	AbilityID data.AbilityID
	SourceID  uint32
	Interval  *Timer
	Duration  *Timer
	Fired     int
	Fresh     bool
}

// NewPeriodicEffect creates a periodic effect instance from a periodic momentary effect.
func NewPeriodicEffect(m data.Momentary, abilityID data.AbilityID, sourceID uint32) *PeriodicEffect {
	return &PeriodicEffect{
		ID:        uuid.New(),
		Momentary: m,
		AbilityID: abilityID,
		SourceID:  sourceID,
		Interval:  NewRepeatingTimer(m.Schedule.Interval),
		Duration:  NewTimer(m.Schedule.Duration),
		Fresh:     true,
	}
}

// RemainingFires returns how many applications are still owed.
func (p *PeriodicEffect) RemainingFires() int {
	n := p.Momentary.Schedule.Ticks() - p.Fired
	if n < 0 {
		return 0
	}
	return n
}
