package model

import (
	"sync"

	"github.com/udisondev/abilitycast/internal/data"
)

// Actor is a player or creature taking part in combat.
//
// Location and the moving flag are written by the movement collaborator and
// guarded by mu. Every other field is owned by the ability engine and only
// mutated from its tick goroutine.
type Actor struct {
	objectID uint32
	name     string

	mu       sync.RWMutex
	location Location
	moving   bool

	Health   Health
	Mana     Mana
	critical float64

	// Cast is the in-progress cast, at most one per actor.
	Cast *CastState
	// GlobalCooldown blocks any new attempt while present.
	GlobalCooldown *Timer
	// AbilityCooldowns holds per-ability countdowns, removed on expiry.
	AbilityCooldowns map[data.AbilityID]*Timer
	// RegenSuppression blocks mana regeneration after a completed cast.
	RegenSuppression *Timer
	// RegenStep accumulates time toward the next fixed regeneration step.
	RegenStep *Timer

	Lasting  []*LastingEffect
	Periodic []*PeriodicEffect
}

// NewActor creates an actor with full health and mana.
func NewActor(objectID uint32, name string, loc Location, maxHP, maxMP, manaRegen int32, critical float64) *Actor {
	return &Actor{
		objectID:         objectID,
		name:             name,
		location:         loc,
		Health:           NewHealth(maxHP),
		Mana:             NewMana(maxMP, manaRegen),
		critical:         clampProbability(critical),
		AbilityCooldowns: make(map[data.AbilityID]*Timer),
	}
}

// ObjectID returns the unique actor id (immutable).
func (a *Actor) ObjectID() uint32 {
	return a.objectID
}

// Name returns the display name.
func (a *Actor) Name() string {
	return a.name
}

// Location returns a copy of the current position.
func (a *Actor) Location() Location {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.location
}

// SetLocation moves the actor.
func (a *Actor) SetLocation(loc Location) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.location = loc
}

// IsMoving reports whether the actor is currently changing position.
func (a *Actor) IsMoving() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.moving
}

// SetMoving sets the "is changing position" signal.
func (a *Actor) SetMoving(moving bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.moving = moving
}

// Critical returns the probability in [0,1] that a momentary effect
// caused by this actor is amplified.
func (a *Actor) Critical() float64 {
	return a.critical
}

// SetCritical sets the critical probability, clamped to [0,1].
func (a *Actor) SetCritical(p float64) {
	a.critical = clampProbability(p)
}

// IsCasting reports whether a cast is in progress.
func (a *Actor) IsCasting() bool {
	return a.Cast != nil
}

// IsDead reports whether the actor's health reached zero.
func (a *Actor) IsDead() bool {
	return a.Health.IsDead()
}

func clampProbability(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
