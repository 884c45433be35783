package skill

import (
	"github.com/google/uuid"

	"github.com/udisondev/abilitycast/internal/data"
)

//go:generate mockgen -destination=mock/mock_listener.go -package=mockskill -source=listener.go

// Listener observes the engine: cast bars, combat text, combat log.
// Callbacks run on the tick goroutine and must not block.
type Listener interface {
	AttemptRejected(ev AttemptRejected)
	CastStarted(ev CastEvent)
	CastStopped(ev CastEvent)
	CastCompleted(ev CastEvent)
	MomentaryApplied(ev MomentaryApplied)
	ActorDied(ev ActorDied)
}

// StopReason explains why a cast ended without resolving.
type StopReason int8

const (
	StopNone StopReason = iota
	StopMovement
	StopCancelled
	StopCasterDied
)

func (r StopReason) String() string {
	switch r {
	case StopMovement:
		return "movement"
	case StopCancelled:
		return "cancelled"
	case StopCasterDied:
		return "caster_died"
	default:
		return "none"
	}
}

// AttemptRejected is emitted for every rejected ability attempt.
type AttemptRejected struct {
	SourceID  uint32
	AbilityID data.AbilityID
	TargetID  uint32
	Reason    error
}

// CastEvent describes a cast lifecycle transition.
// Instant abilities emit CastCompleted with a nil CastID.
type CastEvent struct {
	CastID    uuid.UUID
	SourceID  uint32
	AbilityID data.AbilityID
	TargetID  uint32
	Reason    StopReason
}

// MomentaryApplied is emitted for each momentary application on a target.
type MomentaryApplied struct {
	SourceID  uint32
	TargetID  uint32
	AbilityID data.AbilityID
	Kind      data.MomentaryKind
	Amount    int32
	Critical  bool
	Periodic  bool
	// EffectID identifies the periodic instance that fired. Nil for one-shot applications.
	EffectID  uuid.UUID
}

// ActorDied is emitted when damage brings an actor's health to zero.
type ActorDied struct {
	ActorID  uint32
	KillerID uint32
}

// NopListener ignores every event. Embed it to implement only a subset.
type NopListener struct{}

func (NopListener) AttemptRejected(AttemptRejected)   {}
func (NopListener) CastStarted(CastEvent)             {}
func (NopListener) CastStopped(CastEvent)             {}
func (NopListener) CastCompleted(CastEvent)           {}
func (NopListener) MomentaryApplied(MomentaryApplied) {}
func (NopListener) ActorDied(ActorDied)               {}

// Listeners fans events out to several listeners in order.
type Listeners []Listener

func (ls Listeners) AttemptRejected(ev AttemptRejected) {
	for _, l := range ls {
		l.AttemptRejected(ev)
	}
}

func (ls Listeners) CastStarted(ev CastEvent) {
	for _, l := range ls {
		l.CastStarted(ev)
	}
}

func (ls Listeners) CastStopped(ev CastEvent) {
	for _, l := range ls {
		l.CastStopped(ev)
	}
}

func (ls Listeners) CastCompleted(ev CastEvent) {
	for _, l := range ls {
		l.CastCompleted(ev)
	}
}

func (ls Listeners) MomentaryApplied(ev MomentaryApplied) {
	for _, l := range ls {
		l.MomentaryApplied(ev)
	}
}

func (ls Listeners) ActorDied(ev ActorDied) {
	for _, l := range ls {
		l.ActorDied(ev)
	}
}
