package data

import (
	"errors"
	"fmt"
	"time"
)

// AbilityID identifies an ability definition. Cooldowns are keyed by it.
type AbilityID int32

// TargetMode defines how an effect resolves its targets.
type TargetMode int8

const (
	TargetSingle TargetMode = iota // explicit target entity
	TargetArea                     // every valid creature in range, caster excluded
)

// String returns the YAML spelling of the mode.
func (m TargetMode) String() string {
	switch m {
	case TargetSingle:
		return "single"
	case TargetArea:
		return "area"
	default:
		return fmt.Sprintf("TargetMode(%d)", int8(m))
	}
}

// MomentaryKind is the health change applied by a momentary effect.
type MomentaryKind int8

const (
	MomentaryDamage MomentaryKind = iota
	MomentaryHeal
)

func (k MomentaryKind) String() string {
	switch k {
	case MomentaryDamage:
		return "damage"
	case MomentaryHeal:
		return "heal"
	default:
		return fmt.Sprintf("MomentaryKind(%d)", int8(k))
	}
}

// LastingKind is a status condition applied by a lasting effect.
type LastingKind int8

const (
	// LastingSilence blocks every ability attempt of the affected actor.
	LastingSilence LastingKind = iota
)

func (k LastingKind) String() string {
	switch k {
	case LastingSilence:
		return "silence"
	default:
		return fmt.Sprintf("LastingKind(%d)", int8(k))
	}
}

// Schedule controls when a momentary effect fires.
// Zero value means Once.
type Schedule struct {
	Periodic bool
	Interval time.Duration
	Duration time.Duration
}

// Ticks returns how many times a periodic schedule fires over its duration.
func (s Schedule) Ticks() int {
	if !s.Periodic || s.Interval <= 0 {
		return 1
	}
	return int(s.Duration / s.Interval)
}

// Momentary is an instant or periodically repeating health change.
// Magnitude is drawn uniformly from [Min, Max].
type Momentary struct {
	Kind     MomentaryKind
	Min      int32
	Max      int32
	Schedule Schedule
}

// Lasting is a status condition with a fixed duration.
type Lasting struct {
	Kind     LastingKind
	Duration time.Duration
}

// Effect is a tagged union: exactly one of Momentary or Lasting is set.
type Effect struct {
	Momentary *Momentary
	Lasting   *Lasting
}

// Damage returns a one-shot damage effect.
func Damage(min, max int32) Effect {
	return Effect{Momentary: &Momentary{Kind: MomentaryDamage, Min: min, Max: max}}
}

// Heal returns a one-shot heal effect.
func Heal(min, max int32) Effect {
	return Effect{Momentary: &Momentary{Kind: MomentaryHeal, Min: min, Max: max}}
}

// DamageOverTime returns a periodic damage effect.
func DamageOverTime(min, max int32, interval, duration time.Duration) Effect {
	return Effect{Momentary: &Momentary{
		Kind: MomentaryDamage,
		Min:  min,
		Max:  max,
		Schedule: Schedule{
			Periodic: true,
			Interval: interval,
			Duration: duration,
		},
	}}
}

// HealOverTime returns a periodic heal effect.
func HealOverTime(min, max int32, interval, duration time.Duration) Effect {
	e := DamageOverTime(min, max, interval, duration)
	e.Momentary.Kind = MomentaryHeal
	return e
}

// Silence returns a lasting silence effect.
func Silence(duration time.Duration) Effect {
	return Effect{Lasting: &Lasting{Kind: LastingSilence, Duration: duration}}
}

// Validate checks the union invariant and magnitudes.
func (e Effect) Validate() error {
	switch {
	case e.Momentary != nil && e.Lasting != nil:
		return errors.New("effect is both momentary and lasting")
	case e.Momentary != nil:
		m := e.Momentary
		if m.Min < 0 || m.Max < m.Min {
			return fmt.Errorf("invalid magnitude range [%d, %d]", m.Min, m.Max)
		}
		if m.Schedule.Periodic {
			if m.Schedule.Interval <= 0 {
				return fmt.Errorf("periodic interval must be positive, got %s", m.Schedule.Interval)
			}
			if m.Schedule.Duration < m.Schedule.Interval {
				return fmt.Errorf("periodic duration %s shorter than interval %s", m.Schedule.Duration, m.Schedule.Interval)
			}
		}
		return nil
	case e.Lasting != nil:
		if e.Lasting.Duration <= 0 {
			return fmt.Errorf("lasting duration must be positive, got %s", e.Lasting.Duration)
		}
		return nil
	default:
		return errors.New("effect has no kind")
	}
}

// TargetedEffect pairs an effect with the target mode it resolves against.
type TargetedEffect struct {
	Effect Effect
	Mode   TargetMode
}

// Ability is the immutable definition of a castable action.
// Shared between all actors, never modified after load.
type Ability struct {
	ID           AbilityID
	Name         string
	ManaCost     int32
	CastDuration time.Duration // 0 = instant
	Cooldown     time.Duration // 0 = none
	Range        float64

	Effect    TargetedEffect
	Secondary *TargetedEffect
}

// IsInstant reports whether the ability resolves at acceptance.
func (a *Ability) IsInstant() bool {
	return a.CastDuration <= 0
}

// HasCooldown reports whether resolving the ability starts a per-ability cooldown.
func (a *Ability) HasCooldown() bool {
	return a.Cooldown > 0
}

// Effects returns the primary effect followed by the secondary, if any.
func (a *Ability) Effects() []TargetedEffect {
	if a.Secondary == nil {
		return []TargetedEffect{a.Effect}
	}
	return []TargetedEffect{a.Effect, *a.Secondary}
}

// RequiresTarget reports whether any effect uses single target mode.
func (a *Ability) RequiresTarget() bool {
	for _, te := range a.Effects() {
		if te.Mode == TargetSingle {
			return true
		}
	}
	return false
}

// Validate checks the definition for authoring mistakes.
func (a *Ability) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("ability %d: empty name", a.ID)
	}
	if a.ManaCost < 0 {
		return fmt.Errorf("ability %q: negative mana cost %d", a.Name, a.ManaCost)
	}
	if a.CastDuration < 0 || a.Cooldown < 0 {
		return fmt.Errorf("ability %q: negative duration", a.Name)
	}
	if a.Range < 0 {
		return fmt.Errorf("ability %q: negative range %v", a.Name, a.Range)
	}
	for i, te := range a.Effects() {
		if err := te.Effect.Validate(); err != nil {
			return fmt.Errorf("ability %q effect %d: %w", a.Name, i, err)
		}
		if te.Mode != TargetSingle && te.Mode != TargetArea {
			return fmt.Errorf("ability %q effect %d: unknown target mode %d", a.Name, i, te.Mode)
		}
	}
	return nil
}
