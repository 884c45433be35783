package skill

import (
	"time"

	"github.com/udisondev/abilitycast/internal/model"
)

// Deduct takes the cost of a resolved cast. Mana never drops below zero.
func Deduct(a *model.Actor, cost int32) {
	a.Mana.Spend(cost)
}

// SuppressRegen starts (or restarts) the post-cast regeneration block.
func SuppressRegen(a *model.Actor, d time.Duration) {
	a.RegenSuppression = model.NewTimer(d)
	a.RegenStep = nil
}

// TickRegenSuppression advances the suppression window and drops it on expiry.
func TickRegenSuppression(a *model.Actor, dt time.Duration) {
	if a.RegenSuppression == nil {
		return
	}
	a.RegenSuppression.Tick(dt)
	if a.RegenSuppression.Finished() {
		a.RegenSuppression = nil
	}
}

// CanRegenerate reports whether passive regeneration applies to the actor.
func CanRegenerate(a *model.Actor) bool {
	return a.Cast == nil && a.RegenSuppression == nil && !a.IsDead()
}

// Regenerate advances the fixed-step accumulator by dt and applies one
// regeneration step per completed interval. Becoming ineligible discards the
// partial step. Returns the mana actually restored.
func Regenerate(a *model.Actor, interval, dt time.Duration) int32 {
	if !CanRegenerate(a) {
		a.RegenStep = nil
		return 0
	}
	if a.RegenStep == nil {
		a.RegenStep = model.NewRepeatingTimer(interval)
	}
	a.RegenStep.Tick(dt)

	var restored int32
	for range a.RegenStep.TimesFinished() {
		restored += a.Mana.Regenerate()
	}
	return restored
}
