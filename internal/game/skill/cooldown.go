package skill

import (
	"fmt"
	"time"

	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/model"
)

// StartGlobalCooldown blocks every new attempt of the actor for d.
func StartGlobalCooldown(a *model.Actor, d time.Duration) {
	a.GlobalCooldown = model.NewTimer(d)
}

// StartAbilityCooldown blocks re-casting ab for its cooldown duration.
// Panics if the ability has no cooldown.
func StartAbilityCooldown(a *model.Actor, ab *data.Ability) {
	if !ab.HasCooldown() {
		panic(fmt.Sprintf("skill: ability %q has zero cooldown", ab.Name))
	}
	a.AbilityCooldowns[ab.ID] = model.NewTimer(ab.Cooldown)
}

// OnGlobalCooldown reports whether the global cooldown is active.
func OnGlobalCooldown(a *model.Actor) bool {
	return a.GlobalCooldown != nil
}

// OnAbilityCooldown reports whether id is on cooldown for the actor.
func OnAbilityCooldown(a *model.Actor, id data.AbilityID) bool {
	_, ok := a.AbilityCooldowns[id]
	return ok
}

// TickCooldowns advances the global and per-ability cooldowns and removes
// the finished ones, so an attempt later in the same tick sees them gone.
func TickCooldowns(a *model.Actor, dt time.Duration) {
	if a.GlobalCooldown != nil {
		a.GlobalCooldown.Tick(dt)
		if a.GlobalCooldown.Finished() {
			a.GlobalCooldown = nil
		}
	}
	for id, t := range a.AbilityCooldowns {
		t.Tick(dt)
		if t.Finished() {
			delete(a.AbilityCooldowns, id)
		}
	}
}
