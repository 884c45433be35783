package skill

import (
	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/game/geo"
	"github.com/udisondev/abilitycast/internal/model"
)

// ValidateTarget checks the explicit target of an attempt.
// target is nil when none was supplied or it no longer exists.
// Abilities with only area effects ignore the target.
func ValidateTarget(caster, target *model.Actor, ab *data.Ability, obstacles *geo.Obstacles) error {
	if !ab.RequiresTarget() {
		return nil
	}
	if target == nil || target.IsDead() {
		return ErrNoTarget
	}
	if target == caster {
		return nil
	}
	return InReach(caster, target, ab.Range, obstacles)
}

// InReach checks range then line of sight between two actors.
func InReach(caster, target *model.Actor, reach float64, obstacles *geo.Obstacles) error {
	from, to := caster.Location(), target.Location()
	if !from.InRange(to, reach) {
		return ErrOutOfRange
	}
	if !obstacles.CanSeeTarget(from, to) {
		return ErrNoLineOfSight
	}
	return nil
}

// areaTargets collects living actors other than the caster that are in reach.
func areaTargets(w World, caster *model.Actor, reach float64) []*model.Actor {
	var targets []*model.Actor
	obstacles := w.Obstacles()
	w.ForEachActor(func(a *model.Actor) bool {
		if a == caster || a.IsDead() {
			return true
		}
		if InReach(caster, a, reach, obstacles) == nil {
			targets = append(targets, a)
		}
		return true
	})
	return targets
}
