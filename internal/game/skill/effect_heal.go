package skill

import (
	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/model"
)

func init() {
	registerMomentary(data.MomentaryHeal, applyHeal)
}

// applyHeal restores health, clamped at max.
func applyHeal(target *model.Actor, amount int32) bool {
	target.Health.Restore(amount)
	return false
}
