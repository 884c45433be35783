package skill

import (
	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/model"
)

func init() {
	registerMomentary(data.MomentaryDamage, applyDamage)
}

// applyDamage lowers health, clamped at zero.
func applyDamage(target *model.Actor, amount int32) bool {
	return target.Health.Reduce(amount)
}
