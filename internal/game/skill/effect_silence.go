package skill

import (
	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/model"
)

func init() {
	registerLasting(data.LastingSilence, lastingHandler{blocksAbilities: true})
}

// IsSilenced reports whether an active lasting condition blocks the actor's abilities.
func IsSilenced(a *model.Actor) bool {
	for _, le := range a.Lasting {
		if lastingHandlers[le.Kind].blocksAbilities {
			return true
		}
	}
	return false
}
