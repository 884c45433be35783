package skill

import (
	"fmt"

	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/model"
)

// momentaryHandler changes target health by amount.
// Returns true if this change killed the target.
type momentaryHandler func(target *model.Actor, amount int32) bool

// lastingHandler describes what an active lasting condition does to its bearer.
type lastingHandler struct {
	// blocksAbilities rejects every ability attempt of the bearer.
	blocksAbilities bool
}

// Populated by init() in the individual effect files.
var (
	momentaryHandlers = map[data.MomentaryKind]momentaryHandler{}
	lastingHandlers   = map[data.LastingKind]lastingHandler{}
)

func registerMomentary(kind data.MomentaryKind, h momentaryHandler) {
	if _, dup := momentaryHandlers[kind]; dup {
		panic(fmt.Sprintf("skill: momentary handler %s registered twice", kind))
	}
	momentaryHandlers[kind] = h
}

func registerLasting(kind data.LastingKind, h lastingHandler) {
	if _, dup := lastingHandlers[kind]; dup {
		panic(fmt.Sprintf("skill: lasting handler %s registered twice", kind))
	}
	lastingHandlers[kind] = h
}
