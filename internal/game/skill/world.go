package skill

import (
	"github.com/udisondev/abilitycast/internal/game/geo"
	"github.com/udisondev/abilitycast/internal/model"
)

// World is the actor lookup the engine resolves ids against.
// Implemented by *world.World.
type World interface {
	Actor(objectID uint32) (*model.Actor, bool)
	// ForEachActor visits actors in deterministic order until fn returns false.
	ForEachActor(fn func(*model.Actor) bool)
	Obstacles() *geo.Obstacles
}
