package world

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/udisondev/abilitycast/internal/game/geo"
	"github.com/udisondev/abilitycast/internal/model"
)

// World is the registry of actors taking part in combat plus the static
// obstacles of the current zone.
//
// Iteration order is insertion order so that a tick processes actors
// deterministically.
type World struct {
	mu        sync.RWMutex
	actors    map[uint32]*model.Actor
	order     []uint32
	obstacles *geo.Obstacles
	ids       *ObjectIDGenerator
}

// New creates an empty world with the given obstacles (nil = open field).
func New(obstacles *geo.Obstacles) *World {
	return &World{
		actors:    make(map[uint32]*model.Actor),
		obstacles: obstacles,
		ids:       NewObjectIDGenerator(),
	}
}

// IDGenerator returns the world's actor ID generator.
func (w *World) IDGenerator() *ObjectIDGenerator {
	return w.ids
}

// AddActor registers an actor.
// Returns error if the id is zero or already present.
func (w *World) AddActor(a *model.Actor) error {
	if a.ObjectID() == 0 {
		return fmt.Errorf("actor %q has invalid object id 0", a.Name())
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.actors[a.ObjectID()]; exists {
		return fmt.Errorf("actor %d already in world", a.ObjectID())
	}
	w.actors[a.ObjectID()] = a
	w.order = append(w.order, a.ObjectID())

	slog.Debug("actor added", "objectID", a.ObjectID(), "name", a.Name())
	return nil
}

// RemoveActor removes an actor. Unknown ids are ignored.
func (w *World) RemoveActor(objectID uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.actors[objectID]; !ok {
		return
	}
	delete(w.actors, objectID)
	w.order = slices.DeleteFunc(w.order, func(id uint32) bool { return id == objectID })
}

// Actor returns the actor with the given id.
func (w *World) Actor(objectID uint32) (*model.Actor, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	a, ok := w.actors[objectID]
	return a, ok
}

// ActorCount returns the number of registered actors.
func (w *World) ActorCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.actors)
}

// ForEachActor calls fn for every actor in insertion order until fn returns false.
// Iterates a snapshot: fn may add or remove actors.
func (w *World) ForEachActor(fn func(*model.Actor) bool) {
	w.mu.RLock()
	snapshot := make([]*model.Actor, 0, len(w.order))
	for _, id := range w.order {
		snapshot = append(snapshot, w.actors[id])
	}
	w.mu.RUnlock()

	for _, a := range snapshot {
		if !fn(a) {
			return
		}
	}
}

// Obstacles returns the static line-of-sight obstacles.
func (w *World) Obstacles() *geo.Obstacles {
	return w.obstacles
}
