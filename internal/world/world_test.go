package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/abilitycast/internal/model"
)

func newTestActor(id uint32, name string) *model.Actor {
	return model.NewActor(id, name, model.NewLocation(0, 0), 80, 40, 1, 0)
}

func TestWorld_AddGetRemove(t *testing.T) {
	w := New(nil)

	hero := newTestActor(0x10000001, "hero")
	require.NoError(t, w.AddActor(hero))

	got, ok := w.Actor(hero.ObjectID())
	require.True(t, ok)
	assert.Same(t, hero, got)
	assert.Equal(t, 1, w.ActorCount())

	assert.Error(t, w.AddActor(hero), "duplicate id")
	assert.Error(t, w.AddActor(newTestActor(0, "ghost")), "zero id is reserved")

	w.RemoveActor(hero.ObjectID())
	_, ok = w.Actor(hero.ObjectID())
	assert.False(t, ok)
	assert.Equal(t, 0, w.ActorCount())

	w.RemoveActor(12345) // unknown id is a no-op
}

func TestWorld_ForEachActorInsertionOrder(t *testing.T) {
	w := New(nil)
	ids := []uint32{0x20000003, 0x10000001, 0x20000001, 0x20000002}
	for _, id := range ids {
		require.NoError(t, w.AddActor(newTestActor(id, "a")))
	}
	w.RemoveActor(0x20000001)

	var seen []uint32
	w.ForEachActor(func(a *model.Actor) bool {
		seen = append(seen, a.ObjectID())
		return true
	})
	assert.Equal(t, []uint32{0x20000003, 0x10000001, 0x20000002}, seen)
}

func TestWorld_ForEachActorStopsAndAllowsRemoval(t *testing.T) {
	w := New(nil)
	for _, id := range []uint32{1, 2, 3} {
		require.NoError(t, w.AddActor(newTestActor(id, "a")))
	}

	visited := 0
	w.ForEachActor(func(a *model.Actor) bool {
		visited++
		w.RemoveActor(a.ObjectID())
		return visited < 2
	})
	assert.Equal(t, 2, visited)
	assert.Equal(t, 1, w.ActorCount())
}

func TestObjectIDGenerator(t *testing.T) {
	gen := NewObjectIDGenerator()

	p1, p2 := gen.NextPlayerID(), gen.NextPlayerID()
	c1 := gen.NextCreatureID()

	assert.NotEqual(t, p1, p2)
	assert.True(t, IsPlayerID(p1))
	assert.False(t, IsPlayerID(c1))
	assert.False(t, IsPlayerID(0))
}
