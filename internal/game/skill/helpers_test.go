package skill

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/abilitycast/internal/game/geo"
	"github.com/udisondev/abilitycast/internal/model"
	"github.com/udisondev/abilitycast/internal/world"
)

// stubRoller returns min magnitudes and a fixed critical sample.
type stubRoller struct {
	sample float64
}

func (r stubRoller) Range(min, _ int32) int32 { return min }
func (r stubRoller) Chance() float64          { return r.sample }

// recorder keeps every event it receives.
type recorder struct {
	NopListener
	applied []MomentaryApplied
	deaths  []ActorDied
}

func (r *recorder) MomentaryApplied(ev MomentaryApplied) { r.applied = append(r.applied, ev) }
func (r *recorder) ActorDied(ev ActorDied)               { r.deaths = append(r.deaths, ev) }

func newTestWorld(t *testing.T, obstacles *geo.Obstacles, actors ...*model.Actor) *world.World {
	t.Helper()
	w := world.New(obstacles)
	for _, a := range actors {
		require.NoError(t, w.AddActor(a))
	}
	return w
}

func newTestActor(id uint32, x, y float64) *model.Actor {
	return model.NewActor(id, "actor", model.NewLocation(x, y), 100, 100, 0, 0)
}
