package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/game/geo"
	"github.com/udisondev/abilitycast/internal/model"
)

func TestValidateTarget(t *testing.T) {
	single := &data.Ability{Name: "Bolt", Range: 100, Effect: data.TargetedEffect{Effect: data.Damage(1, 1)}}
	area := &data.Ability{Name: "Nova", Range: 100, Effect: data.TargetedEffect{Effect: data.Damage(1, 1), Mode: data.TargetArea}}
	wall := geo.NewObstacles(geo.DefaultTileSize, model.NewLocation(50, 0))

	caster := newTestActor(1, 0, 0)
	dead := newTestActor(5, 10, 0)
	dead.Health.Set(0)

	tests := []struct {
		name      string
		target    *model.Actor
		ab        *data.Ability
		obstacles *geo.Obstacles
		want      error
	}{
		{"no target", nil, single, nil, ErrNoTarget},
		{"dead target", dead, single, nil, ErrNoTarget},
		{"area ignores target", nil, area, nil, nil},
		{"self skips range and sight", caster, single, wall, nil},
		{"in range", newTestActor(2, 100, 0), single, nil, nil},
		{"out of range", newTestActor(3, 100.5, 0), single, nil, ErrOutOfRange},
		{"wall in between", newTestActor(4, 90, 0), single, wall, ErrNoLineOfSight},
		{"wall beside the line", newTestActor(4, 0, 90), single, wall, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTarget(caster, tt.target, tt.ab, tt.obstacles)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAreaTargets_RangeSightAndLiveness(t *testing.T) {
	caster := newTestActor(1, 0, 0)
	near := newTestActor(2, 50, 0)
	far := newTestActor(3, 90, 0)
	hidden := newTestActor(4, 0, -60)
	corpse := newTestActor(5, 0, 40)
	corpse.Health.Set(0)

	wall := geo.NewObstacles(geo.DefaultTileSize, model.NewLocation(0, -30))
	w := newTestWorld(t, wall, caster, near, far, hidden, corpse)

	got := areaTargets(w, caster, 80)
	assert.Equal(t, []*model.Actor{near}, got)
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(ErrSilenced))
	assert.True(t, IsRejection(ErrNoLineOfSight))
	assert.False(t, IsRejection(ErrNotCasting))
	assert.False(t, IsRejection(nil))
}
