package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/abilitycast/internal/model"
)

func loc(x, y float64) model.Location { return model.NewLocation(x, y) }

func TestBoxIntersectsSegment(t *testing.T) {
	box := Box{Center: loc(2, 2), Size: 2}

	tests := []struct {
		name       string
		start, end model.Location
		want       bool
	}{
		{"diagonal up-right through box", loc(1, 0), loc(4, 4), true},
		{"diagonal up-left through box", loc(3, 0), loc(0, 4), true},
		{"diagonal down-left through box", loc(3, 4), loc(1, 0), true},
		{"diagonal down-right through box", loc(1, 4), loc(3, 0), true},
		{"passes left of box", loc(0, 0), loc(1, 4), false},
		{"passes right of box", loc(4, 0), loc(3, 4), false},
		{"horizontal above box", loc(4, 4), loc(0, 4), false},
		{"horizontal through middle", loc(-5, 2), loc(5, 2), true},
		{"vertical through middle", loc(2, -5), loc(2, 5), true},
		{"starts inside", loc(2, 2), loc(10, 10), true},
		{"ends inside", loc(-10, -10), loc(1.5, 1.5), true},
		{"touches corner", loc(0, 2), loc(2, 0), true},
		{"stops short of box", loc(-5, 2), loc(0.5, 2), false},
		{"degenerate point outside", loc(5, 5), loc(5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, box.IntersectsSegment(tt.start, tt.end))
		})
	}
}

func TestBoxBounds(t *testing.T) {
	b := Box{Center: loc(16, 32), Size: DefaultTileSize}

	assert.Equal(t, loc(8, 24), b.Min())
	assert.Equal(t, loc(24, 40), b.Max())
	assert.True(t, b.Contains(loc(8, 40)), "borders are inclusive")
	assert.False(t, b.Contains(loc(7.9, 30)))
}
