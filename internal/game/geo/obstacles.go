package geo

import "github.com/udisondev/abilitycast/internal/model"

// Obstacles is the static set of line-of-sight blocking cells.
// Immutable after construction, safe for concurrent reads.
type Obstacles struct {
	cells []Box
}

// NewObstacles builds an obstacle set of tile-sized cells centered on positions.
func NewObstacles(tileSize float64, positions ...model.Location) *Obstacles {
	cells := make([]Box, 0, len(positions))
	for _, p := range positions {
		cells = append(cells, Box{Center: p, Size: tileSize})
	}
	return &Obstacles{cells: cells}
}

// Len returns the number of obstacle cells.
func (o *Obstacles) Len() int {
	if o == nil {
		return 0
	}
	return len(o.cells)
}

// Cells returns a copy of the obstacle cells.
func (o *Obstacles) Cells() []Box {
	if o == nil {
		return nil
	}
	out := make([]Box, len(o.cells))
	copy(out, o.cells)
	return out
}

// CanSeeTarget checks line of sight between two positions.
// Returns true if no obstacle cell intersects the straight segment.
// A nil set has no obstacles.
func (o *Obstacles) CanSeeTarget(from, to model.Location) bool {
	if o == nil {
		return true
	}

	// Cheap reject: cells entirely outside the segment's bounding box.
	minX, maxX := ordered(from.X, to.X)
	minY, maxY := ordered(from.Y, to.Y)

	for _, c := range o.cells {
		lo, hi := c.Min(), c.Max()
		if hi.X < minX || lo.X > maxX || hi.Y < minY || lo.Y > maxY {
			continue
		}
		if c.IntersectsSegment(from, to) {
			return false
		}
	}
	return true
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
