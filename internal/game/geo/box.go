package geo

import (
	"math"

	"github.com/udisondev/abilitycast/internal/model"
)

// Box is an axis-aligned square cell, e.g. a wall tile.
type Box struct {
	Center model.Location
	Size   float64
}

// Min returns the lower-left corner.
func (b Box) Min() model.Location {
	h := b.Size / 2
	return model.Location{X: b.Center.X - h, Y: b.Center.Y - h}
}

// Max returns the upper-right corner.
func (b Box) Max() model.Location {
	h := b.Size / 2
	return model.Location{X: b.Center.X + h, Y: b.Center.Y + h}
}

// Contains reports whether p lies inside the box, borders included.
func (b Box) Contains(p model.Location) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// IntersectsSegment reports whether the segment start→end touches the box.
// Endpoints are inclusive: a segment starting or ending inside the box
// always intersects. Uses the slab method on the parametric segment
// start + t*(end-start), t in [0,1].
func (b Box) IntersectsSegment(start, end model.Location) bool {
	if b.Contains(start) || b.Contains(end) {
		return true
	}

	lo, hi := b.Min(), b.Max()
	tMin, tMax := 0.0, 1.0

	slab := func(s, d, min, max float64) bool {
		if math.Abs(d) < parallelEpsilon {
			// Parallel to the slab: inside only if the origin is.
			return s >= min && s <= max
		}
		t1 := (min - s) / d
		t2 := (max - s) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		return tMin <= tMax
	}

	if !slab(start.X, end.X-start.X, lo.X, hi.X) {
		return false
	}
	return slab(start.Y, end.Y-start.Y, lo.Y, hi.Y)
}
