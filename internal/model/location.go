package model

import "math"

// Location is a point on the 2D play field, in world units.
// Value type, passed by value.
type Location struct {
	X float64
	Y float64
}

// NewLocation creates a Location.
func NewLocation(x, y float64) Location {
	return Location{X: x, Y: y}
}

// Add returns l shifted by other.
func (l Location) Add(other Location) Location {
	return Location{X: l.X + other.X, Y: l.Y + other.Y}
}

// Sub returns the vector from other to l.
func (l Location) Sub(other Location) Location {
	return Location{X: l.X - other.X, Y: l.Y - other.Y}
}

// DistanceSquared returns the squared Euclidean distance (no sqrt for hot paths).
func (l Location) DistanceSquared(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to other.
func (l Location) Distance(other Location) float64 {
	return math.Sqrt(l.DistanceSquared(other))
}

// InRange reports whether other is within r (inclusive).
func (l Location) InRange(other Location, r float64) bool {
	return l.DistanceSquared(other) <= r*r
}
