// Package motion provides tile-by-tile movement driven by an external tick.
package motion

import "math"

// Vec2 is a position in board space. Whole numbers are cell centers.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// SqrMagnitude returns the squared length of v.
func (v Vec2) SqrMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y
}

// MoveTowards moves current in a straight line toward target by at most maxDelta.
// The target is returned exactly once it is within reach.
func MoveTowards(current, target Vec2, maxDelta float64) Vec2 {
	d := target.Sub(current)
	dist := math.Sqrt(d.SqrMagnitude())
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return Vec2{
		X: current.X + d.X/dist*maxDelta,
		Y: current.Y + d.Y/dist*maxDelta,
	}
}
