// internal/utils/vec.go
package utils

import "math"

// Vec2 is a point or direction in the global frame.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector of v. The second result is false for
// the zero vector, in which case the zero vector is returned.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Rotate turns v by angle radians around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Polar returns the point at distance r from the origin along angle.
func Polar(r, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: r * cos, Y: r * sin}
}
