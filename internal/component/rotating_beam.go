// internal/component/rotating_beam.go
package component

import "image/color"

// Beam holds the state of the rotating beam. Angle is never wrapped.
type Beam struct {
	Angle        float64
	AngularSpeed float64 // rad/s, may be zero or negative
	HalfLength   float64
	Thickness    float64
	CapRadius    float64
	Color        color.RGBA
	CapColor     color.RGBA
}
