// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"coriolis-view/pkg/render"
)

// StateIndicator is a dot colored by the projectile state. It pulses briefly
// whenever the color changes.
type StateIndicator struct {
	X, Y       float64
	Radius     float64
	lastColor  color.RGBA
	lastChange time.Time
	now        func() time.Time
}

func NewStateIndicator(x, y, radius float64) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
		now:    time.Now,
	}
}

// CurrentRadius is the radius including the decaying pulse.
func (i *StateIndicator) CurrentRadius() float64 {
	if i.lastChange.IsZero() {
		return i.Radius
	}
	elapsed := i.now().Sub(i.lastChange).Seconds()
	return i.Radius * (1.0 + 0.3*math.Exp(-elapsed*8))
}

// Draw paints the indicator, starting a pulse if stateColor changed.
func (i *StateIndicator) Draw(surface render.Surface, stateColor color.RGBA) {
	if stateColor != i.lastColor {
		if i.lastColor != (color.RGBA{}) {
			i.lastChange = i.now()
		}
		i.lastColor = stateColor
	}
	r := i.CurrentRadius()
	surface.FillCircle(i.X, i.Y, r+2, color.White)
	surface.FillCircle(i.X, i.Y, r, stateColor)
}
