// internal/ui/slider.go
package ui

import (
	"fmt"

	"coriolis-view/internal/config"
	"coriolis-view/internal/utils"
	"coriolis-view/pkg/render"
)

// Slider is a horizontal track with a draggable knob, echoed to a readout.
type Slider struct {
	X, Y          float64
	Width, Height float64
	Min, Max      float64
	Value         float64
	Label         string // fmt verb for the readout, e.g. "ω = %.2f rad/s"
	dragging      bool
}

func NewSlider(x, y, width, height, min, max, value float64, label string) *Slider {
	return &Slider{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Min:    min,
		Max:    max,
		Value:  utils.Clamp(value, min, max),
		Label:  label,
	}
}

// Update consumes one frame of pointer input and reports whether Value changed.
// A drag starts only on a press inside the knob's hit area and lasts while
// the button stays down.
func (s *Slider) Update(cursorX, cursorY int, pressed, justPressed bool) bool {
	mx, my := float64(cursorX), float64(cursorY)
	if justPressed && s.contains(mx, my) {
		s.dragging = true
	}
	if !pressed {
		s.dragging = false
		return false
	}
	if !s.dragging {
		return false
	}

	v := utils.Lerp(s.Min, s.Max, utils.InverseLerp(s.X, s.X+s.Width, mx))
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Dragging reports whether the knob is held.
func (s *Slider) Dragging() bool {
	return s.dragging
}

func (s *Slider) contains(mx, my float64) bool {
	pad := config.SliderKnob
	return mx >= s.X-pad && mx <= s.X+s.Width+pad &&
		my >= s.Y-pad && my <= s.Y+s.Height+pad
}

// KnobX is the knob's horizontal center.
func (s *Slider) KnobX() float64 {
	return utils.Lerp(s.X, s.X+s.Width, utils.InverseLerp(s.Min, s.Max, s.Value))
}

// Readout is the label text shown next to the track.
func (s *Slider) Readout() string {
	return fmt.Sprintf(s.Label, s.Value)
}

func (s *Slider) Draw(surface render.Surface) {
	cy := s.Y + s.Height/2
	surface.FillRect(s.X, s.Y, s.Width, s.Height, config.SliderTrackColor)
	// Zero mark
	if s.Min < 0 && s.Max > 0 {
		zx := utils.Lerp(s.X, s.X+s.Width, utils.InverseLerp(s.Min, s.Max, 0))
		surface.StrokeLine(zx, s.Y, zx, s.Y+s.Height, 1, config.TextLightColor)
	}
	surface.FillCircle(s.KnobX(), cy, config.SliderKnob, config.SliderKnobColor)
	surface.Text(s.Readout(), s.X+s.Width+2*config.SliderKnob, cy+config.FontSize/2-2, config.TextLightColor)
}
