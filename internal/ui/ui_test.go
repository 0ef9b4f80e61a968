package ui

import (
	"image/color"
	"testing"
	"time"

	"coriolis-view/internal/config"
	"coriolis-view/pkg/render"

	"github.com/stretchr/testify/assert"
)

func newTestSlider() *Slider {
	return NewSlider(20, 18, 260, 12, -3, 3, 1, "ω = %.2f rad/s")
}

func TestSliderDrag(t *testing.T) {
	s := newTestSlider()
	assert.InDelta(t, 20+260*(4.0/6.0), s.KnobX(), 1e-9)

	// Press on the track and drag to the far left.
	assert.True(t, s.Update(150, 24, true, true))
	assert.True(t, s.Dragging())
	assert.InDelta(t, 0, s.Value, 1e-9)

	assert.True(t, s.Update(-50, 200, true, false))
	assert.Equal(t, -3.0, s.Value)

	// Same spot again: nothing changes.
	assert.False(t, s.Update(-50, 200, true, false))

	// Release ends the drag; moving without a press does nothing.
	assert.False(t, s.Update(280, 24, false, false))
	assert.False(t, s.Dragging())
	assert.False(t, s.Update(280, 24, false, false))
	assert.Equal(t, -3.0, s.Value)
}

func TestSliderIgnoresPressOutside(t *testing.T) {
	s := newTestSlider()
	assert.False(t, s.Update(600, 300, true, true))
	assert.False(t, s.Update(100, 24, true, false))
	assert.Equal(t, 1.0, s.Value)
}

func TestSliderReadout(t *testing.T) {
	s := newTestSlider()
	assert.Equal(t, "ω = 1.00 rad/s", s.Readout())
	s.Value = -0.5
	assert.Equal(t, "ω = -0.50 rad/s", s.Readout())
}

func TestSliderClampsInitialValue(t *testing.T) {
	s := NewSlider(0, 0, 100, 10, -1, 1, 5, "%.1f")
	assert.Equal(t, 1.0, s.Value)
}

func TestSliderDraw(t *testing.T) {
	s := newTestSlider()
	surface := render.NewRasterSurface(400, 48, nil)
	surface.Clear(color.Black)
	s.Draw(surface)

	assert.Equal(t, config.SliderKnobColor, surface.Image().RGBAAt(int(s.KnobX()), 24))
	assert.Equal(t, config.SliderTrackColor, surface.Image().RGBAAt(40, 24))
}

func TestStateIndicatorPulse(t *testing.T) {
	now := time.Unix(100, 0)
	ind := NewStateIndicator(30, 24, config.IndicatorRadius)
	ind.now = func() time.Time { return now }
	surface := render.NewRasterSurface(60, 48, nil)

	ind.Draw(surface, config.AttachedColor)
	assert.Equal(t, config.IndicatorRadius, ind.CurrentRadius())

	ind.Draw(surface, config.LaunchedColor)
	assert.InDelta(t, config.IndicatorRadius*1.3, ind.CurrentRadius(), 1e-9)
	assert.Equal(t, config.LaunchedColor, surface.Image().RGBAAt(30, 24))

	now = now.Add(time.Second)
	assert.InDelta(t, config.IndicatorRadius, ind.CurrentRadius(), 0.01)
}

func TestButtonClick(t *testing.T) {
	b := NewButton(100, 10, 80, 24, "Launch")

	assert.False(t, b.Update(50, 20, true), "press outside")
	assert.False(t, b.Update(120, 20, false), "hover only")
	assert.True(t, b.Update(120, 20, true))
	assert.False(t, b.Update(180, 20, true), "right edge is outside")
}

func TestButtonDrawHover(t *testing.T) {
	b := NewButton(0, 0, 40, 20, "")
	surface := render.NewRasterSurface(40, 20, nil)

	b.Draw(surface)
	assert.Equal(t, config.ButtonColor, surface.Image().RGBAAt(20, 10))

	b.Update(20, 10, false)
	b.Draw(surface)
	assert.Equal(t, render.DarkenColor(config.ButtonColor), surface.Image().RGBAAt(20, 10))
}
