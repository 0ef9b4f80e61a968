package render

import (
	"image/color"
	"testing"

	"coriolis-view/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func TestRasterSurfaceShapes(t *testing.T) {
	s := NewRasterSurface(100, 100, nil)
	w, h := s.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 100.0, h)

	s.Clear(black)
	assert.Equal(t, black, s.Image().RGBAAt(5, 5))

	s.FillRect(0, 50, 100, 50, blue)
	assert.Equal(t, blue, s.Image().RGBAAt(10, 75))
	assert.Equal(t, black, s.Image().RGBAAt(10, 25))

	s.FillCircle(25, 25, 10, red)
	assert.Equal(t, red, s.Image().RGBAAt(25, 25))
	assert.Equal(t, black, s.Image().RGBAAt(45, 25))

	s.StrokeLine(60, 10, 90, 10, 6, red)
	assert.Equal(t, red, s.Image().RGBAAt(75, 10))
	assert.Equal(t, black, s.Image().RGBAAt(75, 20))
}

func TestRasterSurfacePolygon(t *testing.T) {
	s := NewRasterSurface(100, 100, nil)
	s.Clear(black)
	s.FillPolygon([]utils.Vec2{{X: 10, Y: 90}, {X: 90, Y: 90}, {X: 50, Y: 10}}, red)

	assert.Equal(t, red, s.Image().RGBAAt(50, 70))
	assert.Equal(t, black, s.Image().RGBAAt(5, 5))

	// Degenerate input is ignored.
	s.FillPolygon([]utils.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}, blue)
	s.StrokeLine(3, 3, 3, 3, 4, blue)
	assert.Equal(t, black, s.Image().RGBAAt(2, 2))
}

func TestFillEllipse(t *testing.T) {
	s := NewRasterSurface(100, 100, nil)
	s.Clear(black)
	FillEllipse(s, 50, 50, 40, 10, red)

	assert.Equal(t, red, s.Image().RGBAAt(80, 50))
	assert.Equal(t, black, s.Image().RGBAAt(50, 70))

	FillEllipse(s, 50, 50, 0, 10, blue)
	assert.Equal(t, red, s.Image().RGBAAt(50, 50))
}

func TestRasterSurfaceText(t *testing.T) {
	face, err := NewFace(14)
	require.NoError(t, err)

	s := NewRasterSurface(120, 30, face)
	s.Clear(black)
	s.Text("omega", 4, 20, red)

	painted := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 120; x++ {
			if s.Image().RGBAAt(x, y).R > 0 {
				painted++
			}
		}
	}
	assert.Positive(t, painted)
}

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 100, 25, 255}, DarkenColor(color.RGBA{100, 200, 50, 255}))
}
