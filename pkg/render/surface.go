package render

import (
	"image/color"
	"math"

	"coriolis-view/internal/utils"
)

// Surface is a 2D drawing target in pixel coordinates, y pointing down.
type Surface interface {
	Size() (width, height float64)
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	FillPolygon(points []utils.Vec2, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	Text(s string, x, y float64, c color.Color)
}

// circleSegments is the polygon resolution used for circles and ellipses.
const circleSegments = 48

// EllipsePoints approximates an axis-aligned ellipse with a closed polygon.
func EllipsePoints(cx, cy, rx, ry float64) []utils.Vec2 {
	pts := make([]utils.Vec2, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = utils.Vec2{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}

// FillEllipse draws a filled ellipse on any surface.
func FillEllipse(s Surface, cx, cy, rx, ry float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	s.FillPolygon(EllipsePoints(cx, cy, rx, ry), c)
}

// lineQuad returns the four corners of a segment thickened to width.
func lineQuad(x0, y0, x1, y1, width float64) ([]utils.Vec2, bool) {
	dir, ok := utils.Vec2{X: x1 - x0, Y: y1 - y0}.Normalize()
	if !ok || width <= 0 {
		return nil, false
	}
	n := utils.Vec2{X: -dir.Y, Y: dir.X}.Scale(width / 2)
	a := utils.Vec2{X: x0, Y: y0}
	b := utils.Vec2{X: x1, Y: y1}
	return []utils.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, true
}
