package render

import (
	"image"
	"image/color"
	"image/draw"

	"coriolis-view/internal/utils"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// RasterSurface draws into an in-memory RGBA image. It needs no GPU and is
// used for headless snapshots and tests.
type RasterSurface struct {
	img  *image.RGBA
	face font.Face
	rast *vector.Rasterizer
}

var _ Surface = (*RasterSurface)(nil)

// NewRasterSurface allocates a width x height image. face may be nil, in
// which case Text is a no-op.
func NewRasterSurface(width, height int, face font.Face) *RasterSurface {
	return &RasterSurface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: face,
		rast: vector.NewRasterizer(width, height),
	}
}

// Image exposes the backing image.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

func (s *RasterSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *RasterSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *RasterSurface) FillRect(x, y, w, h float64, c color.Color) {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func (s *RasterSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	s.FillPolygon(EllipsePoints(cx, cy, r, r), c)
}

func (s *RasterSurface) FillPolygon(points []utils.Vec2, c color.Color) {
	if len(points) < 3 {
		return
	}
	s.rast.Reset(s.img.Bounds().Dx(), s.img.Bounds().Dy())
	s.rast.DrawOp = draw.Over
	s.rast.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		s.rast.LineTo(float32(p.X), float32(p.Y))
	}
	s.rast.ClosePath()
	s.rast.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (s *RasterSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if quad, ok := lineQuad(x0, y0, x1, y1, width); ok {
		s.FillPolygon(quad, c)
	}
}

func (s *RasterSurface) Text(str string, x, y float64, c color.Color) {
	if s.face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: s.face,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(str)
}
