// Package ebitenrender implements render.Surface on top of ebiten.
// It is kept apart so headless code never links the graphics driver.
package ebitenrender

import (
	"image/color"

	"coriolis-view/internal/utils"
	"coriolis-view/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Surface draws onto an ebiten image with the vector package.
type Surface struct {
	img     *ebiten.Image
	face    font.Face
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

var _ render.Surface = (*Surface)(nil)

func NewSurface(img *ebiten.Image, face font.Face) *Surface {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Surface{
		img:     img,
		face:    face,
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 128),
		fillIs:  make([]uint16, 0, 192),
	}
}

// Image exposes the target image for compositing.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) FillPolygon(points []utils.Vec2, c color.Color) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	cr, cg, cb, ca := c.RGBA()
	s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
	for i := range s.fillVs {
		s.fillVs[i].ColorR = float32(cr) / 0xffff
		s.fillVs[i].ColorG = float32(cg) / 0xffff
		s.fillVs[i].ColorB = float32(cb) / 0xffff
		s.fillVs[i].ColorA = float32(ca) / 0xffff
	}
	s.img.DrawTriangles(s.fillVs, s.fillIs, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *Surface) Text(str string, x, y float64, c color.Color) {
	if s.face == nil {
		return
	}
	text.Draw(s.img, str, s.face, int(x), int(y), c)
}
