// internal/system/front_view.go
package system

import (
	"math"

	"coriolis-view/internal/config"
	"coriolis-view/internal/entity"
	"coriolis-view/internal/utils"
	"coriolis-view/pkg/render"
)

// FrontProjection is the camera-space result for one frame. The camera sits
// at the origin looking up the screen (-y).
type FrontProjection struct {
	BeamTop    utils.Vec2
	Projectile utils.Vec2
	Theta      float64
	Flipped    bool
	Clamped    bool
	Depth      float64 // never negative
}

// ProjectFront maps beamTop and projectile into the frame of a camera
// standing at anchor and facing beamTop, for a width x height surface.
//
// The bearing uses the single-argument arctangent; the half-turn flip below
// restores the orientation it cannot tell apart.
func ProjectFront(anchor, beamTop, projectile utils.Vec2, width, height float64) FrontProjection {
	top := beamTop.Sub(anchor)
	proj := projectile.Sub(anchor)

	theta := math.Atan(top.Y/top.X) - math.Pi/2
	top = top.Rotate(-theta)
	proj = proj.Rotate(-theta)

	flipped := false
	if top.Y > 0 {
		top = top.Rotate(math.Pi)
		proj = proj.Rotate(math.Pi)
		flipped = true
	}

	halfHeight := height / 2
	clamped := false
	if proj.Y+width < halfHeight {
		proj.Y = -halfHeight
		clamped = true
	}

	depth := 1 - proj.Y/(-config.FrontDepthScale*halfHeight)
	if depth < 0 {
		depth = 0
	}

	return FrontProjection{
		BeamTop:    top,
		Projectile: proj,
		Theta:      theta,
		Flipped:    flipped,
		Clamped:    clamped,
		Depth:      depth,
	}
}

// FrontViewSystem draws the first-person view from the beam's launch end.
type FrontViewSystem struct {
	world *entity.World
}

func NewFrontViewSystem(world *entity.World) *FrontViewSystem {
	return &FrontViewSystem{world: world}
}

// Draw renders the view for this frame's anchor and returns the projection.
func (s *FrontViewSystem) Draw(surface render.Surface, anchor utils.Vec2) FrontProjection {
	width, height := surface.Size()
	halfWidth, halfHeight := width/2, height/2

	pos := anchor
	if p := s.world.Projectile.Position; p != nil {
		pos = *p
	}
	proj := ProjectFront(anchor, s.world.Center, pos, width, height)

	surface.FillRect(0, 0, width, halfHeight, config.SkyColor)
	surface.FillRect(0, halfHeight, width, height-halfHeight, config.GroundColor)
	surface.StrokeLine(0, halfHeight, width, halfHeight, config.FrontHorizonWidth, config.HorizonColor)

	beam := s.world.Beam
	surface.FillPolygon([]utils.Vec2{
		{X: halfWidth - config.FrontBeamBaseHalf, Y: height},
		{X: halfWidth + config.FrontBeamBaseHalf, Y: height},
		{X: halfWidth + config.FrontBeamTopHalf, Y: halfHeight},
		{X: halfWidth - config.FrontBeamTopHalf, Y: halfHeight},
	}, beam.Color)
	render.FillEllipse(surface, halfWidth, halfHeight, config.FrontBeamTopHalf, config.FrontBeamTopHalf/2, beam.CapColor)

	if proj.Depth > 0 {
		surface.FillCircle(proj.Projectile.X+halfWidth, proj.Projectile.Y+width,
			config.FrontProjectileRadius*proj.Depth, s.world.Projectile.Color)
	}
	return proj
}
