// internal/system/top_view.go
package system

import (
	"coriolis-view/internal/config"
	"coriolis-view/internal/entity"
	"coriolis-view/internal/utils"
	"coriolis-view/pkg/render"
)

// TopViewSystem draws the global frame as seen from above, untransformed.
type TopViewSystem struct {
	world *entity.World
}

func NewTopViewSystem(world *entity.World) *TopViewSystem {
	return &TopViewSystem{world: world}
}

// Draw renders background, beam and projectile and returns the launch end,
// which is the anchor for the rest of the frame.
func (s *TopViewSystem) Draw(surface render.Surface) utils.Vec2 {
	beam := s.world.Beam
	launch, opposite := BeamEndpoints(beam.Angle, s.world.Center, beam.HalfLength)

	surface.Clear(config.BackgroundColor)
	surface.StrokeLine(opposite.X, opposite.Y, launch.X, launch.Y, beam.Thickness, beam.Color)
	surface.FillCircle(launch.X, launch.Y, beam.CapRadius, beam.CapColor)
	surface.FillCircle(opposite.X, opposite.Y, beam.CapRadius, beam.CapColor)

	if p := s.world.Projectile; p.Position != nil {
		surface.FillCircle(p.Position.X, p.Position.Y, p.Radius, p.Color)
	}
	return launch
}
