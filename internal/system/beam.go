// internal/system/beam.go
package system

import (
	"math"

	"coriolis-view/internal/entity"
	"coriolis-view/internal/utils"
)

// BeamSystem advances the beam angle.
type BeamSystem struct {
	world *entity.World
}

func NewBeamSystem(world *entity.World) *BeamSystem {
	return &BeamSystem{world: world}
}

// Update integrates the angle with the angular speed read this frame.
func (s *BeamSystem) Update(deltaTime float64) {
	beam := s.world.Beam
	beam.Angle += beam.AngularSpeed * deltaTime
}

// BeamEndpoints returns the launch end and the opposite end of a beam
// rotated by angle around center.
func BeamEndpoints(angle float64, center utils.Vec2, halfLength float64) (launch, opposite utils.Vec2) {
	launch = center.Add(utils.Polar(halfLength, angle))
	opposite = center.Add(utils.Polar(halfLength, angle+math.Pi))
	return launch, opposite
}
