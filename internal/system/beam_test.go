package system

import (
	"math"
	"testing"

	"coriolis-view/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestBeamEndpoints(t *testing.T) {
	center := utils.Vec2{X: 300, Y: 300}

	launch, opposite := BeamEndpoints(0, center, 200)
	assert.InDelta(t, 500, launch.X, 1e-9)
	assert.InDelta(t, 300, launch.Y, 1e-9)
	assert.InDelta(t, 100, opposite.X, 1e-9)
	assert.InDelta(t, 300, opposite.Y, 1e-9)

	launch, opposite = BeamEndpoints(math.Pi/2, center, 200)
	assert.InDelta(t, 300, launch.X, 1e-9)
	assert.InDelta(t, 500, launch.Y, 1e-9)
	assert.InDelta(t, 300, opposite.X, 1e-9)
	assert.InDelta(t, 100, opposite.Y, 1e-9)

	// The midpoint of the endpoints is always the center.
	for _, a := range []float64{-7.3, 0.4, 2.9, 100} {
		l, o := BeamEndpoints(a, center, 200)
		assert.InDelta(t, 300, (l.X+o.X)/2, 1e-9)
		assert.InDelta(t, 300, (l.Y+o.Y)/2, 1e-9)
		assert.InDelta(t, 400, l.Sub(o).Len(), 1e-9)
	}
}

func TestBeamSystemUpdate(t *testing.T) {
	world, _, _ := newTestWorld()
	s := NewBeamSystem(world)

	world.Beam.AngularSpeed = 2
	s.Update(0.5)
	assert.InDelta(t, 1, world.Beam.Angle, 1e-12)

	world.Beam.AngularSpeed = -1
	s.Update(3)
	assert.InDelta(t, -2, world.Beam.Angle, 1e-12)

	world.Beam.AngularSpeed = 0
	s.Update(10)
	assert.InDelta(t, -2, world.Beam.Angle, 1e-12)

	// Not wrapped.
	world.Beam.AngularSpeed = 3
	s.Update(10)
	assert.InDelta(t, 28, world.Beam.Angle, 1e-12)
}
