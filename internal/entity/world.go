// internal/entity/world.go
package entity

import (
	"coriolis-view/internal/component"
	"coriolis-view/internal/config"
	"coriolis-view/internal/utils"
)

// World is the whole simulation state carried from frame to frame.
//
// Writers: BeamSystem owns Beam.Angle, ProjectileSystem owns Projectile,
// the host owns Beam.AngularSpeed, Center and Bounds.
type World struct {
	Time       float64
	Center     utils.Vec2
	Bounds     component.Bounds
	Beam       *component.Beam
	Projectile *component.Projectile
}

// NewWorld creates the beam and projectile for a square or rectangular
// frame of the given size. The projectile starts attached with no position.
func NewWorld(width, height, angularSpeed, projectileSpeed float64) *World {
	w := &World{
		Beam: &component.Beam{
			AngularSpeed: angularSpeed,
			HalfLength:   config.BeamHalfLength,
			Thickness:    config.BeamThickness,
			CapRadius:    config.BeamCapRadius,
			Color:        config.BeamColor,
			CapColor:     config.BeamCapColor,
		},
		Projectile: &component.Projectile{
			Speed: projectileSpeed,
			State: component.Attached,
			Renderable: component.Renderable{
				Color:  config.ProjectileColor,
				Radius: config.ProjectileRadius,
			},
		},
	}
	w.Resize(width, height)
	return w
}

// Resize recenters the global origin at the midpoint of the new frame.
func (w *World) Resize(width, height float64) {
	w.Bounds = component.Bounds{Width: width, Height: height}
	w.Center = utils.Vec2{X: width / 2, Y: height / 2}
}
