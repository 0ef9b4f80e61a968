// internal/app/simulation.go
package app

import (
	"coriolis-view/internal/config"
	"coriolis-view/internal/entity"
	"coriolis-view/internal/event"
	"coriolis-view/internal/system"
	"coriolis-view/internal/utils"
	"coriolis-view/pkg/render"

	"go.uber.org/zap"
)

// Simulation owns the world and sequences the systems once per frame.
type Simulation struct {
	World            *entity.World
	BeamSystem       *system.BeamSystem
	ProjectileSystem *system.ProjectileSystem
	TopViewSystem    *system.TopViewSystem
	FrontViewSystem  *system.FrontViewSystem
	EventDispatcher  *event.Dispatcher
	Stats            *Stats

	lastAnchor     utils.Vec2
	lastProjection system.FrontProjection
	logger         *zap.Logger
}

// NewSimulation builds a world of width x height with the configured speeds.
func NewSimulation(cfg config.SimulationConfig, width, height float64, logger *zap.Logger) *Simulation {
	if logger == nil {
		logger = zap.NewNop()
	}
	world := entity.NewWorld(width, height, cfg.AngularSpeed, cfg.ProjectileSpeed)
	eventDispatcher := event.NewDispatcher()

	s := &Simulation{
		World:            world,
		BeamSystem:       system.NewBeamSystem(world),
		ProjectileSystem: system.NewProjectileSystem(world, eventDispatcher),
		TopViewSystem:    system.NewTopViewSystem(world),
		FrontViewSystem:  system.NewFrontViewSystem(world),
		EventDispatcher:  eventDispatcher,
		Stats:            &Stats{},
		logger:           logger.Named("simulation"),
	}

	listener := &simulationEventListener{stats: s.Stats, logger: s.logger}
	eventDispatcher.Subscribe(event.ProjectileLaunched, listener)
	eventDispatcher.Subscribe(event.ProjectileReset, listener)
	eventDispatcher.Subscribe(event.ProjectileOutOfBounds, listener)

	s.logger.Info("simulation created",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Float64("angular_speed", cfg.AngularSpeed),
		zap.Float64("projectile_speed", cfg.ProjectileSpeed))
	return s
}

// Step runs one frame: angle, top view, projectile, front view. deltaTime
// is the measured time since the previous frame.
func (s *Simulation) Step(deltaTime float64, top, front render.Surface) {
	s.World.Time += deltaTime
	s.BeamSystem.Update(deltaTime)
	anchor := s.TopViewSystem.Draw(top)
	s.ProjectileSystem.Update(deltaTime, anchor, s.World.Bounds)
	s.lastProjection = s.FrontViewSystem.Draw(front, anchor)
	s.lastAnchor = anchor
}

// Launch is the launch trigger.
func (s *Simulation) Launch() bool {
	return s.ProjectileSystem.Launch()
}

// Reset is the reset trigger.
func (s *Simulation) Reset() {
	s.ProjectileSystem.Reset()
}

// SetAngularSpeed takes effect at the next Step.
func (s *Simulation) SetAngularSpeed(speed float64) {
	s.World.Beam.AngularSpeed = speed
}

func (s *Simulation) AngularSpeed() float64 {
	return s.World.Beam.AngularSpeed
}

// Resize recenters the world for views of the new size.
func (s *Simulation) Resize(width, height float64) {
	if width == s.World.Bounds.Width && height == s.World.Bounds.Height {
		return
	}
	s.World.Resize(width, height)
	s.logger.Debug("world resized", zap.Float64("width", width), zap.Float64("height", height))
}

// Anchor is the launch end used by the last Step.
func (s *Simulation) Anchor() utils.Vec2 {
	return s.lastAnchor
}

// Projection is the front-view result of the last Step.
func (s *Simulation) Projection() system.FrontProjection {
	return s.lastProjection
}
