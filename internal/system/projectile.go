// internal/system/projectile.go
package system

import (
	"coriolis-view/internal/component"
	"coriolis-view/internal/entity"
	"coriolis-view/internal/event"
	"coriolis-view/internal/utils"
)

// ProjectileSystem runs the attached/launched lifecycle of the projectile.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Launch fixes the direction toward the center and releases the projectile.
// It reports false when nothing changed: already launched, never attached,
// or sitting exactly on the center.
func (s *ProjectileSystem) Launch() bool {
	p := s.world.Projectile
	if p.State == component.Launched || p.Position == nil {
		return false
	}
	dir, ok := directionToCenter(*p.Position, s.world.Center)
	if !ok {
		return false
	}
	p.Direction = &dir
	p.State = component.Launched
	s.dispatch(event.ProjectileLaunched)
	return true
}

// Reset reattaches the projectile to the beam. Calling it twice is the same
// as calling it once.
func (s *ProjectileSystem) Reset() {
	p := s.world.Projectile
	wasLaunched := p.State == component.Launched
	p.State = component.Attached
	p.Direction = nil
	if wasLaunched {
		s.dispatch(event.ProjectileReset)
	}
}

// Update advances the projectile by one frame. An attached projectile snaps
// to anchor; a launched one takes a single Euler step. Leaving bounds
// reattaches it to anchor in the same call, whatever the state was.
func (s *ProjectileSystem) Update(deltaTime float64, anchor utils.Vec2, bounds component.Bounds) {
	p := s.world.Projectile

	var next utils.Vec2
	switch p.State {
	case component.Launched:
		next = p.Position.Add(p.Direction.Scale(deltaTime * p.Speed))
	default:
		next = anchor
	}
	p.Position = &next

	if bounds.Contains(next.X, next.Y) {
		return
	}

	data := s.payload()
	p.State = component.Attached
	p.Direction = nil
	attached := anchor
	p.Position = &attached
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileOutOfBounds, Data: data})
}

func (s *ProjectileSystem) dispatch(t event.EventType) {
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: s.payload()})
}

func (s *ProjectileSystem) payload() event.ProjectileData {
	p := s.world.Projectile
	data := event.ProjectileData{Time: s.world.Time}
	if p.Position != nil {
		data.Position = *p.Position
	}
	if p.Direction != nil {
		data.Direction = *p.Direction
	}
	return data
}

// directionToCenter is the unit vector from pos toward center.
func directionToCenter(pos, center utils.Vec2) (utils.Vec2, bool) {
	return center.Sub(pos).Normalize()
}
