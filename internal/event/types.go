// internal/event/types.go
package event

import "coriolis-view/internal/utils"

const (
	ProjectileLaunched    EventType = "ProjectileLaunched"    // left the beam
	ProjectileReset       EventType = "ProjectileReset"       // reset trigger
	ProjectileOutOfBounds EventType = "ProjectileOutOfBounds" // left the frame and reattached
)

// ProjectileData is the payload of every projectile event.
type ProjectileData struct {
	Position  utils.Vec2
	Direction utils.Vec2
	Time      float64
}
