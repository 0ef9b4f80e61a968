// internal/component/projectile.go
package component

import "coriolis-view/internal/utils"

// ProjectileState is the lifecycle flag of the projectile.
type ProjectileState int

const (
	Attached ProjectileState = iota
	Launched
)

func (s ProjectileState) String() string {
	switch s {
	case Attached:
		return "attached"
	case Launched:
		return "launched"
	default:
		return "unknown"
	}
}

// Projectile is the object carried by the beam and launched toward the center.
// Direction is non-nil only while State == Launched.
type Projectile struct {
	Position  *utils.Vec2 // nil until first attached
	Speed     float64     // units per second
	Direction *utils.Vec2
	State     ProjectileState
	Renderable
}
