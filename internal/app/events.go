// internal/app/events.go
package app

import (
	"coriolis-view/internal/event"

	"go.uber.org/zap"
)

// Stats counts projectile transitions for the HUD.
type Stats struct {
	Launches    int
	Resets      int
	OutOfBounds int
}

type simulationEventListener struct {
	stats  *Stats
	logger *zap.Logger
}

func (l *simulationEventListener) OnEvent(e event.Event) {
	data, _ := e.Data.(event.ProjectileData)
	fields := []zap.Field{
		zap.Float64("t", data.Time),
		zap.Float64("x", data.Position.X),
		zap.Float64("y", data.Position.Y),
	}

	switch e.Type {
	case event.ProjectileLaunched:
		l.stats.Launches++
		l.logger.Info("projectile launched", append(fields,
			zap.Float64("dx", data.Direction.X),
			zap.Float64("dy", data.Direction.Y))...)
	case event.ProjectileReset:
		l.stats.Resets++
		l.logger.Info("projectile reset", fields...)
	case event.ProjectileOutOfBounds:
		l.stats.OutOfBounds++
		l.logger.Debug("projectile left the frame", fields...)
	}
}
