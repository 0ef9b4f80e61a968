package system

import (
	"image/color"

	"coriolis-view/internal/config"
	"coriolis-view/internal/entity"
	"coriolis-view/internal/event"
	"coriolis-view/internal/utils"
)

// call is one recorded drawing operation.
type call struct {
	Op     string
	Points []utils.Vec2
	Radius float64
	Color  color.Color
}

// recordingSurface captures draw calls instead of rasterizing them.
type recordingSurface struct {
	width, height float64
	calls         []call
}

func newRecordingSurface(width, height float64) *recordingSurface {
	return &recordingSurface{width: width, height: height}
}

func (s *recordingSurface) Size() (float64, float64) { return s.width, s.height }

func (s *recordingSurface) Clear(c color.Color) {
	s.calls = append(s.calls, call{Op: "clear", Color: c})
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.calls = append(s.calls, call{Op: "rect", Points: []utils.Vec2{{X: x, Y: y}, {X: x + w, Y: y + h}}, Color: c})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.calls = append(s.calls, call{Op: "circle", Points: []utils.Vec2{{X: cx, Y: cy}}, Radius: r, Color: c})
}

func (s *recordingSurface) FillPolygon(points []utils.Vec2, c color.Color) {
	s.calls = append(s.calls, call{Op: "polygon", Points: append([]utils.Vec2(nil), points...), Color: c})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	s.calls = append(s.calls, call{Op: "line", Points: []utils.Vec2{{X: x0, Y: y0}, {X: x1, Y: y1}}, Radius: width, Color: c})
}

func (s *recordingSurface) Text(string, float64, float64, color.Color) {}

func (s *recordingSurface) ops() []string {
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.Op
	}
	return out
}

func (s *recordingSurface) last(op string) (call, bool) {
	for i := len(s.calls) - 1; i >= 0; i-- {
		if s.calls[i].Op == op {
			return s.calls[i], true
		}
	}
	return call{}, false
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) types() []event.EventType {
	out := make([]event.EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

// newTestWorld returns a 600x600 world centered at (300, 300) and an event
// log subscribed to every projectile event.
func newTestWorld() (*entity.World, *event.Dispatcher, *eventLog) {
	world := entity.NewWorld(600, 600, 0, config.ProjectileSpeed)
	dispatcher := event.NewDispatcher()
	log := &eventLog{}
	dispatcher.Subscribe(event.ProjectileLaunched, log)
	dispatcher.Subscribe(event.ProjectileReset, log)
	dispatcher.Subscribe(event.ProjectileOutOfBounds, log)
	return world, dispatcher, log
}
