// internal/state/simulation_state.go
package state

import (
	"fmt"
	"image/color"

	"coriolis-view/internal/app"
	"coriolis-view/internal/component"
	"coriolis-view/internal/config"
	"coriolis-view/internal/ui"
	"coriolis-view/internal/utils"
	"coriolis-view/pkg/render"
	"coriolis-view/pkg/render/ebitenrender"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

var _ State = (*SimulationState)(nil)
var _ Resizer = (*SimulationState)(nil)

// SimulationState runs the simulation: the top view on the left, the front
// view on the right and a HUD strip above both.
type SimulationState struct {
	sm        *StateMachine
	sim       *app.Simulation
	keys      keyBindings
	face      font.Face
	slider    *ui.Slider
	launchBtn *ui.Button
	resetBtn  *ui.Button
	indicator *ui.StateIndicator
	logger    *zap.Logger

	top   *ebitenrender.Surface
	front *ebitenrender.Surface
	hud   *ebitenrender.Surface
	side  int
	width int
}

func NewSimulationState(sm *StateMachine, settings *config.Settings, logger *zap.Logger) (*SimulationState, error) {
	keys, err := newKeyBindings(settings.Input)
	if err != nil {
		return nil, err
	}
	face, err := render.NewFace(config.FontSize)
	if err != nil {
		return nil, err
	}

	// Provisional size until the first Layout.
	side := viewSide(settings.Window.Width, settings.Window.Height)
	sim := app.NewSimulation(settings.Simulation, float64(side), float64(side), logger)

	sc := settings.Simulation
	return &SimulationState{
		sm:   sm,
		sim:  sim,
		keys: keys,
		face: face,
		slider: ui.NewSlider(config.SliderX, config.SliderY, config.SliderWidth, config.SliderHeight,
			sc.MinAngularSpeed, sc.MaxAngularSpeed, sc.AngularSpeed, "ω = %.2f rad/s"),
		launchBtn: ui.NewButton(config.LaunchButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, "Launch"),
		resetBtn:  ui.NewButton(config.ResetButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, "Reset"),
		indicator: ui.NewStateIndicator(0, config.HUDHeight/2, config.IndicatorRadius),
		logger:    logger.Named("state"),
	}, nil
}

// viewSide is the edge of each square view for an outside size.
func viewSide(outsideWidth, outsideHeight int) int {
	side := min(outsideWidth/2, outsideHeight-config.HUDHeight)
	return max(side, 1)
}

func (s *SimulationState) Enter() {
	s.logger.Debug("entered simulation state")
}

func (s *SimulationState) Exit() {
	s.logger.Debug("left simulation state")
}

// Simulation exposes the running simulation.
func (s *SimulationState) Simulation() *app.Simulation {
	return s.sim
}

// Resize reallocates the offscreen views when their side changes and
// recenters the world on them.
func (s *SimulationState) Resize(outsideWidth, outsideHeight int) {
	if outsideWidth != s.width || s.hud == nil {
		if s.hud != nil {
			s.hud.Image().Deallocate()
		}
		s.width = max(outsideWidth, 1)
		s.hud = ebitenrender.NewSurface(ebiten.NewImage(s.width, config.HUDHeight), s.face)
		s.indicator.X = float64(s.width - config.IndicatorOffsetX)
	}

	side := viewSide(outsideWidth, outsideHeight)
	if side == s.side && s.top != nil {
		return
	}
	if s.top != nil {
		s.top.Image().Deallocate()
		s.front.Image().Deallocate()
	}
	s.side = side
	s.top = ebitenrender.NewSurface(ebiten.NewImage(side, side), s.face)
	s.front = ebitenrender.NewSurface(ebiten.NewImage(side, side), s.face)
	s.sim.Resize(float64(side), float64(side))
	s.logger.Debug("views reallocated", zap.Int("side", side))
}

func (s *SimulationState) Update(deltaTime float64) {
	if s.keys.hasPause && inpututil.IsKeyJustPressed(s.keys.pause) {
		s.sm.SetState(NewPauseState(s.sm, s, s.keys.pause, s.face))
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	launchClicked := s.launchBtn.Update(mx, my, justPressed)
	resetClicked := s.resetBtn.Update(mx, my, justPressed)
	if inpututil.IsKeyJustPressed(s.keys.launch) || launchClicked {
		s.sim.Launch()
	}
	if inpututil.IsKeyJustPressed(s.keys.reset) || resetClicked {
		s.sim.Reset()
	}
	if s.slider.Update(mx, my, pressed, justPressed) {
		s.sim.SetAngularSpeed(s.slider.Value)
	}

	if s.top == nil {
		return
	}
	s.sim.Step(deltaTime, s.top, s.front)
}

func (s *SimulationState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if s.top == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, config.HUDHeight)
	screen.DrawImage(s.top.Image(), op)

	op.GeoM.Reset()
	op.GeoM.Translate(float64(s.side), config.HUDHeight)
	screen.DrawImage(s.front.Image(), op)

	x := float32(s.side)
	vector.StrokeLine(screen, x, config.HUDHeight, x, float32(config.HUDHeight+s.side), 2, config.SeparatorColor, false)

	s.drawHUD()
	screen.DrawImage(s.hud.Image(), nil)
}

func (s *SimulationState) drawHUD() {
	s.hud.Clear(config.HUDColor)
	s.slider.Draw(s.hud)
	s.launchBtn.Draw(s.hud)
	s.resetBtn.Draw(s.hud)
	s.indicator.Draw(s.hud, stateColor(s.sim.World.Projectile.State))

	st := s.sim.Stats
	info := fmt.Sprintf("t=%.1fs  angle=%+.2f  launches=%d  resets=%d  out=%d  fps=%.0f",
		s.sim.World.Time, utils.NormalizeAngle(s.sim.World.Beam.Angle),
		st.Launches, st.Resets, st.OutOfBounds, ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(s.hud.Image(), info, config.StatsX, config.HUDHeight/2-8)
}

func stateColor(st component.ProjectileState) color.RGBA {
	if st == component.Launched {
		return config.LaunchedColor
	}
	return config.AttachedColor
}
