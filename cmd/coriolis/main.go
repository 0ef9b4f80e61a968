// cmd/coriolis/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"coriolis-view/internal/cli"
	"coriolis-view/internal/config"
	"coriolis-view/internal/logging"
	"coriolis-view/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout follows the window so the views always fill it.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func runWindow(_ context.Context, settings *config.Settings, logger *zap.Logger) error {
	sm := state.NewStateMachine()
	simState, err := state.NewSimulationState(sm, settings, logger)
	if err != nil {
		return err
	}
	sm.SetState(simState)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if settings.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(ebiten.SyncWithFPS)

	logger.Info("window opening",
		zap.Int("width", settings.Window.Width),
		zap.Int("height", settings.Window.Height))
	return ebiten.RunGame(app)
}

func main() {
	if err := cli.NewRootCommand(runWindow).Execute(); err != nil {
		logging.GetLogger().Error("command failed", zap.Error(err))
		logging.Sync()
		// Flag errors happen before the logger exists.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Sync()
}
