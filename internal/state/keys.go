package state

import (
	"fmt"

	"coriolis-view/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings are the parsed input.* settings.
type keyBindings struct {
	launch ebiten.Key
	reset  ebiten.Key
	pause  ebiten.Key
	hasPause bool
}

func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return k, nil
}

func newKeyBindings(cfg config.InputConfig) (keyBindings, error) {
	var (
		kb  keyBindings
		err error
	)
	if kb.launch, err = parseKey(cfg.LaunchKey); err != nil {
		return kb, fmt.Errorf("launch_key: %w", err)
	}
	if kb.reset, err = parseKey(cfg.ResetKey); err != nil {
		return kb, fmt.Errorf("reset_key: %w", err)
	}
	if cfg.PauseKey != "" {
		if kb.pause, err = parseKey(cfg.PauseKey); err != nil {
			return kb, fmt.Errorf("pause_key: %w", err)
		}
		kb.hasPause = true
	}
	return kb, nil
}
