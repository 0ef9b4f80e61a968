// internal/state/pause_state.go
package state

import (
	"image/color"

	"coriolis-view/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*PauseState)(nil)
var _ Resizer = (*PauseState)(nil)

// PauseState freezes the previous state and dims it. Time does not
// accumulate while paused.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	key           ebiten.Key
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, key ebiten.Key, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		key:           key,
		face:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Exit() {}

func (s *PauseState) Resize(outsideWidth, outsideHeight int) {
	if r, ok := s.previousState.(Resizer); ok {
		r.Resize(outsideWidth, outsideHeight)
	}
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(s.key) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 128}, false)

	const pauseText = "PAUSED"
	w := font.MeasureString(s.face, pauseText).Ceil()
	text.Draw(screen, pauseText, s.face, (b.Dx()-w)/2, b.Dy()/2, config.TextLightColor)
}
