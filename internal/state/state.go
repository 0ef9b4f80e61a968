// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the application.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Resizer is implemented by states that react to the window size.
type Resizer interface {
	Resize(outsideWidth, outsideHeight int)
}

// StateMachine holds the active state and forwards the frame callbacks to it.
type StateMachine struct {
	current State
	width   int
	height  int
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters newState. The new state
// receives the last known window size before Enter.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current == nil {
		return
	}
	if r, ok := sm.current.(Resizer); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
	sm.current.Enter()
}

// Current returns the active state, or nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Resize(outsideWidth, outsideHeight int) {
	sm.width, sm.height = outsideWidth, outsideHeight
	if r, ok := sm.current.(Resizer); ok {
		r.Resize(outsideWidth, outsideHeight)
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
