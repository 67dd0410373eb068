// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает матч поверх предыдущего состояния.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	banner        *ui.Banner
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		banner:        ui.NewBanner(config.ArenaWidth/2, config.ScreenHeight/2-20, prevState.session.FontFace, config.TextLightColor),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	in := s.previousState.session.Input.Poll()
	switch {
	case in.Restart:
		s.stateMachine.SetState(NewGameState(s.stateMachine, s.previousState.session))
	case in.Pause:
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	s.banner.Draw(screen, "PAUSED", "P / Esc - resume, R - restart")
}

func (s *PauseState) Exit() {}
