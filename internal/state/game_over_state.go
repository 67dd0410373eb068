// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/ui"
	"go-arena-brawl/pkg/render"
)

const fadeInSeconds = 0.5

// GameOverState показывает итоги матча после выбывания игрока.
type GameOverState struct {
	sm       *StateMachine
	finished *GameState
	banner   *ui.Banner
	elapsed  float64
}

func NewGameOverState(sm *StateMachine, finished *GameState) *GameOverState {
	return &GameOverState{
		sm:       sm,
		finished: finished,
		banner:   ui.NewBanner(config.ArenaWidth/2, config.ScreenHeight/2-60, finished.session.FontFace, config.TextLightColor),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.elapsed += deltaTime

	in := s.finished.session.Input.Poll()
	if in.Restart {
		s.sm.SetState(NewGameState(s.sm, s.finished.session))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.sm.SetState(NewMenuState(s.sm, s.finished.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.finished.Draw(screen)

	alpha := s.elapsed / fadeInSeconds
	if alpha > 1 {
		alpha = 1
	}
	overlay := render.WithAlpha(config.OverlayColor, uint8(float64(config.OverlayColor.A)*alpha))
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlay, false)

	g := s.finished.Game()
	stats := g.Stats.For(g.Player().ID)
	s.banner.Draw(screen,
		"GAME OVER",
		fmt.Sprintf("Survived %d ticks", g.ECS.Tick),
		fmt.Sprintf("Shots %d  Hits %d  Eliminations %d", stats.ShotsFired, stats.HitsLanded, stats.Eliminations),
		"R - restart, M - menu",
	)
}

func (s *GameOverState) Exit() {}
