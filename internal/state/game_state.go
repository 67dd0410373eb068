// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"go-arena-brawl/internal/app"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/internal/ui"
	"go-arena-brawl/internal/utils"
	"go-arena-brawl/pkg/render"
)

// GameState — идущий матч.
type GameState struct {
	sm       *StateMachine
	session  *Session
	game     *app.Game
	clock    *utils.ManualClock
	renderer *ui.ArenaRenderer
	panel    *ui.HealthPanel
	banner   *ui.Banner
}

// NewGameState начинает новый матч с настройками сессии.
// Время матча идет по тикам, поэтому пауза замораживает и регенерацию.
func NewGameState(sm *StateMachine, session *Session) *GameState {
	session.Round++
	clock := utils.NewManualClock(0)
	gameLogic := app.NewGame(app.Options{
		Rules:       session.Rules,
		PlayerClass: session.Class,
		Clock:       clock,
	})

	colors := render.ArenaColors{
		Background:  config.BackgroundColor,
		Border:      config.ArenaBorderColor,
		Player:      config.PlayerColor,
		Flash:       config.TextLightColor,
		Crown:       config.CrownColor,
		Skull:       config.SkullColor,
		Text:        config.TextLightColor,
		HealthBack:  config.HealthBackColor,
		StrokeWidth: config.StrokeWidth,
	}

	return &GameState{
		sm:       sm,
		session:  session,
		game:     gameLogic,
		clock:    clock,
		renderer: ui.NewArenaRenderer(session.FontFace, colors),
		panel:    ui.NewHealthPanel(config.ArenaWidth, 0, session.FontFace),
		banner:   ui.NewBanner(config.ArenaWidth/2, 40, session.FontFace, config.CrownColor),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	in := g.session.Input.Poll()
	if in.Pause {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if in.Restart {
		g.sm.SetState(NewGameState(g.sm, g.session))
		return
	}

	g.clock.Advance(utils.TickMillis(config.TickRate))
	g.game.Tick(in)

	if g.game.Over() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.game)
	g.panel.Draw(screen, g.game.Combatants(), g.game.Fallen(), g.game.Champion())

	if champ := g.game.Champion(); champ != nil {
		who := defs.Fighter(champ.Class).Name
		if champ.IsPlayer() {
			who = "You"
		}
		g.banner.Draw(screen, fmt.Sprintf("CHAMPION: %s", who))
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Round %s  seed %d", ui.ToRoman(g.session.Round), g.game.Seed()), 6, config.ScreenHeight-18)
}

func (g *GameState) Exit() {}

// Game возвращает логику матча.
func (g *GameState) Game() *app.Game {
	return g.game
}
