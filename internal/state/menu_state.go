// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/ui"
)

var classKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// MenuState — выбор класса перед матчем.
type MenuState struct {
	sm      *StateMachine
	session *Session
	menu    *ui.ClassMenu
	title   *ui.Banner
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	m := &MenuState{
		sm:      sm,
		session: session,
		menu:    ui.NewClassMenu(session.FontFace, 180),
		title:   ui.NewBanner(config.ScreenWidth/2, 100, session.FontFace, config.TextLightColor),
	}
	m.menu.Select(session.Class)
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	for i, key := range classKeys {
		if inpututil.IsKeyJustPressed(key) {
			m.menu.Selected = i
			m.start()
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		m.menu.Move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.menu.Move(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.start()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i := m.menu.HitTest(ebiten.CursorPosition()); i >= 0 {
			m.menu.Selected = i
			m.start()
		}
	}
}

func (m *MenuState) start() {
	m.session.Class = m.menu.Class()
	m.sm.SetState(NewGameState(m.sm, m.session))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.title.Draw(screen, "ARENA BRAWL", "Choose your fighter: 1-6, arrows + Enter, or click")
	m.menu.Draw(screen)
}

func (m *MenuState) Exit() {}
