// internal/ui/health_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/pkg/render"
)

const rowHeight = config.HealthBarHeight + config.HealthBarSpacing + 14

// HealthPanel отображает здоровье и жизни всех бойцов в панели справа от арены.
type HealthPanel struct {
	X, Y     float32
	fontFace font.Face
}

// NewHealthPanel создает панель в точке (x, y).
func NewHealthPanel(x, y float32, fontFace font.Face) *HealthPanel {
	return &HealthPanel{X: x, Y: y, fontFace: fontFace}
}

// Draw рисует по строке на бойца: имя класса, жизни и полоску здоровья.
// Выбывшие бойцы идут последними и рисуются затемненными.
func (p *HealthPanel) Draw(screen *ebiten.Image, active, fallen []*component.Combatant, champion *component.Combatant) {
	vector.DrawFilledRect(screen, p.X, p.Y, config.HUDWidth, config.ScreenHeight, config.HUDColor, false)

	x := p.X + 20
	y := p.Y + 20
	for _, c := range active {
		p.drawRow(screen, c, x, y, champion != nil && champion.ID == c.ID)
		y += rowHeight
	}
	for _, c := range fallen {
		p.drawRow(screen, c, x, y, false)
		y += rowHeight
	}
}

func (p *HealthPanel) drawRow(screen *ebiten.Image, c *component.Combatant, x, y float32, crowned bool) {
	def := defs.Fighter(c.Class)
	label := fmt.Sprintf("%s x%d", def.Symbol, c.Lives)
	if c.IsPlayer() {
		label = "You " + label
	}
	if crowned {
		label += " *"
	}
	labelColor := def.Color
	if c.IsInert() {
		labelColor = render.DarkenColor(labelColor)
		label += " RIP"
	}
	text.Draw(screen, label, p.fontFace, int(x), int(y)+10, labelColor)

	barY := y + 14
	vector.DrawFilledRect(screen, x, barY, config.HealthBarWidth, config.HealthBarHeight, config.HealthBackColor, false)
	if c.MaxHealth > 0 && c.Health > 0 {
		w := float32(config.HealthBarWidth) * float32(c.Health) / float32(c.MaxHealth)
		vector.DrawFilledRect(screen, x, barY, w, config.HealthBarHeight, render.HealthColor(c.Health, c.MaxHealth), false)
	}
	vector.StrokeRect(screen, x, barY, config.HealthBarWidth, config.HealthBarHeight, 1, config.TextLightColor, false)
}

// Height возвращает высоту панели для n строк.
func (p *HealthPanel) Height(n int) float32 {
	return 20 + float32(n*rowHeight)
}
