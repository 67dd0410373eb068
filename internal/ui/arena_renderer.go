// internal/ui/arena_renderer.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/pkg/render"
)

// ArenaRenderer рисует арену, бойцов и снаряды.
type ArenaRenderer struct {
	fontFace font.Face
	colors   render.ArenaColors
}

func NewArenaRenderer(fontFace font.Face, colors render.ArenaColors) *ArenaRenderer {
	return &ArenaRenderer{fontFace: fontFace, colors: colors}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, view render.ArenaView) {
	vector.DrawFilledRect(screen, 0, 0, config.ArenaWidth, config.ArenaHeight, r.colors.Background, false)

	for _, c := range view.Fallen() {
		r.drawFallen(screen, c)
	}
	for _, swing := range view.MeleeSwings() {
		alpha := uint8(40 + 20*swing.TicksLeft)
		vector.StrokeRect(screen, float32(swing.Box.X), float32(swing.Box.Y), float32(swing.Box.W), float32(swing.Box.H), r.colors.StrokeWidth, render.WithAlpha(r.colors.Player, alpha), false)
	}
	for _, c := range view.Combatants() {
		r.drawCombatant(screen, c, view.Flashing(c.ID))
	}
	if champ := view.Champion(); champ != nil {
		r.drawCrown(screen, champ)
	}
	for _, p := range view.Projectiles() {
		def := defs.Fighter(p.Class)
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), config.ProjectileSize/2, def.ProjectileColor, true)
	}

	vector.StrokeRect(screen, 1, 1, config.ArenaWidth-2, config.ArenaHeight-2, r.colors.StrokeWidth, r.colors.Border, false)
}

func (r *ArenaRenderer) drawCombatant(screen *ebiten.Image, c *component.Combatant, flashing bool) {
	def := defs.Fighter(c.Class)
	box := c.Bounds()
	x, y, w, h := float32(box.X), float32(box.Y), float32(box.W), float32(box.H)

	fill := def.Color
	if flashing {
		fill = r.colors.Flash
	}
	if c.IsInert() {
		fill = render.DarkenColor(fill)
	}
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	if c.IsPlayer() {
		vector.StrokeRect(screen, x-1, y-1, w+2, h+2, r.colors.StrokeWidth, r.colors.Player, false)
	}

	r.drawGlyph(screen, def.Symbol, box.Center().X, box.Center().Y)

	// полоска здоровья над бойцом
	barY := y - 6
	vector.DrawFilledRect(screen, x, barY, w, 3, r.colors.HealthBack, false)
	if c.MaxHealth > 0 {
		vector.DrawFilledRect(screen, x, barY, w*float32(c.Health)/float32(c.MaxHealth), 3, render.HealthColor(c.Health, c.MaxHealth), false)
	}
}

func (r *ArenaRenderer) drawFallen(screen *ebiten.Image, c *component.Combatant) {
	box := c.Bounds()
	x, y, w, h := float32(box.X), float32(box.Y), float32(box.W), float32(box.H)
	vector.DrawFilledRect(screen, x, y, w, h, render.DarkenColor(render.DarkenColor(defs.Fighter(c.Class).Color)), false)
	vector.StrokeLine(screen, x+4, y+4, x+w-4, y+h-4, 3, r.colors.Skull, true)
	vector.StrokeLine(screen, x+w-4, y+4, x+4, y+h-4, 3, r.colors.Skull, true)
}

func (r *ArenaRenderer) drawCrown(screen *ebiten.Image, c *component.Combatant) {
	box := c.Bounds()
	x, y, w := float32(box.X), float32(box.Y)-18, float32(box.W)
	vector.DrawFilledRect(screen, x+4, y+6, w-8, 5, r.colors.Crown, false)
	spike := (w - 8) / 5
	for i := 0; i < 3; i++ {
		sx := x + 4 + float32(i*2)*spike
		vector.DrawFilledRect(screen, sx, y, spike, 6, r.colors.Crown, false)
	}
}

func (r *ArenaRenderer) drawGlyph(screen *ebiten.Image, glyph string, cx, cy int) {
	if glyph == "" || r.fontFace == nil {
		return
	}
	bounds := text.BoundString(r.fontFace, glyph)
	tx := cx - bounds.Dx()/2
	ty := cy - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, glyph, r.fontFace, tx, ty, r.colors.Text)
}
