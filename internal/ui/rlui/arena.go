// internal/ui/rlui/arena.go
package rlui

import (
	"image/color"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/pkg/render"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 4.0
	LivesCircleSpacing = 3.0
)

// DrawArena рисует арену средствами raylib: бойцов, выбывших, снаряды и корону.
func DrawArena(view render.ArenaView) {
	rl.DrawRectangle(0, 0, config.ArenaWidth, config.ArenaHeight, ColorToRL(config.BackgroundColor))

	for _, c := range view.Fallen() {
		b := c.Bounds()
		rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), ColorToRL(render.DarkenColor(render.DarkenColor(defs.Fighter(c.Class).Color))))
		rl.DrawLineEx(rl.NewVector2(float32(b.X+4), float32(b.Y+4)), rl.NewVector2(float32(b.Right()-4), float32(b.Bottom()-4)), 3, ColorToRL(config.SkullColor))
		rl.DrawLineEx(rl.NewVector2(float32(b.Right()-4), float32(b.Y+4)), rl.NewVector2(float32(b.X+4), float32(b.Bottom()-4)), 3, ColorToRL(config.SkullColor))
	}

	for _, c := range view.Combatants() {
		drawCombatant(c, view.Flashing(c.ID))
	}

	if champ := view.Champion(); champ != nil {
		b := champ.Bounds()
		cx := float32(b.Center().X)
		top := float32(b.Y - 18)
		rl.DrawTriangle(
			rl.NewVector2(cx, top),
			rl.NewVector2(cx-10, top+12),
			rl.NewVector2(cx+10, top+12),
			ColorToRL(config.CrownColor),
		)
	}

	for _, p := range view.Projectiles() {
		rl.DrawCircle(int32(p.Pos.X), int32(p.Pos.Y), config.ProjectileSize/2, ColorToRL(defs.Fighter(p.Class).ProjectileColor))
	}

	rl.DrawRectangleLines(0, 0, config.ArenaWidth, config.ArenaHeight, ColorToRL(config.ArenaBorderColor))
}

func drawCombatant(c *component.Combatant, flashing bool) {
	def := defs.Fighter(c.Class)
	b := c.Bounds()
	fill := def.Color
	if flashing {
		fill = color.RGBA{255, 255, 255, 255}
	}
	rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), ColorToRL(fill))
	if c.IsPlayer() {
		rl.DrawRectangleLines(int32(b.X-1), int32(b.Y-1), int32(b.W+2), int32(b.H+2), ColorToRL(config.PlayerColor))
	}
	textWidth := rl.MeasureText(def.Symbol, 20)
	rl.DrawText(def.Symbol, int32(b.Center().X)-textWidth/2, int32(b.Center().Y)-10, 20, rl.White)

	// полоска здоровья над бойцом
	barW := int32(b.W) * int32(c.Health) / int32(c.MaxHealth)
	rl.DrawRectangle(int32(b.X), int32(b.Y-6), int32(b.W), 3, ColorToRL(config.HealthBackColor))
	rl.DrawRectangle(int32(b.X), int32(b.Y-6), barW, 3, ColorToRL(render.HealthColor(c.Health, c.MaxHealth)))
}

// DrawLivesPanel рисует панель справа: для каждого бойца класс, здоровье
// числом и оставшиеся жизни сеткой кружков.
func DrawLivesPanel(x, y float32, fighters []*component.Combatant) {
	rl.DrawRectangle(int32(x), int32(y), config.HUDWidth, config.ScreenHeight, ColorToRL(config.HUDColor))
	startY := y + 10
	for _, c := range fighters {
		def := defs.Fighter(c.Class)
		label := def.Symbol + " " + strconv.Itoa(c.Health) + "/" + strconv.Itoa(c.MaxHealth)
		clr := ColorToRL(def.Color)
		if c.IsInert() {
			clr = ColorToRL(render.DarkenColor(def.Color))
		}
		rl.DrawText(label, int32(x)+10, int32(startY), 14, clr)
		startY += 18

		for j := 0; j < c.Lives; j++ {
			row := j / LivesCols
			col := j % LivesCols
			cx := x + 10 + float32(col)*(LivesCircleRadius*2+LivesCircleSpacing) + LivesCircleRadius
			cy := startY + float32(row)*(LivesCircleRadius*2+LivesCircleSpacing) + LivesCircleRadius
			rl.DrawCircle(int32(cx), int32(cy), LivesCircleRadius, clr)
			rl.DrawCircleLines(int32(cx), int32(cy), LivesCircleRadius, rl.White)
		}
		rows := (c.Lives + LivesCols - 1) / LivesCols
		startY += float32(rows)*(LivesCircleRadius*2+LivesCircleSpacing) + 8
	}
}

// ColorToRL переводит color.RGBA в rl.Color.
func ColorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
