// internal/ui/class_menu.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
)

const (
	menuButtonWidth  = 260
	menuButtonHeight = 40
	menuButtonGap    = 12
)

// ClassMenu — список классов для выбора перед матчем.
type ClassMenu struct {
	Selected int
	buttons  []image.Rectangle
	fontFace font.Face
}

// NewClassMenu раскладывает кнопки по центру экрана, начиная с top.
func NewClassMenu(fontFace font.Face, top int) *ClassMenu {
	m := &ClassMenu{fontFace: fontFace}
	for i := range defs.AllClasses {
		x := (config.ScreenWidth - menuButtonWidth) / 2
		y := top + i*(menuButtonHeight+menuButtonGap)
		m.buttons = append(m.buttons, image.Rect(x, y, x+menuButtonWidth, y+menuButtonHeight))
	}
	m.Select(defs.DefaultClass)
	return m
}

// Select выделяет класс c, если он есть в списке.
func (m *ClassMenu) Select(c defs.Class) {
	for i, class := range defs.AllClasses {
		if class == c {
			m.Selected = i
		}
	}
}

// Class возвращает выбранный класс.
func (m *ClassMenu) Class() defs.Class {
	return defs.AllClasses[m.Selected]
}

// Move сдвигает выделение на delta с переходом через край.
func (m *ClassMenu) Move(delta int) {
	n := len(defs.AllClasses)
	m.Selected = ((m.Selected+delta)%n + n) % n
}

// HitTest возвращает индекс кнопки под точкой или -1.
func (m *ClassMenu) HitTest(x, y int) int {
	p := image.Pt(x, y)
	for i, r := range m.buttons {
		if p.In(r) {
			return i
		}
	}
	return -1
}

func (m *ClassMenu) Draw(screen *ebiten.Image) {
	for i, r := range m.buttons {
		def := defs.Fighter(defs.AllClasses[i])
		bg := config.HUDColor
		if i == m.Selected {
			bg = def.Color
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.StrokeWidth, def.Color, false)

		label := fmt.Sprintf("%d. %s", i+1, def.Name)
		bounds := text.BoundString(m.fontFace, label)
		tx := r.Min.X + (r.Dx()-bounds.Dx())/2
		ty := r.Min.Y + (r.Dy()-bounds.Dy())/2 - bounds.Min.Y
		text.Draw(screen, label, m.fontFace, tx, ty, config.TextLightColor)
	}
}
