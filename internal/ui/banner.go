// internal/ui/banner.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Banner — надпись по центру с обводкой.
type Banner struct {
	CenterX, Y       int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
	fontFace         font.Face
}

// NewBanner создает надпись с центром по горизонтали в centerX.
func NewBanner(centerX, y int, fontFace font.Face, clr color.Color) *Banner {
	return &Banner{
		CenterX:          centerX,
		Y:                y,
		Color:            clr,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
		fontFace:         fontFace,
	}
}

// Draw рисует строки s одну под другой.
func (b *Banner) Draw(screen *ebiten.Image, lines ...string) {
	y := b.Y
	for _, line := range lines {
		bounds := text.BoundString(b.fontFace, line)
		x := b.CenterX - bounds.Dx()/2

		for oy := -b.OutlineThickness; oy <= b.OutlineThickness; oy++ {
			for ox := -b.OutlineThickness; ox <= b.OutlineThickness; ox++ {
				if ox == 0 && oy == 0 {
					continue
				}
				text.Draw(screen, line, b.fontFace, x+ox, y+oy, b.OutlineColor)
			}
		}
		text.Draw(screen, line, b.fontFace, x, y, b.Color)
		y += bounds.Dy() + 8
	}
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
