// internal/input/ebiten.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arena-brawl/internal/interfaces"
	"go-arena-brawl/pkg/geom"
)

var _ interfaces.InputProvider = (*EbitenInput)(nil)

// EbitenInput читает клавиатуру и мышь через ebiten.
// Движение — пока клавиша зажата, атаки — только в момент нажатия.
type EbitenInput struct{}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (i *EbitenInput) Poll() interfaces.InputState {
	x, y := ebiten.CursorPosition()
	return interfaces.InputState{
		Up:      anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:    anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:    anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:   anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Fire:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || anyJustPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
		Melee:   anyJustPressed(ebiten.KeySpace),
		Pause:   anyJustPressed(ebiten.KeyP, ebiten.KeyEscape),
		Restart: anyJustPressed(ebiten.KeyR),
		Pointer: geom.Point{X: x, Y: y},
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
