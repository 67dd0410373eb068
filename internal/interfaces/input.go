// internal/interfaces/input.go
package interfaces

import "go-arena-brawl/pkg/geom"

// InputState — снимок ввода за один тик. Направления уже объединены
// по обеим раскладкам (WASD и стрелки) провайдером ввода.
type InputState struct {
	Up, Down, Left, Right bool
	Fire                  bool // выстрел в сторону указателя, срабатывает один раз за нажатие
	Melee                 bool // удар в ближнем бою, один раз за нажатие
	Pause                 bool
	Restart               bool
	Pointer               geom.Point
}

// InputProvider опрашивается симуляцией один раз за тик.
type InputProvider interface {
	Poll() InputState
}
