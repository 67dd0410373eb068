// internal/input/scripted.go
package input

import (
	"go-arena-brawl/internal/interfaces"
	"go-arena-brawl/pkg/geom"
)

var (
	_ interfaces.InputProvider = Idle{}
	_ interfaces.InputProvider = (*Script)(nil)
	_ interfaces.InputProvider = (*Latch)(nil)
)

// Idle — ввод, в котором ничего не нажато. Используется зрителем.
type Idle struct{}

func (Idle) Poll() interfaces.InputState {
	return interfaces.InputState{}
}

// Script проигрывает заранее записанную последовательность ввода,
// после конца последовательности возвращает пустой ввод.
type Script struct {
	Frames []interfaces.InputState
	pos    int
}

func NewScript(frames ...interfaces.InputState) *Script {
	return &Script{Frames: frames}
}

func (s *Script) Poll() interfaces.InputState {
	if s.pos >= len(s.Frames) {
		return interfaces.InputState{}
	}
	in := s.Frames[s.pos]
	s.pos++
	return in
}

// Direction — направление движения для Latch.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Latch собирает ввод из источников, которые не сообщают об отпускании
// клавиш (терминал). Направление считается зажатым HoldTicks тиков после
// последнего нажатия, атаки срабатывают в ближайшем тике один раз.
type Latch struct {
	HoldTicks int

	held    [4]int
	fire    bool
	melee   bool
	pause   bool
	restart bool
	pointer geom.Point
}

func NewLatch(holdTicks int) *Latch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Latch{HoldTicks: holdTicks}
}

// Move продлевает удержание направления и отменяет противоположное.
func (l *Latch) Move(dir Direction) {
	l.held[dir] = l.HoldTicks
	l.held[opposite(dir)] = 0
}

// Fire запоминает выстрел в точку at.
func (l *Latch) Fire(at geom.Point) {
	l.fire = true
	l.pointer = at
}

func (l *Latch) Melee()   { l.melee = true }
func (l *Latch) Pause()   { l.pause = true }
func (l *Latch) Restart() { l.restart = true }

// Poll возвращает ввод текущего тика и списывает один тик удержания.
func (l *Latch) Poll() interfaces.InputState {
	in := interfaces.InputState{
		Up:      l.held[Up] > 0,
		Down:    l.held[Down] > 0,
		Left:    l.held[Left] > 0,
		Right:   l.held[Right] > 0,
		Fire:    l.fire,
		Melee:   l.melee,
		Pause:   l.pause,
		Restart: l.restart,
		Pointer: l.pointer,
	}
	for i := range l.held {
		if l.held[i] > 0 {
			l.held[i]--
		}
	}
	l.fire, l.melee, l.pause, l.restart = false, false, false, false
	return in
}

func opposite(dir Direction) Direction {
	switch dir {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}
