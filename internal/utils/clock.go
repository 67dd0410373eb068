// internal/utils/clock.go
package utils

import "time"

// WallClock отдает монотонное время в миллисекундах с момента создания.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now возвращает миллисекунды с момента старта.
func (c *WallClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock — часы, которые двигаются только вручную. Используются
// для детерминированного воспроизведения матча и в тестах.
type ManualClock struct {
	now int64
}

func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() int64 {
	return c.now
}

// Set устанавливает текущее время.
func (c *ManualClock) Set(ms int64) {
	c.now = ms
}

// Advance сдвигает время вперед на ms миллисекунд.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}

// TickMillis — длительность одного тика при заданной частоте, в мс.
func TickMillis(tickRate int) int64 {
	if tickRate <= 0 {
		return 0
	}
	return int64(1000 / tickRate)
}
