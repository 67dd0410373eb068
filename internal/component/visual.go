// internal/component/visual.go
package component

import "go-arena-brawl/pkg/geom"

// DamageFlash указывает, что боец должен быть отрисован цветом урона.
type DamageFlash struct {
	TicksLeft int // Сколько тиков эффект еще активен
}

// MeleeSwing — визуальный след удара в ближнем бою: хитбокс атаки.
type MeleeSwing struct {
	Box       geom.Rect
	TicksLeft int
}
