// internal/system/visual_effect.go
package system

import (
	"go-arena-brawl/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update уменьшает таймеры эффектов на один тик.
func (s *VisualEffectSystem) Update() {
	for id, flash := range s.ecs.DamageFlashes {
		flash.TicksLeft--
		if flash.TicksLeft <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	swings := s.ecs.MeleeSwings[:0]
	for _, swing := range s.ecs.MeleeSwings {
		swing.TicksLeft--
		if swing.TicksLeft > 0 {
			swings = append(swings, swing)
		}
	}
	s.ecs.MeleeSwings = swings
}
