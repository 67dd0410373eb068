// internal/system/projectile.go
package system

import (
	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/entity"
	"go-arena-brawl/pkg/geom"
)

// ProjectileSystem двигает снаряды и разрешает попадания.
type ProjectileSystem struct {
	ecs    *entity.ECS
	combat *CombatSystem
	bounds geom.Rect
}

func NewProjectileSystem(ecs *entity.ECS, combat *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:    ecs,
		combat: combat,
		bounds: config.ArenaBounds(),
	}
}

// Update продвигает каждый снаряд на тик. Попадание засчитывается первому
// бойцу в порядке Roster, чей бокс пересекает снаряд (кроме владельца).
// Возвращает true, если выбыл игрок: оставшиеся снаряды тогда не обрабатываются.
func (s *ProjectileSystem) Update() bool {
	remaining := s.ecs.Projectiles[:0]
	for i, proj := range s.ecs.Projectiles {
		proj.Advance()
		if proj.IsOffArena(s.bounds) {
			continue
		}

		target := s.firstHit(proj)
		if target == nil {
			remaining = append(remaining, proj)
			continue
		}

		outcome := s.combat.ApplyDamage(target.ID, proj.Owner, config.ProjectileDamage)
		if outcome == component.OutcomeEliminated && target.IsPlayer() {
			remaining = append(remaining, s.ecs.Projectiles[i+1:]...)
			s.ecs.Projectiles = remaining
			return true
		}
	}
	s.ecs.Projectiles = remaining
	return false
}

func (s *ProjectileSystem) firstHit(proj *component.Projectile) *component.Combatant {
	box := proj.Box()
	for _, c := range s.ecs.Active() {
		if c.ID == proj.Owner || c.IsInert() {
			continue
		}
		if box.Intersects(c.Bounds()) {
			return c
		}
	}
	return nil
}
