// internal/system/player_system.go
package system

import (
	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/entity"
	"go-arena-brawl/internal/interfaces"
	"go-arena-brawl/pkg/geom"
)

// PlayerSystem переводит ввод в движение и атаки игрока.
type PlayerSystem struct {
	ecs    *entity.ECS
	combat *CombatSystem
	clock  interfaces.Clock
	bounds geom.Rect
}

func NewPlayerSystem(ecs *entity.ECS, combat *CombatSystem, clock interfaces.Clock) *PlayerSystem {
	return &PlayerSystem{
		ecs:    ecs,
		combat: combat,
		clock:  clock,
		bounds: config.ArenaBounds(),
	}
}

// Update применяет ввод одного тика: движение, ближний бой, выстрел, регенерация.
func (s *PlayerSystem) Update(in interfaces.InputState) {
	player := s.ecs.Player()
	if player == nil || player.IsInert() {
		return
	}

	s.Move(player, in)
	if in.Melee {
		s.Melee(player)
	}
	if in.Fire {
		s.Fire(player, in.Pointer)
	}
	player.Regenerate(s.clock.Now())
}

// Move сдвигает игрока на PlayerStep по каждой зажатой оси.
// Противоположные направления взаимно гасятся.
func (s *PlayerSystem) Move(player *component.Combatant, in interfaces.InputState) {
	dx, dy := 0, 0
	if in.Left {
		dx -= config.PlayerStep
	}
	if in.Right {
		dx += config.PlayerStep
	}
	if in.Up {
		dy -= config.PlayerStep
	}
	if in.Down {
		dy += config.PlayerStep
	}
	player.MoveAndClamp(dx, dy, s.bounds)
}

// MeleeHitbox — бокс игрока, раздутый на MeleeReach по каждой оси.
func MeleeHitbox(player *component.Combatant) geom.Rect {
	return player.Bounds().Inflate(config.MeleeReach, config.MeleeReach)
}

// Melee наносит по MeleeDamage каждому активному врагу в зоне удара.
// Возвращает число задетых врагов.
func (s *PlayerSystem) Melee(player *component.Combatant) int {
	hitbox := MeleeHitbox(player)
	s.ecs.MeleeSwings = append(s.ecs.MeleeSwings, &component.MeleeSwing{Box: hitbox, TicksLeft: config.MeleeSwingTicks})

	hits := 0
	// Enemies() возвращает копию, поэтому выбывание врага не ломает обход.
	for _, enemy := range s.ecs.Enemies() {
		if enemy.IsInert() || !hitbox.Intersects(enemy.Bounds()) {
			continue
		}
		s.combat.ApplyDamage(enemy.ID, player.ID, config.MeleeDamage)
		hits++
	}
	return hits
}

// Fire выпускает снаряд из центра игрока в сторону указателя,
// сдвинув точку появления на ProjectileSpawnOffset вдоль направления.
func (s *PlayerSystem) Fire(player *component.Combatant, pointer geom.Point) *component.Projectile {
	center := player.Center()
	dx, dy := geom.Direction(center, pointer)
	origin := geom.Point{
		X: center.X + int(dx*config.ProjectileSpawnOffset),
		Y: center.Y + int(dy*config.ProjectileSpawnOffset),
	}
	return s.combat.Fire(player, origin, dx, dy, 0)
}
