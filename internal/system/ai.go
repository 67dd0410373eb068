// internal/system/ai.go
package system

import (
	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/entity"
	"go-arena-brawl/internal/interfaces"
	"go-arena-brawl/internal/types"
	"go-arena-brawl/pkg/geom"
	"go-arena-brawl/pkg/utils"
)

// TargetInfo — снимок возможной цели на начало фазы ИИ.
type TargetInfo struct {
	ID     types.EntityID
	Center geom.Point
}

// SelectTarget выбирает ближайшую к from цель по квадрату расстояния между
// центрами. При равенстве побеждает первая в списке. Цель с ID self пропускается.
func SelectTarget(self types.EntityID, from geom.Point, candidates []TargetInfo) (TargetInfo, bool) {
	var best TargetInfo
	found := false
	bestDist := 0
	for _, c := range candidates {
		if c.ID == self {
			continue
		}
		d := from.DistSq(c.Center)
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// AISystem управляет врагами: выбор цели, преследование по X, стрельба, регенерация.
type AISystem struct {
	ecs    *entity.ECS
	combat *CombatSystem
	rng    interfaces.Rand
	clock  interfaces.Clock
	bounds geom.Rect
}

func NewAISystem(ecs *entity.ECS, combat *CombatSystem, rng interfaces.Rand, clock interfaces.Clock) *AISystem {
	return &AISystem{
		ecs:    ecs,
		combat: combat,
		rng:    rng,
		clock:  clock,
		bounds: config.ArenaBounds(),
	}
}

// Snapshot фиксирует позиции всех активных бойцов до того, как кто-либо сходит,
// чтобы порядок обхода врагов не влиял на выбор целей.
func (s *AISystem) Snapshot() []TargetInfo {
	active := s.ecs.Active()
	out := make([]TargetInfo, 0, len(active))
	for _, c := range active {
		if c.IsInert() {
			continue
		}
		out = append(out, TargetInfo{ID: c.ID, Center: c.Center()})
	}
	return out
}

func (s *AISystem) Update() {
	targets := s.Snapshot()
	for _, enemy := range s.ecs.Enemies() {
		if enemy.IsInert() || enemy.AI == nil {
			continue
		}
		s.Step(enemy, targets)
	}
}

// Step выполняет один тик решения для одного врага.
func (s *AISystem) Step(enemy *component.Combatant, targets []TargetInfo) {
	now := s.clock.Now()
	target, ok := SelectTarget(enemy.ID, enemy.Center(), targets)
	if !ok {
		enemy.AI.TargetID = 0
		enemy.Regenerate(now)
		return
	}
	enemy.AI.TargetID = target.ID

	missing := enemy.MissingHealth()
	speed := enemy.AI.EffectiveSpeed(missing)
	center := enemy.Center()
	enemy.MoveAndClamp(utils.Sign(target.Center.X-center.X)*speed, 0, s.bounds)

	if s.rng.Float64() < enemy.AI.FireChance(missing) {
		from := enemy.Center()
		dx, dy := geom.Direction(from, target.Center)
		s.combat.Fire(enemy, from, dx, dy, target.ID)
	}

	enemy.Regenerate(now)
}
