// internal/system/combat.go
package system

import (
	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/entity"
	"go-arena-brawl/internal/event"
	"go-arena-brawl/internal/interfaces"
	"go-arena-brawl/internal/types"
	"go-arena-brawl/pkg/geom"
)

// CombatSystem — единая точка нанесения урона и создания снарядов.
// Другие системы не меняют здоровье бойцов напрямую.
type CombatSystem struct {
	ecs             *entity.ECS
	clock           interfaces.Clock
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, clock interfaces.Clock, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		clock:           clock,
		eventDispatcher: eventDispatcher,
	}
}

// ApplyDamage наносит урон бойцу через общий контракт Damageable.
// Выбывший враг сразу убирается из списка активных.
func (s *CombatSystem) ApplyDamage(targetID, sourceID types.EntityID, amount int) component.DamageOutcome {
	target, ok := s.ecs.Combatant(targetID)
	if !ok {
		return component.OutcomeIgnored
	}

	outcome := target.TakeDamage(amount, s.clock.Now())
	if outcome == component.OutcomeIgnored {
		return outcome
	}

	data := event.DamageData{
		Target:  targetID,
		Source:  sourceID,
		Amount:  amount,
		Outcome: outcome,
		Health:  target.Health,
		Lives:   target.Lives,
	}

	switch outcome {
	case component.OutcomeHurt:
		s.ecs.DamageFlashes[targetID] = &component.DamageFlash{TicksLeft: config.DamageFlashTicks}
		s.eventDispatcher.Dispatch(event.Event{Type: event.CombatantDamaged, Data: data})
	case component.OutcomeRespawned:
		s.ecs.DamageFlashes[targetID] = &component.DamageFlash{TicksLeft: config.DamageFlashTicks}
		s.eventDispatcher.Dispatch(event.Event{Type: event.CombatantRespawned, Data: data})
	case component.OutcomeEliminated:
		if target.Role == component.RoleEnemy {
			s.ecs.Retire(targetID)
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.CombatantEliminated, Data: data})
	}
	return outcome
}

// Fire создает снаряд в точке origin, летящий в направлении (dx, dy).
func (s *CombatSystem) Fire(shooter *component.Combatant, origin geom.Point, dx, dy float64, targetID types.EntityID) *component.Projectile {
	proj := component.NewProjectile(origin, dx, dy, config.ProjectileSpeed, shooter.ID, shooter.Class)
	s.ecs.AddProjectile(proj)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.FiredData{Shooter: shooter.ID, Target: targetID},
	})
	return proj
}
