// internal/entity/ecs.go
package entity

import (
	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/types"
)

// ECS — реестр всех сущностей матча. Единственный владелец бойцов и снарядов;
// остальные ссылаются на бойцов только по EntityID.
type ECS struct {
	Tick       uint64
	NextID     types.EntityID
	Combatants map[types.EntityID]*component.Combatant
	// Roster — активные бойцы в порядке проверки попаданий: игрок, затем враги.
	Roster []types.EntityID
	// Fallen — выбывшие бойцы, остаются только для маркера поражения.
	Fallen        []types.EntityID
	Projectiles   []*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash
	MeleeSwings   []*component.MeleeSwing
	PlayerID      types.EntityID
	ChampionID    types.EntityID // только для отображения, 0 — чемпиона нет
	Phase         component.MatchPhase
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Combatants:    make(map[types.EntityID]*component.Combatant),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Phase:         component.PhaseRunning,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddCombatant регистрирует бойца и ставит его в конец списка активных.
func (ecs *ECS) AddCombatant(c *component.Combatant) {
	ecs.Combatants[c.ID] = c
	ecs.Roster = append(ecs.Roster, c.ID)
	if c.Role == component.RolePlayer {
		ecs.PlayerID = c.ID
	}
}

// Combatant возвращает бойца по ID (активного или выбывшего).
func (ecs *ECS) Combatant(id types.EntityID) (*component.Combatant, bool) {
	c, ok := ecs.Combatants[id]
	return c, ok
}

// Player возвращает игрока или nil.
func (ecs *ECS) Player() *component.Combatant {
	return ecs.Combatants[ecs.PlayerID]
}

// Active возвращает активных бойцов в порядке Roster.
func (ecs *ECS) Active() []*component.Combatant {
	out := make([]*component.Combatant, 0, len(ecs.Roster))
	for _, id := range ecs.Roster {
		if c, ok := ecs.Combatants[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Enemies возвращает активных врагов в порядке Roster.
func (ecs *ECS) Enemies() []*component.Combatant {
	out := make([]*component.Combatant, 0, len(ecs.Roster))
	for _, c := range ecs.Active() {
		if c.Role == component.RoleEnemy {
			out = append(out, c)
		}
	}
	return out
}

// IsActive сообщает, числится ли боец в Roster.
func (ecs *ECS) IsActive(id types.EntityID) bool {
	for _, rid := range ecs.Roster {
		if rid == id {
			return true
		}
	}
	return false
}

// Retire убирает бойца из активных и переносит в Fallen.
// Игрок остается в Roster: его выбывание завершает матч.
func (ecs *ECS) Retire(id types.EntityID) bool {
	if id == ecs.PlayerID {
		return false
	}
	for i, rid := range ecs.Roster {
		if rid == id {
			ecs.Roster = append(ecs.Roster[:i], ecs.Roster[i+1:]...)
			ecs.Fallen = append(ecs.Fallen, id)
			delete(ecs.DamageFlashes, id)
			return true
		}
	}
	return false
}

// FallenCombatants возвращает выбывших бойцов в порядке выбывания.
func (ecs *ECS) FallenCombatants() []*component.Combatant {
	out := make([]*component.Combatant, 0, len(ecs.Fallen))
	for _, id := range ecs.Fallen {
		if c, ok := ecs.Combatants[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// AddProjectile добавляет снаряд в конец очереди.
func (ecs *ECS) AddProjectile(p *component.Projectile) {
	ecs.Projectiles = append(ecs.Projectiles, p)
}

// ClearProjectiles удаляет все снаряды.
func (ecs *ECS) ClearProjectiles() {
	ecs.Projectiles = nil
}
