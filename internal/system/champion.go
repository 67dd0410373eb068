// internal/system/champion.go
package system

import (
	"go-arena-brawl/internal/entity"
	"go-arena-brawl/internal/event"
	"go-arena-brawl/internal/types"
)

// ChampionSystem отмечает последнего бойца, у которого осталось здоровье.
// Чемпион назначается один раз и больше не пересматривается.
type ChampionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewChampionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ChampionSystem {
	return &ChampionSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ChampionSystem) Update() {
	if s.ecs.ChampionID != 0 {
		return
	}

	var alive types.EntityID
	count := 0
	// Игрок учитывается всегда, враги — только активные.
	if player := s.ecs.Player(); player != nil && player.Health > 0 {
		alive = player.ID
		count++
	}
	for _, enemy := range s.ecs.Enemies() {
		if enemy.Health > 0 {
			alive = enemy.ID
			count++
		}
	}

	if count == 1 {
		s.ecs.ChampionID = alive
		s.eventDispatcher.Dispatch(event.Event{Type: event.ChampionCrowned, Data: alive})
	}
}
