// internal/system/state.go
package system

import (
	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/entity"
	"go-arena-brawl/internal/event"
)

// StateSystem следит за фазой матча: выбывание игрока завершает матч.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.CombatantEliminated, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.CombatantEliminated {
		return
	}
	if data, ok := e.Data.(event.DamageData); ok && data.Target == s.ecs.PlayerID {
		s.EndMatch()
	}
}

// EndMatch переводит матч в фазу PhaseOver. Повторный вызов ничего не делает.
func (s *StateSystem) EndMatch() {
	if s.ecs.Phase == component.PhaseOver {
		return
	}
	s.ecs.Phase = component.PhaseOver
	s.eventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: s.ecs.ChampionID})
}

// CheckPlayer завершает матч, если игрок уже выбыл.
func (s *StateSystem) CheckPlayer() bool {
	if player := s.ecs.Player(); player == nil || player.IsInert() {
		s.EndMatch()
	}
	return s.Over()
}

func (s *StateSystem) Over() bool {
	return s.ecs.Phase == component.PhaseOver
}
