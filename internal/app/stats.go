// internal/app/stats.go
package app

import (
	"strconv"

	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/event"
	"go-arena-brawl/internal/types"
)

// FighterStats — счетчики одного бойца за матч.
type FighterStats struct {
	ShotsFired   int
	HitsLanded   int
	LivesLost    int
	Eliminations int
}

// MatchStats собирает статистику матча из событий.
type MatchStats struct {
	ByFighter map[types.EntityID]*FighterStats
}

func NewMatchStats() *MatchStats {
	return &MatchStats{ByFighter: make(map[types.EntityID]*FighterStats)}
}

// For возвращает счетчики бойца, создавая их при необходимости.
func (s *MatchStats) For(id types.EntityID) *FighterStats {
	st, ok := s.ByFighter[id]
	if !ok {
		st = &FighterStats{}
		s.ByFighter[id] = st
	}
	return st
}

// OnEvent реализует интерфейс event.Listener.
func (s *MatchStats) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		if d, ok := e.Data.(event.FiredData); ok {
			s.For(d.Shooter).ShotsFired++
		}
	case event.CombatantDamaged, event.CombatantRespawned, event.CombatantEliminated:
		d, ok := e.Data.(event.DamageData)
		if !ok {
			return
		}
		if d.Source != 0 {
			s.For(d.Source).HitsLanded++
		}
		if d.Outcome == component.OutcomeRespawned || d.Outcome == component.OutcomeEliminated {
			s.For(d.Target).LivesLost++
		}
		if d.Outcome == component.OutcomeEliminated && d.Source != 0 {
			s.For(d.Source).Eliminations++
		}
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
