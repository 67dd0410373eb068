// internal/app/listener.go
package app

import (
	"log"

	"go-arena-brawl/internal/event"
	"go-arena-brawl/internal/types"
)

// MatchLogger пишет в лог значимые события матча.
type MatchLogger struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *MatchLogger) OnEvent(e event.Event) {
	switch e.Type {
	case event.CombatantRespawned:
		if d, ok := e.Data.(event.DamageData); ok {
			log.Printf("[%s] tick %d: %s lost a life (%d left)", l.game.shortID(), l.game.ECS.Tick, l.describe(d.Target), d.Lives)
		}
	case event.CombatantEliminated:
		if d, ok := e.Data.(event.DamageData); ok {
			log.Printf("[%s] tick %d: %s eliminated by %s", l.game.shortID(), l.game.ECS.Tick, l.describe(d.Target), l.describe(d.Source))
		}
	case event.ChampionCrowned:
		if id, ok := e.Data.(types.EntityID); ok {
			log.Printf("[%s] tick %d: %s is the champion", l.game.shortID(), l.game.ECS.Tick, l.describe(id))
		}
	case event.MatchEnded:
		log.Printf("[%s] tick %d: match over", l.game.shortID(), l.game.ECS.Tick)
	}
}

func (l *MatchLogger) describe(id types.EntityID) string {
	c, ok := l.game.ECS.Combatant(id)
	if !ok {
		return "unknown"
	}
	return c.Role.String() + "#" + itoa(int(c.ID)) + "(" + string(c.Class) + ")"
}
