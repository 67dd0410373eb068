// internal/event/types.go
package event

import (
	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/types"
)

const (
	CombatantDamaged    EventType = "CombatantDamaged"    // боец получил урон и остался жив
	CombatantRespawned  EventType = "CombatantRespawned"  // боец потерял жизнь и появился заново
	CombatantEliminated EventType = "CombatantEliminated" // у бойца кончились жизни
	ProjectileFired     EventType = "ProjectileFired"
	ChampionCrowned     EventType = "ChampionCrowned"
	MatchEnded          EventType = "MatchEnded"
)

// DamageData — данные событий урона.
type DamageData struct {
	Target  types.EntityID
	Source  types.EntityID // 0 — источник неизвестен
	Amount  int
	Outcome component.DamageOutcome
	Health  int
	Lives   int
}

// FiredData — данные события выстрела.
type FiredData struct {
	Shooter types.EntityID
	Target  types.EntityID // 0 для выстрела игрока
}
