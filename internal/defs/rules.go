// internal/defs/rules.go
package defs

import "go-arena-brawl/internal/config"

// Rules describes the setup of a single match.
type Rules struct {
	Seed        int64 `json:"seed"` // 0 — случайный сид
	EnemyCount  int   `json:"enemy_count" jsonschema:"minimum=0"`
	PlayerLives int   `json:"player_lives" jsonschema:"minimum=1"`
	EnemyLives  int   `json:"enemy_lives" jsonschema:"minimum=1"`
}

// DefaultRules возвращает правила из констант config.
func DefaultRules() Rules {
	return Rules{
		EnemyCount:  config.EnemyCount,
		PlayerLives: config.PlayerLives,
		EnemyLives:  config.EnemyLives,
	}
}

// Normalize заменяет недопустимые значения значениями по умолчанию.
func (r Rules) Normalize() Rules {
	d := DefaultRules()
	if r.EnemyCount < 0 {
		r.EnemyCount = d.EnemyCount
	}
	if r.PlayerLives < 1 {
		r.PlayerLives = d.PlayerLives
	}
	if r.EnemyLives < 1 {
		r.EnemyLives = d.EnemyLives
	}
	return r
}
