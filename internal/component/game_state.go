// internal/component/game_state.go
package component

// MatchPhase — фаза матча
type MatchPhase int

const (
	PhaseRunning MatchPhase = iota
	PhaseOver               // игрок выбыл, симуляция остановлена
)
