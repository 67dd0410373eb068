// internal/component/ai.go
package component

import (
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/types"
)

// AIController хранит параметры агрессии врага. Скорость и шанс выстрела
// растут линейно с потерянным здоровьем.
type AIController struct {
	BaseSpeed         float64
	SpeedPerMissingHP float64
	BaseFireChance    float64
	FireChancePerHP   float64

	// TargetID — цель, выбранная на последнем тике (0, если целей не было).
	TargetID types.EntityID
}

// NewAIController создает контроллер с параметрами из config.
func NewAIController() *AIController {
	return &AIController{
		BaseSpeed:         config.EnemyBaseSpeed,
		SpeedPerMissingHP: config.EnemySpeedPerMissingHP,
		BaseFireChance:    config.EnemyBaseFireChance,
		FireChancePerHP:   config.EnemyFireChancePerHP,
	}
}

// EffectiveSpeed — шаг по оси X за тик, усеченный до целого.
func (a *AIController) EffectiveSpeed(missingHP int) int {
	return int(a.BaseSpeed + a.SpeedPerMissingHP*float64(missingHP))
}

// FireChance — вероятность выстрела за тик.
func (a *AIController) FireChance(missingHP int) float64 {
	return a.BaseFireChance + a.FireChancePerHP*float64(missingHP)
}
