// internal/config/config.go
package config

import (
	"image/color"

	"go-arena-brawl/pkg/geom"
)

const (
	ArenaWidth  = 800
	ArenaHeight = 600
	TickRate    = 60 // тиков симуляции в секунду

	// Экран шире арены: справа панель с полосками здоровья.
	ScreenWidth  = ArenaWidth + HUDWidth
	ScreenHeight = ArenaHeight
	HUDWidth     = 140

	FighterSize = 32
	MaxHealth   = 10

	PlayerLives = 10
	EnemyLives  = 2
	EnemyCount  = 5
	SpawnMargin = 50 // отступ от края при случайном появлении

	RegenDelay    = 3000 // мс после последнего удара до начала регенерации
	RegenInterval = 1000 // мс между импульсами регенерации

	PlayerStep            = 5  // смещение игрока за тик по каждой оси
	MeleeReach            = 40 // насколько раздувается хитбокс ближней атаки
	MeleeDamage           = 1
	ProjectileDamage      = 1
	ProjectileSpeed       = 10 // единиц за тик
	ProjectileSize        = 8
	ProjectileSpawnOffset = 25

	EnemyBaseSpeed         = 2.0
	EnemySpeedPerMissingHP = 0.2
	EnemyBaseFireChance    = 0.01
	EnemyFireChancePerHP   = 0.005

	HealthBarWidth   = 100
	HealthBarHeight  = 10
	HealthBarSpacing = 10
)

var (
	BackgroundColor  = color.RGBA{12, 12, 20, 255}
	ArenaBorderColor = color.RGBA{70, 100, 120, 220}
	HUDColor         = color.RGBA{20, 20, 30, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	HealthBackColor  = color.RGBA{80, 0, 0, 255}
	PlayerColor      = color.RGBA{0, 255, 0, 255}
	CrownColor       = color.RGBA{255, 215, 0, 255}
	SkullColor       = color.RGBA{200, 200, 200, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 160}
	StrokeWidth      = float32(2.0)
)

// ArenaBounds возвращает границы арены.
func ArenaBounds() geom.Rect {
	return geom.NewRect(0, 0, ArenaWidth, ArenaHeight)
}

// ArenaCenter — точка появления игрока (левый верхний угол бокса в центре арены).
func ArenaCenter() geom.Point {
	return geom.Point{X: (ArenaWidth - FighterSize) / 2, Y: (ArenaHeight - FighterSize) / 2}
}

const (
	MaxDeltaTime     = 0.1 // секунды, ограничение шага для анимаций UI
	DamageFlashTicks = 6
	MeleeSwingTicks  = 8
)
