// internal/component/spawn.go
package component

import "go-arena-brawl/pkg/geom"

// Spawner выдает точку (левый верхний угол бокса) для повторного появления.
type Spawner interface {
	SpawnPoint() geom.Point
}

// FixedSpawn всегда возвращает одну и ту же точку. Используется для игрока.
type FixedSpawn struct {
	Point geom.Point
}

func (s FixedSpawn) SpawnPoint() geom.Point {
	return s.Point
}

// PointPicker — источник случайных точек (utils.PRNGService).
type PointPicker interface {
	PointIn(bounds geom.Rect, w, h, margin int) geom.Point
}

// RandomSpawn выбирает равномерно случайную точку внутри арены.
type RandomSpawn struct {
	Rng    PointPicker
	Bounds geom.Rect
	Size   int
	Margin int
}

func (s RandomSpawn) SpawnPoint() geom.Point {
	return s.Rng.PointIn(s.Bounds, s.Size, s.Size, s.Margin)
}
