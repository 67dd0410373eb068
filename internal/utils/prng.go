// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-arena-brawl/pkg/geom"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Between возвращает случайное целое в диапазоне [lo, hi] включительно.
func (s *PRNGService) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// PointIn выбирает равномерно случайный левый верхний угол бокса w×h,
// целиком лежащего внутри bounds с отступом margin от краев.
func (s *PRNGService) PointIn(bounds geom.Rect, w, h, margin int) geom.Point {
	return geom.Point{
		X: s.Between(bounds.X+margin, bounds.Right()-w-margin),
		Y: s.Between(bounds.Y+margin, bounds.Bottom()-h-margin),
	}
}
