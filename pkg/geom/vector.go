// pkg/geom/vector.go
package geom

import "math"

// Normalize приводит вектор (dx, dy) к единичной длине.
// Для нулевого вектора длина считается равной 1, результат — (0, 0).
func Normalize(dx, dy float64) (float64, float64) {
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		mag = 1
	}
	return dx / mag, dy / mag
}

// Direction возвращает единичный вектор от from к to.
func Direction(from, to Point) (float64, float64) {
	return Normalize(float64(to.X-from.X), float64(to.Y-from.Y))
}
