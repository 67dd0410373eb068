// pkg/geom/rect.go
package geom

import "go-arena-brawl/pkg/utils"

// Point — целочисленная точка арены.
type Point struct {
	X, Y int
}

// Add возвращает сумму точек.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub возвращает разность p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistSq — квадрат евклидова расстояния между точками.
func (p Point) DistSq(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Rect — прямоугольник, выровненный по осям. X, Y — левый верхний угол.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect создает прямоугольник.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right — координата правого края (не включительно).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom — координата нижнего края (не включительно).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center возвращает центр прямоугольника с целочисленным делением.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains сообщает, лежит ли точка внутри прямоугольника.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect сообщает, лежит ли o целиком внутри r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects — стандартная проверка пересечения AABB.
// Прямоугольники, касающиеся только краем, не пересекаются.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Inflate увеличивает прямоугольник на dx по ширине и dy по высоте,
// сохраняя центр: по dx/2 с каждой стороны.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{
		X: r.X - dx/2,
		Y: r.Y - dy/2,
		W: r.W + dx,
		H: r.H + dy,
	}
}

// Translate сдвигает прямоугольник.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// MoveTo переносит левый верхний угол в p.
func (r Rect) MoveTo(p Point) Rect {
	r.X = p.X
	r.Y = p.Y
	return r
}

// ClampInto возвращает r, сдвинутый так, чтобы он лежал внутри bounds.
func (r Rect) ClampInto(bounds Rect) Rect {
	r.X = utils.Clamp(r.X, bounds.X, bounds.Right()-r.W)
	r.Y = utils.Clamp(r.Y, bounds.Y, bounds.Bottom()-r.H)
	return r
}

// CenteredAt строит прямоугольник w×h с центром в p.
func CenteredAt(p Point, w, h int) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}
