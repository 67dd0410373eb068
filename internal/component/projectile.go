// internal/component/projectile.go
package component

import (
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/internal/types"
	"go-arena-brawl/pkg/geom"
)

// Projectile представляет летящий снаряд. Летит по прямой с постоянной скоростью.
type Projectile struct {
	Pos    geom.Point // центр снаряда
	DX, DY float64    // единичный вектор направления
	Speed  int        // единиц за тик
	Owner  types.EntityID
	Class  defs.Class // класс стрелка, для отрисовки
}

// NewProjectile создает снаряд; направление нормализуется,
// нулевой вектор дает неподвижный снаряд.
func NewProjectile(origin geom.Point, dx, dy float64, speed int, owner types.EntityID, class defs.Class) *Projectile {
	ndx, ndy := geom.Normalize(dx, dy)
	return &Projectile{
		Pos:   origin,
		DX:    ndx,
		DY:    ndy,
		Speed: speed,
		Owner: owner,
		Class: class,
	}
}

// Advance сдвигает снаряд на один тик, отбрасывая дробную часть по каждой оси.
func (p *Projectile) Advance() {
	p.Pos.X += int(p.DX * float64(p.Speed))
	p.Pos.Y += int(p.DY * float64(p.Speed))
}

// Box — хитбокс снаряда для проверки попаданий.
func (p *Projectile) Box() geom.Rect {
	return geom.CenteredAt(p.Pos, config.ProjectileSize, config.ProjectileSize)
}

// IsOffArena сообщает, что снаряд вылетел за пределы bounds.
func (p *Projectile) IsOffArena(bounds geom.Rect) bool {
	return !bounds.Contains(p.Pos)
}
