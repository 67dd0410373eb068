package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/pkg/geom"
)

func TestProjectileNormalizesDirection(t *testing.T) {
	p := NewProjectile(geom.Point{}, 30, -40, 10, 1, defs.ClassArcher)
	assert.InDelta(t, 1.0, math.Hypot(p.DX, p.DY), 1e-9)
	assert.InDelta(t, 0.6, p.DX, 1e-9)
	assert.InDelta(t, -0.8, p.DY, 1e-9)
}

func TestProjectileZeroDirection(t *testing.T) {
	p := NewProjectile(geom.Point{X: 50, Y: 60}, 0, 0, 10, 1, defs.ClassArcher)
	assert.Equal(t, 0.0, p.DX)
	assert.Equal(t, 0.0, p.DY)

	p.Advance()
	assert.Equal(t, geom.Point{X: 50, Y: 60}, p.Pos)
}

func TestProjectileLeavesArenaAfterSeventyTicks(t *testing.T) {
	bounds := config.ArenaBounds()
	p := NewProjectile(geom.Point{X: 100, Y: 100}, 1, 0, 10, 1, defs.ClassWizard)

	ticks := 0
	for !p.IsOffArena(bounds) {
		p.Advance()
		ticks++
		if ticks > 1000 {
			t.Fatal("projectile never left the arena")
		}
	}
	assert.Equal(t, 70, ticks)
	assert.Equal(t, 800, p.Pos.X)
}

func TestProjectileAdvanceTruncates(t *testing.T) {
	// 10 * cos(45°) ≈ 7.07 → 7 по каждой оси
	p := NewProjectile(geom.Point{X: 0, Y: 0}, 1, 1, 10, 1, defs.ClassWizard)
	p.Advance()
	assert.Equal(t, geom.Point{X: 7, Y: 7}, p.Pos)

	q := NewProjectile(geom.Point{X: 0, Y: 0}, -1, -1, 10, 1, defs.ClassWizard)
	q.Advance()
	assert.Equal(t, geom.Point{X: -7, Y: -7}, q.Pos)
}

func TestProjectileOffArenaEdges(t *testing.T) {
	bounds := config.ArenaBounds()
	cases := map[geom.Point]bool{
		{X: 0, Y: 0}:     false,
		{X: 799, Y: 599}: false,
		{X: -1, Y: 10}:   true,
		{X: 10, Y: -1}:   true,
		{X: 800, Y: 10}:  true,
		{X: 10, Y: 600}:  true,
	}
	for pos, want := range cases {
		p := &Projectile{Pos: pos}
		assert.Equal(t, want, p.IsOffArena(bounds), "%v", pos)
	}
}

func TestProjectileBoxCentered(t *testing.T) {
	p := &Projectile{Pos: geom.Point{X: 100, Y: 100}}
	assert.Equal(t, geom.NewRect(96, 96, 8, 8), p.Box())
}
