package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-arena-brawl/pkg/geom"
)

func TestPRNGServiceDeterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, int64(7), a.Seed())
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestPRNGServicePointIn(t *testing.T) {
	rng := NewPRNGService(99)
	bounds := geom.NewRect(0, 0, 800, 600)
	for i := 0; i < 500; i++ {
		p := rng.PointIn(bounds, 32, 32, 50)
		box := geom.NewRect(p.X, p.Y, 32, 32)
		assert.True(t, bounds.ContainsRect(box), "%v", box)
		assert.GreaterOrEqual(t, p.X, 50)
		assert.LessOrEqual(t, p.X, 800-32-50)
	}
	assert.Equal(t, 5, rng.Between(5, 5))
	assert.Equal(t, 5, rng.Between(5, 1))
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(100)
	assert.Equal(t, int64(100), c.Now())
	c.Advance(50)
	assert.Equal(t, int64(150), c.Now())
	c.Set(10)
	assert.Equal(t, int64(10), c.Now())
	assert.Equal(t, int64(16), TickMillis(60))
	assert.Equal(t, int64(0), TickMillis(0))
}
