package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 32, 32)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", NewRect(16, 16, 32, 32), true},
		{"inside", NewRect(4, 4, 8, 8), true},
		{"touching right edge", NewRect(32, 0, 32, 32), false},
		{"touching bottom edge", NewRect(0, 32, 32, 32), false},
		{"far away", NewRect(100, 100, 8, 8), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a))
		})
	}
}

func TestRectInflateKeepsCenter(t *testing.T) {
	r := NewRect(100, 100, 32, 32)
	inflated := r.Inflate(40, 40)

	assert.Equal(t, NewRect(80, 80, 72, 72), inflated)
	assert.Equal(t, r.Center(), inflated.Center())
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 800, 600)

	assert.True(t, r.Contains(Point{0, 0}))
	assert.True(t, r.Contains(Point{799, 599}))
	assert.False(t, r.Contains(Point{800, 10}))
	assert.False(t, r.Contains(Point{-1, 10}))
	assert.True(t, r.ContainsRect(NewRect(768, 568, 32, 32)))
	assert.False(t, r.ContainsRect(NewRect(769, 568, 32, 32)))
}

func TestRectClampInto(t *testing.T) {
	bounds := NewRect(0, 0, 800, 600)

	assert.Equal(t, NewRect(0, 0, 32, 32), NewRect(-10, -50, 32, 32).ClampInto(bounds))
	assert.Equal(t, NewRect(768, 568, 32, 32), NewRect(900, 700, 32, 32).ClampInto(bounds))
	assert.Equal(t, NewRect(10, 20, 32, 32), NewRect(10, 20, 32, 32).ClampInto(bounds))
}

func TestNormalize(t *testing.T) {
	dx, dy := Normalize(3, 4)
	assert.InDelta(t, 0.6, dx, 1e-9)
	assert.InDelta(t, 0.8, dy, 1e-9)
	assert.InDelta(t, 1.0, math.Hypot(dx, dy), 1e-9)

	dx, dy = Normalize(0, 0)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
	assert.False(t, math.IsNaN(dx) || math.IsNaN(dy))
}

func TestDirection(t *testing.T) {
	dx, dy := Direction(Point{400, 300}, Point{400, 200})
	assert.InDelta(t, 0.0, dx, 1e-9)
	assert.InDelta(t, -1.0, dy, 1e-9)
}
