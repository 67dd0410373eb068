package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-arena-brawl/internal/interfaces"
	"go-arena-brawl/pkg/geom"
)

func TestScriptPlaysFramesThenIdles(t *testing.T) {
	s := NewScript(interfaces.InputState{Left: true}, interfaces.InputState{Fire: true})

	assert.True(t, s.Poll().Left)
	assert.True(t, s.Poll().Fire)
	assert.Equal(t, interfaces.InputState{}, s.Poll())
	assert.Equal(t, Idle{}.Poll(), s.Poll())
}

func TestLatchHoldsDirection(t *testing.T) {
	l := NewLatch(3)
	l.Move(Left)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Poll().Left, "tick %d", i)
	}
	assert.False(t, l.Poll().Left)
}

func TestLatchOppositeCancels(t *testing.T) {
	l := NewLatch(5)
	l.Move(Up)
	l.Move(Down)

	in := l.Poll()
	assert.False(t, in.Up)
	assert.True(t, in.Down)
}

func TestLatchActionsFireOnce(t *testing.T) {
	l := NewLatch(2)
	l.Fire(geom.Point{X: 10, Y: 20})
	l.Melee()
	l.Pause()

	in := l.Poll()
	assert.True(t, in.Fire)
	assert.True(t, in.Melee)
	assert.True(t, in.Pause)
	assert.Equal(t, geom.Point{X: 10, Y: 20}, in.Pointer)

	in = l.Poll()
	assert.False(t, in.Fire)
	assert.False(t, in.Melee)
	assert.False(t, in.Pause)
	assert.Equal(t, geom.Point{X: 10, Y: 20}, in.Pointer)
}
