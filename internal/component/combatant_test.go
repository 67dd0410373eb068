package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/pkg/geom"
)

// fixedPicker всегда возвращает одну точку.
type fixedPicker struct{ p geom.Point }

func (f fixedPicker) PointIn(geom.Rect, int, int, int) geom.Point { return f.p }

func newTestEnemy(lives int) *Combatant {
	spawn := RandomSpawn{Rng: fixedPicker{geom.Point{X: 500, Y: 400}}, Bounds: config.ArenaBounds(), Size: config.FighterSize}
	return NewEnemy(2, defs.ClassDemon, geom.Point{X: 100, Y: 100}, lives, spawn, 0)
}

func TestTakeDamageKeepsHealthInRange(t *testing.T) {
	for _, amount := range []int{0, 1, 3, 9, 10, 11, 50} {
		c := newTestEnemy(3)
		c.TakeDamage(amount, 1000)
		assert.GreaterOrEqual(t, c.Health, 0, "amount %d", amount)
		assert.LessOrEqual(t, c.Health, c.MaxHealth, "amount %d", amount)
	}
}

func TestTakeDamageResetsTimers(t *testing.T) {
	c := newTestEnemy(3)
	outcome := c.TakeDamage(1, 4200)

	assert.Equal(t, OutcomeHurt, outcome)
	assert.Equal(t, 9, c.Health)
	assert.Equal(t, int64(4200), c.LastHitTime)
	assert.Equal(t, int64(4200), c.LastRegenTime)
}

func TestLethalDamageWithSpareLivesRespawns(t *testing.T) {
	c := newTestEnemy(3)
	c.Health = 1

	outcome := c.TakeDamage(1, 500)

	assert.Equal(t, OutcomeRespawned, outcome)
	assert.Equal(t, 2, c.Lives)
	assert.Equal(t, config.MaxHealth, c.Health)
	assert.Equal(t, geom.Point{X: 500, Y: 400}, geom.Point{X: c.Box.X, Y: c.Box.Y})
	assert.True(t, config.ArenaBounds().ContainsRect(c.Box))
	assert.False(t, c.IsInert())
}

func TestPlayerRespawnsAtCenter(t *testing.T) {
	p := NewPlayer(1, defs.ClassMonk, 2, 0)
	p.Box = p.Box.MoveTo(geom.Point{X: 10, Y: 10})

	outcome := p.TakeDamage(config.MaxHealth, 100)

	assert.Equal(t, OutcomeRespawned, outcome)
	assert.Equal(t, config.ArenaCenter(), geom.Point{X: p.Box.X, Y: p.Box.Y})
}

func TestLastLifeEliminatesInPlace(t *testing.T) {
	c := newTestEnemy(1)
	before := c.Box

	outcome := c.TakeDamage(25, 700)

	assert.Equal(t, OutcomeEliminated, outcome)
	assert.Equal(t, 0, c.Lives)
	assert.Equal(t, 0, c.Health)
	assert.Equal(t, before, c.Box)
	assert.True(t, c.IsInert())
}

func TestInertCombatantIgnoresEverything(t *testing.T) {
	c := newTestEnemy(1)
	require.Equal(t, OutcomeEliminated, c.TakeDamage(10, 100))
	box := c.Box

	assert.Equal(t, OutcomeIgnored, c.TakeDamage(5, 200))
	c.MoveAndClamp(50, 50, config.ArenaBounds())
	assert.False(t, c.Regenerate(1_000_000))

	assert.Equal(t, 0, c.Health)
	assert.Equal(t, 0, c.Lives)
	assert.Equal(t, box, c.Box)
	assert.Equal(t, int64(100), c.LastHitTime)
}

func TestRegenerateTimers(t *testing.T) {
	c := newTestEnemy(3)
	c.TakeDamage(3, 0)
	require.Equal(t, 7, c.Health)

	// Задержка после удара еще не истекла, даже если интервал давно прошел.
	assert.False(t, c.Regenerate(config.RegenDelay))
	assert.Equal(t, 7, c.Health)

	assert.True(t, c.Regenerate(config.RegenDelay+1))
	assert.Equal(t, 8, c.Health)

	// Следующий импульс только после RegenInterval.
	assert.False(t, c.Regenerate(config.RegenDelay+1+config.RegenInterval))
	assert.True(t, c.Regenerate(config.RegenDelay+2+config.RegenInterval))
	assert.Equal(t, 9, c.Health)
}

func TestRegenerateNeverExceedsMax(t *testing.T) {
	c := newTestEnemy(3)
	now := int64(0)
	c.TakeDamage(1, now)
	for i := 0; i < 20; i++ {
		now += config.RegenDelay + config.RegenInterval
		c.Regenerate(now)
	}
	assert.Equal(t, config.MaxHealth, c.Health)
}

func TestRegenerateBlockedWithinDelay(t *testing.T) {
	c := newTestEnemy(3)
	c.TakeDamage(1, 10_000)
	c.LastRegenTime = 0 // интервал регенерации давно истек
	for now := int64(10_000); now <= 10_000+config.RegenDelay; now += 100 {
		assert.False(t, c.Regenerate(now), "now=%d", now)
	}
}

func TestMoveAndClamp(t *testing.T) {
	c := newTestEnemy(1)
	bounds := config.ArenaBounds()

	c.MoveAndClamp(-500, -500, bounds)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, geom.Point{X: c.Box.X, Y: c.Box.Y})

	c.MoveAndClamp(5000, 5000, bounds)
	assert.Equal(t, geom.Point{X: config.ArenaWidth - config.FighterSize, Y: config.ArenaHeight - config.FighterSize},
		geom.Point{X: c.Box.X, Y: c.Box.Y})
}

func TestAIControllerScaling(t *testing.T) {
	ai := NewAIController()

	assert.Equal(t, 2, ai.EffectiveSpeed(0))
	assert.InDelta(t, 0.01, ai.FireChance(0), 1e-12)

	assert.Equal(t, 4, ai.EffectiveSpeed(10))
	assert.InDelta(t, 0.06, ai.FireChance(10), 1e-12)

	assert.Equal(t, 3, ai.EffectiveSpeed(5))
	assert.Equal(t, 2, ai.EffectiveSpeed(4))
}

func TestRoleAndOutcomeStrings(t *testing.T) {
	assert.Equal(t, "player", RolePlayer.String())
	assert.Equal(t, "enemy", RoleEnemy.String())
	assert.Equal(t, "eliminated", OutcomeEliminated.String())
}
