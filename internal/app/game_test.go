package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/internal/interfaces"
	"go-arena-brawl/internal/utils"
	"go-arena-brawl/pkg/geom"
)

func newTestGame(t *testing.T, rules defs.Rules) (*Game, *utils.ManualClock) {
	t.Helper()
	clock := utils.NewManualClock(0)
	g := NewGame(Options{Rules: rules, PlayerClass: defs.ClassArcher, Clock: clock, Quiet: true})
	require.NotNil(t, g)
	return g, clock
}

func seeded(seed int64) defs.Rules {
	r := defs.DefaultRules()
	r.Seed = seed
	return r
}

func TestNewGameSpawnsFighters(t *testing.T) {
	rules := seeded(42)
	rules.EnemyCount = 7
	g, _ := newTestGame(t, rules)

	player := g.Player()
	require.NotNil(t, player)
	assert.Equal(t, defs.ClassArcher, player.Class)
	assert.Equal(t, config.ArenaCenter(), geom.Point{X: player.Box.X, Y: player.Box.Y})
	assert.Equal(t, config.PlayerLives, player.Lives)
	assert.NotEmpty(t, g.ID)
	assert.EqualValues(t, 42, g.Seed())

	enemies := g.ECS.Enemies()
	require.Len(t, enemies, 7)
	inner := config.ArenaBounds().Inflate(-2*config.SpawnMargin, -2*config.SpawnMargin)
	for i, e := range enemies {
		assert.Equal(t, defs.AllClasses[(i+1)%len(defs.AllClasses)], e.Class)
		assert.Equal(t, config.EnemyLives, e.Lives)
		assert.True(t, inner.ContainsRect(e.Box), "enemy %d at %v", i, e.Box)
	}
	assert.Equal(t, g.Combatants()[0], player)
}

func TestSameSeedReplaysIdentically(t *testing.T) {
	a, clockA := newTestGame(t, seeded(7))
	b, clockB := newTestGame(t, seeded(7))
	step := utils.TickMillis(config.TickRate)

	inputs := []interfaces.InputState{
		{Right: true},
		{Down: true, Fire: true, Pointer: geom.Point{X: 0, Y: 0}},
		{Melee: true},
		{},
	}
	for i := 0; i < 600; i++ {
		in := inputs[i%len(inputs)]
		clockA.Advance(step)
		clockB.Advance(step)
		a.Tick(in)
		b.Tick(in)
	}

	ca, cb := a.ECS.Active(), b.ECS.Active()
	require.Equal(t, len(ca), len(cb))
	for i := range ca {
		assert.Equal(t, ca[i].Box, cb[i].Box)
		assert.Equal(t, ca[i].Health, cb[i].Health)
		assert.Equal(t, ca[i].Lives, cb[i].Lives)
	}
	assert.Equal(t, len(a.Projectiles()), len(b.Projectiles()))
	assert.Equal(t, a.ECS.Tick, b.ECS.Tick)
	assert.Equal(t, a.Over(), b.Over())
}

func TestLoneSurvivorIsCrowned(t *testing.T) {
	rules := seeded(1)
	rules.EnemyCount = 0
	g, _ := newTestGame(t, rules)

	assert.Nil(t, g.Champion())
	g.Tick(interfaces.InputState{})
	require.NotNil(t, g.Champion())
	assert.Same(t, g.Player(), g.Champion())

	g.ClearChampion()
	assert.Nil(t, g.Champion())
}

func TestPlayerEliminationEndsMatch(t *testing.T) {
	rules := seeded(3)
	rules.EnemyCount = 1
	rules.PlayerLives = 1
	g, _ := newTestGame(t, rules)

	player := g.Player()
	player.Health = 1
	enemy := g.ECS.Enemies()[0]
	enemy.AI.BaseFireChance = 0
	enemy.AI.FireChancePerHP = 0

	// снаряд врага долетит до центра игрока за один тик
	origin := geom.Point{X: player.Center().X - config.ProjectileSpeed, Y: player.Center().Y}
	g.ECS.AddProjectile(component.NewProjectile(origin, 1, 0, config.ProjectileSpeed, enemy.ID, enemy.Class))

	g.Tick(interfaces.InputState{})
	assert.True(t, g.Over())
	assert.True(t, player.IsInert())
	assert.Nil(t, g.Champion(), "champion is not evaluated on the final tick")
	assert.Equal(t, 1, g.Stats.For(player.ID).LivesLost)
	assert.Equal(t, 1, g.Stats.For(enemy.ID).Eliminations)

	tick := g.ECS.Tick
	g.Tick(interfaces.InputState{Right: true})
	assert.Equal(t, tick, g.ECS.Tick)
}

func TestStatsCountShots(t *testing.T) {
	rules := seeded(5)
	rules.EnemyCount = 0
	g, _ := newTestGame(t, rules)

	g.Tick(interfaces.InputState{Fire: true, Pointer: geom.Point{X: 0, Y: 300}})
	g.Tick(interfaces.InputState{Fire: true, Pointer: geom.Point{X: 0, Y: 300}})
	assert.Equal(t, 2, g.Stats.For(g.Player().ID).ShotsFired)
	assert.Len(t, g.Projectiles(), 2)
}

func TestZeroRulesUseDefaults(t *testing.T) {
	g := NewGame(Options{Clock: utils.NewManualClock(0), Quiet: true})
	assert.Equal(t, defs.DefaultClass, g.Player().Class)
	assert.Len(t, g.ECS.Enemies(), config.EnemyCount)
	assert.NotZero(t, g.Seed())
}
