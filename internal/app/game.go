// internal/app/game.go
package app

import (
	"log"

	"github.com/google/uuid"

	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/internal/entity"
	"go-arena-brawl/internal/event"
	"go-arena-brawl/internal/interfaces"
	"go-arena-brawl/internal/system"
	"go-arena-brawl/internal/types"
	"go-arena-brawl/internal/utils"
	"go-arena-brawl/pkg/render"
)

var _ render.ArenaView = (*Game)(nil)

// Options configures a new match.
type Options struct {
	Rules       defs.Rules
	PlayerClass defs.Class
	// Clock defaults to a wall clock when nil.
	Clock interfaces.Clock
	// Quiet disables the match log listener.
	Quiet bool
}

// Game holds the state and systems of one match. It is driven by a single
// goroutine through Tick and is not safe for concurrent use.
type Game struct {
	ID              string
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Clock           interfaces.Clock
	Stats           *MatchStats
	Rules           defs.Rules

	CombatSystem       *system.CombatSystem
	PlayerSystem       *system.PlayerSystem
	AISystem           *system.AISystem
	ProjectileSystem   *system.ProjectileSystem
	ChampionSystem     *system.ChampionSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
}

// NewGame initializes a new match: the player in the center and
// Rules.EnemyCount enemies at random positions.
func NewGame(opts Options) *Game {
	clock := opts.Clock
	if clock == nil {
		clock = utils.NewWallClock()
	}
	rules := opts.Rules
	if rules == (defs.Rules{}) {
		rules = defs.DefaultRules()
	}
	rules = rules.Normalize()

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(rules.Seed)
	combat := system.NewCombatSystem(ecs, clock, eventDispatcher)

	g := &Game{
		ID:                 uuid.NewString(),
		ECS:                ecs,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		Clock:              clock,
		Rules:              rules,
		CombatSystem:       combat,
		PlayerSystem:       system.NewPlayerSystem(ecs, combat, clock),
		AISystem:           system.NewAISystem(ecs, combat, rng, clock),
		ProjectileSystem:   system.NewProjectileSystem(ecs, combat),
		ChampionSystem:     system.NewChampionSystem(ecs, eventDispatcher),
		StateSystem:        system.NewStateSystem(ecs, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
	}

	g.Stats = NewMatchStats()
	eventDispatcher.SubscribeAll(g.Stats,
		event.ProjectileFired,
		event.CombatantDamaged,
		event.CombatantRespawned,
		event.CombatantEliminated,
	)
	if !opts.Quiet {
		logger := &MatchLogger{game: g}
		eventDispatcher.SubscribeAll(logger,
			event.CombatantRespawned,
			event.CombatantEliminated,
			event.ChampionCrowned,
			event.MatchEnded,
		)
	}

	playerClass := opts.PlayerClass
	if playerClass == "" {
		playerClass = defs.DefaultClass
	}
	g.spawnFighters(playerClass)

	if !opts.Quiet {
		log.Printf("[%s] match started: seed=%d class=%s enemies=%d", g.shortID(), rng.Seed(), playerClass, rules.EnemyCount)
	}
	return g
}

func (g *Game) spawnFighters(playerClass defs.Class) {
	now := g.Clock.Now()
	g.ECS.AddCombatant(component.NewPlayer(g.ECS.NewEntity(), playerClass, g.Rules.PlayerLives, now))

	bounds := config.ArenaBounds()
	spawn := component.RandomSpawn{
		Rng:    g.Rng,
		Bounds: bounds,
		Size:   config.FighterSize,
		Margin: config.SpawnMargin,
	}
	for i := 1; i <= g.Rules.EnemyCount; i++ {
		class := defs.AllClasses[i%len(defs.AllClasses)]
		enemy := component.NewEnemy(g.ECS.NewEntity(), class, spawn.SpawnPoint(), g.Rules.EnemyLives, spawn, now)
		g.ECS.AddCombatant(enemy)
	}
}

// Tick advances the match by one fixed step:
// player input, enemy AI, player check, projectiles, champion.
func (g *Game) Tick(in interfaces.InputState) {
	if g.StateSystem.Over() {
		return
	}
	g.ECS.Tick++
	g.VisualEffectSystem.Update()

	g.PlayerSystem.Update(in)
	g.AISystem.Update()

	if g.StateSystem.CheckPlayer() {
		return
	}
	if g.ProjectileSystem.Update() {
		g.StateSystem.EndMatch()
		return
	}
	g.ChampionSystem.Update()
}

// Over reports whether the match has ended.
func (g *Game) Over() bool {
	return g.StateSystem.Over()
}

// Player returns the player combatant.
func (g *Game) Player() *component.Combatant {
	return g.ECS.Player()
}

// Combatants returns the active combatants in roster order.
func (g *Game) Combatants() []*component.Combatant {
	return g.ECS.Active()
}

// Fallen returns eliminated enemies kept for the defeated marker.
func (g *Game) Fallen() []*component.Combatant {
	return g.ECS.FallenCombatants()
}

// Projectiles returns the projectiles in flight.
func (g *Game) Projectiles() []*component.Projectile {
	return g.ECS.Projectiles
}

// MeleeSwings returns the melee hitboxes still being shown.
func (g *Game) MeleeSwings() []*component.MeleeSwing {
	return g.ECS.MeleeSwings
}

// Flashing reports whether the combatant was hit recently.
func (g *Game) Flashing(id types.EntityID) bool {
	_, ok := g.ECS.DamageFlashes[id]
	return ok
}

// Champion returns the crowned combatant, or nil.
func (g *Game) Champion() *component.Combatant {
	if g.ECS.ChampionID == 0 {
		return nil
	}
	c, _ := g.ECS.Combatant(g.ECS.ChampionID)
	return c
}

// ClearChampion removes the champion mark so it can be awarded again.
func (g *Game) ClearChampion() {
	g.ECS.ChampionID = 0
}

// Seed returns the seed that reproduces this match.
func (g *Game) Seed() int64 {
	return g.Rng.Seed()
}

func (g *Game) shortID() string {
	if len(g.ID) > 8 {
		return g.ID[:8]
	}
	return g.ID
}
