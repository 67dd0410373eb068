// internal/component/combatant.go
package component

import (
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/internal/types"
	"go-arena-brawl/pkg/geom"
)

// Role — вариант бойца.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	}
	return "unknown"
}

// DamageOutcome — результат применения урона.
type DamageOutcome int

const (
	OutcomeIgnored    DamageOutcome = iota // боец уже выбыл
	OutcomeHurt                            // здоровье уменьшилось, боец жив
	OutcomeRespawned                       // потерял жизнь и появился заново
	OutcomeEliminated                      // жизней не осталось
)

func (o DamageOutcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeHurt:
		return "hurt"
	case OutcomeRespawned:
		return "respawned"
	case OutcomeEliminated:
		return "eliminated"
	}
	return "unknown"
}

// Damageable — единый контракт урона для игрока и врагов.
type Damageable interface {
	TakeDamage(amount int, now int64) DamageOutcome
	Bounds() geom.Rect
	IsInert() bool
}

var _ Damageable = (*Combatant)(nil)

// Combatant — боец арены: игрок или враг. Поведение ИИ подключается
// через поле AI и есть только у врагов.
type Combatant struct {
	ID    types.EntityID
	Role  Role
	Class defs.Class
	Box   geom.Rect // левый верхний угол + фиксированный размер

	Health    int
	MaxHealth int
	Lives     int // 0 — боец выбыл окончательно

	LastHitTime   int64
	LastRegenTime int64

	AI    *AIController
	Spawn Spawner
}

// NewPlayer создает игрока в центре арены.
func NewPlayer(id types.EntityID, class defs.Class, lives int, now int64) *Combatant {
	spawn := FixedSpawn{Point: config.ArenaCenter()}
	return newCombatant(id, RolePlayer, class, spawn.SpawnPoint(), lives, spawn, now)
}

// NewEnemy создает врага в точке pos с контроллером ИИ по умолчанию.
func NewEnemy(id types.EntityID, class defs.Class, pos geom.Point, lives int, spawn Spawner, now int64) *Combatant {
	c := newCombatant(id, RoleEnemy, class, pos, lives, spawn, now)
	c.AI = NewAIController()
	return c
}

func newCombatant(id types.EntityID, role Role, class defs.Class, pos geom.Point, lives int, spawn Spawner, now int64) *Combatant {
	return &Combatant{
		ID:            id,
		Role:          role,
		Class:         class,
		Box:           geom.NewRect(pos.X, pos.Y, config.FighterSize, config.FighterSize),
		Health:        config.MaxHealth,
		MaxHealth:     config.MaxHealth,
		Lives:         lives,
		LastHitTime:   now,
		LastRegenTime: now,
		Spawn:         spawn,
	}
}

// IsInert сообщает, выбыл ли боец: такие бойцы не двигаются, не атакуют
// и не получают урон, а только отображаются маркером поражения.
func (c *Combatant) IsInert() bool {
	return c.Lives <= 0
}

func (c *Combatant) IsPlayer() bool {
	return c.Role == RolePlayer
}

func (c *Combatant) Bounds() geom.Rect {
	return c.Box
}

func (c *Combatant) Center() geom.Point {
	return c.Box.Center()
}

// MissingHealth — сколько здоровья не хватает до максимума.
func (c *Combatant) MissingHealth() int {
	return c.MaxHealth - c.Health
}

// TakeDamage вычитает урон и сбрасывает оба таймера регенерации.
// Если здоровье упало до нуля, боец теряет жизнь: при оставшихся жизнях
// он появляется заново с полным здоровьем, иначе выбывает с нулевым здоровьем
// на месте гибели.
func (c *Combatant) TakeDamage(amount int, now int64) DamageOutcome {
	if c.IsInert() {
		return OutcomeIgnored
	}

	c.Health -= amount
	c.LastHitTime = now
	c.LastRegenTime = now
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	if c.Health > 0 {
		return OutcomeHurt
	}

	c.Lives--
	if c.Lives > 0 {
		c.Health = c.MaxHealth
		if c.Spawn != nil {
			c.Box = c.Box.MoveTo(c.Spawn.SpawnPoint()).ClampInto(config.ArenaBounds())
		}
		return OutcomeRespawned
	}

	c.Lives = 0
	c.Health = 0
	return OutcomeEliminated
}

// Regenerate восстанавливает 1 единицу здоровья, если с последнего удара
// прошло больше RegenDelay и с последнего импульса больше RegenInterval.
func (c *Combatant) Regenerate(now int64) bool {
	if c.IsInert() || c.Health >= c.MaxHealth {
		return false
	}
	if now-c.LastHitTime <= config.RegenDelay || now-c.LastRegenTime <= config.RegenInterval {
		return false
	}
	c.Health++
	c.LastRegenTime = now
	return true
}

// MoveAndClamp сдвигает бойца и удерживает его внутри bounds.
func (c *Combatant) MoveAndClamp(dx, dy int, bounds geom.Rect) {
	if c.IsInert() {
		return
	}
	c.Box = c.Box.Translate(dx, dy).ClampInto(bounds)
}
