// pkg/render/view.go
package render

import (
	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/types"
)

// ArenaView — все, что рендереру нужно знать о матче.
type ArenaView interface {
	Combatants() []*component.Combatant
	Fallen() []*component.Combatant
	Projectiles() []*component.Projectile
	MeleeSwings() []*component.MeleeSwing
	Champion() *component.Combatant
	Flashing(id types.EntityID) bool
}
