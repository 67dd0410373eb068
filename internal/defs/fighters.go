// internal/defs/fighters.go
package defs

import "image/color"

// FighterDefinition holds the visual data for a fighter class.
type FighterDefinition struct {
	ID              Class      `json:"id" jsonschema:"required,enum=archer,enum=axe_thrower,enum=wizard,enum=shield_bearer,enum=demon,enum=monk"`
	Name            string     `json:"name" jsonschema:"required"`
	Sprite          string     `json:"sprite"`
	Symbol          string     `json:"symbol" jsonschema:"maxLength=1"` // буква для терминального режима
	Color           color.RGBA `json:"color"`
	ProjectileGlyph string     `json:"projectile_glyph"`
	ProjectileColor color.RGBA `json:"projectile_color"`
}

// FighterLibrary is the library of fighter definitions, keyed by class.
var FighterLibrary = DefaultFighters()

// DefaultFighters возвращает встроенные определения классов.
func DefaultFighters() map[Class]FighterDefinition {
	return map[Class]FighterDefinition{
		ClassArcher: {
			ID: ClassArcher, Name: "Archer", Sprite: "archer", Symbol: "A",
			Color: color.RGBA{120, 200, 80, 255}, ProjectileGlyph: "🏹", ProjectileColor: color.RGBA{200, 170, 90, 255},
		},
		ClassAxeThrower: {
			ID: ClassAxeThrower, Name: "Axe Thrower", Sprite: "axe_thrower", Symbol: "X",
			Color: color.RGBA{180, 110, 60, 255}, ProjectileGlyph: "🪓", ProjectileColor: color.RGBA{170, 170, 180, 255},
		},
		ClassWizard: {
			ID: ClassWizard, Name: "Wizard", Sprite: "wizard", Symbol: "W",
			Color: color.RGBA{90, 90, 230, 255}, ProjectileGlyph: "✴️", ProjectileColor: color.RGBA{180, 120, 255, 255},
		},
		ClassShieldBearer: {
			ID: ClassShieldBearer, Name: "Shield Bearer", Sprite: "shield_bearer", Symbol: "S",
			Color: color.RGBA{160, 160, 170, 255}, ProjectileGlyph: "⚔️", ProjectileColor: color.RGBA{230, 230, 230, 255},
		},
		ClassDemon: {
			ID: ClassDemon, Name: "Demon", Sprite: "demon", Symbol: "D",
			Color: color.RGBA{220, 50, 50, 255}, ProjectileGlyph: "🔥", ProjectileColor: color.RGBA{255, 120, 0, 255},
		},
		ClassMonk: {
			ID: ClassMonk, Name: "Monk", Sprite: "monk", Symbol: "M",
			Color: color.RGBA{240, 180, 40, 255}, ProjectileGlyph: "💫", ProjectileColor: color.RGBA{255, 255, 120, 255},
		},
	}
}

// Fighter возвращает определение класса; неизвестный класс получает определение DefaultClass.
func Fighter(c Class) FighterDefinition {
	if def, ok := FighterLibrary[c]; ok {
		return def
	}
	return FighterLibrary[DefaultClass]
}
