// pkg/render/color.go
package render

import "image/color"

// ArenaColors holds the colors used to draw the arena and its fighters.
type ArenaColors struct {
	Background  color.RGBA
	Border      color.RGBA
	Player      color.RGBA
	Flash       color.RGBA
	Crown       color.RGBA
	Skull       color.RGBA
	Text        color.RGBA
	HealthBack  color.RGBA
	HealthFront color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// HealthColor fades from green to red as health drops.
func HealthColor(health, maxHealth int) color.RGBA {
	if maxHealth <= 0 {
		return color.RGBA{255, 0, 0, 255}
	}
	ratio := float64(health) / float64(maxHealth)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return color.RGBA{
		R: uint8(255 * (1 - ratio)),
		G: uint8(255 * ratio),
		A: 255,
	}
}
