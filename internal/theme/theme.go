// Package theme holds the portfolio's named colours.
package theme

import "github.com/olivierh59500/particle-field-go/internal/field"

// Theme colours as CSS hex strings.
const (
	Primary         = "#00ff88"
	Secondary       = "#00a1ff"
	Background      = "#0a0a0a"
	BackgroundLight = "#121212"
	Text            = "#ffffff"
	Accent          = "#00f3ff" // Radar chart and grid cyan
)

// Particles returns the two-colour palette the particle field draws from.
func Particles() field.Palette {
	return field.Palette{Primary, Secondary}
}
