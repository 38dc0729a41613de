// Package backdrop paints the dark page background behind the particle layer:
// a top-to-bottom gradient with an optional slow perlin shimmer.
package backdrop

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/theme"
)

// Options tunes the shimmer.
type Options struct {
	Shimmer   bool
	Amplitude float64 // Max brightness offset as a fraction of full scale
	Scale     float64 // Noise frequency per pixel
	Speed     float64 // Noise drift per Advance
}

// DefaultOptions returns a barely visible shimmer.
func DefaultOptions() Options {
	return Options{
		Shimmer:   true,
		Amplitude: 0.03,
		Scale:     0.004,
		Speed:     0.01,
	}
}

// Backdrop computes background colours. It is not safe for concurrent use.
type Backdrop struct {
	opts        Options
	noise       *perlin.Perlin
	top, bottom color.NRGBA
	t           float64
}

// New builds a backdrop from the theme's dark gradient.
func New(seed int64, opts Options) *Backdrop {
	top, err := field.ParseHex(theme.Background)
	if err != nil {
		top = color.NRGBA{0x0a, 0x0a, 0x0a, 0xff}
	}
	bottom, err := field.ParseHex(theme.BackgroundLight)
	if err != nil {
		bottom = color.NRGBA{0x12, 0x12, 0x12, 0xff}
	}
	return &Backdrop{
		opts:   opts,
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		top:    top,
		bottom: bottom,
	}
}

// Advance moves the shimmer one frame forward.
func (b *Backdrop) Advance() { b.t++ }

// Shimmer reports whether the noise layer is on.
func (b *Backdrop) Shimmer() bool { return b.opts.Shimmer }

// SetShimmer turns the noise layer on or off.
func (b *Backdrop) SetShimmer(on bool) { b.opts.Shimmer = on }

// At returns the background colour of pixel (x, y) on a w×h surface.
func (b *Backdrop) At(x, y, w, h int) color.NRGBA {
	k := 0.0
	if h > 1 {
		k = math.Max(0, math.Min(float64(y)/float64(h-1), 1))
	}
	r := lerp(b.top.R, b.bottom.R, k)
	g := lerp(b.top.G, b.bottom.G, k)
	bl := lerp(b.top.B, b.bottom.B, k)

	if b.opts.Shimmer && b.opts.Amplitude > 0 {
		n := b.noise.Noise2D(float64(x)*b.opts.Scale, float64(y)*b.opts.Scale+b.t*b.opts.Speed)
		off := math.Max(-1, math.Min(n, 1)) * b.opts.Amplitude * 255
		r, g, bl = r+off, g+off, bl+off
	}
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(bl), A: 0xff}
}

func lerp(a, b uint8, k float64) float64 {
	return float64(a) + (float64(b)-float64(a))*k
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(v, 255))))
}
