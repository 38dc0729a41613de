// Package field simulates the drifting particle background: particles bounce
// off the canvas edges and are pushed away from the pointer.
package field

import (
	"image/color"
	"math"
	"math/rand"
)

// Field constants
const (
	AreaPerParticle = 15000.0 // Canvas pixels per particle
	RepelRadius     = 100.0
	RepelStrength   = 2.0 // Displacement at distance 0
	MinRadius       = 1.0
	MaxRadius       = 3.0
	MaxSpeed        = 0.25
	MinOpacity      = 0.2
	MaxOpacity      = 0.7
)

// Vec is a point or velocity in canvas pixel space.
type Vec struct {
	X, Y float64
}

// Particle is a single drifting dot. Radius, Color and Opacity never change
// after Populate.
type Particle struct {
	Pos     Vec
	Vel     Vec // Pixels per frame
	Radius  float64
	Color   string // #rrggbb from the palette
	Opacity float64
}

// Palette lists the colours a particle may be given.
type Palette []string

// Surface is what Draw paints onto.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.NRGBA)
	Size() (w, h int)
}

// Field holds the particle set together with the canvas size and pointer
// position it is simulated against. Event handlers write Width, Height and
// Pointer; Step only reads them. A Field is not safe for concurrent use.
type Field struct {
	Particles     []Particle
	Width, Height float64
	Pointer       Vec
	Palette       Palette

	colors map[string]color.NRGBA
	rng    *rand.Rand
}

// New creates an empty field. Call HandleResize before the first Step.
func New(seed int64, palette Palette) *Field {
	return &Field{
		Palette: palette,
		colors:  make(map[string]color.NRGBA, len(palette)),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Count returns the number of particles Populate creates for the current size.
func (f *Field) Count() int {
	return int(math.Floor(f.Width * f.Height / AreaPerParticle))
}

// Resize records new canvas dimensions. It does not touch the particles.
func (f *Field) Resize(w, h int) {
	f.Width = float64(max(w, 0))
	f.Height = float64(max(h, 0))
}

// Populate discards every particle and creates a fresh set sized to the canvas.
func (f *Field) Populate() {
	n := f.Count()
	f.Particles = make([]Particle, n)
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Pos = Vec{f.rng.Float64() * f.Width, f.rng.Float64() * f.Height}
		p.Radius = MinRadius + f.rng.Float64()*(MaxRadius-MinRadius)
		p.Vel = Vec{
			f.rng.Float64()*2*MaxSpeed - MaxSpeed,
			f.rng.Float64()*2*MaxSpeed - MaxSpeed,
		}
		if len(f.Palette) > 0 {
			p.Color = f.Palette[f.rng.Intn(len(f.Palette))]
		}
		p.Opacity = MinOpacity + f.rng.Float64()*(MaxOpacity-MinOpacity)
	}
}

// HandleResize is the resize event handler: it resizes and repopulates.
// Prior positions and velocities are lost.
func (f *Field) HandleResize(w, h int) {
	f.Resize(w, h)
	f.Populate()
}

// SetPointer is the pointer-move handler. The last write wins.
func (f *Field) SetPointer(x, y float64) {
	f.Pointer = Vec{x, y}
}

// Step advances every particle by one frame.
func (f *Field) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]

		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y

		// Reflect, don't clamp: a particle may sit outside for one frame
		if p.Pos.X < 0 || p.Pos.X > f.Width {
			p.Vel.X = -p.Vel.X
		}
		if p.Pos.Y < 0 || p.Pos.Y > f.Height {
			p.Vel.Y = -p.Vel.Y
		}

		p.Pos = f.repel(p.Pos)
	}
}

// repel pushes pos away from the pointer. The push is a one-off displacement;
// velocity is left alone.
func (f *Field) repel(pos Vec) Vec {
	dx := f.Pointer.X - pos.X
	dy := f.Pointer.Y - pos.Y
	d := math.Sqrt(dx*dx + dy*dy)
	if d >= RepelRadius {
		return pos
	}
	// math.Atan2(0, 0) is 0, so a particle under the pointer moves along -x
	angle := math.Atan2(dy, dx)
	force := (RepelRadius - d) / RepelRadius
	pos.X -= math.Cos(angle) * force * RepelStrength
	pos.Y -= math.Sin(angle) * force * RepelStrength
	return pos
}

// Draw clears s and paints every particle as a filled circle.
func (f *Field) Draw(s Surface) {
	s.Clear()
	for _, p := range f.Particles {
		c := f.rgb(p.Color)
		c.A = Alpha(p.Opacity)
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, c)
	}
}

// rgb resolves a hex colour once and caches it. Malformed colours draw black.
func (f *Field) rgb(hex string) color.NRGBA {
	if c, ok := f.colors[hex]; ok {
		return c
	}
	c, err := ParseHex(hex)
	if err != nil {
		c = color.NRGBA{}
	}
	if f.colors == nil {
		f.colors = make(map[string]color.NRGBA)
	}
	f.colors[hex] = c
	return c
}
