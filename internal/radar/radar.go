// Package radar lays out and paints the skill radar chart: concentric rings,
// one axis per skill and a filled polygon joining the skill values.
package radar

import (
	"image/color"
	"math"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/theme"
)

// Chart constants
const (
	Rings       = 5
	RadiusScale = 0.8  // Chart radius as a fraction of the half-extent
	LabelOffset = 10.0 // Label distance beyond the outer ring
	PointRadius = 4.0
	MaxValue    = 100.0
)

// Skill is one axis of the chart. Value is a percentage.
type Skill struct {
	Name  string
	Value float64
}

// DefaultSkills is the chart shown on the skills section.
var DefaultSkills = []Skill{
	{"HTML/CSS", 90},
	{"JavaScript", 85},
	{"React", 80},
	{"Node.js", 75},
	{"Three.js", 70},
	{"UI/UX", 85},
}

var levels = map[string]float64{
	"HTML/CSS":   90,
	"JavaScript": 85,
	"React":      80,
	"Node.js":    75,
	"Three.js":   70,
}

// Level returns the skill-bar fill percentage for a named skill.
func Level(name string) float64 {
	if v, ok := levels[name]; ok {
		return v
	}
	return 75
}

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Axis is the laid-out geometry for one skill.
type Axis struct {
	Skill Skill
	Angle float64 // Radians, 0 along +x, -π/2 straight up
	End   Point   // Outer ring intersection
	Label Point
	Value Point // Polygon vertex
}

// Geometry is a chart laid out for a canvas size.
type Geometry struct {
	Center Point
	Radius float64
	Rings  []float64 // Ring radii, innermost first
	Axes   []Axis
}

// Layout computes the chart geometry for a w×h canvas. The first axis points
// straight up and the rest follow clockwise.
func Layout(w, h int, skills []Skill) Geometry {
	cx, cy := float64(w)/2, float64(h)/2
	g := Geometry{
		Center: Point{cx, cy},
		Radius: math.Min(cx, cy) * RadiusScale,
		Rings:  make([]float64, Rings),
		Axes:   make([]Axis, len(skills)),
	}
	for i := range g.Rings {
		g.Rings[i] = g.Radius * float64(i+1) / Rings
	}
	if len(skills) == 0 {
		return g
	}

	step := 2 * math.Pi / float64(len(skills))
	for i, s := range skills {
		angle := float64(i)*step - math.Pi/2
		cos, sin := math.Cos(angle), math.Sin(angle)
		v := math.Max(0, math.Min(s.Value, MaxValue)) / MaxValue
		g.Axes[i] = Axis{
			Skill: s,
			Angle: angle,
			End:   Point{cx + cos*g.Radius, cy + sin*g.Radius},
			Label: Point{cx + cos*(g.Radius+LabelOffset), cy + sin*(g.Radius+LabelOffset)},
			Value: Point{cx + cos*g.Radius*v, cy + sin*g.Radius*v},
		}
	}
	return g
}

// Polygon returns the value vertices in axis order.
func (g Geometry) Polygon() []Point {
	pts := make([]Point, len(g.Axes))
	for i, a := range g.Axes {
		pts[i] = a.Value
	}
	return pts
}

// Canvas is the set of 2D primitives the chart needs.
type Canvas interface {
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	FillFan(center Point, pts []Point, c color.NRGBA) // Closed polygon, star-shaped around center
	StrokePolygon(pts []Point, width float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	Text(s string, x, y float64, c color.NRGBA) // Centred on (x, y)
}

// Style holds the chart colours.
type Style struct {
	Ring, Axis, Label, Fill, Stroke, Point color.NRGBA
	StrokeWidth                            float64
}

// DefaultStyle derives the chart colours from the theme accent.
func DefaultStyle() Style {
	accent, err := field.ParseHex(theme.Accent)
	if err != nil {
		accent = color.NRGBA{0x00, 0xf3, 0xff, 0xff}
	}
	with := func(opacity float64) color.NRGBA {
		c := accent
		c.A = field.Alpha(opacity)
		return c
	}
	return Style{
		Ring:        with(0.2),
		Axis:        with(0.5),
		Label:       color.NRGBA{0xff, 0xff, 0xff, 0xff},
		Fill:        with(0.2),
		Stroke:      accent,
		Point:       accent,
		StrokeWidth: 2,
	}
}

// Draw paints g onto c: rings, then axes with labels, then the value polygon
// and its points.
func Draw(c Canvas, g Geometry, st Style) {
	for _, r := range g.Rings {
		c.StrokeCircle(g.Center.X, g.Center.Y, r, 1, st.Ring)
	}
	for _, a := range g.Axes {
		c.StrokeLine(g.Center.X, g.Center.Y, a.End.X, a.End.Y, 1, st.Axis)
		c.Text(a.Skill.Name, a.Label.X, a.Label.Y, st.Label)
	}
	if len(g.Axes) == 0 {
		return
	}
	poly := g.Polygon()
	c.FillFan(g.Center, poly, st.Fill)
	c.StrokePolygon(poly, st.StrokeWidth, st.Stroke)
	for _, p := range poly {
		c.FillCircle(p.X, p.Y, PointRadius, st.Point)
	}
}
