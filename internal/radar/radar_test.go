package radar

import (
	"image/color"
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func nearPoint(a, b Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

type ops struct {
	circles, lines, texts, fills, strokes, points int
	labels                                        []string
	polygon                                       []Point
}

func (o *ops) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) { o.circles++ }
func (o *ops) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	o.lines++
}
func (o *ops) FillFan(center Point, pts []Point, c color.NRGBA) {
	o.fills++
	o.polygon = pts
}
func (o *ops) StrokePolygon(pts []Point, width float64, c color.NRGBA) { o.strokes++ }
func (o *ops) FillCircle(cx, cy, r float64, c color.NRGBA)             { o.points++ }
func (o *ops) Text(s string, x, y float64, c color.NRGBA) {
	o.texts++
	o.labels = append(o.labels, s)
}

func TestLayout(t *testing.T) {
	g := Layout(400, 300, DefaultSkills)

	if !nearPoint(g.Center, Point{200, 150}) {
		t.Fatalf("center = %+v", g.Center)
	}
	if !near(g.Radius, 120) {
		t.Fatalf("radius = %v, want 120", g.Radius)
	}
	wantRings := []float64{24, 48, 72, 96, 120}
	for i, r := range wantRings {
		if !near(g.Rings[i], r) {
			t.Errorf("ring %d = %v, want %v", i, g.Rings[i], r)
		}
	}

	tests := []struct {
		axis               int
		end, label, vertex Point
	}{
		// HTML/CSS 90, straight up
		{0, Point{200, 30}, Point{200, 20}, Point{200, 42}},
		// Node.js 75, straight down
		{3, Point{200, 270}, Point{200, 280}, Point{200, 240}},
	}
	for _, tt := range tests {
		a := g.Axes[tt.axis]
		if !nearPoint(a.End, tt.end) || !nearPoint(a.Label, tt.label) || !nearPoint(a.Value, tt.vertex) {
			t.Errorf("axis %d (%s): end %+v label %+v value %+v", tt.axis, a.Skill.Name, a.End, a.Label, a.Value)
		}
	}
}

func TestLayoutClampsValues(t *testing.T) {
	g := Layout(200, 200, []Skill{{"over", 150}, {"under", -20}})
	if !nearPoint(g.Axes[0].Value, g.Axes[0].End) {
		t.Errorf("over-range value %+v, want outer ring %+v", g.Axes[0].Value, g.Axes[0].End)
	}
	if !nearPoint(g.Axes[1].Value, g.Center) {
		t.Errorf("negative value %+v, want centre", g.Axes[1].Value)
	}
}

func TestDraw(t *testing.T) {
	o := &ops{}
	Draw(o, Layout(400, 400, DefaultSkills), DefaultStyle())

	n := len(DefaultSkills)
	if o.circles != Rings || o.lines != n || o.texts != n || o.fills != 1 || o.strokes != 1 || o.points != n {
		t.Fatalf("unexpected ops: %+v", o)
	}
	if o.labels[5] != "UI/UX" || len(o.polygon) != n {
		t.Fatalf("labels %v polygon %v", o.labels, o.polygon)
	}
}

func TestDrawEmpty(t *testing.T) {
	o := &ops{}
	Draw(o, Layout(100, 100, nil), DefaultStyle())
	if o.circles != Rings || o.lines+o.fills+o.strokes+o.points != 0 {
		t.Fatalf("unexpected ops: %+v", o)
	}
}

func TestDefaultStyle(t *testing.T) {
	st := DefaultStyle()
	if st.Ring != (color.NRGBA{0x00, 0xf3, 0xff, 51}) {
		t.Errorf("ring = %+v", st.Ring)
	}
	if st.Axis.A != 127 || st.Stroke.A != 255 {
		t.Errorf("axis alpha %d stroke alpha %d", st.Axis.A, st.Stroke.A)
	}
}

func TestLevel(t *testing.T) {
	tests := map[string]float64{
		"HTML/CSS":   90,
		"JavaScript": 85,
		"React":      80,
		"Node.js":    75,
		"Three.js":   70,
		"Go":         75,
	}
	for name, want := range tests {
		if got := Level(name); got != want {
			t.Errorf("Level(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFadeIn(t *testing.T) {
	f := NewFadeIn(time.Second)
	t0 := time.Unix(1000, 0)

	if f.Opacity(t0) != 0 || f.Started() {
		t.Fatal("untriggered fade is visible")
	}
	f.Trigger(t0)
	f.Trigger(t0.Add(time.Hour))

	if got := f.Opacity(t0); got != 0 {
		t.Errorf("opacity at start = %v", got)
	}
	if got := f.Opacity(t0.Add(500 * time.Millisecond)); !near(got, 0.875) {
		t.Errorf("opacity halfway = %v, want 0.875", got)
	}
	if got := f.Opacity(t0.Add(3 * time.Second)); got != 1 {
		t.Errorf("opacity after end = %v, want 1", got)
	}
}
