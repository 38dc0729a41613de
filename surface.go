package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-field-go/internal/radar"
)

// layerSurface is the offscreen particle layer. It has no image while the
// window has zero area.
type layerSurface struct {
	img *ebiten.Image
}

func (l *layerSurface) resize(w, h int) {
	if l.img != nil {
		l.img.Deallocate()
		l.img = nil
	}
	if w > 0 && h > 0 {
		l.img = ebiten.NewImage(w, h)
	}
}

func (l *layerSurface) Clear() {
	if l.img != nil {
		l.img.Clear()
	}
}

func (l *layerSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	if l.img == nil {
		return
	}
	vector.DrawFilledCircle(l.img, float32(x), float32(y), float32(r), c, true)
}

func (l *layerSurface) Size() (int, int) {
	if l.img == nil {
		return 0, 0
	}
	b := l.img.Bounds()
	return b.Dx(), b.Dy()
}

// radarCanvas paints radar primitives onto an ebiten image.
type radarCanvas struct {
	dst   *ebiten.Image
	white *ebiten.Image
}

func newRadarCanvas(dst *ebiten.Image) *radarCanvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &radarCanvas{
		dst:   dst,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (c *radarCanvas) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func (c *radarCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (c *radarCanvas) FillFan(center radar.Point, pts []radar.Point, clr color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	vertex := func(p radar.Point) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, vertex(center))
	for _, p := range pts {
		vs = append(vs, vertex(p))
	}
	is := make([]uint16, 0, 3*len(pts))
	for i := range pts {
		next := (i+1)%len(pts) + 1
		is = append(is, 0, uint16(i+1), uint16(next))
	}
	c.dst.DrawTriangles(vs, is, c.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *radarCanvas) StrokePolygon(pts []radar.Point, width float64, clr color.NRGBA) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		c.StrokeLine(p.X, p.Y, q.X, q.Y, width, clr)
	}
}

func (c *radarCanvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

// Text centres s on (x, y) using the debug font, which is always white.
func (c *radarCanvas) Text(s string, x, y float64, _ color.NRGBA) {
	const glyphW, glyphH = 6, 16
	ebitenutil.DebugPrintAt(c.dst, s, int(x)-len(s)*glyphW/2, int(y)-glyphH/2)
}
