// Package termview renders the particle field in a terminal with tcell.
package termview

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-field-go/internal/backdrop"
	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/theme"
)

// Pixels covered by one terminal cell. Cells are roughly twice as tall as wide.
const (
	CellW = 8
	CellH = 16
)

type cell struct {
	c      color.NRGBA
	radius float64 // Largest radius painted here
	set    bool
}

// Surface is a field.Surface backed by a grid of terminal cells. A circle
// lands in the cell holding its centre and is alpha-blended over whatever
// is already there.
type Surface struct {
	cols, rows int
	cells      []cell
}

// NewSurface allocates a cols×rows surface.
func NewSurface(cols, rows int) *Surface {
	s := &Surface{}
	s.Resize(cols, rows)
	return s
}

// Resize reallocates the grid and clears it.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.cells = make([]cell, s.cols*s.rows)
}

// Clear empties every cell.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{}
	}
}

// Size returns the surface size in pixels.
func (s *Surface) Size() (int, int) { return s.cols * CellW, s.rows * CellH }

// Grid returns the surface size in cells.
func (s *Surface) Grid() (int, int) { return s.cols, s.rows }

// FillCircle blends c into the cell under (x, y). Centres off the grid are dropped.
func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	if x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	col, row := int(x/CellW), int(y/CellH)
	if col >= s.cols || row >= s.rows {
		return
	}
	cl := &s.cells[row*s.cols+col]
	if cl.set {
		cl.c = over(cl.c, c)
	} else {
		cl.c = c
	}
	cl.radius = math.Max(cl.radius, r)
	cl.set = true
}

// Cell returns the blended colour of a cell and whether anything was painted.
func (s *Surface) Cell(col, row int) (color.NRGBA, bool) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return color.NRGBA{}, false
	}
	cl := s.cells[row*s.cols+col]
	return cl.c, cl.set
}

// Flush writes the grid to screen. Painted cells show a dot in their colour,
// faded by layer, over the backdrop. bd may be nil for a flat background.
func (s *Surface) Flush(screen tcell.Screen, bd *backdrop.Backdrop, layer float64) {
	flat, err := field.ParseHex(theme.Background)
	if err != nil {
		flat = color.NRGBA{A: 0xff}
	}
	w, h := s.Size()
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			bg := flat
			if bd != nil {
				bg = bd.At(col*CellW+CellW/2, row*CellH+CellH/2, w, h)
			}
			style := tcell.StyleDefault.Background(rgb(bg))

			cl := s.cells[row*s.cols+col]
			if !cl.set {
				screen.SetContent(col, row, ' ', nil, style)
				continue
			}
			fg := cl.c
			fg.A = uint8(math.Round(float64(fg.A) * math.Max(0, math.Min(layer, 1))))
			ch := '·'
			if cl.radius >= 2 {
				ch = '•'
			}
			screen.SetContent(col, row, ch, nil, style.Foreground(rgb(over(bg, fg))))
		}
	}
}

// over composites src onto dst, both non-premultiplied.
func over(dst, src color.NRGBA) color.NRGBA {
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		return color.NRGBA{}
	}
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return uint8(math.Round(v))
	}
	return color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(math.Round(oa * 255)),
	}
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
