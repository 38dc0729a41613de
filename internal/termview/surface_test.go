package termview

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSurfaceSize(t *testing.T) {
	s := NewSurface(80, 24)
	w, h := s.Size()
	if w != 640 || h != 384 {
		t.Fatalf("size = %dx%d, want 640x384", w, h)
	}
	s.Resize(-1, 10)
	if w, _ := s.Size(); w != 0 {
		t.Fatalf("negative cols gave width %d", w)
	}
}

func TestFillCircleCells(t *testing.T) {
	s := NewSurface(10, 5)
	green := color.NRGBA{0x00, 0xff, 0x88, 0x7f}

	s.FillCircle(17, 40, 2, green) // col 2, row 2
	s.FillCircle(-1, 3, 1, green)
	s.FillCircle(80, 3, 1, green)
	s.FillCircle(3, 80, 1, green)

	c, ok := s.Cell(2, 2)
	if !ok || c != green {
		t.Fatalf("cell(2,2) = %+v %v", c, ok)
	}
	painted := 0
	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			if _, ok := s.Cell(col, row); ok {
				painted++
			}
		}
	}
	if painted != 1 {
		t.Fatalf("%d cells painted, want 1", painted)
	}

	s.Clear()
	if _, ok := s.Cell(2, 2); ok {
		t.Fatal("cell survived Clear")
	}
}

func TestFillCircleBlends(t *testing.T) {
	s := NewSurface(1, 1)
	s.FillCircle(1, 1, 1, color.NRGBA{0, 0, 0, 255})
	s.FillCircle(2, 2, 1, color.NRGBA{255, 255, 255, 128})

	c, _ := s.Cell(0, 0)
	if c.A != 255 || c.R < 127 || c.R > 129 {
		t.Fatalf("blend = %+v, want mid grey", c)
	}
}

func TestOver(t *testing.T) {
	bg := color.NRGBA{10, 10, 10, 255}
	if got := over(bg, color.NRGBA{200, 0, 0, 0}); got != bg {
		t.Errorf("transparent src changed dst: %+v", got)
	}
	if got := over(bg, color.NRGBA{200, 0, 0, 255}); got != (color.NRGBA{200, 0, 0, 255}) {
		t.Errorf("opaque src = %+v", got)
	}
	if got := over(color.NRGBA{}, color.NRGBA{}); got != (color.NRGBA{}) {
		t.Errorf("empty over empty = %+v", got)
	}
}

func TestFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	s := NewSurface(4, 2)
	s.FillCircle(12, 20, 2.5, color.NRGBA{0x00, 0xff, 0x88, 0xff}) // col 1, row 1
	s.FillCircle(4, 4, 1, color.NRGBA{0x00, 0xa1, 0xff, 0xff})     // col 0, row 0
	s.Flush(screen, nil, 1)
	screen.Show()

	if ch, _, style, _ := screen.GetContent(1, 1); ch != '•' {
		t.Errorf("cell(1,1) = %q, want '•'", ch)
	} else if fg, _, _ := style.Decompose(); fg != tcell.NewRGBColor(0x00, 0xff, 0x88) {
		t.Errorf("cell(1,1) fg = %v", fg)
	}
	if ch, _, _, _ := screen.GetContent(0, 0); ch != '·' {
		t.Errorf("cell(0,0) = %q, want '·'", ch)
	}
	if ch, _, _, _ := screen.GetContent(3, 0); ch != ' ' {
		t.Errorf("cell(3,0) = %q, want blank", ch)
	}
}
