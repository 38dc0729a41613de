package termview

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-field-go/internal/backdrop"
	"github.com/olivierh59500/particle-field-go/internal/field"
)

// View drives a field on a tcell screen. Resize and mouse events are applied
// between frames on the Run goroutine.
type View struct {
	screen   tcell.Screen
	field    *field.Field
	surface  *Surface
	backdrop *backdrop.Backdrop
	ticker   *field.Ticker
	layer    float64
	paused   bool
}

// New wires f to screen. bd may be nil.
func New(screen tcell.Screen, f *field.Field, bd *backdrop.Backdrop, layer float64) *View {
	v := &View{
		screen:   screen,
		field:    f,
		surface:  NewSurface(0, 0),
		backdrop: bd,
		layer:    layer,
	}
	v.ticker = field.NewTicker(v.Frame)
	return v
}

// Ticker exposes the frame ticker.
func (v *View) Ticker() *field.Ticker { return v.ticker }

// Surface exposes the cell surface.
func (v *View) Surface() *Surface { return v.surface }

// Frame steps the field and repaints the screen.
func (v *View) Frame() {
	v.field.Step()
	v.field.Draw(v.surface)
	if v.backdrop != nil {
		v.backdrop.Advance()
	}
	v.surface.Flush(v.screen, v.backdrop, v.layer)
	v.screen.Show()
}

// Resize adopts a new terminal size and regenerates the particles.
func (v *View) Resize(cols, rows int) {
	v.surface.Resize(cols, rows)
	w, h := v.surface.Size()
	v.field.HandleResize(w, h)
	log.Printf("resize %dx%d cells, %dx%d px, %d particles", cols, rows, w, h, len(v.field.Particles))
}

// Point moves the pointer to the centre of a cell.
func (v *View) Point(col, row int) {
	v.field.SetPointer(float64(col*CellW+CellW/2), float64(row*CellH+CellH/2))
}

// Handle applies one terminal event and reports whether the view should quit.
func (v *View) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		v.Resize(cols, rows)
		v.screen.Sync()
	case *tcell.EventMouse:
		col, row := ev.Position()
		v.Point(col, row)
	case *tcell.EventKey:
		return v.Key(ev.Key(), ev.Rune())
	}
	return false
}

// Key handles a key press and reports whether the view should quit.
func (v *View) Key(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch r {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
		if v.paused {
			v.ticker.Stop()
		} else {
			v.ticker.Start()
		}
	case 'r':
		v.field.Populate()
	case 'h':
		if v.backdrop != nil {
			v.backdrop.SetShimmer(!v.backdrop.Shimmer())
		}
	}
	return false
}

// Run paints a frame every interval until the user quits or ctx is done.
// The ticker is stopped and event polling ends before Run returns.
func (v *View) Run(ctx context.Context, interval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := false
	events := make(chan func(), 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- func() {
				if v.Handle(ev) {
					quit = true
					v.ticker.Stop()
					cancel()
				}
			}:
			case <-ctx.Done():
				return
			}
		}
	}()

	v.Resize(v.screen.Size())
	v.ticker.Start()
	err := v.ticker.Run(ctx, interval, events)
	v.ticker.Stop()
	if quit {
		return nil
	}
	return err
}
