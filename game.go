package main

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particle-field-go/internal/backdrop"
	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/radar"
	"github.com/olivierh59500/particle-field-go/internal/theme"
)

// Rendering constants
const (
	BackdropCell = 8   // Backdrop is computed at 1/8 resolution and scaled up
	RadarSize    = 320 // Radar chart is drawn into a square of this size
	RadarFade    = time.Second
)

// Game adapts the particle field to the ebiten.Game interface. The frame
// callback steps the field and paints it into an offscreen layer; Draw
// composites backdrop, layer and radar onto the screen.
type Game struct {
	cfg    *config.Config
	field  *field.Field
	ticker *field.Ticker
	layer  *layerSurface

	backdrop *backdrop.Backdrop
	bdImage  *ebiten.Image
	bdPix    []byte
	bgColor  color.NRGBA

	radarImage *ebiten.Image
	radarFade  *radar.FadeIn
	showRadar  bool

	paused bool

	// Layout may run on a different goroutine than Update
	mu            sync.Mutex
	width, height int
	resized       bool
}

// NewGame creates a game from cfg. The particles are created on the first
// Layout, once the window size is known.
func NewGame(cfg *config.Config) *Game {
	seed := cfg.ResolveSeed()
	g := &Game{
		cfg:       cfg,
		field:     field.New(seed, theme.Particles()),
		layer:     &layerSurface{},
		radarFade: radar.NewFadeIn(RadarFade),
	}
	g.ticker = field.NewTicker(g.frame)

	bg, err := field.ParseHex(theme.Background)
	if err != nil {
		bg = color.NRGBA{A: 0xff}
	}
	g.bgColor = bg

	if cfg.Backdrop {
		opts := backdrop.DefaultOptions()
		opts.Shimmer = cfg.Shimmer
		g.backdrop = backdrop.New(seed, opts)
	}
	if cfg.Radar {
		g.toggleRadar()
	}
	log.Printf("seed %d", seed)
	return g
}

// Start arms the frame ticker.
func (g *Game) Start() { g.ticker.Start() }

// Stop disarms the frame ticker. No frame runs after Stop returns.
func (g *Game) Stop() { g.ticker.Stop() }

// frame is the per-tick callback: step, then paint the particle layer.
func (g *Game) frame() {
	g.field.Step()
	g.field.Draw(g.layer)
	if g.backdrop != nil && g.backdrop.Shimmer() {
		g.backdrop.Advance()
		g.paintBackdrop()
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.applyResize()

	if err := g.handleInput(); err != nil {
		return err
	}

	g.ticker.Tick()
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	if g.bdImage != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(BackdropCell, BackdropCell)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.bdImage, op)
	} else {
		screen.Fill(g.bgColor)
	}

	if g.layer.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(g.cfg.Layer))
		screen.DrawImage(g.layer.img, op)
	}

	if g.showRadar && g.radarImage != nil {
		alpha := g.radarFade.Opacity(time.Now())
		if alpha <= 0 {
			return
		}
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(sw-RadarSize)/2, float64(sh-RadarSize)/2)
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(g.radarImage, op)
	}
}

// Layout tracks the window size; a change is applied as a resize on the
// next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

// applyResize regenerates the particles and offscreen images after a
// window size change.
func (g *Game) applyResize() {
	g.mu.Lock()
	w, h, resized := g.width, g.height, g.resized
	g.resized = false
	g.mu.Unlock()
	if !resized {
		return
	}

	g.field.HandleResize(w, h)
	g.layer.resize(w, h)
	g.resizeBackdrop(w, h)
	log.Printf("resize %dx%d, %d particles", w, h, len(g.field.Particles))

	// Repaint now so a paused game doesn't show a stale layer
	g.field.Draw(g.layer)
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if g.paused {
			g.Stop()
		} else {
			g.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field.Populate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && g.backdrop != nil {
		g.backdrop.SetShimmer(!g.backdrop.Shimmer())
		g.paintBackdrop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.toggleRadar()
	}

	mx, my := ebiten.CursorPosition()
	g.field.SetPointer(float64(mx), float64(my))
	return nil
}

func (g *Game) toggleRadar() {
	g.showRadar = !g.showRadar
	if !g.showRadar {
		return
	}
	if g.radarImage == nil {
		g.radarImage = ebiten.NewImage(RadarSize, RadarSize)
		geo := radar.Layout(RadarSize, RadarSize, radar.DefaultSkills)
		radar.Draw(newRadarCanvas(g.radarImage), geo, radar.DefaultStyle())
	}
	g.radarFade.Trigger(time.Now())
}

func (g *Game) resizeBackdrop(w, h int) {
	if g.backdrop == nil {
		return
	}
	if g.bdImage != nil {
		g.bdImage.Deallocate()
		g.bdImage = nil
	}
	bw, bh := (w+BackdropCell-1)/BackdropCell, (h+BackdropCell-1)/BackdropCell
	if bw <= 0 || bh <= 0 {
		return
	}
	g.bdImage = ebiten.NewImage(bw, bh)
	g.bdPix = make([]byte, 4*bw*bh)
	g.paintBackdrop()
}

// paintBackdrop samples the backdrop once per cell into the low-res image.
func (g *Game) paintBackdrop() {
	if g.bdImage == nil {
		return
	}
	b := g.bdImage.Bounds()
	bw, bh := b.Dx(), b.Dy()
	w, h := bw*BackdropCell, bh*BackdropCell
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			c := g.backdrop.At(x*BackdropCell+BackdropCell/2, y*BackdropCell+BackdropCell/2, w, h)
			i := 4 * (y*bw + x)
			g.bdPix[i+0] = c.R
			g.bdPix[i+1] = c.G
			g.bdPix[i+2] = c.B
			g.bdPix[i+3] = c.A
		}
	}
	g.bdImage.WritePixels(g.bdPix)
}
