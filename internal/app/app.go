//go:build ebiten

package app

import (
	"log"

	"islandgen/internal/core"
	"islandgen/internal/render"
	"islandgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core view to the ebiten.Game interface.
type Game struct {
	view    core.View
	painter *render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
	seed  int64
}

// New constructs a Game for the provided view. A hudWidth of zero hides the
// parameter panel.
func New(view core.View, scale int, seed int64, hudWidth int) *Game {
	size := view.Size()
	return &Game{
		view:    view,
		painter: render.NewPainter(size.W, size.H),
		overlay: ui.NewOverlay(view, scale),
		hud:     ui.NewHUD(view, hudWidth),
		scale:   scale,
		seed:    seed,
	}
}

// Reset regenerates the view with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.view.Reset(seed); err != nil {
		log.Printf("reset %s with seed %d: %v", g.view.Name(), seed, err)
		return
	}
	g.seed = seed
}

// Update handles per-frame input. Generation only happens on demand.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(NewSeed())
	}
	g.overlay.Update()
	g.hud.Update(g.viewWidth())
	return nil
}

// Draw renders the current view image, overlays and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.view.Size()
	g.painter.Resize(size.W, size.H)
	g.painter.Blit(screen, g.view.Pixels(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hud.Width(), g.view.Size().H * g.scale
}

func (g *Game) viewWidth() int { return g.view.Size().W * g.scale }
