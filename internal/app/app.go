//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"tweakpanel/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// View dimensions of the simulation area in logical pixels.
const (
	ViewWidth  = 320
	ViewHeight = 240
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	overlay *ui.Overlay
	hud     *ui.HUD

	background color.Color

	scale    int
	tickOnce bool
}

// New constructs a Game for the provided session.
func New(s *Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	settings := s.Settings()
	height := max(settings.PanelHeight, ViewHeight*scale)
	return &Game{
		session:    s,
		overlay:    ui.NewOverlay(s.Sim(), ViewWidth, ViewHeight, scale),
		hud:        ui.NewHUD(s, settings.PanelWidth, height),
		background: color.RGBA{R: 10, G: 12, B: 16, A: 255},
		scale:      scale,
	}
}

// Size returns the window size in logical pixels.
func (g *Game) Size() (int, int) {
	w := ViewWidth*g.scale + g.hud.Width()
	h := ViewHeight * g.scale
	if s := g.session.Settings(); s != nil && s.PanelHeight > h {
		h = s.PanelHeight
	}
	return w, h
}

// Update handles per-frame logic, advances the simulation and ticks the
// panel.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !g.hud.Editing() {
		g.handleKeys()
	}

	if g.tickOnce {
		g.session.Advance()
		g.tickOnce = false
	} else {
		g.session.Frame()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	g.hud.Update(ViewWidth * g.scale)
	return nil
}

// handleKeys maps the session shortcuts. They are ignored while the step
// field is being edited.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.session.Reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.session.ToggleOpen()
	}
	if g.overlay != nil {
		g.overlay.HandleKeys()
	}
}

// Draw renders the simulation view and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	status := fmt.Sprintf("%s  tick %d", g.session.Sim().Name(), g.session.Ticks())
	if g.session.Paused() {
		status += "  [paused]"
	}
	text.Draw(screen, status, basicfont.Face7x13, 8, 16, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	g.hud.Draw(screen, ViewWidth*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}
