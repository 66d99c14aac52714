//go:build ebiten

package app

import (
	"image/color"

	"infinite-life/internal/core"
	"infinite-life/internal/render"
	"infinite-life/internal/ui"
	geom "infinite-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts a simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep

	view  geom.Rect
	cells []uint8

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game showing view of sim.
func New(sim core.Sim, view geom.Rect, scale, tps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(view.W, view.H),
		hud:      ui.NewHUD(sim, hudWidth),
		stepper:  core.NewFixedStep(tps),
		view:     view,
		cells:    make([]uint8, view.Area()),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Reset rewinds the simulation to generation 0.
func (g *Game) Reset() {
	g.sim.Reset()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.stepper.SetTPS(g.stepper.TPS() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.stepper.SetTPS(max(1, g.stepper.TPS()/2))
	}
	g.pan()

	if (!g.paused && g.stepper.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.paused, g.stepper.TPS())
	return nil
}

func (g *Game) pan() {
	var d geom.Point
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyH) {
		d.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyL) {
		d.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyK) {
		d.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyJ) {
		d.Y++
	}
	g.view = g.view.Translate(d)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.cells = render.SampleWindow(g.cells, g.sim, g.view)
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.view.W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.W*g.scale + hudWidth, g.view.H * g.scale
}
