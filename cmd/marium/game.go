package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/marium/aquarium"
	"github.com/plus3/marium/config"
	"github.com/plus3/marium/render"
)

// game presents the simulation. It only reads published frames and never
// touches the simulation's storage.
type game struct {
	sim        *aquarium.Simulation
	compositor *render.Compositor
	overlay    *overlay

	width, height int
	dirty         bool
}

func newGame(sim *aquarium.Simulation, compositor *render.Compositor, window config.WindowConfig) *game {
	return &game{
		sim:        sim,
		compositor: compositor,
		width:      window.Width,
		height:     window.Height,
		dirty:      true,
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.visible = !g.overlay.visible
		g.dirty = true
	}

	g.pollRedraw()

	if g.overlay != nil && g.overlay.visible {
		g.overlay.Update()
	}
	return nil
}

// pollRedraw marks the screen dirty if a frame was published since the
// last poll.
func (g *game) pollRedraw() {
	select {
	case <-g.sim.Redraw():
		g.dirty = true
	default:
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	showOverlay := g.overlay != nil && g.overlay.visible

	// The screen keeps its contents between frames, so it is only
	// recomposed when there is something new to show.
	if g.dirty || showOverlay {
		g.compositor.Draw(screen, g.sim.Frame())
		g.dirty = false
	}
	if showOverlay {
		g.overlay.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(g.width, g.height)
	}
	return g.width, g.height
}

// tpsFor returns the update rate needed to notice every published frame.
func tpsFor(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	tps := int((time.Second + interval - 1) / interval)
	return min(max(tps, 1), ebiten.DefaultTPS)
}
