package main

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/gridcursor/obj"
	"github.com/milk9111/gridcursor/pointer"
	"github.com/milk9111/gridcursor/settings"
	"github.com/milk9111/gridcursor/targeting"
)

// Game is the overlay window. Each tick it samples the keyboard, advances the
// targeting machine and carries out the resulting command.
type Game struct {
	frames int
	debug  bool

	configPath string
	settings   *settings.Settings
	watcher    *settings.Watcher

	machine *targeting.Machine
	input   *obj.Input
	overlay *obj.Overlay
	status  *StatusUI
	pointer pointer.Pointer

	width, height float64

	// rem carries the sub-pixel part of relative moves between ticks.
	rem targeting.Point

	// clickPending defers the click by one tick so mouse passthrough is in
	// effect before the button event is sent.
	clickPending bool
	exiting      bool
}

func NewGame(configPath string, s *settings.Settings, p pointer.Pointer, debug bool) (*Game, error) {
	overlay, err := obj.NewOverlay(s)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:      debug,
		configPath: configPath,
		settings:   s,
		machine:    targeting.NewMachine(s.TargetingOptions()),
		input:      obj.NewInput(),
		overlay:    overlay,
		pointer:    p,
	}
	if s.Status.Enabled {
		g.status = NewStatusUI(s.Status)
	}

	if configPath != "" {
		w, err := settings.NewWatcher(configPath)
		if err != nil {
			log.Printf("[settings] hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if g.exiting {
		return ebiten.Termination
	}

	if g.clickPending {
		log.Println("[game] clicking")
		if err := g.pointer.Click(); err != nil {
			log.Printf("[game] %v", err)
		}
		return ebiten.Termination
	}

	g.pollSettings()

	area := targeting.Rect{Size: targeting.Size{W: g.width, H: g.height}}
	cmd := g.machine.Advance(g.input.Sample(area))
	g.execute(cmd)

	if g.status != nil {
		g.status.Set(g.machine)
		g.status.Update()
	}
	return nil
}

func (g *Game) execute(cmd targeting.Command) {
	if cmd.Kind != targeting.CommandAwait && cmd.Kind != targeting.CommandMove {
		log.Printf("[game] %s", cmd)
	}

	switch cmd.Kind {
	case targeting.CommandAwait:

	case targeting.CommandWarpPointer:
		g.warp(cmd.Position)

	case targeting.CommandMove:
		g.move(cmd.Delta)

	case targeting.CommandMoveAndClick:
		g.warp(cmd.Position)
		g.prepareClick()

	case targeting.CommandClick:
		g.prepareClick()

	case targeting.CommandTerminate:
		g.exiting = true

	default:
		log.Printf("[game] unexpected command %s", cmd)
	}
}

func (g *Game) warp(p targeting.Point) {
	x, y := g.toScreen(p)
	if err := g.pointer.WarpTo(x, y); err != nil {
		log.Printf("[game] %v", err)
	}
	g.rem = targeting.Point{}
}

func (g *Game) move(delta targeting.Point) {
	var dx, dy int
	dx, dy, g.rem = splitMove(delta, deviceScale(), g.rem)
	if dx == 0 && dy == 0 {
		return
	}
	if err := g.pointer.MoveBy(dx, dy); err != nil {
		log.Printf("[game] %v", err)
	}
}

// splitMove scales delta to device pixels and adds the carried remainder. It
// returns the whole pixels to move now and the fraction left for next tick.
func splitMove(delta targeting.Point, scale float64, rem targeting.Point) (int, int, targeting.Point) {
	fx := delta.X*scale + rem.X
	fy := delta.Y*scale + rem.Y
	dx, dy := math.Trunc(fx), math.Trunc(fy)
	return int(dx), int(dy), targeting.Point{X: fx - dx, Y: fy - dy}
}

func (g *Game) prepareClick() {
	ebiten.SetWindowMousePassthrough(true)
	g.clickPending = true
}

// toScreen converts a window-local point to screen pixels.
func (g *Game) toScreen(p targeting.Point) (int, int) {
	scale := deviceScale()
	wx, wy := 0, 0
	if !ebiten.IsFullscreen() {
		wx, wy = ebiten.WindowPosition()
	}
	x := (float64(wx) + p.X) * scale
	y := (float64(wy) + p.Y) * scale
	return int(math.Round(x)), int(math.Round(y))
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// pollSettings applies a changed settings file, keeping the current settings
// if the new file does not load.
func (g *Game) pollSettings() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("[settings] watch: %v", err)
	default:
	}
	if _, ok := g.watcher.Poll(); !ok {
		return
	}

	if mt, ok := settings.ModTime(g.configPath); ok && mt.Equal(g.settings.ModTime) {
		return
	}

	s, err := settings.Load(g.configPath)
	if err != nil {
		log.Printf("[settings] reload failed, keeping previous settings: %v", err)
		return
	}
	log.Printf("[settings] reloaded %s", g.configPath)

	g.settings = s
	g.machine.SetOptions(s.TargetingOptions())
	g.overlay.SetSettings(s)
	if s.Status.Enabled {
		g.status = NewStatusUI(s.Status)
	} else {
		g.status = nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.clickPending || g.exiting {
		return
	}

	g.overlay.Draw(screen, g.machine.Level(), g.machine.Cells())

	if g.status != nil {
		g.status.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

// LayoutF keeps the logical screen the same size as the window, so the grid
// always covers the whole drawable area.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the pointer connection and the settings watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if err := g.pointer.Close(); err != nil {
		log.Printf("[game] close pointer: %v", err)
	}
}
