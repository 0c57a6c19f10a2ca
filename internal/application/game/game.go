// Package game drives the scene state machine and adapts it to ebiten.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/ziggurat/internal/application/signal"
	"github.com/younwookim/ziggurat/internal/application/system"
	"github.com/younwookim/ziggurat/internal/render"
	"github.com/younwookim/ziggurat/internal/render/ebitenrender"
)

// InputSource yields one frame of input per call
type InputSource interface {
	GetInput() system.InputState
}

// Game implements ebiten.Game on top of the scene machine.
type Game struct {
	machine *Machine
	bus     *signal.Bus
	input   InputSource
	lore    *LorePanel
	screenW int
	screenH int

	face    *text.GoTextFace
	surface *ebitenrender.Surface
	record  func(system.InputState)
}

// New creates a new Game. The lore panel opens whenever the machine asks
// for it on the bus.
func New(m *Machine, bus *signal.Bus, input InputSource, screenW, screenH int) *Game {
	g := &Game{
		machine: m,
		bus:     bus,
		input:   input,
		lore:    NewLorePanel(m.Context().Config.Lore),
		screenW: screenW,
		screenH: screenH,
	}
	bus.OnLore(g.lore.Show)
	return g
}

// SetFace sets the font used for captions. Without one, text is skipped.
func (g *Game) SetFace(face *text.GoTextFace) {
	g.face = face
	g.surface = nil
}

// SetRecorder installs a hook that sees every frame's input
func (g *Game) SetRecorder(fn func(system.InputState)) {
	g.record = fn
}

// Machine returns the scene machine
func (g *Game) Machine() *Machine {
	return g.machine
}

// Lore returns the inscription overlay
func (g *Game) Lore() *LorePanel {
	return g.lore
}

// Update reads input, advances one tick and delivers queued notifications.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	in := g.input.GetInput()
	if g.record != nil {
		g.record(in)
	}
	g.Apply(in)
	g.machine.Tick()
	g.bus.Flush()
	return nil
}

// Apply routes one frame of input. While the lore panel is open, a click
// or back dismisses it and nothing reaches the scene.
func (g *Game) Apply(in system.InputState) {
	if g.lore.Visible() {
		if in.MouseClick || in.Back {
			g.lore.Hide()
		}
		return
	}

	g.machine.SetScroll(system.ApplyScroll(g.machine.Scroll(), in))

	x, y := float64(in.MouseX), float64(in.MouseY)
	g.machine.PointerMove(x, y)
	if in.MouseClick {
		g.machine.Click(x, y)
	}
	if in.Back {
		g.machine.Exit()
	}
}

// Draw renders the current frame.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		g.surface = ebitenrender.New(screen, g.face)
	} else {
		g.surface.Reset(screen)
	}
	g.DrawTo(g.surface)
}

// DrawTo renders the frame onto any surface
func (g *Game) DrawTo(dst render.Surface) {
	g.machine.Draw(dst)
	g.lore.Draw(dst)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
