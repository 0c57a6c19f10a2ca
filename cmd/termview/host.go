package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/ziggurat/internal/application/game"
	"github.com/younwookim/ziggurat/internal/application/system"
	"github.com/younwookim/ziggurat/internal/infrastructure/assets"
	"github.com/younwookim/ziggurat/internal/render"
	"github.com/younwookim/ziggurat/internal/render/termrender"
)

const hint = "wheel/arrows scroll  esc back  q quit"

// host adapts a tcell screen to the game: it collects events between
// frames and serves them as one InputState per tick.
type host struct {
	screen  tcell.Screen
	surface *termrender.Surface
	game    *game.Game

	pending    system.InputState
	buttonDown bool
	quit       bool
}

func newHost(screen tcell.Screen, logicalW, logicalH int) *host {
	cols, rows := screen.Size()
	return &host{
		screen:  screen,
		surface: termrender.New(logicalW, logicalH, cols, rows),
	}
}

// GetInput returns the input gathered since the last call. The pointer
// position persists; presses are consumed.
func (h *host) GetInput() system.InputState {
	in := h.pending
	h.pending = system.InputState{MouseX: in.MouseX, MouseY: in.MouseY}
	return in
}

// handle folds one terminal event into the pending input
func (h *host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.surface.Resize(ev.Size())
		h.screen.Sync()
	}
}

func (h *host) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		h.pending.Back = true
	case tcell.KeyUp:
		h.pending.WheelY++
	case tcell.KeyDown:
		h.pending.WheelY--
	case tcell.KeyPgUp:
		h.pending.WheelY += 5
	case tcell.KeyPgDn:
		h.pending.WheelY -= 5
	case tcell.KeyCtrlC:
		h.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			h.quit = true
		case 'k':
			h.pending.WheelY++
		case 'j':
			h.pending.WheelY--
		}
	}
}

func (h *host) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := h.surface.ToLogical(col, row)
	h.pending.MouseX, h.pending.MouseY = int(x), int(y)

	buttons := ev.Buttons()
	if buttons&tcell.WheelUp != 0 {
		h.pending.WheelY++
	}
	if buttons&tcell.WheelDown != 0 {
		h.pending.WheelY--
	}

	down := buttons&tcell.Button1 != 0
	if down && !h.buttonDown {
		h.pending.MouseClick = true
	}
	h.buttonDown = down
}

// frame advances the game one tick and paints it
func (h *host) frame() error {
	if err := h.game.Update(); err != nil {
		return err
	}
	h.game.DrawTo(h.surface)
	h.drawHint(h.surface)
	h.surface.Flush(h.screen)
	return nil
}

func (h *host) drawHint(dst render.Surface) {
	_, hgt := dst.Size()
	dst.Text(hint, 2, float64(hgt)-8, render.Fade(assets.Palette.White, 0.7))
}
