package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Scroll speeds in percentage points
const (
	WheelScrollStep = 4.0
	KeyScrollStep   = 0.5
)

// InputSystem reads pointer, wheel and keyboard input from ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds one frame of input. Pointer coordinates are logical.
type InputState struct {
	MouseX     int
	MouseY     int
	MouseClick bool
	WheelY     float64
	ScrollUp   bool
	ScrollDown bool
	Back       bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return InputState{
		MouseX:     mx,
		MouseY:     my,
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		WheelY:     wy,
		ScrollUp:   ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		ScrollDown: ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Back:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// ApplyScroll returns the scroll percentage after this frame's wheel and key
// input. Wheel up and the up key scroll north, toward 100. The result is clamped.
func ApplyScroll(pct float64, in InputState) float64 {
	pct += in.WheelY * WheelScrollStep
	if in.ScrollUp {
		pct += KeyScrollStep
	}
	if in.ScrollDown {
		pct -= KeyScrollStep
	}
	return max(0, min(100, pct))
}
