// Package ebitenrender implements render.Surface on an ebiten image.
package ebitenrender

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Surface draws onto an ebiten image in logical coordinates.
type Surface struct {
	dst  *ebiten.Image
	face *text.GoTextFace
}

// LoadFace parses the bundled Go Regular font at the given size.
func LoadFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// New wraps dst. A nil face disables text draws.
func New(dst *ebiten.Image, face *text.GoTextFace) *Surface {
	return &Surface{dst: dst, face: face}
}

// Reset points the surface at a new frame image
func (s *Surface) Reset(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, false)
}

func (s *Surface) Text(str string, x, y float64, c color.Color) {
	if s.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face, op)
}
