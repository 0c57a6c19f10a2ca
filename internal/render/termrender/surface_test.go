package termrender

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurface_FillRectScalesToCells(t *testing.T) {
	// 320x240 onto 80x30 cells: 4 logical units per column, 4 per half-cell row
	s := New(320, 240, 80, 30)

	s.FillRect(0, 0, 8, 8, color.RGBA{255, 0, 0, 255})

	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, s.Pixel(0, 0))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, s.Pixel(1, 1))
	assert.Equal(t, color.NRGBA{}, s.Pixel(2, 0))
	assert.Equal(t, color.NRGBA{}, s.Pixel(0, 2))
}

func TestSurface_FillRectClipsOffscreen(t *testing.T) {
	s := New(320, 240, 80, 30)

	assert.NotPanics(t, func() {
		s.FillRect(-100, -100, 50, 50, color.White)
		s.FillRect(300, 230, 500, 500, color.White)
		s.FillRect(10, 10, -5, 5, color.White)
	})
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, s.Pixel(79, 59))
}

func TestSurface_AlphaBlend(t *testing.T) {
	s := New(320, 240, 80, 30)

	s.FillRect(0, 0, 4, 4, color.RGBA{200, 200, 200, 255})
	s.FillRect(0, 0, 4, 4, color.NRGBA{0, 0, 0, 128})

	got := s.Pixel(0, 0)
	assert.InDelta(t, 100, int(got.R), 1)
	assert.Equal(t, uint8(255), got.A)
}

func TestSurface_ToLogical(t *testing.T) {
	s := New(320, 240, 80, 30)

	x, y := s.ToLogical(40, 15)
	assert.Equal(t, 162.0, x)
	assert.Equal(t, 124.0, y)
}

func TestSurface_Flush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 30)

	s := New(320, 240, 80, 30)
	s.FillRect(0, 0, 320, 240, color.RGBA{10, 20, 30, 255})
	s.Text("hi", 0, 0, color.White)
	s.Flush(screen)

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'h', r)
	r, _, _, _ = screen.GetContent(1, 0)
	assert.Equal(t, 'i', r)
	r, _, _, _ = screen.GetContent(5, 5)
	assert.Equal(t, upperHalf, r)

	// Flush clears the frame
	assert.Equal(t, color.NRGBA{}, s.Pixel(0, 0))
}
