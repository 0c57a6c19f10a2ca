package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/ziggurat/internal/domain/entity"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
	keys = map[rune]color.RGBA{'r': red, 'b': blue}
)

func TestDrawBitmap(t *testing.T) {
	bm := entity.Bitmap{
		"r.",
		"zb",
	}

	t.Run("skips transparent and unknown runes", func(t *testing.T) {
		rec := NewRecorder(320, 240)
		DrawBitmap(rec, bm, 10, 20, 2, keys, false)

		ops := rec.Ops()
		require.Len(t, ops, 2)
		assert.Equal(t, Op{Kind: OpFill, X: 10, Y: 20, W: 2, H: 2, Color: red}, ops[0])
		assert.Equal(t, Op{Kind: OpFill, X: 12, Y: 22, W: 2, H: 2, Color: blue}, ops[1])
	})

	t.Run("flip mirrors columns", func(t *testing.T) {
		rec := NewRecorder(320, 240)
		DrawBitmap(rec, bm, 10, 20, 2, keys, true)

		ops := rec.Ops()
		require.Len(t, ops, 2)
		assert.Equal(t, 12.0, ops[0].X)
		assert.Equal(t, 10.0, ops[1].X)
	})
}

func TestFade(t *testing.T) {
	tests := []struct {
		alpha    float64
		expected uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{1.25, 255},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Fade(red, tt.alpha).A, "alpha %v", tt.alpha)
	}
}

func TestShade(t *testing.T) {
	c := Shade(color.RGBA{100, 200, 50, 255}, 1.5)
	assert.Equal(t, color.RGBA{150, 255, 75, 255}, c)
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(320, 240)
	w, h := rec.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)

	_, ok := rec.Last()
	assert.False(t, ok)

	rec.FillRect(0, 0, 1, 1, red)
	rec.StrokeRect(0, 0, 4, 4, 1, blue)
	rec.Text("hello", 5, 5, red)

	assert.Equal(t, 1, rec.Count(OpFill))
	assert.Equal(t, 1, rec.Count(OpStroke))
	assert.Equal(t, []string{"hello"}, rec.Texts())

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, OpText, last.Kind)

	rec.Reset()
	assert.Empty(t, rec.Ops())
}
