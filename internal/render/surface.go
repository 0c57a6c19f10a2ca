// Package render defines the immediate-mode drawing surface the scenes paint on.
//
// All coordinates are logical units. Backends scale to the physical viewport
// with nearest-neighbor magnification.
package render

import (
	"image/color"
	"math"

	"github.com/younwookim/ziggurat/internal/domain/entity"
)

// Surface is a fixed-resolution 2D drawing target.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h int)
	FillRect(x, y, w, h float64, c color.Color)
	// StrokeRect outlines a rectangle with a stroke of the given width.
	StrokeRect(x, y, w, h, width float64, c color.Color)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y float64, c color.Color)
}

// DrawBitmap paints bm with its top-left corner at (x, y). Each bitmap cell
// becomes a pixel-sized square; '.' and runes missing from keys are skipped.
// When flip is set the bitmap is mirrored horizontally.
func DrawBitmap(dst Surface, bm entity.Bitmap, x, y, pixel float64, keys map[rune]color.RGBA, flip bool) {
	cols, _ := bm.Size()
	for row, line := range bm {
		col := 0
		for _, r := range line {
			c, ok := keys[r]
			if r != '.' && ok {
				cx := col
				if flip {
					cx = cols - 1 - col
				}
				dst.FillRect(x+float64(cx)*pixel, y+float64(row)*pixel, pixel, pixel, c)
			}
			col++
		}
	}
}

// Fade returns c with its opacity scaled by alpha, clamped to [0, 1].
func Fade(c color.RGBA, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * alpha))}
}

// Shade scales the color channels of c by f, keeping its alpha.
func Shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)*f)))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
