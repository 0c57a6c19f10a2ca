// Package termrender implements render.Surface on a tcell screen.
//
// The logical canvas is sampled into a framebuffer of half-block pixels:
// each terminal cell shows two vertically stacked pixels using the upper
// half block glyph, foreground for the top and background for the bottom.
package termrender

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const upperHalf = '▀'

type glyph struct {
	r  rune
	fg color.NRGBA
}

// Surface accumulates one frame and flushes it to a tcell screen.
type Surface struct {
	logicalW, logicalH int
	cols, rows         int
	pixels             []color.NRGBA // cols × rows*2
	glyphs             map[int]glyph // keyed by cell index
}

// New creates a surface mapping a logicalW×logicalH canvas onto cols×rows cells.
func New(logicalW, logicalH, cols, rows int) *Surface {
	s := &Surface{logicalW: logicalW, logicalH: logicalH}
	s.Resize(cols, rows)
	return s
}

// Resize changes the cell grid and clears the frame.
func (s *Surface) Resize(cols, rows int) {
	s.cols = max(cols, 1)
	s.rows = max(rows, 1)
	s.pixels = make([]color.NRGBA, s.cols*s.rows*2)
	s.glyphs = make(map[int]glyph)
}

// Cells returns the cell grid size.
func (s *Surface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

// ToLogical maps a cell position to the logical coordinate at its centre.
func (s *Surface) ToLogical(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * float64(s.logicalW) / float64(s.cols)
	y := (float64(row) + 0.5) * float64(s.logicalH) / float64(s.rows)
	return x, y
}

func (s *Surface) Size() (int, int) { return s.logicalW, s.logicalH }

func (s *Surface) scale() (float64, float64) {
	return float64(s.cols) / float64(s.logicalW), float64(s.rows*2) / float64(s.logicalH)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	sx, sy := s.scale()
	x0 := clampInt(int(math.Floor(x*sx)), 0, s.cols)
	x1 := clampInt(int(math.Ceil((x+w)*sx)), 0, s.cols)
	y0 := clampInt(int(math.Floor(y*sy)), 0, s.rows*2)
	y1 := clampInt(int(math.Ceil((y+h)*sy)), 0, s.rows*2)

	src := color.NRGBAModel.Convert(c).(color.NRGBA)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			i := py*s.cols + px
			s.pixels[i] = blend(s.pixels[i], src)
		}
	}
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	s.FillRect(x, y, w, width, c)
	s.FillRect(x, y+h-width, w, width, c)
	s.FillRect(x, y+width, width, h-2*width, c)
	s.FillRect(x+w-width, y+width, width, h-2*width, c)
}

func (s *Surface) Text(str string, x, y float64, c color.Color) {
	sx, sy := s.scale()
	col := int(math.Round(x * sx))
	row := int(math.Round(y * sy / 2))
	if row < 0 || row >= s.rows {
		return
	}
	fg := color.NRGBAModel.Convert(c).(color.NRGBA)
	for _, r := range str {
		if col >= 0 && col < s.cols {
			s.glyphs[row*s.cols+col] = glyph{r: r, fg: fg}
		}
		col++
	}
}

// Pixel returns the composited color of a framebuffer pixel.
func (s *Surface) Pixel(px, py int) color.NRGBA {
	if px < 0 || px >= s.cols || py < 0 || py >= s.rows*2 {
		return color.NRGBA{}
	}
	return s.pixels[py*s.cols+px]
}

// Flush writes the frame to screen and clears it for the next one.
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.pixels[(row*2)*s.cols+col]
			bottom := s.pixels[(row*2+1)*s.cols+col]
			if g, ok := s.glyphs[row*s.cols+col]; ok {
				style := tcell.StyleDefault.Foreground(toTcell(g.fg)).Background(toTcell(bottom))
				screen.SetContent(col, row, g.r, nil, style)
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	screen.Show()

	clear(s.pixels)
	clear(s.glyphs)
}

// blend composites src over an opaque-or-empty dst.
func blend(dst, src color.NRGBA) color.NRGBA {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	return color.NRGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: max(dst.A, src.A),
	}
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
