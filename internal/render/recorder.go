package render

import "image/color"

// OpKind identifies a recorded draw call
type OpKind int

const (
	OpFill OpKind = iota
	OpStroke
	OpText
)

// Op is one recorded draw call
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	Width      float64
	Color      color.Color
	Text       string
}

// Recorder is a Surface that keeps every draw call in order.
// It backs renderer tests that have no graphics context.
type Recorder struct {
	w, h int
	ops  []Op
}

// NewRecorder creates a recorder with the given logical size
func NewRecorder(w, h int) *Recorder {
	return &Recorder{w: w, h: h}
}

func (r *Recorder) Size() (int, int) { return r.w, r.h }

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFill, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpStroke, X: x, Y: y, W: w, H: h, Width: width, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpText, X: x, Y: y, Color: c, Text: s})
}

// Ops returns the recorded calls
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns how many calls of the given kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the recorded text strings in draw order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Last returns the most recent call and false when nothing was recorded
func (r *Recorder) Last() (Op, bool) {
	if len(r.ops) == 0 {
		return Op{}, false
	}
	return r.ops[len(r.ops)-1], true
}

// Reset discards the recorded calls
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
