package canvas

import "image/color"

// OpKind identifies a recorded draw call
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	}
	return "unknown"
}

// Op is one recorded draw call. For circles X, Y is the centre and W holds
// the radius.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Color color.Color
}

// Recorder is a Surface that keeps a log of draw calls instead of
// rasterising them. It backs headless runs and tests.
type Recorder struct {
	width, height float64
	ops           []Op
	clears        int
}

// NewRecorder creates a recording surface of the given logical size
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Width() float64  { return r.width }
func (r *Recorder) Height() float64 { return r.height }

// Clear drops everything drawn so far and records the clear itself.
func (r *Recorder) Clear() {
	r.clears++
	r.ops = append(r.ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillRect(x, y, width, height float64, clr color.Color) {
	r.ops = append(r.ops, Op{Kind: OpRect, X: x, Y: y, W: width, H: height, Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X: cx, Y: cy, W: radius, Color: clr})
}

// Ops returns the draw calls issued since the last Clear, starting with the
// clear op if there was one.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Clears reports how many times Clear has been called.
func (r *Recorder) Clears() int {
	return r.clears
}

// Count returns how many recorded ops since the last Clear are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
