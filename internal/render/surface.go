package render

import "image/color"

// Surface is a 2D drawing target in surface-local units.
type Surface interface {
	Clear()
	FillCircle(x, y, radius float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
}

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpCircle
	OpLine
)

// Op is one recorded draw call. Circles use X0, Y0 and Width as the radius.
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          color.NRGBA
}

// Recorder is a Surface that keeps the draw calls since the last Clear.
type Recorder struct {
	Ops    []Op
	Clears int
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
	r.Clears++
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: x, Y0: y, Width: radius, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

// Replay draws the recorded calls onto another surface.
func (r *Recorder) Replay(s Surface) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpClear:
			s.Clear()
		case OpCircle:
			s.FillCircle(op.X0, op.Y0, op.Width, op.Color)
		case OpLine:
			s.StrokeLine(op.X0, op.Y0, op.X1, op.Y1, op.Width, op.Color)
		}
	}
}

// Count returns how many recorded calls have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
