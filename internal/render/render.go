package render

import (
	"math"

	"github.com/san-kum/netbg/internal/field"
)

// Params holds link thresholds and stroke widths.
type Params struct {
	LinkDistance    float64
	LinkWidth       float64
	PointerDistance float64
	PointerWidth    float64
}

const (
	DefaultLinkDistance    = 150.0
	DefaultLinkWidth       = 1.0
	DefaultPointerDistance = 200.0
	DefaultPointerWidth    = 1.5
)

func DefaultParams() Params {
	return Params{
		LinkDistance:    DefaultLinkDistance,
		LinkWidth:       DefaultLinkWidth,
		PointerDistance: DefaultPointerDistance,
		PointerWidth:    DefaultPointerWidth,
	}
}

// Stats counts what the last frame painted.
type Stats struct {
	Particles    int
	Links        int
	PointerLinks int
}

// Opacity returns the stroke opacity for a link of length d, and false when
// d is not strictly below max.
func Opacity(d, max float64) (float64, bool) {
	if !(d < max) {
		return 0, false
	}
	return 1 - d/max, true
}

// Render clears the surface and paints one frame: particles, then
// particle-particle links, then pointer links when the pointer is present.
func Render(s Surface, c *field.Context, pal Palette, p Params) Stats {
	st := Stats{Particles: len(c.Particles)}
	s.Clear()

	fill := pal.ParticleFill()
	for _, q := range c.Particles {
		s.FillCircle(q.X, q.Y, q.Radius, fill)
	}

	// self pairs are zero-length strokes and are skipped
	for i := 0; i < len(c.Particles); i++ {
		a := c.Particles[i]
		for j := i + 1; j < len(c.Particles); j++ {
			b := c.Particles[j]
			op, ok := Opacity(math.Hypot(a.X-b.X, a.Y-b.Y), p.LinkDistance)
			if !ok {
				continue
			}
			s.StrokeLine(a.X, a.Y, b.X, b.Y, p.LinkWidth, pal.LinkStroke(op))
			st.Links++
		}
	}

	px, py, ok := c.Pointer.Position()
	if !ok {
		return st
	}
	for _, q := range c.Particles {
		op, ok := Opacity(math.Hypot(px-q.X, py-q.Y), p.PointerDistance)
		if !ok {
			continue
		}
		s.StrokeLine(q.X, q.Y, px, py, p.PointerWidth, pal.PointerStroke(op))
		st.PointerLinks++
	}
	return st
}
