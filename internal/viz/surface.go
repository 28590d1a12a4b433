package viz

import (
	"errors"
	"image/color"
	"math"

	"github.com/san-kum/netbg/internal/render"
)

var errNoSize = errors.New("viz: terminal size not known yet")

// Surface draws onto a braille Canvas. One dot covers Scale surface units
// on each axis, so the particle field keeps its density on small
// terminals.
type Surface struct {
	Canvas *Canvas
	Scale  float64
}

func NewSurface(c *Canvas, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	return &Surface{Canvas: c, Scale: scale}
}

func (s *Surface) dot(v float64) int { return int(math.Floor(v / s.Scale)) }

func (s *Surface) Clear() { s.Canvas.Clear() }

func (s *Surface) FillCircle(x, y, radius float64, c color.NRGBA) {
	s.Canvas.FillDisc(s.dot(x), s.dot(y), int(radius/s.Scale), c)
}

// StrokeLine ignores width; a braille dot is the thinnest and thickest
// stroke the terminal has.
func (s *Surface) StrokeLine(x0, y0, x1, y1, _ float64, c color.NRGBA) {
	s.Canvas.DrawLine(s.dot(x0), s.dot(y0), s.dot(x1), s.dot(y1), c)
}

// Size returns the surface dimensions in surface units.
func (s *Surface) Size() (float64, float64) {
	w, h := s.Canvas.Dots()
	return float64(w) * s.Scale, float64(h) * s.Scale
}

// Acquire fails until the canvas has a size.
func (s *Surface) Acquire() (render.Surface, error) {
	if s.Canvas.Width == 0 || s.Canvas.Height == 0 {
		return nil, errNoSize
	}
	return s, nil
}

// CellCenter maps a terminal cell to surface units.
func (s *Surface) CellCenter(col, row int) (float64, float64) {
	return (float64(col)*2 + 1) * s.Scale, (float64(row)*4 + 2) * s.Scale
}
