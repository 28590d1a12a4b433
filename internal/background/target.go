package background

import "github.com/san-kum/netbg/internal/render"

// Target is a host-provided drawing destination.
type Target interface {
	// Size returns the current surface dimensions.
	Size() (width, height float64)
	// Acquire returns the surface to draw on.
	Acquire() (render.Surface, error)
}

// StaticTarget wraps an already-created surface of fixed size. Err, when
// set, is returned by Acquire.
type StaticTarget struct {
	Width, Height float64
	Surface       render.Surface
	Err           error
}

func (t *StaticTarget) Size() (float64, float64) { return t.Width, t.Height }

func (t *StaticTarget) Acquire() (render.Surface, error) {
	if t.Err != nil {
		return nil, t.Err
	}
	return t.Surface, nil
}
