package background

import "errors"

// Lifecycle errors.
var (
	// ErrSurfaceUnavailable indicates the target could not provide a
	// drawing surface. Attach does no further setup when it is returned.
	ErrSurfaceUnavailable = errors.New("background: surface unavailable")

	// ErrNotAttached indicates an operation that needs a running engine.
	ErrNotAttached = errors.New("background: not attached")
)
