package field

// Pointer is either present at a surface-local position or absent. The
// zero value is absent.
type Pointer struct {
	x, y    float64
	present bool
}

// PointerAt returns a present pointer at (x, y).
func PointerAt(x, y float64) Pointer {
	return Pointer{x: x, y: y, present: true}
}

// NoPointer returns the absent pointer.
func NoPointer() Pointer { return Pointer{} }

// Position reports the pointer coordinates and whether it is present.
func (p Pointer) Position() (x, y float64, ok bool) {
	return p.x, p.y, p.present
}

func (p Pointer) Present() bool { return p.present }
