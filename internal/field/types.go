package field

// Particle is a simulated point. X and Y are surface-local, VX and VY are
// units per frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Params controls store density and spawn ranges.
type Params struct {
	AreaPerParticle float64
	MaxParticles    int
	MaxSpeed        float64
	MinRadius       float64
	MaxRadius       float64
}

const (
	DefaultAreaPerParticle = 15000.0
	DefaultMaxParticles    = 100
	DefaultMaxSpeed        = 0.25
	DefaultMinRadius       = 1.0
	DefaultMaxRadius       = 3.0
)

func DefaultParams() Params {
	return Params{
		AreaPerParticle: DefaultAreaPerParticle,
		MaxParticles:    DefaultMaxParticles,
		MaxSpeed:        DefaultMaxSpeed,
		MinRadius:       DefaultMinRadius,
		MaxRadius:       DefaultMaxRadius,
	}
}

// Context is the mutable simulation state shared by the simulator and the
// renderer. It is owned by a single caller and passed by pointer.
type Context struct {
	Particles     []Particle
	Width, Height float64
	Pointer       Pointer
	Dark          bool
}

// Clone returns a deep copy safe to hand to another goroutine.
func (c *Context) Clone() Context {
	out := *c
	out.Particles = make([]Particle, len(c.Particles))
	copy(out.Particles, c.Particles)
	return out
}
