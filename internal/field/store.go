package field

import (
	"math"
	"math/rand"
)

// Count returns the particle count for a surface: one particle per
// AreaPerParticle square units, capped at MaxParticles.
func Count(width, height float64, p Params) int {
	if width <= 0 || height <= 0 || p.AreaPerParticle <= 0 {
		return 0
	}
	n := int(math.Floor(width * height / p.AreaPerParticle))
	if n > p.MaxParticles {
		n = p.MaxParticles
	}
	return n
}

// Initialize builds a fresh store for a width x height surface. Positions
// are uniform over the surface, velocity components uniform in
// [-MaxSpeed, MaxSpeed] and radii uniform in [MinRadius, MaxRadius].
func Initialize(rng *rand.Rand, width, height float64, p Params) []Particle {
	n := Count(width, height, p)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			X:      rng.Float64() * width,
			Y:      rng.Float64() * height,
			VX:     (rng.Float64()*2 - 1) * p.MaxSpeed,
			VY:     (rng.Float64()*2 - 1) * p.MaxSpeed,
			Radius: p.MinRadius + rng.Float64()*(p.MaxRadius-p.MinRadius),
		}
	}
	return particles
}

// Reset replaces the store for the context's current dimensions.
func (c *Context) Reset(rng *rand.Rand, p Params) {
	c.Particles = Initialize(rng, c.Width, c.Height, p)
}
