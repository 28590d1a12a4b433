package field

// Step advances every particle by one frame. A coordinate that ends up
// outside [0, size] keeps its value and has its velocity component negated,
// so the particle drifts back on the next step.
func Step(c *Context) {
	for i := range c.Particles {
		p := &c.Particles[i]
		p.X += p.VX
		p.Y += p.VY

		if p.X < 0 || p.X > c.Width {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > c.Height {
			p.VY = -p.VY
		}
	}
}
