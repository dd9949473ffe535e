package backdrop

// Integrate advances every particle by dt and reflects velocity at the
// surface bounds, one axis at a time. Positions are clamped after the flip,
// so they never leave [0,width]x[0,height] even under the largest clamped dt.
// This is reflection, not a physical bounce: no energy loss, no
// inter-particle collision.
func Integrate(ps []Particle, dt, width, height float64) {
	for i := range ps {
		p := &ps[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if p.X <= 0 || p.X >= width {
			p.VX = -p.VX
		}
		if p.Y <= 0 || p.Y >= height {
			p.VY = -p.VY
		}
		p.X = clamp(p.X, 0, width)
		p.Y = clamp(p.Y, 0, height)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
