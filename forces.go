package cloth

import "math"

var gravityAxis = Vector{0, -1, 0}

// applyForces accumulates gravity and wind on every free, active particle.
func (cloth *Cloth) applyForces(t float64) {
	cfg := cloth.config
	normal := cloth.plane.Normal()

	for _, p := range cloth.particles {
		if !p.active || p.pinned {
			continue
		}
		p.ApplyForce(gravityAxis.Mul(cfg.Gravity * p.m))

		if cfg.WindForce != 0 {
			p.ApplyForce(normal.Mul(cloth.wind(t, p.x)))
		}
	}
}

// wind is the lateral wind strength felt by grid column x at time t. The
// per-column phase makes the cloth ripple instead of swinging as one sheet.
func (cloth *Cloth) wind(t float64, x int) float64 {
	cfg := cloth.config
	phase := float64(x) / float64(cloth.segmentsX) * math.Pi
	return cfg.WindForce * (0.5 + 0.5*math.Sin(t*cfg.WindFrequency+phase))
}
