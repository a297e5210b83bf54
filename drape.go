package cloth

import "sort"

// StartSimulation releases a draped cloth: the columns between neighbouring
// top-row anchors are pre-shaped into a parabolic sag, the constraints are
// relaxed around the pins and integration is switched on. It refuses, leaving
// the cloth untouched, when no anchor holds a particle.
func (cloth *Cloth) StartSimulation() bool {
	if len(cloth.anchors) == 0 {
		return false
	}
	cloth.resolveAnchors()

	var pinned []*Particle
	for _, p := range cloth.particles {
		if p.pinned {
			pinned = append(pinned, p)
		}
	}
	if len(pinned) == 0 {
		return false
	}
	if cloth.running {
		return true
	}

	cloth.preSag(pinned)
	cloth.relax(cloth.config.PreRelaxPasses)
	cloth.flushTorn()

	for _, p := range cloth.particles {
		p.prev = p.p
		p.accel = Vector{}
	}
	cloth.running = true
	return true
}

// preSag lowers the free columns between each pair of neighbouring top-row
// pins by a parabola whose depth is SagRatio times the distance between them.
func (cloth *Cloth) preSag(pinned []*Particle) {
	var top []*Particle
	for _, p := range pinned {
		if p.y == 0 {
			top = append(top, p)
		}
	}
	sort.Slice(top, func(i, j int) bool {
		return top[i].x < top[j].x
	})

	for i := 0; i+1 < len(top); i++ {
		a, b := top[i], top[i+1]
		cols := b.x - a.x
		if cols < 2 {
			continue
		}
		depth := cloth.config.SagRatio * b.p.Sub(a.p).Len()

		for x := a.x + 1; x < b.x; x++ {
			t := float64(x-a.x) / float64(cols)
			offset := gravityAxis.Mul(4 * t * (1 - t) * depth)
			for y := 0; y <= cloth.segmentsY; y++ {
				p := cloth.ParticleAt(x, y)
				if p.active && !p.pinned {
					p.displace(offset)
				}
			}
		}
	}
}
