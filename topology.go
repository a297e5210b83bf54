package cloth

// build lays out the particle grid in the rest plane and generates every
// structural, shear and bending constraint from grid adjacency. It is the
// only place particles and constraints are created.
func (cloth *Cloth) build() {
	cfg := cloth.config
	sx, sy := cloth.segmentsX, cloth.segmentsY
	cols, rows := sx+1, sy+1

	dx := cloth.width / float64(sx)
	dy := cloth.height / float64(sy)

	cloth.plane = NewPlane(cfg.Origin, cfg.Orientation)
	cloth.particles = make([]*Particle, 0, cols*rows)
	cloth.constraints = make([]*Constraint, 0, 6*cols*rows)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			rest := Planar{float64(x)*dx - cloth.width/2, float64(y) * dy}
			particle := NewParticle(cloth.plane.Point(rest), cfg.Mass)
			particle.index = len(cloth.particles)
			particle.x, particle.y = x, y
			particle.rest = rest
			cloth.particles = append(cloth.particles, particle)
		}
	}

	for _, p := range cloth.particles {
		x, y := p.x, p.y
		if x+1 < cols {
			cloth.link(CONSTRAINT_STRUCTURAL, p, cloth.ParticleAt(x+1, y), cfg.StructuralStiffness)
		}
		if y+1 < rows {
			cloth.link(CONSTRAINT_STRUCTURAL, p, cloth.ParticleAt(x, y+1), cfg.StructuralStiffness)
		}
		if x+1 < cols && y+1 < rows {
			cloth.link(CONSTRAINT_SHEAR, p, cloth.ParticleAt(x+1, y+1), cfg.ShearStiffness)
		}
		if x > 0 && y+1 < rows {
			cloth.link(CONSTRAINT_SHEAR, p, cloth.ParticleAt(x-1, y+1), cfg.ShearStiffness)
		}
		if x+2 < cols {
			cloth.link(CONSTRAINT_BENDING, p, cloth.ParticleAt(x+2, y), cfg.BendingStiffness)
		}
		if y+2 < rows {
			cloth.link(CONSTRAINT_BENDING, p, cloth.ParticleAt(x, y+2), cfg.BendingStiffness)
		}
	}

	cloth.colors = nil
	if cfg.Workers > 1 {
		cloth.colors = colorConstraints(cloth.constraints, len(cloth.particles))
	}
}

func (cloth *Cloth) link(kind ConstraintKind, a, b *Particle, stiffness float64) {
	constraint := NewConstraint(kind, a, b, stiffness)
	constraint.index = len(cloth.constraints)
	cloth.constraints = append(cloth.constraints, constraint)
}

// ParticleAt returns the particle at grid coordinate (x, y), or nil.
func (cloth *Cloth) ParticleAt(x, y int) *Particle {
	if x < 0 || y < 0 || x > cloth.segmentsX || y > cloth.segmentsY {
		return nil
	}
	return cloth.particles[y*(cloth.segmentsX+1)+x]
}

func (cloth *Cloth) onBoundary(p *Particle) bool {
	return p.x == 0 || p.y == 0 || p.x == cloth.segmentsX || p.y == cloth.segmentsY
}

func (cloth *Cloth) eligible(p *Particle) bool {
	if !p.active {
		return false
	}
	switch cloth.config.AnchorEligibility {
	case ELIGIBLE_BOUNDARY:
		return cloth.onBoundary(p)
	default:
		return p.y == 0
	}
}
