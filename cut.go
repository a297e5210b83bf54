package cloth

import (
	"math"
	"math/rand"
)

// Cut geometry, as multiples of the cut radius.
const (
	CUT_INNER_RADIUS    = 0.7
	CUT_JITTER_MIN      = 0.7
	CUT_JITTER_MAX      = 1.3
	CUT_SHELL_RADIUS    = 1.5
	STROKE_SHELL_RADIUS = 1.6
)

// CutAt removes the cloth inside an irregular disc around center. Distances
// are measured in the cloth's rest plane, so depth is ignored. Particles in
// the shell around the hole stay attached but are damaged, softening their
// constraints. It reports whether anything changed.
//
// The jittered outline depends only on the cloth's seed and the arguments,
// so repeating a cut removes nothing more.
func (cloth *Cloth) CutAt(center Vector, radius float64) bool {
	if !(radius > 0) || !finite(radius) || !Finite(center) {
		return false
	}
	rng := cloth.cutRand(center[0], center[1], center[2], radius)
	c := cloth.plane.Project(center)

	outline := make([]float64, cloth.config.CutRays)
	for i := range outline {
		outline[i] = radius * Lerp(CUT_JITTER_MIN, CUT_JITTER_MAX, rng.Float64())
	}

	inner := radius * CUT_INNER_RADIUS
	outer := radius * CUT_SHELL_RADIUS
	shell := outer - radius
	bb := NewBBForCircle(c, radius*math.Max(CUT_JITTER_MAX, CUT_SHELL_RADIUS))

	changed := false
	for _, p := range cloth.particles {
		if !p.active {
			continue
		}
		q := cloth.plane.Project(p.p)
		if !bb.ContainsVect(q) {
			continue
		}
		offset := q.Sub(c)
		d := offset.Len()

		if d <= inner || d < outlineRadius(outline, offset) {
			changed = p.deactivate() || changed
			continue
		}
		if d > outer {
			continue
		}
		if p.damage((d - radius) / shell) {
			changed = true
			cloth.roughen(p, offset.Mul(1/d), radius, rng)
		}
	}

	return cloth.finishCut(changed)
}

// CutAlong removes a capsule of cloth around the stroke start-end. A stroke
// with no extent in the rest plane is ignored.
func (cloth *Cloth) CutAlong(start, end Vector, radius float64) bool {
	if !(radius > 0) || !finite(radius) || !Finite(start) || !Finite(end) {
		return false
	}
	s := cloth.plane.Project(start)
	e := cloth.plane.Project(end)
	if e.Sub(s).LenSqr() == 0 {
		return false
	}

	outer := radius * STROKE_SHELL_RADIUS
	shell := outer - radius
	bb := NewBBForCapsule(s, e, outer)

	changed := false
	for _, p := range cloth.particles {
		if !p.active {
			continue
		}
		q := cloth.plane.Project(p.p)
		if !bb.ContainsVect(q) {
			continue
		}
		d := SegmentDistance(q, s, e)
		if d <= radius {
			changed = p.deactivate() || changed
		} else if d <= outer {
			changed = p.damage((d-radius)/shell) || changed
		}
	}

	// Edges are measured against the stroke's two endpoints, not the whole stroke.
	strokeBB := NewBBForCapsule(s, e, radius)
	for _, c := range cloth.constraints {
		if !c.active || !c.a.active || !c.b.active {
			continue
		}
		qa := cloth.plane.Project(c.a.p)
		qb := cloth.plane.Project(c.b.p)
		if !strokeBB.Intersects(NewBBForCapsule(qa, qb, 0)) {
			continue
		}
		d := math.Min(SegmentDistance(s, qa, qb), SegmentDistance(e, qa, qb))
		if d <= radius {
			changed = c.deactivate() || changed
		}
	}

	return cloth.finishCut(changed)
}

// finishCut drops constraints that lost an endpoint and recomputes every
// remaining stiffness from its base value, which keeps overlapping cuts
// independent of the order they were applied in.
func (cloth *Cloth) finishCut(changed bool) bool {
	minFactor := cloth.config.MinStiffnessFactor
	for _, c := range cloth.constraints {
		if !c.active {
			continue
		}
		if !c.a.active || !c.b.active {
			c.deactivate()
			changed = true
			continue
		}
		c.soften(minFactor)
	}
	if changed {
		cloth.meshDirty = true
	}
	return changed
}

// roughen pushes a freshly damaged particle outward from the cut by a random
// fraction of the edge roughness. Pushing outward only means a repeated cut
// never finds it inside the hole.
func (cloth *Cloth) roughen(p *Particle, dir Planar, radius float64, rng *rand.Rand) {
	if p.pinned || cloth.config.EdgeRoughness == 0 {
		return
	}
	amount := rng.Float64() * cloth.config.EdgeRoughness * radius
	d := cloth.plane.U.Mul(dir[0] * amount).Add(cloth.plane.V.Mul(dir[1] * amount))
	p.displace(d)
}

// outlineRadius interpolates the jittered outline at the direction of offset.
func outlineRadius(outline []float64, offset Planar) float64 {
	n := len(outline)
	angle := math.Atan2(offset[1], offset[0])
	if angle < 0 {
		angle += 2 * math.Pi
	}
	pos := angle / (2 * math.Pi) * float64(n)
	i := int(pos) % n
	return Lerp(outline[i], outline[(i+1)%n], pos-math.Floor(pos))
}

// cutRand derives a generator from the cloth's cut seed and the cut arguments.
func (cloth *Cloth) cutRand(args ...float64) *rand.Rand {
	h := uint64(cloth.cutSeed)
	for _, v := range args {
		h ^= math.Float64bits(v)
		h *= 1099511628211
	}
	return rand.New(rand.NewSource(int64(h)))
}
