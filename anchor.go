package cloth

// Anchors are points in space that pin the nearest eligible particle within
// Config.SnapDistance. Pins are recomputed from the anchors every Step, so a
// moved anchor drags its particle and a removed one releases it.

// SetAnchors replaces every anchor. The set is also remembered as the home
// anchors that Reset restores.
func (cloth *Cloth) SetAnchors(points []Vector) {
	cloth.anchors = cloth.anchors[:0]
	for _, p := range points {
		if Finite(p) {
			cloth.anchors = append(cloth.anchors, p)
		}
	}
	cloth.homeAnchors = append([]Vector(nil), cloth.anchors...)
	cloth.resolveAnchors()
}

// AddAnchor returns the index of the new anchor or -1 if pos is not finite.
func (cloth *Cloth) AddAnchor(pos Vector) int {
	if !Finite(pos) {
		return -1
	}
	cloth.anchors = append(cloth.anchors, pos)
	cloth.resolveAnchors()
	return len(cloth.anchors) - 1
}

func (cloth *Cloth) MoveAnchor(i int, pos Vector) bool {
	if i < 0 || i >= len(cloth.anchors) || !Finite(pos) {
		return false
	}
	cloth.anchors[i] = pos
	cloth.resolveAnchors()
	return true
}

func (cloth *Cloth) RemoveAnchor(i int) bool {
	if i < 0 || i >= len(cloth.anchors) {
		return false
	}
	cloth.anchors = append(cloth.anchors[:i], cloth.anchors[i+1:]...)
	cloth.resolveAnchors()
	return true
}

func (cloth *Cloth) Anchors() []Vector {
	return append([]Vector(nil), cloth.anchors...)
}

func (cloth *Cloth) NumAnchors() int {
	return len(cloth.anchors)
}

// AnchorFor returns the particle anchor i currently pins.
func (cloth *Cloth) AnchorFor(i int) (*Particle, bool) {
	if i < 0 || i >= len(cloth.anchors) {
		return nil, false
	}
	p := cloth.nearestEligible(cloth.anchors[i])
	return p, p != nil
}

// TogglePin releases the anchor holding particle i, or anchors the particle
// where it is now. Ineligible particles are refused.
func (cloth *Cloth) TogglePin(i int) bool {
	p := cloth.Particle(i)
	if p == nil || !cloth.eligible(p) {
		return false
	}
	for k, anchor := range cloth.anchors {
		if cloth.nearestEligible(anchor) == p {
			return cloth.RemoveAnchor(k)
		}
	}
	return cloth.AddAnchor(p.p) >= 0
}

// TopCornerAnchors are the rest positions of the two top-row corners.
func (cloth *Cloth) TopCornerAnchors() []Vector {
	left := cloth.ParticleAt(0, 0)
	right := cloth.ParticleAt(cloth.segmentsX, 0)
	return []Vector{cloth.plane.Point(left.rest), cloth.plane.Point(right.rest)}
}

// resolveAnchors clears every pin then pins, for each anchor, the nearest
// eligible particle within snapping distance.
func (cloth *Cloth) resolveAnchors() {
	for _, p := range cloth.particles {
		p.Unpin()
	}
	for _, anchor := range cloth.anchors {
		if p := cloth.nearestEligible(anchor); p != nil {
			p.Pin(anchor)
		}
	}
}

func (cloth *Cloth) nearestEligible(anchor Vector) *Particle {
	var nearest *Particle
	snap := cloth.config.SnapDistance * cloth.config.SnapDistance
	best := 0.0

	for _, p := range cloth.eligibleParticles() {
		if !cloth.eligible(p) {
			continue
		}
		d := p.p.Sub(anchor).LenSqr()
		if d <= snap && (nearest == nil || d < best) {
			nearest = p
			best = d
		}
	}
	return nearest
}

func (cloth *Cloth) eligibleParticles() []*Particle {
	if cloth.config.AnchorEligibility == ELIGIBLE_TOP_ROW {
		return cloth.particles[:cloth.segmentsX+1]
	}
	return cloth.particles
}
