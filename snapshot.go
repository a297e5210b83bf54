package cloth

// Snapshot is a copy of the per-particle state a renderer needs. Buffers are
// reused between calls to Cloth.Snapshot when they are large enough.
type Snapshot struct {
	SegmentsX, SegmentsY int

	Positions  []Vector
	Active     []bool
	Pinned     []bool
	CutFactors []float64

	// MeshDirty is set when topology changed since the last ClearMeshDirty.
	MeshDirty bool
}

// Snapshot copies the current particle state into dst, allocating it when nil.
func (cloth *Cloth) Snapshot(dst *Snapshot) *Snapshot {
	if dst == nil {
		dst = &Snapshot{}
	}
	n := len(cloth.particles)
	dst.SegmentsX = cloth.segmentsX
	dst.SegmentsY = cloth.segmentsY
	dst.Positions = resize(dst.Positions, n)
	dst.Active = resize(dst.Active, n)
	dst.Pinned = resize(dst.Pinned, n)
	dst.CutFactors = resize(dst.CutFactors, n)
	dst.MeshDirty = cloth.meshDirty

	for i, p := range cloth.particles {
		dst.Positions[i] = p.p
		dst.Active[i] = p.active
		dst.Pinned[i] = p.pinned
		dst.CutFactors[i] = p.cutFactor
	}
	return dst
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

// MeshDirty reports whether a cut, tear or reset changed the topology since
// the last ClearMeshDirty. Position updates never set it.
func (cloth *Cloth) MeshDirty() bool {
	return cloth.meshDirty
}

func (cloth *Cloth) ClearMeshDirty() {
	cloth.meshDirty = false
}

// Triangles appends the index triples of every grid cell triangle whose three
// particles are active and whose three edges are intact.
func (cloth *Cloth) Triangles(dst []uint32) []uint32 {
	dst = dst[:0]
	edges := cloth.intactEdges()

	cols := cloth.segmentsX + 1
	for y := 0; y < cloth.segmentsY; y++ {
		for x := 0; x < cloth.segmentsX; x++ {
			a := uint32(y*cols + x)
			b := a + 1
			c := a + uint32(cols)
			d := c + 1

			if edges.has(a, b) && edges.has(a, d) && edges.has(b, d) {
				dst = append(dst, a, d, b)
			}
			if edges.has(a, c) && edges.has(c, d) && edges.has(a, d) {
				dst = append(dst, a, c, d)
			}
		}
	}
	return dst
}

type edgeSet map[[2]uint32]struct{}

func (set edgeSet) has(a, b uint32) bool {
	if a > b {
		a, b = b, a
	}
	_, ok := set[[2]uint32{a, b}]
	return ok
}

func (cloth *Cloth) intactEdges() edgeSet {
	set := edgeSet{}
	for _, c := range cloth.constraints {
		if c.kind == CONSTRAINT_BENDING || !c.active || !c.a.active || !c.b.active {
			continue
		}
		a, b := uint32(c.a.index), uint32(c.b.index)
		if a > b {
			a, b = b, a
		}
		set[[2]uint32{a, b}] = struct{}{}
	}
	return set
}

type Stats struct {
	Particles, ActiveParticles     int
	Constraints, ActiveConstraints int
	Broken, Pinned                 int
}

func (cloth *Cloth) Stats() Stats {
	stats := Stats{
		Particles:   len(cloth.particles),
		Constraints: len(cloth.constraints),
	}
	for _, p := range cloth.particles {
		if p.active {
			stats.ActiveParticles++
		}
		if p.pinned {
			stats.Pinned++
		}
	}
	for _, c := range cloth.constraints {
		if c.active {
			stats.ActiveConstraints++
		}
		if c.broken {
			stats.Broken++
		}
	}
	return stats
}
