package cloth

import (
	"log"
	"math"
	"math/rand"
)

// Cloth owns the particle grid, its constraints and the anchors pinning it.
// A Cloth is not safe for concurrent use; the host drives it from one goroutine.
type Cloth struct {
	config Config

	width, height        float64
	segmentsX, segmentsY int
	plane                Plane

	rng     *rand.Rand
	cutSeed int64

	particles   []*Particle
	constraints []*Constraint
	colors      [][]*Constraint

	anchors     []Vector
	homeAnchors []Vector

	running   bool
	time      float64
	stamp     uint
	meshDirty bool

	torn []*Constraint

	// OnTear is called after the relaxation passes of a Step for every
	// constraint that broke under stretch during that Step.
	OnTear ConstraintTearFunc
}

// NewCloth builds a width x height cloth of segmentsX x segmentsY cells.
// A nil rng is seeded from cfg.Seed.
func NewCloth(width, height float64, segmentsX, segmentsY int, cfg Config, rng *rand.Rand) *Cloth {
	if segmentsX < 1 {
		segmentsX = 1
	}
	if segmentsY < 1 {
		segmentsY = 1
	}
	if !(width > 0) || !finite(width) {
		width = 1
	}
	if !(height > 0) || !finite(height) {
		height = 1
	}

	cfg = cfg.sanitize()
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	cloth := &Cloth{
		config:    cfg,
		width:     width,
		height:    height,
		segmentsX: segmentsX,
		segmentsY: segmentsY,
		rng:       rng,
		cutSeed:   rng.Int63(),
	}
	cloth.Reset()
	return cloth
}

// Reset rebuilds every particle and constraint from scratch and restores the
// anchors last given to SetAnchors.
func (cloth *Cloth) Reset() {
	cloth.build()
	cloth.anchors = append([]Vector(nil), cloth.homeAnchors...)
	cloth.running = cloth.config.StartMode == START_IMMEDIATE
	cloth.time = 0
	cloth.stamp = 0
	cloth.torn = nil
	cloth.meshDirty = true
	cloth.resolveAnchors()
}

func (cloth *Cloth) Config() Config {
	return cloth.config
}

func (cloth *Cloth) SegmentsX() int {
	return cloth.segmentsX
}

func (cloth *Cloth) SegmentsY() int {
	return cloth.segmentsY
}

func (cloth *Cloth) Width() float64 {
	return cloth.width
}

func (cloth *Cloth) Height() float64 {
	return cloth.height
}

func (cloth *Cloth) Plane() Plane {
	return cloth.plane
}

func (cloth *Cloth) Time() float64 {
	return cloth.time
}

// Stamp counts completed steps since the last Reset.
func (cloth *Cloth) Stamp() uint {
	return cloth.stamp
}

func (cloth *Cloth) Running() bool {
	return cloth.running
}

func (cloth *Cloth) Particle(i int) *Particle {
	if i < 0 || i >= len(cloth.particles) {
		return nil
	}
	return cloth.particles[i]
}

// Particles returns the particle list. The slice must not be modified.
func (cloth *Cloth) Particles() []*Particle {
	return cloth.particles
}

// Constraints returns the constraint list. The slice must not be modified.
func (cloth *Cloth) Constraints() []*Constraint {
	return cloth.constraints
}

// Step advances the simulation by dt seconds: anchors are resolved, forces
// applied, particles integrated, then the constraints relaxed. dt is clamped
// to Config.MaxTimeStep; a non-positive or non-finite dt does nothing.
func (cloth *Cloth) Step(dt float64) {
	if !(dt > 0) || !finite(dt) {
		return
	}
	dt = math.Min(dt, cloth.config.MaxTimeStep)

	cloth.stamp++
	cloth.resolveAnchors()

	if cloth.running {
		cloth.time += dt
		cloth.applyForces(cloth.time)

		damping := cloth.config.Damping
		recovered := 0
		for _, p := range cloth.particles {
			if !p.active {
				continue
			}
			p.integrate(dt, damping)
			if p.recover(cloth.plane.Point(p.rest)) {
				recovered++
			}
		}
		if recovered > 0 {
			log.Printf("cloth: recovered %d particles with non-finite positions at step %d", recovered, cloth.stamp)
		}
	}

	cloth.relax(cloth.config.Iterations)
	cloth.flushTorn()
}
