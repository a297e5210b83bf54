package cloth

import "math"

type ConstraintKind int

const (
	// direct grid neighbour
	CONSTRAINT_STRUCTURAL ConstraintKind = iota
	// diagonal neighbour
	CONSTRAINT_SHEAR
	// neighbour two steps away, resists folding
	CONSTRAINT_BENDING
)

func (k ConstraintKind) String() string {
	switch k {
	case CONSTRAINT_STRUCTURAL:
		return "structural"
	case CONSTRAINT_SHEAR:
		return "shear"
	case CONSTRAINT_BENDING:
		return "bending"
	}
	return "unknown"
}

type ConstraintTearFunc func(*Constraint)

type Constraint struct {
	index int
	kind  ConstraintKind

	a, b *Particle

	restLength    float64
	stiffness     float64
	baseStiffness float64

	active bool
	broken bool
}

// NewConstraint links a and b at their current separation.
func NewConstraint(kind ConstraintKind, a, b *Particle, stiffness float64) *Constraint {
	assert(a != b, "Constraint endpoints must differ")
	return &Constraint{
		kind:          kind,
		a:             a,
		b:             b,
		restLength:    b.p.Sub(a.p).Len(),
		stiffness:     stiffness,
		baseStiffness: stiffness,
		active:        true,
	}
}

func (c *Constraint) Index() int {
	return c.index
}

func (c *Constraint) Kind() ConstraintKind {
	return c.kind
}

func (c *Constraint) A() *Particle {
	return c.a
}

func (c *Constraint) B() *Particle {
	return c.b
}

func (c *Constraint) RestLength() float64 {
	return c.restLength
}

func (c *Constraint) Stiffness() float64 {
	return c.stiffness
}

func (c *Constraint) BaseStiffness() float64 {
	return c.baseStiffness
}

func (c *Constraint) Active() bool {
	return c.active
}

// Broken is true only for constraints torn by stretching.
func (c *Constraint) Broken() bool {
	return c.broken
}

func (c *Constraint) Length() float64 {
	return c.b.p.Sub(c.a.p).Len()
}

func (c *Constraint) deactivate() bool {
	if !c.active {
		return false
	}
	c.active = false
	return true
}

// soften recomputes stiffness from the base value and the endpoints' damage.
func (c *Constraint) soften(minFactor float64) {
	damage := math.Min(c.a.cutFactor, c.b.cutFactor)
	if damage >= 1 {
		c.stiffness = c.baseStiffness
		return
	}
	c.stiffness = c.baseStiffness * math.Max(minFactor, damage)
}

// solve runs the tear check then one relaxation of the constraint.
// It reports whether the constraint tore.
func (c *Constraint) solve(relaxation, tearFactor float64) bool {
	if !c.active {
		return false
	}
	a, b := c.a, c.b
	if !a.active || !b.active {
		return false
	}

	delta := b.p.Sub(a.p)
	dist := delta.Len()

	if tearFactor > 0 && dist > c.restLength*tearFactor {
		c.active = false
		c.broken = true
		return true
	}

	c.satisfy(delta, dist, relaxation)
	return false
}

// satisfy moves both endpoints along delta toward the rest length,
// split by their share of the combined inverse mass.
func (c *Constraint) satisfy(delta Vector, dist, relaxation float64) {
	if dist == 0 {
		return
	}
	wa := c.a.InverseMass()
	wb := c.b.InverseMass()
	w := wa + wb
	if w == 0 {
		return
	}

	diff := (dist - c.restLength) / dist * relaxation * c.stiffness
	correction := delta.Mul(diff)

	if wa > 0 {
		c.a.p = c.a.p.Add(correction.Mul(wa / w))
	}
	if wb > 0 {
		c.b.p = c.b.p.Sub(correction.Mul(wb / w))
	}
}
