package cloth

import "fmt"

type Particle struct {
	index int
	x, y  int

	// position, previous position, accumulated acceleration
	p     Vector
	prev  Vector
	accel Vector

	// mass and it's inverse
	m     float64
	m_inv float64

	pinned bool
	pin    Vector

	active    bool
	cutFactor float64

	// rest-plane coordinate at build time
	rest Planar
}

func NewParticle(position Vector, mass float64) *Particle {
	particle := &Particle{
		p:         position,
		prev:      position,
		active:    true,
		cutFactor: 1,
	}
	particle.SetMass(mass)
	return particle
}

func (p Particle) String() string {
	return fmt.Sprintf("Particle %d (%d,%d)", p.index, p.x, p.y)
}

func (p *Particle) Index() int {
	return p.index
}

func (p *Particle) GridX() int {
	return p.x
}

func (p *Particle) GridY() int {
	return p.y
}

func (p *Particle) Position() Vector {
	return p.p
}

func (p *Particle) PreviousPosition() Vector {
	return p.prev
}

// Velocity is the implicit per-step displacement.
func (p *Particle) Velocity() Vector {
	return p.p.Sub(p.prev)
}

func (p *Particle) Mass() float64 {
	return p.m
}

func (p *Particle) SetMass(mass float64) {
	p.m = mass
	if mass > 0 {
		p.m_inv = 1 / mass
	} else {
		p.m_inv = 0
	}
}

// InverseMass is zero for pinned particles.
func (p *Particle) InverseMass() float64 {
	if p.pinned {
		return 0
	}
	return p.m_inv
}

func (p *Particle) Pinned() bool {
	return p.pinned
}

func (p *Particle) PinPosition() Vector {
	return p.pin
}

func (p *Particle) Active() bool {
	return p.active
}

func (p *Particle) CutFactor() float64 {
	return p.cutFactor
}

// ApplyForce accumulates f into the particle's acceleration for this step.
func (p *Particle) ApplyForce(f Vector) {
	p.accel = p.accel.Add(f.Mul(p.m_inv))
}

// Pin fixes the particle at pos, removing any integration lag.
func (p *Particle) Pin(pos Vector) {
	p.pinned = true
	p.pin = pos
	p.p = pos
	p.prev = pos
}

func (p *Particle) Unpin() {
	p.pinned = false
}

// damage lowers the cut factor, never raising it.
func (p *Particle) damage(factor float64) bool {
	factor = Clamp01(factor)
	if factor >= p.cutFactor {
		return false
	}
	p.cutFactor = factor
	return true
}

func (p *Particle) deactivate() bool {
	if !p.active {
		return false
	}
	p.active = false
	p.pinned = false
	return true
}

// displace shifts both Verlet positions so no velocity is introduced.
func (p *Particle) displace(d Vector) {
	p.p = p.p.Add(d)
	p.prev = p.prev.Add(d)
}

// integrate advances the particle one Verlet step and clears the accumulator.
func (p *Particle) integrate(dt, damping float64) {
	if p.pinned {
		p.p = p.pin
		p.prev = p.pin
		p.accel = Vector{}
		return
	}

	velocity := p.p.Sub(p.prev).Mul(1 - damping)
	p.prev = p.p
	p.p = p.p.Add(velocity).Add(p.accel.Mul(dt * dt))
	p.accel = Vector{}
}

// recover rewinds a particle whose position went non-finite.
func (p *Particle) recover(fallback Vector) bool {
	if Finite(p.p) && Finite(p.prev) {
		return false
	}
	if !Finite(p.prev) {
		p.prev = fallback
	}
	p.p = p.prev
	p.accel = Vector{}
	return true
}
