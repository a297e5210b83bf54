package cloth

//Draw flags
const (
	DRAW_STRUCTURAL = 1 << iota
	DRAW_SHEAR
	DRAW_BENDING
	DRAW_PARTICLES
	DRAW_PINS
	DRAW_ANCHORS

	DRAW_MESH = DRAW_STRUCTURAL | DRAW_PINS | DRAW_ANCHORS
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

type Drawer interface {
	DrawSegment(a, b Vector, fill FColor, data interface{})
	DrawDot(size float64, pos Vector, fill FColor, data interface{})

	Flags() int
	ConstraintColor(constraint *Constraint, data interface{}) FColor
	ParticleColor(particle *Particle, data interface{}) FColor
	PinColor() FColor
	AnchorColor() FColor
	Data() interface{}
}

// DamageColor fades from base toward damaged as the cut factor drops.
func DamageColor(base, damaged FColor, cutFactor float64) FColor {
	t := float32(1 - Clamp01(cutFactor))
	return FColor{
		R: base.R + (damaged.R-base.R)*t,
		G: base.G + (damaged.G-base.G)*t,
		B: base.B + (damaged.B-base.B)*t,
		A: base.A + (damaged.A-base.A)*t,
	}
}

func kindFlag(kind ConstraintKind) int {
	switch kind {
	case CONSTRAINT_SHEAR:
		return DRAW_SHEAR
	case CONSTRAINT_BENDING:
		return DRAW_BENDING
	}
	return DRAW_STRUCTURAL
}

func DrawConstraint(constraint *Constraint, options Drawer) {
	if !constraint.active || !constraint.a.active || !constraint.b.active {
		return
	}
	data := options.Data()
	options.DrawSegment(constraint.a.p, constraint.b.p, options.ConstraintColor(constraint, data), data)
}

func DrawCloth(cloth *Cloth, options Drawer) {
	flags := options.Flags()
	data := options.Data()

	if flags&(DRAW_STRUCTURAL|DRAW_SHEAR|DRAW_BENDING) != 0 {
		for _, constraint := range cloth.constraints {
			if flags&kindFlag(constraint.kind) != 0 {
				DrawConstraint(constraint, options)
			}
		}
	}

	if flags&(DRAW_PARTICLES|DRAW_PINS) != 0 {
		for _, p := range cloth.particles {
			if !p.active {
				continue
			}
			if p.pinned && flags&DRAW_PINS != 0 {
				options.DrawDot(2, p.p, options.PinColor(), data)
			} else if flags&DRAW_PARTICLES != 0 {
				options.DrawDot(1, p.p, options.ParticleColor(p, data), data)
			}
		}
	}

	if flags&DRAW_ANCHORS != 0 {
		for _, anchor := range cloth.anchors {
			options.DrawDot(3, anchor, options.AnchorColor(), data)
		}
	}
}
