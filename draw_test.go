package cloth

import "testing"

// recorder is a Drawer that counts what it is asked to draw.
type recorder struct {
	flags int
	data  interface{}

	segments []*Constraint
	dots     map[float64]int
	badData  int
	current  *Constraint
}

func newRecorder(flags int) *recorder {
	return &recorder{flags: flags, data: "data", dots: map[float64]int{}}
}

func (r *recorder) DrawSegment(a, b Vector, fill FColor, data interface{}) {
	if data != r.data {
		r.badData++
	}
	r.segments = append(r.segments, r.current)
	r.current = nil
}

func (r *recorder) DrawDot(size float64, pos Vector, fill FColor, data interface{}) {
	if data != r.data {
		r.badData++
	}
	r.dots[size]++
}

func (r *recorder) Flags() int {
	return r.flags
}

func (r *recorder) ConstraintColor(c *Constraint, data interface{}) FColor {
	r.current = c
	return FColor{}
}

func (r *recorder) ParticleColor(p *Particle, data interface{}) FColor {
	return FColor{}
}

func (r *recorder) PinColor() FColor {
	return FColor{}
}

func (r *recorder) AnchorColor() FColor {
	return FColor{}
}

func (r *recorder) Data() interface{} {
	return r.data
}

func (r *recorder) kinds() map[ConstraintKind]int {
	kinds := map[ConstraintKind]int{}
	for _, c := range r.segments {
		kinds[c.Kind()]++
	}
	return kinds
}

const (
	testStructural = testSegmentsX*(testSegmentsY+1) + (testSegmentsX+1)*testSegmentsY
	testShear      = 2 * testSegmentsX * testSegmentsY
	testBending    = (testSegmentsX-1)*(testSegmentsY+1) + (testSegmentsX+1)*(testSegmentsY-1)
	testParticles  = (testSegmentsX + 1) * (testSegmentsY + 1)
)

func TestDrawCloth_ConstraintFlags(t *testing.T) {
	cloth := newTestCloth(DefaultConfig())

	r := newRecorder(DRAW_STRUCTURAL)
	DrawCloth(cloth, r)
	if k := r.kinds(); k[CONSTRAINT_STRUCTURAL] != testStructural || len(k) != 1 {
		t.Errorf("Structural only drew %v", k)
	}
	if len(r.dots) != 0 {
		t.Errorf("Drew dots without a dot flag: %v", r.dots)
	}

	r = newRecorder(DRAW_SHEAR | DRAW_BENDING)
	DrawCloth(cloth, r)
	if k := r.kinds(); k[CONSTRAINT_SHEAR] != testShear || k[CONSTRAINT_BENDING] != testBending || len(k) != 2 {
		t.Errorf("Shear and bending drew %v", k)
	}
	if r.badData != 0 {
		t.Errorf("Data not passed through %d times", r.badData)
	}

	r = newRecorder(0)
	DrawCloth(cloth, r)
	if len(r.segments) != 0 || len(r.dots) != 0 {
		t.Errorf("No flags drew %d segments and %v dots", len(r.segments), r.dots)
	}
}

func TestDrawCloth_DotFlags(t *testing.T) {
	cloth := newTestCloth(DefaultConfig())
	cloth.SetAnchors(cloth.TopCornerAnchors())

	r := newRecorder(DRAW_MESH)
	DrawCloth(cloth, r)
	if r.dots[1] != 0 || r.dots[2] != 2 || r.dots[3] != 2 {
		t.Errorf("Mesh dots = %v, want 2 pins and 2 anchors", r.dots)
	}
	if len(r.segments) != testStructural {
		t.Errorf("Mesh segments = %d, want %d", len(r.segments), testStructural)
	}

	// pins are plain particles without DRAW_PINS
	r = newRecorder(DRAW_PARTICLES)
	DrawCloth(cloth, r)
	if r.dots[1] != testParticles || len(r.dots) != 1 {
		t.Errorf("Particle dots = %v, want %d", r.dots, testParticles)
	}

	r = newRecorder(DRAW_PARTICLES | DRAW_PINS)
	DrawCloth(cloth, r)
	if r.dots[1] != testParticles-2 || r.dots[2] != 2 {
		t.Errorf("Particle and pin dots = %v", r.dots)
	}
}

func TestDrawCloth_SkipsCut(t *testing.T) {
	cloth := newTestCloth(DefaultConfig())
	cloth.CutAt(cloth.ParticleAt(15, 9).Position(), 0.3)

	want := 0
	for _, c := range cloth.Constraints() {
		if c.Kind() == CONSTRAINT_STRUCTURAL && c.Active() {
			want++
		}
	}
	if want >= testStructural {
		t.Fatal("Expected the cut to remove structural constraints")
	}

	r := newRecorder(DRAW_STRUCTURAL | DRAW_PARTICLES)
	DrawCloth(cloth, r)
	if len(r.segments) != want {
		t.Errorf("Drew %d segments, want the %d still active", len(r.segments), want)
	}
	for _, c := range r.segments {
		if !c.Active() || !c.A().Active() || !c.B().Active() {
			t.Fatalf("Drew cut constraint %d", c.Index())
		}
	}
	if r.dots[1] != cloth.Stats().ActiveParticles {
		t.Errorf("Particle dots = %d, want %d", r.dots[1], cloth.Stats().ActiveParticles)
	}
}

func TestDrawConstraint_Inactive(t *testing.T) {
	cloth := newTestCloth(DefaultConfig())
	c := cloth.Constraints()[0]

	r := newRecorder(DRAW_STRUCTURAL)
	DrawConstraint(c, r)
	if len(r.segments) != 1 {
		t.Fatalf("Drew %d segments for an intact constraint", len(r.segments))
	}

	c.a.active = false
	DrawConstraint(c, r)
	c.a.active = true
	c.active = false
	DrawConstraint(c, r)
	if len(r.segments) != 1 {
		t.Errorf("Drew %d segments, inactive constraints and endpoints must be skipped", len(r.segments))
	}
}

func TestDamageColor(t *testing.T) {
	base := FColor{R: 1, G: 1, B: 1, A: 1}
	damaged := FColor{R: 1, G: 0, B: 0, A: 0.5}

	cases := []struct {
		cutFactor float64
		want      FColor
	}{
		{1, base},
		{2, base},
		{0, damaged},
		{-1, damaged},
		{0.5, FColor{R: 1, G: 0.5, B: 0.5, A: 0.75}},
	}
	for _, c := range cases {
		if got := DamageColor(base, damaged, c.cutFactor); got != c.want {
			t.Errorf("DamageColor(%v) = %v, want %v", c.cutFactor, got, c.want)
		}
	}
}
