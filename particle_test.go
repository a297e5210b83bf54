package cloth

import (
	"math"
	"testing"
)

func TestParticle_PinnedIntegrateStaysOnPin(t *testing.T) {
	p := NewParticle(Vector{0, 0, 0}, 1)
	p.Pin(Vector{1, 2, 3})

	// give it velocity and a large force, neither may move it
	p.prev = Vector{-5, -5, -5}
	p.ApplyForce(Vector{100, -100, 50})
	p.integrate(0.016, 0.03)

	if p.Position() != (Vector{1, 2, 3}) {
		t.Errorf("Expected pinned particle at pin, got %v", p.Position())
	}
	if p.PreviousPosition() != p.PinPosition() {
		t.Errorf("Expected previous position on pin, got %v", p.PreviousPosition())
	}
	if p.accel != (Vector{}) {
		t.Errorf("Expected acceleration cleared, got %v", p.accel)
	}
}

func TestParticle_IntegrateVerlet(t *testing.T) {
	p := NewParticle(Vector{1, 0, 0}, 2)
	p.prev = Vector{0, 0, 0}
	p.ApplyForce(Vector{0, -20, 0}) // accel -10 on a mass of 2

	dt := 0.1
	p.integrate(dt, 0.5)

	want := Vector{1 + 0.5, -10 * dt * dt, 0}
	if !vecAlmostEqual(p.Position(), want, 1e-12) {
		t.Errorf("Position = %v, want %v", p.Position(), want)
	}
	if p.PreviousPosition() != (Vector{1, 0, 0}) {
		t.Errorf("PreviousPosition = %v, want old position", p.PreviousPosition())
	}
	if p.accel != (Vector{}) {
		t.Error("Forces must not persist across steps")
	}
}

func TestParticle_InverseMass(t *testing.T) {
	p := NewParticle(Vector{}, 4)
	if p.InverseMass() != 0.25 {
		t.Errorf("InverseMass = %v, want 0.25", p.InverseMass())
	}
	p.Pin(Vector{})
	if p.InverseMass() != 0 {
		t.Errorf("Pinned InverseMass = %v, want 0", p.InverseMass())
	}
	p.Unpin()
	if p.InverseMass() != 0.25 {
		t.Errorf("Unpinned InverseMass = %v, want 0.25", p.InverseMass())
	}

	infinite := NewParticle(Vector{}, 0)
	if infinite.InverseMass() != 0 {
		t.Errorf("Zero mass InverseMass = %v, want 0", infinite.InverseMass())
	}
}

func TestParticle_DamageIsMonotonic(t *testing.T) {
	p := NewParticle(Vector{}, 1)
	if !p.damage(0.6) {
		t.Fatal("Expected first damage to apply")
	}
	if p.damage(0.9) {
		t.Error("Damage must never heal")
	}
	if p.CutFactor() != 0.6 {
		t.Errorf("CutFactor = %v, want 0.6", p.CutFactor())
	}
	p.damage(-3)
	if p.CutFactor() != 0 {
		t.Errorf("CutFactor = %v, want clamped 0", p.CutFactor())
	}
}

func TestParticle_DeactivateUnpins(t *testing.T) {
	p := NewParticle(Vector{}, 1)
	p.Pin(Vector{})
	if !p.deactivate() {
		t.Fatal("Expected deactivate to report a change")
	}
	if p.Active() || p.Pinned() {
		t.Error("Expected inactive and unpinned")
	}
	if p.deactivate() {
		t.Error("Second deactivate must be a no-op")
	}
}

func TestParticle_Recover(t *testing.T) {
	p := NewParticle(Vector{1, 1, 1}, 1)
	p.p = Vector{math.NaN(), 0, 0}
	if !p.recover(Vector{}) {
		t.Fatal("Expected recovery")
	}
	if p.Position() != (Vector{1, 1, 1}) {
		t.Errorf("Expected rewind to previous position, got %v", p.Position())
	}

	p.p = Vector{math.Inf(1), 0, 0}
	p.prev = Vector{math.NaN(), 0, 0}
	p.recover(Vector{7, 8, 9})
	if p.Position() != (Vector{7, 8, 9}) || p.PreviousPosition() != (Vector{7, 8, 9}) {
		t.Errorf("Expected fallback position, got %v / %v", p.Position(), p.PreviousPosition())
	}
}
