package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newSphereObject(t *testing.T, mass, radius float64, location mgl64.Vec3) *Object {
	t.Helper()

	profile, err := NewSphereProfile(mass, radius)
	if err != nil {
		t.Fatalf("NewSphereProfile(%v, %v): %v", mass, radius, err)
	}
	return NewObject(profile, location)
}

func TestNewObject_Defaults(t *testing.T) {
	object := newSphereObject(t, 1, 1, mgl64.Vec3{1, 2, 3})

	if object.Location() != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("location = %v, want (1,2,3)", object.Location())
	}
	if object.Acceleration() != (mgl64.Vec3{}) {
		t.Errorf("acceleration = %v, want zero", object.Acceleration())
	}
	if !sameRotation(object.Rotation(), mgl64.QuatIdent(), 1e-12) {
		t.Errorf("rotation = %v, want identity", object.Rotation())
	}
	if !sameRotation(object.RotationRate(), mgl64.QuatIdent(), 1e-12) {
		t.Errorf("rotation rate = %v, want identity", object.RotationRate())
	}
	if object.ID() == newSphereObject(t, 1, 1, mgl64.Vec3{}).ID() {
		t.Errorf("two objects share an id")
	}
}

func TestObject_AccelerateAccumulates(t *testing.T) {
	object := newSphereObject(t, 1, 1, mgl64.Vec3{})

	object.Accelerate(mgl64.Vec3{1, 0, 0})
	object.Accelerate(mgl64.Vec3{0, -2, 0})
	object.Accelerate(mgl64.Vec3{1, 0, 3})

	if object.Acceleration() != (mgl64.Vec3{2, -2, 3}) {
		t.Errorf("acceleration = %v, want (2,-2,3)", object.Acceleration())
	}
}

func TestObject_RotateRateComposes(t *testing.T) {
	object := newSphereObject(t, 1, 1, mgl64.Vec3{})
	axis := mgl64.Vec3{0, 1, 0}

	object.RotateRate(mgl64.QuatRotate(math.Pi/4, axis))
	object.RotateRate(mgl64.QuatRotate(math.Pi/4, axis))

	want := mgl64.QuatRotate(math.Pi/2, axis)
	if !sameRotation(object.RotationRate(), want, 1e-9) {
		t.Errorf("rotation rate = %v, want 90° about y", object.RotationRate())
	}
}

func TestObject_TickIntegratesLocation(t *testing.T) {
	object := newSphereObject(t, 1, 1, mgl64.Vec3{1, 0, 0})
	object.SetAcceleration(mgl64.Vec3{2, -4, 6})

	object.Tick(500)

	want := mgl64.Vec3{2, -2, 3}
	if object.Location().Sub(want).Len() > 1e-12 {
		t.Errorf("location = %v, want %v after a 500ms tick", object.Location(), want)
	}
}

func TestObject_TickIntegratesRotation(t *testing.T) {
	object := newSphereObject(t, 1, 1, mgl64.Vec3{})
	axis := mgl64.Vec3{0, 1, 0}

	// 90° per second, ticked for 500ms, twice: a quarter turn total.
	object.SetRotationRate(mgl64.QuatRotate(math.Pi/2, axis))
	object.Tick(500)
	object.Tick(500)

	want := mgl64.QuatRotate(math.Pi/2, axis)
	if !sameRotation(object.Rotation(), want, 1e-9) {
		t.Errorf("rotation = %v, want 90° about y", object.Rotation())
	}
}

func TestObject_TickWithIdentityRateKeepsRotation(t *testing.T) {
	object := newSphereObject(t, 1, 1, mgl64.Vec3{})
	initial := mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{1, 0, 0})
	object.SetRotation(initial)

	object.Tick(1000)

	if !sameRotation(object.Rotation(), initial, 1e-12) {
		t.Errorf("rotation drifted to %v with identity rate", object.Rotation())
	}
}

func TestObject_Overlaps(t *testing.T) {
	a := newSphereObject(t, 1, 1, mgl64.Vec3{0, 0, 0})
	b := newSphereObject(t, 1, 1, mgl64.Vec3{1.5, 0, 0})
	c := newSphereObject(t, 1, 1, mgl64.Vec3{5, 0, 0})

	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Errorf("Expected a and b to overlap in both query orders")
	}
	if a.Overlaps(c) {
		t.Errorf("Expected a and c not to overlap")
	}
}

func TestObject_SolidReflectsCurrentPose(t *testing.T) {
	object := newSphereObject(t, 1, 2, mgl64.Vec3{0, 0, 0})

	first := object.Solid().(*SphereSolid)
	object.SetLocation(mgl64.Vec3{10, 0, 0})
	second := object.Solid().(*SphereSolid)

	if first.Center == second.Center {
		t.Errorf("Solid must be rebuilt from the current pose, not cached")
	}
	if second.Center != (mgl64.Vec3{10, 0, 0}) {
		t.Errorf("solid center = %v, want (10,0,0)", second.Center)
	}
}
