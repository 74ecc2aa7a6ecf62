package gjk

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// sphere is a minimal support mapping for testing.
type sphere struct {
	center mgl64.Vec3
	radius float64
}

func (s sphere) Support(direction mgl64.Vec3) mgl64.Vec3 {
	n := direction.Len()
	if n == 0 {
		return s.center
	}
	return s.center.Add(direction.Mul(s.radius / n))
}

// box is an oriented box support mapping for testing.
type box struct {
	center      mgl64.Vec3
	rotation    mgl64.Quat
	halfExtents mgl64.Vec3
}

func (b box) Support(direction mgl64.Vec3) mgl64.Vec3 {
	local := b.rotation.Inverse().Rotate(direction)

	p := b.halfExtents
	for axis := 0; axis < 3; axis++ {
		if local[axis] < 0 {
			p[axis] = -p[axis]
		}
	}
	return b.rotation.Rotate(p).Add(b.center)
}

func TestIntersect_Spheres(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     bool
	}{
		{"overlapping", 1.5, true},
		{"deeply overlapping", 0.1, true},
		{"separated", 2.5, false},
		{"far apart", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sphere{center: mgl64.Vec3{}, radius: 1}
			b := sphere{center: mgl64.Vec3{tt.distance, 0, 0}, radius: 1}

			if got := Intersect(a, b); got != tt.want {
				t.Errorf("Intersect at distance %v = %v, want %v", tt.distance, got, tt.want)
			}
		})
	}
}

func TestIntersect_IdenticalCenters(t *testing.T) {
	a := sphere{center: mgl64.Vec3{1, 2, 3}, radius: 1}
	b := sphere{center: mgl64.Vec3{1, 2, 3}, radius: 0.5}

	if !Intersect(a, b) {
		t.Errorf("Expected intersection for concentric volumes")
	}
}

func TestIntersect_Containment(t *testing.T) {
	outer := sphere{center: mgl64.Vec3{}, radius: 10}
	inner := sphere{center: mgl64.Vec3{2, 1, 0}, radius: 0.5}

	if !Intersect(outer, inner) {
		t.Errorf("Expected intersection when one volume contains the other")
	}
}

func TestIntersect_AxisAlignedBoxes(t *testing.T) {
	a := box{rotation: mgl64.QuatIdent(), halfExtents: mgl64.Vec3{1, 1, 1}}

	near := box{
		center:      mgl64.Vec3{1.5, 0.5, 0},
		rotation:    mgl64.QuatIdent(),
		halfExtents: mgl64.Vec3{1, 1, 1},
	}
	if !Intersect(a, near) {
		t.Errorf("Expected overlapping axis-aligned boxes to intersect")
	}

	far := box{
		center:      mgl64.Vec3{2.5, 0, 0},
		rotation:    mgl64.QuatIdent(),
		halfExtents: mgl64.Vec3{1, 1, 1},
	}
	if Intersect(a, far) {
		t.Errorf("Expected separated axis-aligned boxes not to intersect")
	}
}

func TestIntersect_RotatedBox(t *testing.T) {
	a := box{rotation: mgl64.QuatIdent(), halfExtents: mgl64.Vec3{1, 1, 1}}

	// A 45°-rotated box reaches sqrt(2) along x toward a.
	diagonal := box{
		center:      mgl64.Vec3{2.2, 0, 0},
		rotation:    mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 0, 1}),
		halfExtents: mgl64.Vec3{1, 1, 1},
	}
	if !Intersect(a, diagonal) {
		t.Errorf("Expected the rotated box's corner to reach into a")
	}

	// The same box pulled back past its corner reach.
	diagonal.center = mgl64.Vec3{2.5, 0, 0}
	if Intersect(a, diagonal) {
		t.Errorf("Expected no intersection past the corner reach")
	}
}

func TestIntersect_BoxSphere(t *testing.T) {
	b := box{rotation: mgl64.QuatIdent(), halfExtents: mgl64.Vec3{1, 1, 1}}

	if !Intersect(b, sphere{center: mgl64.Vec3{1.5, 0, 0}, radius: 1}) {
		t.Errorf("Expected the sphere to reach into the box face")
	}
	if Intersect(b, sphere{center: mgl64.Vec3{1.4, 1.4, 0}, radius: 0.5}) {
		t.Errorf("Expected no intersection past the box corner")
	}
}

func TestIntersect_Symmetric(t *testing.T) {
	a := box{rotation: mgl64.QuatIdent(), halfExtents: mgl64.Vec3{1, 2, 1}}
	b := sphere{center: mgl64.Vec3{0, 2.5, 0}, radius: 1}

	if Intersect(a, b) != Intersect(b, a) {
		t.Errorf("Intersect must not depend on argument order")
	}
	if !Intersect(a, b) {
		t.Errorf("Expected intersection: sphere reaches y=1.5, box reaches y=2")
	}
}
