// Package gjk implements the Gilbert-Johnson-Keerthi boolean overlap
// test for convex volumes.
//
// Two convex volumes overlap iff their Minkowski difference contains
// the origin. The algorithm grows a simplex of support points toward
// the origin, proving either containment (overlap) or separation,
// typically within a handful of iterations.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the
//     Distance Between Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D
//     Environments" (2003)
package gjk

import "github.com/go-gl/mathgl/mgl64"

// Support is the world-space support mapping of a convex volume: the
// point of the volume farthest along a direction. Any convex shape can
// participate in the overlap test by implementing this single query.
type Support interface {
	Support(direction mgl64.Vec3) mgl64.Vec3
}

// simplex holds 1 to 4 points of the Minkowski difference. It grows
// point -> line -> triangle -> tetrahedron during the iteration.
type simplex struct {
	points [4]mgl64.Vec3
	count  int
}

const maxIterations = 32

// minkowskiSupport computes a support point of the Minkowski
// difference A - B along direction.
func minkowskiSupport(a, b Support, direction mgl64.Vec3) mgl64.Vec3 {
	return a.Support(direction).Sub(b.Support(direction.Mul(-1)))
}

// Intersect reports whether two convex volumes share at least one
// point. Volumes that merely touch count as intersecting.
func Intersect(a, b Support) bool {
	// Seed the search with the offset between two extreme points;
	// starting toward the other volume converges faster than a fixed
	// axis.
	seed := mgl64.Vec3{1, 0, 0}
	direction := b.Support(seed).Sub(a.Support(seed))
	if direction.LenSqr() < 1e-8 {
		direction = seed
	}

	var s simplex
	s.points[0] = minkowskiSupport(a, b, direction)
	s.count = 1

	direction = s.points[0].Mul(-1)
	if direction.LenSqr() < 1e-16 {
		// First support point sits on the origin: touching.
		return true
	}

	for i := 0; i < maxIterations; i++ {
		newPoint := minkowskiSupport(a, b, direction)

		// The new point never passed the origin along the search
		// direction, so the origin is unreachable: separated.
		if newPoint.Dot(direction) <= 0 {
			return false
		}

		s.points[s.count] = newPoint
		s.count++

		if containsOrigin(&s, &direction) {
			return true
		}
	}

	// No convergence within the iteration budget; treat as separated.
	return false
}

// containsOrigin tests whether the simplex encloses the origin. When
// it does not, the simplex is reduced to its feature closest to the
// origin and the search direction is pointed at the origin again.
func containsOrigin(s *simplex, direction *mgl64.Vec3) bool {
	switch s.count {
	case 2:
		return line(s, direction)
	case 3:
		return triangle(s, direction)
	case 4:
		return tetrahedron(s, direction)
	}
	return false
}

// line reduces a 2-point simplex. A line cannot enclose the origin in
// 3D, except when the origin lies exactly on the segment.
func line(s *simplex, direction *mgl64.Vec3) bool {
	a := s.points[1]
	b := s.points[0]
	ab := b.Sub(a)
	ao := a.Mul(-1)

	// Degenerate segment: both support points coincide.
	if ab.LenSqr() < 1e-8 {
		if ao.LenSqr() < 1e-8 {
			return true
		}
		s.points[0] = a
		s.count = 1
		*direction = ao
		return false
	}

	// Origin behind A: keep only A.
	if ab.Dot(ao) <= 0 {
		s.points[0] = a
		s.count = 1
		*direction = ao
		return false
	}

	abPerp := ab.Cross(ao).Cross(ab)
	if abPerp.LenSqr() < 1e-8 {
		// Origin lies on the segment itself.
		return true
	}

	*direction = abPerp
	return false
}

// triangle reduces a 3-point simplex to the Voronoi feature closest to
// the origin: a vertex, an edge, or the face itself.
func triangle(s *simplex, direction *mgl64.Vec3) bool {
	a := s.points[2] // most recent point
	b := s.points[1]
	c := s.points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)

	// Collinear points: fall back to the line case.
	if abc.LenSqr() < 1e-10 {
		s.points[0] = b
		s.points[1] = a
		s.count = 2
		return line(s, direction)
	}

	// Edge AB region.
	if ab.Cross(abc).Dot(ao) > 0 {
		s.points[0] = b
		s.points[1] = a
		s.count = 2
		*direction = ab.Cross(ao).Cross(ab)
		return false
	}

	// Edge AC region.
	if abc.Cross(ac).Dot(ao) > 0 {
		s.points[0] = c
		s.points[1] = a
		s.count = 2
		*direction = ac.Cross(ao).Cross(ac)
		return false
	}

	// Origin is above or below the face; keep the face oriented toward
	// the origin.
	if abc.Dot(ao) > 0 {
		*direction = abc
	} else {
		s.points[0] = a
		s.points[1] = c
		s.points[2] = b
		s.count = 3
		*direction = abc.Mul(-1)
	}

	return false
}

// tetrahedron is the only case that can enclose the origin. Each face
// normal is oriented away from the opposing vertex; the origin is
// enclosed iff it lies behind every face incident to the newest point.
func tetrahedron(s *simplex, direction *mgl64.Vec3) bool {
	a := s.points[3] // most recent point
	b := s.points[2]
	c := s.points[1]
	d := s.points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)
	if abc.Dot(ad) > 0 {
		abc = abc.Mul(-1)
	}

	acd := ac.Cross(ad)
	if acd.Dot(ab) > 0 {
		acd = acd.Mul(-1)
	}

	adb := ad.Cross(ab)
	if adb.Dot(ac) > 0 {
		adb = adb.Mul(-1)
	}

	// Degenerate tetrahedron: retry as a triangle.
	if abc.LenSqr() < 1e-10 || acd.LenSqr() < 1e-10 || adb.LenSqr() < 1e-10 {
		s.points[0] = c
		s.points[1] = b
		s.points[2] = a
		s.count = 3
		return triangle(s, direction)
	}

	if abc.Dot(ao) > 0 {
		s.points[0] = c
		s.points[1] = b
		s.points[2] = a
		s.count = 3
		return triangle(s, direction)
	}

	if acd.Dot(ao) > 0 {
		s.points[0] = d
		s.points[1] = c
		s.points[2] = a
		s.count = 3
		return triangle(s, direction)
	}

	if adb.Dot(ao) > 0 {
		s.points[0] = b
		s.points[1] = d
		s.points[2] = a
		s.count = 3
		return triangle(s, direction)
	}

	return true
}
