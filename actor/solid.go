package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/themrsung/Moebius-sub003/gjk"
)

// Solid is an ephemeral geometric view of an object's current pose.
// It has no identity beyond a single query and is rebuilt from the
// profile whenever the world needs one.
type Solid interface {
	// Support returns the world-space point of the solid farthest
	// along direction.
	Support(direction mgl64.Vec3) mgl64.Vec3
	// Bounds returns the world-space axis-aligned bounding box.
	Bounds() AABB
	// Overlaps reports whether the two solids share at least one
	// point. Touching counts as overlapping.
	Overlaps(other Solid) bool
	// DragCoefficient is the dimensionless shape factor presented to
	// a flow from direction.
	DragCoefficient(direction mgl64.Vec3) float64
	// CrossSection is the area projected onto the plane perpendicular
	// to direction.
	CrossSection(direction mgl64.Vec3) float64
}

// solidsOverlap is the shared overlap path: bounds reject first, an
// analytic test when both solids are spheres, GJK on the support
// mappings otherwise.
func solidsOverlap(a, b Solid) bool {
	if !a.Bounds().Overlaps(b.Bounds()) {
		return false
	}

	sa, aIsSphere := a.(*SphereSolid)
	sb, bIsSphere := b.(*SphereSolid)
	if aIsSphere && bIsSphere {
		reach := sa.Radius + sb.Radius
		return sb.Center.Sub(sa.Center).LenSqr() <= reach*reach
	}

	return gjk.Intersect(a, b)
}

// SphereSolid is a sphere at a world-space center.
type SphereSolid struct {
	Center mgl64.Vec3
	Radius float64
	Drag   float64
}

func (s *SphereSolid) Support(direction mgl64.Vec3) mgl64.Vec3 {
	n := direction.Len()
	if n == 0 {
		return s.Center
	}
	return s.Center.Add(direction.Mul(s.Radius / n))
}

func (s *SphereSolid) Bounds() AABB {
	r := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

func (s *SphereSolid) Overlaps(other Solid) bool { return solidsOverlap(s, other) }

func (s *SphereSolid) DragCoefficient(_ mgl64.Vec3) float64 { return s.Drag }

// CrossSection of a sphere is the same disc from every direction.
func (s *SphereSolid) CrossSection(_ mgl64.Vec3) float64 {
	return math.Pi * s.Radius * s.Radius
}

// BoxSolid is an oriented box at a world-space center.
type BoxSolid struct {
	Center      mgl64.Vec3
	Rotation    mgl64.Quat
	HalfExtents mgl64.Vec3
	Drag        float64
}

func (b *BoxSolid) Support(direction mgl64.Vec3) mgl64.Vec3 {
	local := b.Rotation.Inverse().Rotate(direction)

	hx, hy, hz := b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()
	if local.X() < 0 {
		hx = -hx
	}
	if local.Y() < 0 {
		hy = -hy
	}
	if local.Z() < 0 {
		hz = -hz
	}

	return b.Rotation.Rotate(mgl64.Vec3{hx, hy, hz}).Add(b.Center)
}

func (b *BoxSolid) Bounds() AABB {
	hx, hy, hz := b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()
	corners := [8]mgl64.Vec3{
		{-hx, -hy, -hz}, {+hx, -hy, -hz}, {-hx, +hy, -hz}, {+hx, +hy, -hz},
		{-hx, -hy, +hz}, {+hx, -hy, +hz}, {-hx, +hy, +hz}, {+hx, +hy, +hz},
	}

	world := b.Rotation.Rotate(corners[0]).Add(b.Center)
	bounds := AABB{Min: world, Max: world}
	for i := 1; i < 8; i++ {
		world = b.Rotation.Rotate(corners[i]).Add(b.Center)
		for axis := 0; axis < 3; axis++ {
			bounds.Min[axis] = math.Min(bounds.Min[axis], world[axis])
			bounds.Max[axis] = math.Max(bounds.Max[axis], world[axis])
		}
	}

	return bounds
}

func (b *BoxSolid) Overlaps(other Solid) bool { return solidsOverlap(b, other) }

func (b *BoxSolid) DragCoefficient(_ mgl64.Vec3) float64 { return b.Drag }

// CrossSection projects the oriented box onto the plane perpendicular
// to direction: the sum of each face area weighted by how squarely it
// faces the flow.
func (b *BoxSolid) CrossSection(direction mgl64.Vec3) float64 {
	n := direction.Len()
	if n == 0 {
		return 0
	}
	local := b.Rotation.Inverse().Rotate(direction.Mul(1 / n))

	hx, hy, hz := b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()
	return 4 * (math.Abs(local.X())*hy*hz +
		math.Abs(local.Y())*hx*hz +
		math.Abs(local.Z())*hx*hy)
}
