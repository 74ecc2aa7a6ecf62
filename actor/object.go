package actor

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Object is the concrete movable, physical entity of the simulation.
// Its acceleration vector doubles as velocity: Tick integrates it
// directly into the location, one Euler step per call.
type Object struct {
	id uuid.UUID

	location     mgl64.Vec3
	acceleration mgl64.Vec3
	rotation     mgl64.Quat
	rotationRate mgl64.Quat

	profile Profile
}

// NewObject creates an object at the given location, at rest and
// unrotated.
func NewObject(profile Profile, location mgl64.Vec3) *Object {
	return &Object{
		id:           uuid.New(),
		location:     location,
		rotation:     mgl64.QuatIdent(),
		rotationRate: mgl64.QuatIdent(),
		profile:      profile,
	}
}

func (o *Object) ID() uuid.UUID { return o.id }

func (o *Object) Location() mgl64.Vec3            { return o.location }
func (o *Object) SetLocation(location mgl64.Vec3) { o.location = location }

func (o *Object) Acceleration() mgl64.Vec3                { return o.acceleration }
func (o *Object) SetAcceleration(acceleration mgl64.Vec3) { o.acceleration = acceleration }

// Accelerate adds delta onto the current acceleration.
func (o *Object) Accelerate(delta mgl64.Vec3) {
	o.acceleration = o.acceleration.Add(delta)
}

func (o *Object) Rotation() mgl64.Quat            { return o.rotation }
func (o *Object) SetRotation(rotation mgl64.Quat) { o.rotation = rotation.Normalize() }

func (o *Object) RotationRate() mgl64.Quat        { return o.rotationRate }
func (o *Object) SetRotationRate(rate mgl64.Quat) { o.rotationRate = rate.Normalize() }

// RotateRate composes delta onto the current rotation rate.
func (o *Object) RotateRate(delta mgl64.Quat) {
	o.rotationRate = delta.Mul(o.rotationRate).Normalize()
}

func (o *Object) Profile() Profile { return o.profile }

// Solid builds a fresh geometric view of the object's current pose.
// The result is valid for a single query only.
func (o *Object) Solid() Solid {
	return o.profile.Build(o.location, o.rotation)
}

// Overlaps reports whether the two objects currently share at least
// one point.
func (o *Object) Overlaps(other Physical) bool {
	return o.Solid().Overlaps(other.Solid())
}

// Tick advances the object by dt milliseconds. The location moves by
// acceleration scaled to seconds, and the fractional rotation rate is
// left-multiplied onto the current rotation.
func (o *Object) Tick(dt float64) {
	seconds := dt / 1000.0

	o.location = o.location.Add(o.acceleration.Mul(seconds))
	o.rotation = ScaleRotation(o.rotationRate, seconds).Mul(o.rotation).Normalize()
}
