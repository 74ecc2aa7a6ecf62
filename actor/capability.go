package actor

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Movable is the capability of any entity the simulation can move.
// The world loop is written against this interface, not against a
// concrete type.
type Movable interface {
	ID() uuid.UUID

	Location() mgl64.Vec3
	SetLocation(location mgl64.Vec3)

	Acceleration() mgl64.Vec3
	SetAcceleration(acceleration mgl64.Vec3)
	// Accelerate adds delta onto the current acceleration.
	Accelerate(delta mgl64.Vec3)

	Rotation() mgl64.Quat
	SetRotation(rotation mgl64.Quat)

	RotationRate() mgl64.Quat
	SetRotationRate(rate mgl64.Quat)
	// RotateRate composes delta onto the current rotation rate.
	RotateRate(delta mgl64.Quat)

	// Tick advances the entity by dt milliseconds.
	Tick(dt float64)
}

// Physical is a Movable that occupies space and can be tested for
// overlap against other physical entities.
type Physical interface {
	Movable

	Profile() Profile
	// Solid builds a fresh geometric view of the entity's current pose.
	Solid() Solid
	// Overlaps reports whether the two entities currently share space.
	Overlaps(other Physical) bool
}
