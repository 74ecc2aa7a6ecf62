package actor

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Reference drag shape factors.
const (
	SphereDragCoefficient = 0.47
	CubeDragCoefficient   = 1.05
)

// ErrInvalidProfile is wrapped by every profile constructor failure.
var ErrInvalidProfile = errors.New("actor: invalid physics profile")

// Profile owns the physical constants of an object and produces the
// solid occupying the object's current pose. Build is pure; its result
// must never be cached across ticks.
type Profile interface {
	// Mass in kilograms, always > 0.
	Mass() float64
	// Volume in cubic meters, >= 0.
	Volume() float64
	// Density is mass over volume, or 0 for a profile that displaces
	// no space.
	Density() float64
	// Build returns a fresh Solid for the given pose.
	Build(location mgl64.Vec3, rotation mgl64.Quat) Solid
}

// SphereProfile is the physics profile of a spherical object.
type SphereProfile struct {
	mass   float64
	radius float64
	drag   float64
}

// NewSphereProfile validates and creates a sphere profile. Mass must
// be finite and positive, radius finite and non-negative.
func NewSphereProfile(mass, radius float64) (*SphereProfile, error) {
	if err := checkMass(mass); err != nil {
		return nil, err
	}
	if radius < 0 || !finite(radius) {
		return nil, fmt.Errorf("%w: radius %v, want finite and >= 0", ErrInvalidProfile, radius)
	}

	return &SphereProfile{mass: mass, radius: radius, drag: SphereDragCoefficient}, nil
}

func (p *SphereProfile) Mass() float64 { return p.mass }

func (p *SphereProfile) Volume() float64 {
	return (4.0 / 3.0) * math.Pi * p.radius * p.radius * p.radius
}

func (p *SphereProfile) Density() float64 { return density(p.mass, p.Volume()) }

func (p *SphereProfile) Radius() float64 { return p.radius }

// SetDragCoefficient overrides the default sphere shape factor.
func (p *SphereProfile) SetDragCoefficient(drag float64) { p.drag = drag }

func (p *SphereProfile) Build(location mgl64.Vec3, _ mgl64.Quat) Solid {
	return &SphereSolid{Center: location, Radius: p.radius, Drag: p.drag}
}

// BoxProfile is the physics profile of a box-shaped object, defined by
// its half-extents.
type BoxProfile struct {
	mass        float64
	halfExtents mgl64.Vec3
	drag        float64
}

// NewBoxProfile validates and creates a box profile. Mass must be
// finite and positive, every half-extent finite and non-negative.
func NewBoxProfile(mass float64, halfExtents mgl64.Vec3) (*BoxProfile, error) {
	if err := checkMass(mass); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if halfExtents[i] < 0 || !finite(halfExtents[i]) {
			return nil, fmt.Errorf("%w: half extents %v, want finite and >= 0", ErrInvalidProfile, halfExtents)
		}
	}

	return &BoxProfile{mass: mass, halfExtents: halfExtents, drag: CubeDragCoefficient}, nil
}

func (p *BoxProfile) Mass() float64 { return p.mass }

func (p *BoxProfile) Volume() float64 {
	return 8.0 * p.halfExtents.X() * p.halfExtents.Y() * p.halfExtents.Z()
}

func (p *BoxProfile) Density() float64 { return density(p.mass, p.Volume()) }

func (p *BoxProfile) HalfExtents() mgl64.Vec3 { return p.halfExtents }

// SetDragCoefficient overrides the default cube shape factor.
func (p *BoxProfile) SetDragCoefficient(drag float64) { p.drag = drag }

func (p *BoxProfile) Build(location mgl64.Vec3, rotation mgl64.Quat) Solid {
	return &BoxSolid{
		Center:      location,
		Rotation:    rotation,
		HalfExtents: p.halfExtents,
		Drag:        p.drag,
	}
}

func checkMass(mass float64) error {
	if mass <= 0 || !finite(mass) {
		return fmt.Errorf("%w: mass %v, want finite and > 0", ErrInvalidProfile, mass)
	}
	return nil
}

func density(mass, volume float64) float64 {
	if volume == 0 {
		return 0
	}
	return mass / volume
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
