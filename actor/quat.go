package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotations with a half-angle sine below this are treated as identity.
const rotationEpsilon = 1e-12

// ScaleRotation scales the angle of a rotation quaternion by s about
// its own axis. This is spherical scaling, not component scaling:
// ScaleRotation(q, 0.5) is the half rotation of q. Identity input and
// s == 0 both yield identity, and the near-identity case never divides
// by the vanishing sine term.
func ScaleRotation(q mgl64.Quat, s float64) mgl64.Quat {
	q = q.Normalize()

	// q and -q encode the same rotation; pick the shortest arc.
	if q.W < 0 {
		q = mgl64.Quat{W: -q.W, V: q.V.Mul(-1)}
	}

	sinHalf := q.V.Len()
	if s == 0 || sinHalf < rotationEpsilon {
		return mgl64.QuatIdent()
	}

	halfAngle := math.Atan2(sinHalf, q.W)
	axis := q.V.Mul(1 / sinHalf)

	return mgl64.QuatRotate(2*halfAngle*s, axis)
}
