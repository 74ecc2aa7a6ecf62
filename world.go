package moebius

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/themrsung/Moebius-sub003/actor"
)

// ErrObjectNotFound is returned by id lookups against a world that
// does not hold the object.
var ErrObjectNotFound = errors.New("moebius: object not found")

// World owns an ordered set of physical objects and advances them
// through simulated time. A world is exclusively owned by whichever
// goroutine is ticking it; it does no locking of its own.
type World struct {
	id uuid.UUID

	// Objects in insertion order; force application and integration
	// follow this order
	objects []actor.Physical

	// Gravity acceleration (m/s²)
	Gravity mgl64.Vec3
	// AirDensity is the ambient fluid density (kg/m³)
	AirDensity float64

	events *Events
	logger *zap.Logger
}

func NewWorld(gravity mgl64.Vec3, airDensity float64, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{
		id:         uuid.New(),
		Gravity:    gravity,
		AirDensity: airDensity,
		events:     NewEvents(logger),
		logger:     logger,
	}
}

func (w *World) ID() uuid.UUID { return w.id }

// Events exposes the world's notification registry for subscription.
func (w *World) Events() *Events { return w.events }

// Objects returns a copy of the object list in insertion order.
func (w *World) Objects() []actor.Physical {
	objects := make([]actor.Physical, len(w.objects))
	copy(objects, w.objects)
	return objects
}

// AddObject appends an object to the world.
func (w *World) AddObject(object actor.Physical) {
	w.objects = append(w.objects, object)
}

// Object looks an object up by id.
func (w *World) Object(id uuid.UUID) (actor.Physical, error) {
	for _, object := range w.objects {
		if object.ID() == id {
			return object, nil
		}
	}
	return nil, ErrObjectNotFound
}

// RemoveObject removes an object and eagerly purges every tracked
// overlap pair referencing it.
func (w *World) RemoveObject(id uuid.UUID) error {
	k := -1
	for i, object := range w.objects {
		if object.ID() == id {
			k = i
			break
		}
	}
	if k == -1 {
		return ErrObjectNotFound
	}

	w.objects = append(w.objects[:k], w.objects[k+1:]...)
	w.events.purge(id)
	return nil
}

// Tick advances simulated time by dt milliseconds: overlap detection
// and diffing, then gravity and fluid drag, then one Euler integration
// step per object. Collision notifications buffered during the diff
// are dispatched synchronously at the end of the tick.
func (w *World) Tick(dt float64) {
	// Listener callbacks may add or remove objects; iterate a snapshot
	// so mid-tick mutation cannot corrupt the loop.
	objects := make([]actor.Physical, len(w.objects))
	copy(objects, w.objects)

	w.detectOverlaps(objects)

	scaledGravity := w.Gravity.Mul(dt / 1000.0)

	// Two-phase force application: every drag contribution is computed
	// from the tick-start state before any object is mutated, so the
	// outcome does not depend on object order.
	drags := make([]mgl64.Vec3, len(objects))
	for i, object := range objects {
		drags[i] = w.dragDelta(object)
	}

	for i, object := range objects {
		object.Accelerate(scaledGravity)
		object.Accelerate(drags[i])
		object.Tick(dt)
	}

	w.events.flush()
}

// detectOverlaps tests every unordered pair and feeds the observed
// overlap set to the tracker. O(n²) by design; there is no broad
// phase.
func (w *World) detectOverlaps(objects []actor.Physical) {
	observed := make(map[pairKey]Pair)
	for _, pair := range pairsOf(objects) {
		if pair.A.Overlaps(pair.B) {
			observed[makePairKey(pair.A.ID(), pair.B.ID())] = pair
		}
	}
	w.events.record(observed)
}

// dragDelta computes the quadratic fluid drag deceleration for one
// object from its current state. Zero velocity and non-finite results
// skip the contribution for this tick rather than failing it.
func (w *World) dragDelta(object actor.Physical) mgl64.Vec3 {
	velocity := object.Acceleration()
	speedSqr := velocity.LenSqr()
	if speedSqr == 0 {
		return mgl64.Vec3{}
	}

	density := w.fluidDensityAround(object)
	if density <= 0 {
		return mgl64.Vec3{}
	}

	// Heading faces the oncoming flow: opposite the motion.
	heading := velocity.Mul(-1 / math.Sqrt(speedSqr))

	solid := object.Solid()
	magnitude := 0.5 * solid.DragCoefficient(heading) * solid.CrossSection(heading) * density * speedSqr
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		w.logger.Warn("skipping non-finite drag contribution",
			zap.String("object", object.ID().String()),
			zap.Float64("density", density))
		return mgl64.Vec3{}
	}

	return heading.Mul(magnitude / object.Profile().Mass())
}

// fluidDensityAround resolves the density of the medium the object is
// submerged in: the densest of the ambient air and every object
// currently overlapping it. Densities do not sum.
func (w *World) fluidDensityAround(object actor.Physical) float64 {
	density := w.AirDensity
	for _, neighbor := range w.events.overlappingWith(object.ID()) {
		density = math.Max(density, neighbor.Profile().Density())
	}
	return density
}
