package moebius

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/themrsung/Moebius-sub003/actor"
)

type EventType uint8

const (
	COLLISION_ENTER EventType = iota
)

// Event is the payload delivered to listeners.
type Event interface {
	Type() EventType
}

// CollisionEnterEvent fires once at the tick two objects transition
// from not overlapping to overlapping. There is no symmetric exit
// event; pairs are silently untracked when they separate.
type CollisionEnterEvent struct {
	A actor.Physical
	B actor.Physical
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

// EventListener - callback for events. Listeners run synchronously on
// the ticking goroutine and must not call back into the same world's
// Tick.
type EventListener func(event Event)

// Events tracks which unordered object pairs currently overlap and
// edge-triggers collision notifications on transitions. A pair absent
// from the tracker is not overlapping.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Pairs currently overlapping, keyed order-independently
	active map[pairKey]Pair

	logger *zap.Logger
}

func NewEvents(logger *zap.Logger) *Events {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 64),
		active:    make(map[pairKey]Pair),
		logger:    logger,
	}
}

// Subscribe adds a listener for an event type.
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// record diffs the overlap set observed this tick against the tracked
// one. Newly overlapping pairs buffer an enter event; separated pairs
// are dropped without notification.
func (e *Events) record(observed map[pairKey]Pair) {
	for key, pair := range observed {
		if _, tracked := e.active[key]; !tracked {
			e.buffer = append(e.buffer, CollisionEnterEvent{A: pair.A, B: pair.B})
			e.logger.Debug("overlap started",
				zap.String("a", pair.A.ID().String()),
				zap.String("b", pair.B.ID().String()))
		}
	}

	for key, pair := range e.active {
		if _, still := observed[key]; !still {
			e.logger.Debug("overlap ended",
				zap.String("a", pair.A.ID().String()),
				zap.String("b", pair.B.ID().String()))
		}
	}

	e.active = observed
}

// overlappingWith returns the objects currently overlapping the given
// one, per the tracker's state as of the last record.
func (e *Events) overlappingWith(id uuid.UUID) []actor.Physical {
	var partners []actor.Physical
	for _, pair := range e.active {
		if pair.A.ID() == id {
			partners = append(partners, pair.B)
		} else if pair.B.ID() == id {
			partners = append(partners, pair.A)
		}
	}
	return partners
}

// purge eagerly drops every tracked pair referencing the given object,
// keeping the tracker consistent ahead of the next tick's diff.
func (e *Events) purge(id uuid.UUID) {
	for key := range e.active {
		if key.references(id) {
			delete(e.active, key)
		}
	}
}

// flush dispatches all buffered events to their listeners and clears
// the buffer. Dispatch is synchronous, in emission order.
func (e *Events) flush() {
	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
