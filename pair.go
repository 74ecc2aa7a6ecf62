package moebius

import (
	"bytes"

	"github.com/google/uuid"

	"github.com/themrsung/Moebius-sub003/actor"
)

// Pair is an unordered 2-combination of world objects.
type Pair struct {
	A actor.Physical
	B actor.Physical
}

// pairKey identifies an unordered pair by the ids of its members,
// independent of argument order.
type pairKey struct {
	a uuid.UUID
	b uuid.UUID
}

// makePairKey normalizes the key so pairKey(a,b) == pairKey(b,a).
func makePairKey(a, b uuid.UUID) pairKey {
	if bytes.Compare(b[:], a[:]) < 0 {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

func (k pairKey) references(id uuid.UUID) bool {
	return k.a == id || k.b == id
}

// pairsOf yields every unordered pair of the given objects: exactly
// one per 2-combination, no self pairs.
func pairsOf(objects []actor.Physical) []Pair {
	if len(objects) < 2 {
		return nil
	}

	pairs := make([]Pair, 0, len(objects)*(len(objects)-1)/2)
	for i := 0; i < len(objects)-1; i++ {
		for j := i + 1; j < len(objects); j++ {
			pairs = append(pairs, Pair{A: objects[i], B: objects[j]})
		}
	}
	return pairs
}
