package moebius

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/themrsung/Moebius-sub003/actor"
)

func TestMakePairKey_OrderIndependent(t *testing.T) {
	a := newTestSphere(t, 1, 1, mgl64.Vec3{})
	b := newTestSphere(t, 1, 1, mgl64.Vec3{})

	if makePairKey(a.ID(), b.ID()) != makePairKey(b.ID(), a.ID()) {
		t.Errorf("pairKey(a,b) != pairKey(b,a)")
	}
}

func TestPairKey_References(t *testing.T) {
	a := newTestSphere(t, 1, 1, mgl64.Vec3{})
	b := newTestSphere(t, 1, 1, mgl64.Vec3{})
	c := newTestSphere(t, 1, 1, mgl64.Vec3{})

	key := makePairKey(a.ID(), b.ID())
	if !key.references(a.ID()) || !key.references(b.ID()) {
		t.Errorf("Key must reference both members")
	}
	if key.references(c.ID()) {
		t.Errorf("Key must not reference a third object")
	}
}

func TestPairsOf_Combinations(t *testing.T) {
	tests := []struct {
		objectCount int
		wantPairs   int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 3},
		{5, 10},
	}

	for _, tt := range tests {
		objects := make([]actor.Physical, tt.objectCount)
		for i := range objects {
			objects[i] = newTestSphere(t, 1, 1, mgl64.Vec3{})
		}

		pairs := pairsOf(objects)
		if len(pairs) != tt.wantPairs {
			t.Errorf("pairsOf(%d objects): %d pairs, want %d", tt.objectCount, len(pairs), tt.wantPairs)
		}

		// No self pairs, and every combination appears exactly once.
		seen := make(map[pairKey]bool)
		for _, pair := range pairs {
			if pair.A.ID() == pair.B.ID() {
				t.Errorf("Self pair for %v", pair.A.ID())
			}
			key := makePairKey(pair.A.ID(), pair.B.ID())
			if seen[key] {
				t.Errorf("Duplicate pair %v", key)
			}
			seen[key] = true
		}
	}
}
