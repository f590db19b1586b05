// Package dfpn implements the depth-first proof-number endgame solver:
// a best-first AND/OR search over a Hex position, using the
// proof/disproof-number framework, iterative threshold descent, and a
// transposition table to memoize results across re-entries into the
// same position.
package dfpn

import "benzene/invariant"

// INF is the sentinel bound value: strictly larger than any sum of
// child phi values the search can produce. 1<<30 leaves ample headroom
// below the int64 range this package sums into.
const INF int64 = 1 << 30

// Bounds is the (phi, delta) proof/disproof-number pair for a position,
// always from the point of view of the side to move at that position.
type Bounds struct {
	Phi   int64 // proof number: cost to prove a win for the side to move
	Delta int64 // disproof number: cost to prove a loss for the side to move
}

// Leaf is the bound an unvisited, non-terminal position is assumed to
// have (spec §3 rule 5).
func Leaf() Bounds {
	return Bounds{Phi: 1, Delta: 1}
}

// Winning is the bound of a position proved won for the side to move.
func Winning() Bounds {
	return Bounds{Phi: 0, Delta: INF}
}

// Losing is the bound of a position proved lost for the side to move.
func Losing() Bounds {
	return Bounds{Phi: INF, Delta: 0}
}

// rootSeed is the threshold MID is invoked with at the root. It is the
// only Bounds value allowed to hold both components at INF — spec §3
// rule 6 — and it must never be stored in the transposition table.
func rootSeed() Bounds {
	return Bounds{Phi: INF, Delta: INF}
}

// CheckInvariants validates the structural rules every Bounds value
// must satisfy (spec §3 rules 1-3): both components in [0, INF], and a
// proved value (phi=0 or delta=0) always carries INF on the other side.
// It deliberately does not enforce rule 4 (not both INF) — that rule
// has the explicit root-seed exception (rule 6) and is instead asserted
// directly wherever a Bounds is about to be stored (see TT.Put callers
// in search.go), where the exception cannot apply.
func CheckInvariants(b Bounds) error {
	if b.Phi < 0 || b.Phi > INF {
		return invariant.New("dfpn.Bounds", "phi %d out of range [0,%d]", b.Phi, INF)
	}
	if b.Delta < 0 || b.Delta > INF {
		return invariant.New("dfpn.Bounds", "delta %d out of range [0,%d]", b.Delta, INF)
	}
	if b.Phi == 0 && b.Delta != INF {
		return invariant.New("dfpn.Bounds", "phi=0 requires delta=INF, got delta=%d", b.Delta)
	}
	if b.Delta == 0 && b.Phi != INF {
		return invariant.New("dfpn.Bounds", "delta=0 requires phi=INF, got phi=%d", b.Phi)
	}
	return nil
}

// mustCheck panics with an invariant.Violation if b fails CheckInvariants.
// Used internally wherever the algorithm itself is responsible for
// producing a well-formed Bounds — a failure here is a bug in this
// package, not a caller error.
func mustCheck(b Bounds) Bounds {
	if err := CheckInvariants(b); err != nil {
		panic(err)
	}
	return b
}
