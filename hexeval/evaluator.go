// Package hexeval implements the Evaluator collaborator (spec §4.4): a
// terminal check and a pruned candidate-move set for a Hex position.
//
// It plays the role original_source/src/hex/VCCommands.cpp's
// EndgameUtil/PlayerUtils pair plays for Benzene — IsDeterminedState and
// MovesToConsider — but the real implementation's virtual-connection and
// inferior-cell engine is explicitly out of scope (spec §1); this is a
// from-scratch, sound reimplementation of the same two questions.
package hexeval

import "benzene/hexboard"

// Evaluator answers the two questions the DFPN core needs: is this
// position decided, and if not, which moves are worth considering.
type Evaluator struct{}

// New returns an Evaluator. It is stateless; one value can be shared by
// concurrent callers as long as they don't share a Position (spec §5
// says the core itself is single-threaded, but nothing here prevents
// reuse across independent searches).
func New() *Evaluator {
	return &Evaluator{}
}

// Classification is the result of Classify: either the position is
// decided (Terminal, with Winner set) or it isn't (Candidates holds the
// pruned, non-empty, deterministically ordered move set).
type Classification struct {
	Terminal   bool
	Winner     hexboard.Color
	Candidates hexboard.MoveSet
}

// Classify answers spec §4.4's classify(c) for the position currently
// held by pos. c is the side about to move; Terminal results are
// reported in absolute terms (the actual winner), not relative to c —
// the DFPN core is responsible for interpreting that relative to c.
func (e *Evaluator) Classify(pos *hexboard.Position, c hexboard.Color) Classification {
	if winner, ok := decidedWinner(pos); ok {
		return Classification{Terminal: true, Winner: winner}
	}
	return Classification{Candidates: candidateMoves(pos)}
}

// decidedWinner runs a fresh connectivity check: Black wins by joining
// the north and south virtual edges, White by joining west and east.
func decidedWinner(pos *hexboard.Position) (hexboard.Color, bool) {
	n := pos.NumCells()
	north, south, west, east := n, n+1, n+2, n+3
	uf := newQuickUnion(n + 4)

	size := pos.Size()
	for i := 0; i < n; i++ {
		m := hexboard.Move(i)
		color, occupied := pos.ColorAt(m)
		if !occupied {
			continue
		}
		row, col := pos.RowCol(m)

		for _, nb := range pos.Neighbors(m) {
			if nbColor, nbOccupied := pos.ColorAt(nb); nbOccupied && nbColor == color {
				uf.union(int(m), int(nb))
			}
		}

		switch color {
		case hexboard.Black:
			if row == 0 {
				uf.union(int(m), north)
			}
			if row == size-1 {
				uf.union(int(m), south)
			}
		case hexboard.White:
			if col == 0 {
				uf.union(int(m), west)
			}
			if col == size-1 {
				uf.union(int(m), east)
			}
		}
	}

	if uf.connected(north, south) {
		return hexboard.Black, true
	}
	if uf.connected(west, east) {
		return hexboard.White, true
	}
	return 0, false
}

// candidateMoves returns the empty cells worth considering, in
// ascending order. The one pruning rule applied is the classic Hex
// "fully-surrounded, single-color ring" dead cell: consecutive neighbors
// of any cell are themselves mutually adjacent, so if every neighbor of
// m is occupied by the same color, that color's stones are already
// connected to each other without m, and the other color has no stone
// touching m at all. Either way playing m can never start or extend a
// connection, so it can never be part of a shortest proof — removing it
// never prunes away a proof (spec §4.4(ii)).
func candidateMoves(pos *hexboard.Position) hexboard.MoveSet {
	empties := pos.EmptyCells()
	out := make(hexboard.MoveSet, 0, len(empties))
	for _, m := range empties {
		if !isDead(pos, m) {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		// Should not happen for a non-terminal position, but never
		// return an empty candidate set — spec §4.4(i) requires it be
		// non-empty whenever the position isn't terminal.
		return empties
	}
	return out
}

func isDead(pos *hexboard.Position, m hexboard.Move) bool {
	neighbors := pos.Neighbors(m)
	if len(neighbors) == 0 {
		return false
	}
	var ringColor hexboard.Color
	for i, nb := range neighbors {
		color, occupied := pos.ColorAt(nb)
		if !occupied {
			return false
		}
		if i == 0 {
			ringColor = color
		} else if color != ringColor {
			return false
		}
	}
	return true
}
