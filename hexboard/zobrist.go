package hexboard

import "math/rand"

// MaxSize is the largest board edge length this package supports. Real
// Hex is played on boards up to 19x19; the zobrist tables are sized for
// that, the way zurichess sizes its piece-square tables for a fixed
// 8x8 chess board.
const MaxSize = 19

// MaxCells is the number of cells on a MaxSize x MaxSize board.
const MaxCells = MaxSize * MaxSize

var (
	// zobristCell[color][cell] is XORed in when a stone of color is
	// placed on cell, and XORed out again on undo.
	zobristCell [2][MaxCells]Hash

	// zobristSide is XORed in every time the side to move changes, so
	// a position and its mirror-with-different-side-to-move never
	// collide.
	zobristSide Hash
)

func init() {
	// Fixed seed so hashes (and therefore search results, per spec §5
	// determinism) are reproducible across runs.
	rng := rand.New(rand.NewSource(0x48455829424f4152)) // "HEX)BOAR"

	for color := 0; color < 2; color++ {
		for cell := 0; cell < MaxCells; cell++ {
			zobristCell[color][cell] = Hash(rng.Uint64())
		}
	}
	zobristSide = Hash(rng.Uint64())
}
