package dfpn

import (
	"benzene/hexboard"
	"benzene/hexeval"
)

// fakeEvaluator pins an exact classification per position hash, so
// end-to-end scenarios (S1-S6, spec §8) can be built without needing a
// real board position that happens to be terminal in the right place.
type fakeEvaluator struct {
	byHash map[hexboard.Hash]hexeval.Classification
}

func newFakeEvaluator() *fakeEvaluator {
	return &fakeEvaluator{byHash: make(map[hexboard.Hash]hexeval.Classification)}
}

func (f *fakeEvaluator) terminal(h hexboard.Hash, winner hexboard.Color) {
	f.byHash[h] = hexeval.Classification{Terminal: true, Winner: winner}
}

func (f *fakeEvaluator) nonTerminal(h hexboard.Hash, candidates hexboard.MoveSet) {
	f.byHash[h] = hexeval.Classification{Candidates: candidates}
}

func (f *fakeEvaluator) Classify(pos *hexboard.Position, c hexboard.Color) hexeval.Classification {
	cl, ok := f.byHash[pos.Hash()]
	if !ok {
		panic("fakeEvaluator: no scenario registered for this position")
	}
	return cl
}

// step is one (color, move) pair used to walk pos to a position whose
// hash we want, then back out again.
type step struct {
	color hexboard.Color
	move  hexboard.Move
}

// hashAt plays steps in order, captures the resulting hash, then undoes
// them in reverse so pos ends exactly where it started.
func hashAt(pos *hexboard.Position, steps ...step) hexboard.Hash {
	for _, s := range steps {
		pos.Play(s.color, s.move)
	}
	h := pos.Hash()
	for i := len(steps) - 1; i >= 0; i-- {
		pos.Undo(steps[i].move)
	}
	return h
}
