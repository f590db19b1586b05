package dfpn

import (
	"benzene/hexboard"
	"benzene/hexeval"
)

// Evaluator is the collaborator contract from spec §4.4: given the
// current position and a side to move, classify it as terminal or
// return a pruned, non-empty candidate move set. hexeval.Evaluator is
// the production implementation; tests substitute fakes that pin exact
// (hash -> classification) scenarios without needing a real board to
// reach them (see fake_evaluator_test.go).
type Evaluator interface {
	Classify(pos *hexboard.Position, c hexboard.Color) hexeval.Classification
}
