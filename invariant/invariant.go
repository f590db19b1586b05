// Package invariant defines the single error type shared by hexboard and
// dfpn for programmer-error conditions: a broken bounds invariant, a
// non-tightening threshold, or a play/undo stack that got out of sync.
// These are fatal by contract (spec §7) — never recovered, only reported.
package invariant

import "fmt"

// Violation reports that an internal invariant the caller is contractually
// required to maintain did not hold. It is never expected at runtime;
// seeing one means the search or the board was driven incorrectly.
type Violation struct {
	Where string // component that detected the violation
	Msg   string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("invariant violation in %s: %s", v.Where, v.Msg)
}

// New builds a Violation.
func New(where, format string, args ...interface{}) *Violation {
	return &Violation{Where: where, Msg: fmt.Sprintf(format, args...)}
}
