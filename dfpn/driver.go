package dfpn

import (
	"fmt"
	"strings"
	"time"

	"benzene/hexboard"
)

// DefaultTTSizeExponent gives a table of 2^20 ~= 1M entries by default.
const DefaultTTSizeExponent uint = 20

// Options configures a single StartSearch call.
type Options struct {
	// TTSizeExponent sizes the transposition table to 2^k entries.
	// Zero means DefaultTTSizeExponent.
	TTSizeExponent uint
	// Logger receives progress notifications. Nil means silent.
	Logger Logger
	// ProgressDepth bounds how deep Progress lines are emitted from;
	// 0 means root-only, matching the original's default.
	ProgressDepth int
	// GUIHook, if set, is invoked at depth 0 after every root child
	// bound refresh (spec §6.2).
	GUIHook func(RootUpdate)
}

// Result is what StartSearch reports once a position has been solved.
type Result struct {
	Winner     hexboard.Color
	RootBounds Bounds
	PV         hexboard.MoveSet
	Stats      Stats
	TTStats    TTStats
	Elapsed    time.Duration
}

// StartSearch proves win or loss for colorToMove in pos (spec §4.6).
// pos is borrowed for the duration of the search and is guaranteed to
// be returned to its starting state — play/undo are always balanced,
// even if the Evaluator panics partway through.
func StartSearch(colorToMove hexboard.Color, pos *hexboard.Position, eval Evaluator, opts Options) Result {
	k := opts.TTSizeExponent
	if k == 0 {
		k = DefaultTTSizeExponent
	}
	tt := NewTT(k)
	s := newSearcher(pos, eval, tt, opts)

	s.log.BeginSearch()
	start := time.Now()
	s.mid(rootSeed(), 0)
	elapsed := time.Since(start)
	s.log.EndSearch()

	root, ok := tt.Get(pos.Hash())
	if !ok {
		panic("dfpn: root entry missing after search completed")
	}

	winner := colorToMove
	if root.Bounds.Phi != 0 {
		winner = colorToMove.Opponent()
	}

	return Result{
		Winner:     winner,
		RootBounds: root.Bounds,
		PV:         principalVariation(pos, tt),
		Stats:      s.stats,
		TTStats:    tt.Stats(),
		Elapsed:    elapsed,
	}
}

// principalVariation walks bestMove pointers from the root through the
// table until it hits NoMove or a miss (spec §4.6 step 5, §8 S6). It
// plays and undoes every move it walks through so pos ends where it
// started.
func principalVariation(pos *hexboard.Position, tt *TT) hexboard.MoveSet {
	var pv hexboard.MoveSet
	var played []hexboard.Move

	for {
		entry, ok := tt.Get(pos.Hash())
		if !ok || entry.BestMove == hexboard.NoMove {
			break
		}
		color := pos.SideToMove()
		pos.Play(color, entry.BestMove)
		pv = append(pv, entry.BestMove)
		played = append(played, entry.BestMove)
	}

	for i := len(played) - 1; i >= 0; i-- {
		pos.Undo(played[i])
	}
	return pv
}

// FormatStats renders a human-readable report: MID calls, terminal
// nodes, wall time, MIDs/sec, TT stats and the PV — the Go-side
// equivalent of SolverDFPN::StartSearch's LogInfo block. No stability
// guarantees on this format (spec §4.6 step 6).
func FormatStats(r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Root proof number is %d\n", r.RootBounds.Phi)
	fmt.Fprintf(&b, "Root disproof number is %d\n\n", r.RootBounds.Delta)
	fmt.Fprintf(&b, "     MID calls: %d\n", r.Stats.MidCalls)
	fmt.Fprintf(&b, "Terminal nodes: %d\n", r.Stats.TerminalNodes)
	fmt.Fprintf(&b, "  Elapsed Time: %s\n", r.Elapsed)
	if secs := r.Elapsed.Seconds(); secs > 0 {
		fmt.Fprintf(&b, "      MIDs/sec: %.1f\n", float64(r.Stats.MidCalls)/secs)
	}
	fmt.Fprintf(&b, "TT: %d/%d occupied, %d hits, %d misses\n",
		r.TTStats.Occupied, r.TTStats.Capacity, r.TTStats.Hits, r.TTStats.Misses)
	fmt.Fprintf(&b, "PV: %s\n", formatPV(r.PV))
	return b.String()
}

func formatPV(pv hexboard.MoveSet) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// DumpGuiFx renders one root-update frame in the gogui-gfx text format
// (spec §6.2). The empty VAR line is carried over verbatim from the
// original — it never populated a variation there either.
func DumpGuiFx(u RootUpdate) string {
	var b strings.Builder
	b.WriteString("gogui-gfx:\n")
	b.WriteString("dfpn\n")
	// TODO: no variation is tracked to dump here either, same as upstream.
	b.WriteString("VAR\n")
	b.WriteString("LABEL")
	for i, m := range u.Children {
		bounds := u.Bounds[i]
		fmt.Fprintf(&b, " %s", m)
		switch {
		case bounds.Phi == 0:
			b.WriteString(" L")
		case bounds.Delta == 0:
			b.WriteString(" W")
		default:
			fmt.Fprintf(&b, " %d:%d", bounds.Phi, bounds.Delta)
		}
	}
	b.WriteString("\nTEXT\n\n")
	return b.String()
}
