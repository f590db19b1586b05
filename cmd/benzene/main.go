// Command benzene drives a single DFPN proof of a Hex position read from
// standard input. It follows zurichess/main.go's flag shape (cpuprofile,
// version) but, since full GTP dispatch is out of scope (spec.md §1),
// replaces zurichess/uci.go's UCI command loop with a single-shot solve:
// read a board, run StartSearch once, print the report, exit.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"benzene/dfpn"
	"benzene/hexboard"
	"benzene/hexeval"
)

var (
	buildVersion = "(devel)"

	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	version    = flag.Bool("version", false, "only print version and exit")
	size       = flag.Int("size", 5, "board size (cells per side)")
	ttExponent = flag.Uint("tt", dfpn.DefaultTTSizeExponent, "log2 of the transposition table size")
	gfx        = flag.Bool("gfx", false, "emit gogui-gfx frames on every root bound update")
)

func main() {
	fmt.Printf("benzene %v, built with %v, running on %v\n", buildVersion, runtime.Version(), runtime.GOARCH)

	flag.Parse()
	if *version {
		return
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	log.SetOutput(os.Stderr)
	log.SetPrefix("benzene: ")
	log.SetFlags(0)

	pos, toMove, err := readBoard(os.Stdin, *size)
	if err != nil {
		log.Fatal(err)
	}

	opts := dfpn.Options{TTSizeExponent: *ttExponent}
	if *gfx {
		opts.GUIHook = func(u dfpn.RootUpdate) {
			fmt.Print(dfpn.DumpGuiFx(u))
		}
	}

	result := dfpn.StartSearch(toMove, pos, hexeval.New(), opts)
	fmt.Print(dfpn.FormatStats(result))
	fmt.Printf("Winner: %v\n", result.Winner)
}

// readBoard reads a size x size grid of 'b'/'w'/'.' characters, one row
// per line, followed by a line naming the side to move ("black" or
// "white"), and replays it onto a fresh Position move by move,
// alternating Black and White stones starting with Black and taking
// each color's stones in row-major order, so the resulting Zobrist hash
// and play/undo stack are
// exactly what a real search would have produced.
func readBoard(r io.Reader, boardSize int) (*hexboard.Position, hexboard.Color, error) {
	pos := hexboard.NewPosition(boardSize)
	scanner := bufio.NewScanner(r)

	rows := make([]string, 0, boardSize)
	for len(rows) < boardSize && scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if len(rows) != boardSize {
		return nil, 0, fmt.Errorf("benzene: expected %d board rows, got %d", boardSize, len(rows))
	}

	type placement struct {
		m hexboard.Move
		c hexboard.Color
	}
	var black, white []placement
	for row, line := range rows {
		if len(line) < boardSize {
			return nil, 0, fmt.Errorf("benzene: row %d too short: %q", row, line)
		}
		for col := 0; col < boardSize; col++ {
			m := pos.CellFromRowCol(row, col)
			switch line[col] {
			case 'b', 'B':
				black = append(black, placement{m, hexboard.Black})
			case 'w', 'W':
				white = append(white, placement{m, hexboard.White})
			case '.', ' ':
			default:
				return nil, 0, fmt.Errorf("benzene: row %d: unrecognized cell %q", row, line[col])
			}
		}
	}

	for i := 0; i < len(black) || i < len(white); i++ {
		if i < len(black) {
			pos.Play(hexboard.Black, black[i].m)
		}
		if i < len(white) {
			pos.Play(hexboard.White, white[i].m)
		}
	}

	toMove := hexboard.Black
	if scanner.Scan() {
		switch scanner.Text() {
		case "white":
			toMove = hexboard.White
		case "black":
			toMove = hexboard.Black
		}
	}
	if toMove != pos.SideToMove() {
		return nil, 0, fmt.Errorf("benzene: stated side to move %v disagrees with stone count parity (board expects %v)", toMove, pos.SideToMove())
	}
	return pos, toMove, nil
}
