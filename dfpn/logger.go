package dfpn

import (
	"log"
	"strings"
)

// StdLogger writes Progress lines through a standard library *log.Logger,
// the way zurichess's uciLogger wraps a *log.Logger rather than writing to
// os.Stdout directly. BeginSearch/EndSearch bracket the run with markers;
// Progress lines are indented by depth so descent is visually obvious.
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger wraps l. A nil l is not valid; use NulLogger instead.
func NewStdLogger(l *log.Logger) *StdLogger {
	return &StdLogger{l: l}
}

func (s *StdLogger) BeginSearch() {
	s.l.Println("search start")
}

func (s *StdLogger) EndSearch() {
	s.l.Println("search end")
}

func (s *StdLogger) Progress(depth int, line string) {
	s.l.Printf("%s%s", strings.Repeat("  ", depth), line)
}
