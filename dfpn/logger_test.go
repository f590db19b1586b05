package dfpn

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdLogger_WritesThroughGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStdLogger(log.New(&buf, "", 0))

	sl.BeginSearch()
	sl.Progress(2, "descend into 7")
	sl.EndSearch()

	out := buf.String()
	assert.Contains(t, out, "search start")
	assert.Contains(t, out, "descend into 7")
	assert.Contains(t, out, "search end")
}

func TestNulLogger_DoesNotPanic(t *testing.T) {
	var l Logger = NulLogger{}
	assert.NotPanics(t, func() {
		l.BeginSearch()
		l.Progress(0, "anything")
		l.EndSearch()
	})
}
