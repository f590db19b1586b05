package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benzene/hexboard"
)

func TestReadBoard_EmptyBoard(t *testing.T) {
	input := "...\n...\n...\nblack\n"
	pos, toMove, err := readBoard(strings.NewReader(input), 3)
	require.NoError(t, err)
	assert.Equal(t, hexboard.Black, toMove)
	assert.Equal(t, hexboard.MoveSet{0, 1, 2, 3, 4, 5, 6, 7, 8}, pos.EmptyCells())
}

func TestReadBoard_PlacesStonesAndSideToMove(t *testing.T) {
	input := "b..\n.w.\n...\nblack\n"
	pos, toMove, err := readBoard(strings.NewReader(input), 3)
	require.NoError(t, err)
	assert.Equal(t, hexboard.Black, toMove)

	color, occupied := pos.ColorAt(pos.CellFromRowCol(0, 0))
	require.True(t, occupied)
	assert.Equal(t, hexboard.Black, color)

	color, occupied = pos.ColorAt(pos.CellFromRowCol(1, 1))
	require.True(t, occupied)
	assert.Equal(t, hexboard.White, color)
}

func TestReadBoard_RejectsTooFewRows(t *testing.T) {
	_, _, err := readBoard(strings.NewReader("...\n...\nblack\n"), 3)
	assert.Error(t, err)
}

func TestReadBoard_RejectsSideToMoveMismatch(t *testing.T) {
	// One stone placed, but "black" claimed as side to move: after one
	// Black placement the board expects White next, so asserting "black"
	// here is the mismatch under test.
	input := "b..\n...\n...\nblack\n"
	_, _, err := readBoard(strings.NewReader(input), 3)
	assert.Error(t, err)
}
