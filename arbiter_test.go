package rbc

import (
	"testing"

	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func applyAll(t *testing.T, b *Board, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := ParseMove(s)
		assert.NoError(t, err)
		b.MakeMove(m)
	}
}

func TestSimulateMoveSimple(t *testing.T) {
	b := NewBoard()
	b1c3, _ := ParseMove("b1c3")
	result := SimulateMove(b, lang.Some(b1c3))

	taken, ok := result.TakenMove.V()
	assert.True(t, ok)
	assert.Equal(t, b1c3, taken)
	_, captured := result.CaptureSquare.V()
	assert.False(t, captured)
}

func TestSimulateMoveNoneRequest(t *testing.T) {
	b := NewBoard()
	result := SimulateMove(b, lang.Optional[Move]{})
	_, ok := result.TakenMove.V()
	assert.False(t, ok)
	_, ok = result.CaptureSquare.V()
	assert.False(t, ok)
}

func TestSlidingMoveTruncatesAtCapture(t *testing.T) {
	b := NewBoard()
	applyAll(t, b, "b2b3", "d7d5", "c1a3", "h7h5")

	a3f8, _ := ParseMove("a3f8")
	result := SimulateMove(b, lang.Some(a3f8))

	taken, ok := result.TakenMove.V()
	assert.True(t, ok)
	a3e7, _ := ParseMove("a3e7")
	assert.Equal(t, a3e7, taken)

	capture, ok := result.CaptureSquare.V()
	assert.True(t, ok)
	e7, _ := ParseSquare("e7")
	assert.Equal(t, e7, capture)
}

func TestSlidingMoveTruncatesBeforeFriendly(t *testing.T) {
	// Rook on a1, friendly pawn on a4: requested a1a8 truncates to a1a3.
	b := ParseFEN("4k3/8/8/8/P7/8/8/R3K3 w - - 0 1")
	a1a8, _ := ParseMove("a1a8")
	result := SimulateMove(b, lang.Some(a1a8))

	taken, ok := result.TakenMove.V()
	assert.True(t, ok)
	a1a3, _ := ParseMove("a1a3")
	assert.Equal(t, a1a3, taken)
	_, captured := result.CaptureSquare.V()
	assert.False(t, captured)
}

func TestCastleThroughCheckCompletesViaArbiter(t *testing.T) {
	b := ParseFEN("4k3/8/b7/8/8/8/8/4K2R w K - 0 1")
	e1g1, _ := ParseMove("e1g1")
	result := SimulateMove(b, lang.Some(e1g1))

	taken, ok := result.TakenMove.V()
	assert.True(t, ok)
	assert.Equal(t, e1g1, taken)
	_, captured := result.CaptureSquare.V()
	assert.False(t, captured)
}

func TestCastleBlockedFailsViaArbiter(t *testing.T) {
	b := ParseFEN("4k3/8/8/8/8/8/8/4K1NR w K - 0 1")
	e1g1, _ := ParseMove("e1g1")
	result := SimulateMove(b, lang.Some(e1g1))

	_, ok := result.TakenMove.V()
	assert.False(t, ok, "castle through an occupied square must fail")
}

func TestPawnDiagonalOntoEmptyNoEPRejected(t *testing.T) {
	b := ParseFEN("4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	e4d5, _ := ParseMove("e4d5")
	result := SimulateMove(b, lang.Some(e4d5))

	_, ok := result.TakenMove.V()
	assert.False(t, ok)
}

func TestPawnDiagonalOntoEPTarget(t *testing.T) {
	b := NewBoard()
	applyAll(t, b, "e2e4", "a7a6", "e4e5", "d7d5")

	exd6, _ := ParseMove("e5d6")
	result := SimulateMove(b, lang.Some(exd6))

	taken, ok := result.TakenMove.V()
	assert.True(t, ok)
	assert.Equal(t, exd6, taken)

	capture, ok := result.CaptureSquare.V()
	assert.True(t, ok)
	d5, _ := ParseSquare("d5")
	assert.Equal(t, d5, capture, "the capture square is the passed pawn, not the destination")
}

func TestSimulateSenseExcludesOwnPieces(t *testing.T) {
	b := NewBoard()
	e1, _ := ParseSquare("e1")
	result := SimulateSense(b, e1)

	assert.Equal(t, Empty, result.King, "white's own king is never reported")
	assert.Equal(t, Empty, result.Pawn|result.Knight|result.Bishop|result.Rook|result.Queen|result.King)
}

func TestSimulateSenseReportsOpponentPiecesInWindow(t *testing.T) {
	b := NewBoard()
	d5, _ := ParseSquare("d5")
	applyAll(t, b, "e2e4", "d7d5")

	result := SimulateSense(b, d5)
	union := result.Pawn | result.Knight | result.Bishop | result.Rook | result.Queen | result.King
	opponent := b.ColorCombined(Black)
	assert.Equal(t, opponent&senseMasks[d5], union)
	assert.Equal(t, Empty, union&^senseMasks[d5], "every reported square lies inside the sense window")
}

func TestCaptureSquareProjection(t *testing.T) {
	b := NewBoard()
	applyAll(t, b, "e2e4", "a7a6", "e4e5", "d7d5")

	exd6, _ := ParseMove("e5d6")
	sq, ok := CaptureSquare(b, exd6).V()
	assert.True(t, ok)
	d5, _ := ParseSquare("d5")
	assert.Equal(t, d5, sq)
}
