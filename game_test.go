package rbc

import (
	"context"
	"testing"

	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

// passivePlayer never senses meaningfully and always passes; used to
// drive the game loop deterministically in tests.
type passivePlayer struct{}

func (passivePlayer) HandleOpponentCapture(lang.Optional[Square]) {}
func (passivePlayer) ChooseSense() Square                         { return SenseSquares[0] }
func (passivePlayer) HandleSenseResult(SenseResult)               {}
func (passivePlayer) ChooseMove() lang.Optional[Move]             { return lang.Optional[Move]{} }
func (passivePlayer) HandleMoveResult(MoveResult)                 {}

// scriptedPlayer plays a fixed sequence of moves, then passes forever.
type scriptedPlayer struct {
	moves []string
	i     int
}

func (p *scriptedPlayer) HandleOpponentCapture(lang.Optional[Square]) {}
func (p *scriptedPlayer) ChooseSense() Square                         { return SenseSquares[0] }
func (p *scriptedPlayer) HandleSenseResult(SenseResult)               {}
func (p *scriptedPlayer) ChooseMove() lang.Optional[Move] {
	if p.i >= len(p.moves) {
		return lang.Optional[Move]{}
	}
	m, err := ParseMove(p.moves[p.i])
	if err != nil {
		panic(err)
	}
	p.i++
	return lang.Some(m)
}
func (p *scriptedPlayer) HandleMoveResult(MoveResult) {}

func TestPlayRBCTwoPassivePlayersDrawsAtFiftyMoves(t *testing.T) {
	reason := PlayRBC(context.Background(), passivePlayer{}, passivePlayer{})
	assert.Equal(t, FiftyMoveDraw, reason.Kind)
}

func TestPlayRBCIllegalMoveDisqualifiesOffender(t *testing.T) {
	// a1a8 is not in the blind-move set from the start position (the
	// rook's own pawn on a2 blocks every square on the file).
	white := &scriptedPlayer{moves: []string{"a1a8"}}
	reason := PlayRBC(context.Background(), white, passivePlayer{})
	assert.Equal(t, IllegalMove, reason.Kind)
	assert.Equal(t, White, reason.Color)
}

func TestPlayRBCKingCaptureSequence(t *testing.T) {
	white := &scriptedPlayer{moves: []string{"b1c3", "c3b5", "b5d6", "d6e8"}}
	reason := PlayRBC(context.Background(), white, passivePlayer{})
	assert.Equal(t, KingCapture, reason.Kind)
	assert.Equal(t, White, reason.Color)
}

func TestIsBlindMoveRejectsOutOfSetMove(t *testing.T) {
	b := NewBoard()
	a1a8, _ := ParseMove("a1a8")
	assert.False(t, isBlindMove(b, a1a8))

	b1c3, _ := ParseMove("b1c3")
	assert.True(t, isBlindMove(b, b1c3))
}
