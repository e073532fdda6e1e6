// player.go declares the capability contract required of any RBC agent.
// Concrete players (random, scripted, belief-tracking) are deliberately
// out of scope; the game loop only ever holds this interface, so the two
// sides of a game may be different concrete types.

package rbc

import "github.com/seekerror/stdlib/pkg/lang"

// Player is the capability contract the game loop drives each half-turn.
type Player interface {
	// HandleOpponentCapture is called after the opponent's move with the
	// square of this player's piece that was captured, if any.
	HandleOpponentCapture(capture lang.Optional[Square])

	// ChooseSense must return one of the 36 squares in SenseSquares, so
	// the resulting 3x3 window lies entirely on-board.
	ChooseSense() Square

	HandleSenseResult(result SenseResult)

	// ChooseMove returns the move to request, or an empty Optional to
	// pass.
	ChooseMove() lang.Optional[Move]

	HandleMoveResult(result MoveResult)
}
