// game.go drives the turn loop between two player agents: sense, move,
// legality gating, halfmove-clock tracking, and terminal classification.
// Grounded on the original play_rbc/do_half_turn/do_move/do_sense
// functions, restructured around this package's Board/arbiter/generator
// types, with contextual logw logging (the herohde-morlock call shape) in
// place of the original's bare println! diagnostics.

package rbc

import (
	"context"

	"github.com/seekerror/logw"
)

// ReasonKind classifies why a game ended.
type ReasonKind int

const (
	KingCapture ReasonKind = iota
	IllegalMove
	FiftyMoveDraw
)

// GameOverReason is the terminal result of a game. Color is the winner
// for KingCapture and the offender for IllegalMove; it is unused for
// FiftyMoveDraw.
type GameOverReason struct {
	Kind  ReasonKind
	Color Color
}

func (r GameOverReason) String() string {
	switch r.Kind {
	case KingCapture:
		return "king capture, winner " + r.Color.String()
	case IllegalMove:
		return "illegal move by " + r.Color.String()
	case FiftyMoveDraw:
		return "fifty-move draw"
	}
	return "unknown"
}

const fiftyMoveHalfmoveLimit = 100

// PlayRBC runs a full game between white and black on a fresh starting
// board and returns the terminal reason. White plays the opening
// half-turn without a sense step, a deliberate fixed design choice so
// games are deterministic; thereafter both sides alternate sense-then-
// move half-turns.
func PlayRBC(ctx context.Context, white, black Player) GameOverReason {
	board := NewBoard()
	halfmoveClock := 0

	logw.Debugf(ctx, "game start")

	if reason, over := doMove(ctx, board, White, white, black, &halfmoveClock); over {
		return reason
	}

	for {
		if reason, over := doHalfTurn(ctx, board, Black, black, white, &halfmoveClock); over {
			return reason
		}
		if reason, over := checkKingCapture(board); over {
			return reason
		}

		if reason, over := doHalfTurn(ctx, board, White, white, black, &halfmoveClock); over {
			return reason
		}
		if reason, over := checkKingCapture(board); over {
			return reason
		}
	}
}

func checkKingCapture(board *Board) (GameOverReason, bool) {
	toMove := board.SideToMove()
	if board.Pieces(King)&board.ColorCombined(toMove) == 0 {
		return GameOverReason{Kind: KingCapture, Color: toMove.Flip()}, true
	}
	return GameOverReason{}, false
}

func doHalfTurn(ctx context.Context, board *Board, active Color, activePlayer, passivePlayer Player, halfmoveClock *int) (GameOverReason, bool) {
	doSense(ctx, board, activePlayer)
	return doMove(ctx, board, active, activePlayer, passivePlayer, halfmoveClock)
}

func doSense(ctx context.Context, board *Board, active Player) {
	sq := active.ChooseSense()
	result := SimulateSense(board, sq)
	logw.Debugf(ctx, "sense %v", sq)
	active.HandleSenseResult(result)
}

func doMove(ctx context.Context, board *Board, activeColor Color, active, passive Player, halfmoveClock *int) (GameOverReason, bool) {
	requested := active.ChooseMove()

	if m, ok := requested.V(); ok && !isBlindMove(board, m) {
		logw.Errorf(ctx, "%v requested illegal move %v", activeColor, m)
		return GameOverReason{Kind: IllegalMove, Color: activeColor}, true
	}

	result := SimulateMove(board, requested)
	logw.Debugf(ctx, "%v move result: %+v", activeColor, result)

	zeroing := false
	if taken, ok := result.TakenMove.V(); ok {
		moved := board.PieceOn(taken.From())
		_, captured := result.CaptureSquare.V()
		zeroing = captured || moved == Pawn
		board.MakeMove(taken)
	} else {
		board.NullMove()
	}

	if zeroing {
		*halfmoveClock = 0
	} else {
		*halfmoveClock++
	}

	active.HandleMoveResult(result)
	passive.HandleOpponentCapture(result.CaptureSquare)

	if *halfmoveClock >= fiftyMoveHalfmoveLimit {
		return GameOverReason{Kind: FiftyMoveDraw}, true
	}
	return GameOverReason{}, false
}

// isBlindMove reports whether m is a member of board's blind-move set.
func isBlindMove(board *Board, m Move) bool {
	g := NewBlind(board)
	for {
		next, ok := g.Next()
		if !ok {
			return false
		}
		if next == m {
			return true
		}
	}
}
