// arbiter.go implements the RBC arbiter: how a requested blind move
// actually resolves against the true, hidden board, and what a sense
// window reveals. Translated from the original rbc.rs simulate_move /
// simulate_sense / simulate_sliding_move / simulate_pawn_move functions,
// kept in their same per-piece-kind dispatch shape.

package rbc

import "github.com/seekerror/stdlib/pkg/lang"

// SenseResult reports, for each piece kind, the opponent's pieces of
// that kind that fall inside the sensed window. The active player's own
// pieces are never included; they already know where those are.
type SenseResult struct {
	Pawn, Knight, Bishop, Rook, Queen, King BitBoard
}

// MoveResult is the outcome of a requested move as resolved by the
// arbiter: the move actually performed (possibly truncated from the
// request) and the square whose occupant was removed, if any. Both are
// empty for an illegal-to-complete or null request.
type MoveResult struct {
	TakenMove     lang.Optional[Move]
	CaptureSquare lang.Optional[Square]
}

// SimulateSense returns the opponent pieces visible inside the 3x3
// window centered on sq.
func SimulateSense(b *Board, sq Square) SenseResult {
	mask := senseMasks[sq]
	opponent := b.ColorCombined(b.SideToMove().Flip())
	visible := opponent & mask
	return SenseResult{
		Pawn:   b.Pieces(Pawn) & visible,
		Knight: b.Pieces(Knight) & visible,
		Bishop: b.Pieces(Bishop) & visible,
		Rook:   b.Pieces(Rook) & visible,
		Queen:  b.Pieces(Queen) & visible,
		King:   b.Pieces(King) & visible,
	}
}

// SimulateMove resolves a requested blind move against the true board.
// The caller guarantees requested, if present, is a member of the
// current board's blind-move set; behavior on a move with no piece on
// its source square is otherwise undefined by contract, and this
// implementation defensively returns an empty result for it.
func SimulateMove(b *Board, requested lang.Optional[Move]) MoveResult {
	m, ok := requested.V()
	if !ok {
		return MoveResult{}
	}
	piece := b.PieceOn(m.From())
	if piece == NoPromotion {
		return MoveResult{}
	}
	switch piece {
	case King:
		if abs(int(m.To())-int(m.From())) == 2 {
			return simulateCastle(b, m)
		}
		return simulateSimpleMove(b, m)
	case Knight:
		return simulateSimpleMove(b, m)
	case Pawn:
		return simulatePawnMove(b, m)
	default: // Bishop, Rook, Queen
		return simulateSlidingMove(b, m)
	}
}

// simulateCastle completes a requested castle iff every square between
// king and rook is empty; the generator's own constraints (blind
// ignores check, pseudolegal does not) already decided whether the
// request was offerable, but the arbiter re-checks occupancy regardless
// of which generator produced it.
func simulateCastle(b *Board, m Move) MoveResult {
	source, dest := m.From(), m.To()
	rookFrom, _ := castleRookSquares(dest)
	gap := between[source][rookFrom]
	if _, occupied := anyOccupied(b, gap); occupied {
		return MoveResult{}
	}
	return MoveResult{TakenMove: lang.Some(m)}
}

func anyOccupied(b *Board, squares BitBoard) (Square, bool) {
	if squares&b.Combined() == 0 {
		return NoSquare, false
	}
	return (squares & b.Combined()).LSB(), true
}

func simulateSimpleMove(b *Board, m Move) MoveResult {
	dest := m.To()
	if c, ok := b.ColorOn(dest); ok && c == b.SideToMove().Flip() {
		return MoveResult{TakenMove: lang.Some(m), CaptureSquare: lang.Some(dest)}
	}
	return MoveResult{TakenMove: lang.Some(m)}
}

// simulateSlidingMove walks the squares strictly between source and
// destination one step at a time, in order of increasing distance,
// truncating the move at the first occupied square. Bishop/Rook/Queen
// always go through this path; so does a pawn push along its file
// (handled by simulatePawnMove delegating here). The walk advances
// file/rank by the fixed unit step derived from source and dest (the
// generator guarantees the pair shares a rank, file, or diagonal), so
// no intermediate square list is ever materialized.
func simulateSlidingMove(b *Board, m Move) MoveResult {
	source, dest := m.From(), m.To()
	them := b.SideToMove().Flip()
	fileStep, rankStep := rayStep(source, dest)

	sq := source
	for {
		next := Square((sq.Rank()+rankStep)*8 + sq.File() + fileStep)
		color, occupied := b.ColorOn(next)
		if occupied {
			if color == them {
				return MoveResult{TakenMove: lang.Some(NewMove(source, next)), CaptureSquare: lang.Some(next)}
			}
			// Friendly piece blocks the slide; truncate to the last
			// empty square reached, or reject if that is still source.
			if sq == source {
				return MoveResult{}
			}
			return MoveResult{TakenMove: lang.Some(NewMove(source, sq))}
		}
		sq = next
		if sq == dest {
			return MoveResult{TakenMove: lang.Some(m)}
		}
	}
}

// rayStep returns the per-step file and rank delta (-1, 0, or 1) from
// source towards dest along their shared rank, file, or diagonal.
func rayStep(source, dest Square) (fileStep, rankStep int) {
	return sign(dest.File() - source.File()), sign(dest.Rank() - source.Rank())
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func simulatePawnMove(b *Board, m Move) MoveResult {
	source, dest := m.From(), m.To()
	if source.File() == dest.File() {
		return simulateSlidingMove(b, m)
	}
	if c, ok := b.ColorOn(dest); ok && c == b.SideToMove().Flip() {
		return MoveResult{TakenMove: lang.Some(m), CaptureSquare: lang.Some(dest)}
	}
	ep := b.EnPassant()
	if ep != NoSquare && capturedPawnSquare(dest, b.SideToMove()) == ep {
		return MoveResult{TakenMove: lang.Some(m), CaptureSquare: lang.Some(ep)}
	}
	return MoveResult{}
}

// CaptureSquare is the lighter-weight projection used by belief
// trackers: it returns the capture square a move would produce without
// building a full MoveResult, and does not model sliding-move
// truncation (belief trackers enumerate candidates from pseudolegal sets
// on their own hypothetical boards, where blockers are already known).
func CaptureSquare(b *Board, m Move) lang.Optional[Square] {
	dest := m.To()
	if c, ok := b.ColorOn(dest); ok && c == b.SideToMove().Flip() {
		return lang.Some(dest)
	}
	if b.PieceOn(m.From()) == Pawn && m.From().File() != dest.File() {
		ep := b.EnPassant()
		if ep != NoSquare && capturedPawnSquare(dest, b.SideToMove()) == ep {
			return lang.Some(ep)
		}
	}
	return lang.Optional[Square]{}
}
