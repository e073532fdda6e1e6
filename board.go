// board.go defines the canonical position: per-piece and per-color
// bitboards, side to move, castling rights, en-passant target, and an
// incrementally maintained Zobrist hash. Mutation follows the teacher's
// placePiece/removePiece helper shape (position.go), setting bits with OR
// and clearing them with AND-NOT, generalized from
// its 15-slot combined piece+color indexing to the color-agnostic
// pieces[Piece]/colors[Color]/combined scheme this system requires.

package rbc

// Board is the true chess position the game loop owns, or a player's
// private belief board. Boards are plain values: copying one is a deep
// copy, so the outer loop and belief trackers can clone cheaply and
// mutate independently with no shared state.
type Board struct {
	pieces [NumPieces]BitBoard
	colors [2]BitBoard

	sideToMove   Color
	castleRights [2]CastleRights
	enPassant    Square // NoSquare when not live

	hash uint64
}

// Combined returns the union of every occupied square.
func (b *Board) Combined() BitBoard { return b.colors[White] | b.colors[Black] }

// Pieces returns the bitboard of every piece of the given kind,
// color-agnostic.
func (b *Board) Pieces(p Piece) BitBoard { return b.pieces[p] }

// ColorCombined returns the bitboard of every square occupied by color c.
func (b *Board) ColorCombined(c Color) BitBoard { return b.colors[c] }

// SideToMove returns the color on move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastleRights returns the castling rights bitset for color c.
func (b *Board) CastleRights(c Color) CastleRights { return b.castleRights[c] }

// EnPassant returns the currently live en-passant target square (the
// captured pawn's square), or NoSquare.
func (b *Board) EnPassant() Square { return b.enPassant }

// Hash returns the incrementally maintained Zobrist key.
func (b *Board) Hash() uint64 { return b.hash }

// NewBoard returns the standard initial chess position.
func NewBoard() *Board {
	b := &Board{enPassant: NoSquare}
	place := func(p Piece, c Color, sqs ...Square) {
		for _, sq := range sqs {
			b.placePiece(p, c, sq)
		}
	}
	place(Pawn, White, 8, 9, 10, 11, 12, 13, 14, 15)
	place(Pawn, Black, 48, 49, 50, 51, 52, 53, 54, 55)
	place(Knight, White, 1, 6)
	place(Knight, Black, 57, 62)
	place(Bishop, White, 2, 5)
	place(Bishop, Black, 58, 61)
	place(Rook, White, 0, 7)
	place(Rook, Black, 56, 63)
	place(Queen, White, 3)
	place(Queen, Black, 59)
	place(King, White, 4)
	place(King, Black, 60)
	b.castleRights[White] = RightsBoth
	b.castleRights[Black] = RightsBoth
	b.hash = zobristHash(b)
	return b
}

func (b *Board) placePiece(p Piece, c Color, sq Square) {
	bb := sq.BitBoard()
	b.pieces[p] |= bb
	b.colors[c] |= bb
}

func (b *Board) removePiece(p Piece, c Color, sq Square) {
	bb := sq.BitBoard()
	b.pieces[p] &^= bb
	b.colors[c] &^= bb
}

// PieceOn returns the piece kind occupying sq, or NoPromotion (-1) as a
// sentinel "no piece" value if the square is empty.
func (b *Board) PieceOn(sq Square) Piece {
	bb := sq.BitBoard()
	for p := Pawn; p < NumPieces; p++ {
		if b.pieces[p]&bb != 0 {
			return p
		}
	}
	return NoPromotion
}

// ColorOn returns the color occupying sq and true, or false if empty.
func (b *Board) ColorOn(sq Square) (Color, bool) {
	bb := sq.BitBoard()
	if b.colors[White]&bb != 0 {
		return White, true
	}
	if b.colors[Black]&bb != 0 {
		return Black, true
	}
	return White, false
}

// KingSquare returns the square of color c's king. Panics if none is on
// the board; callers that may have just observed a king capture must
// check GameOverReason before calling this (programmer-error contract,
// matching the spec's error taxonomy).
func (b *Board) KingSquare(c Color) Square {
	kings := b.pieces[King] & b.colors[c]
	sq := kings.LSB()
	if sq == NoSquare {
		panic("rbc: king_square: no king on board for " + c.String())
	}
	return sq
}

// MakeMove applies m to the board. The caller guarantees m is at least
// pseudolegal for the side to move; behavior is undefined otherwise.
// Promotions replace the pawn on arrival, castling relocates the rook,
// double pawn pushes set the en-passant target, and en-passant captures
// remove the passed pawn rather than the destination occupant. The hash
// is updated incrementally alongside every other field.
func (b *Board) MakeMove(m Move) {
	us := b.sideToMove
	them := us.Flip()
	from, to := m.From(), m.To()
	moved := b.PieceOn(from)

	b.removePiece(moved, us, from)
	b.hash ^= pieceKeys[us][moved][from]

	isEnPassantCapture := moved == Pawn && from.File() != to.File() &&
		b.enPassant != NoSquare && capturedPawnSquare(to, us) == b.enPassant
	isCastle := moved == King && abs(int(to)-int(from)) == 2

	if captured, ok := b.ColorOn(to); ok {
		capturedPiece := b.PieceOn(to)
		b.removePiece(capturedPiece, captured, to)
		b.hash ^= pieceKeys[captured][capturedPiece][to]
	} else if isEnPassantCapture {
		capturedSq := capturedPawnSquare(to, us)
		b.removePiece(Pawn, them, capturedSq)
		b.hash ^= pieceKeys[them][Pawn][capturedSq]
	}

	finalPiece := moved
	if m.IsPromotion() {
		finalPiece = m.Promotion()
	}
	b.placePiece(finalPiece, us, to)
	b.hash ^= pieceKeys[us][finalPiece][to]

	if isCastle {
		rookFrom, rookTo := castleRookSquares(to)
		b.removePiece(Rook, us, rookFrom)
		b.hash ^= pieceKeys[us][Rook][rookFrom]
		b.placePiece(Rook, us, rookTo)
		b.hash ^= pieceKeys[us][Rook][rookTo]
	}

	oldEP := b.enPassant
	b.enPassant = NoSquare
	if moved == Pawn && abs(int(to)-int(from)) == 16 {
		// The en-passant field names the pawn's own square (the square
		// that would be captured), not the skipped-over square.
		b.enPassant = to
	}
	if oldEP != b.enPassant {
		if oldEP != NoSquare {
			b.hash ^= epKeys[oldEP.File()]
		}
		if b.enPassant != NoSquare {
			b.hash ^= epKeys[b.enPassant.File()]
		}
	}

	oldWhiteRights, oldBlackRights := b.castleRights[White], b.castleRights[Black]
	if moved == King {
		b.castleRights[us] = RightsNone
	}
	clearRookRight := func(c Color, sq Square) {
		switch {
		case c == White && sq == 0:
			b.castleRights[White] &^= RightQueenside
		case c == White && sq == 7:
			b.castleRights[White] &^= RightKingside
		case c == Black && sq == 56:
			b.castleRights[Black] &^= RightQueenside
		case c == Black && sq == 63:
			b.castleRights[Black] &^= RightKingside
		}
	}
	if moved == Rook {
		clearRookRight(us, from)
	}
	clearRookRight(them, to)
	if oldWhiteRights != b.castleRights[White] || oldBlackRights != b.castleRights[Black] {
		b.hash ^= castlingKeys[castleIndex(oldWhiteRights, oldBlackRights)]
		b.hash ^= castlingKeys[castleIndex(b.castleRights[White], b.castleRights[Black])]
	}

	b.sideToMove = them
	b.hash ^= sideKey
}

// NullMove flips the side to move and clears en passant without moving a
// piece. Players use it to keep belief boards aligned across a turn in
// which they did not actually move, including an RBC pass.
func (b *Board) NullMove() {
	if b.enPassant != NoSquare {
		b.hash ^= epKeys[b.enPassant.File()]
		b.enPassant = NoSquare
	}
	b.sideToMove = b.sideToMove.Flip()
	b.hash ^= sideKey
}

// ClearSquare removes whatever piece occupies sq. Used by a player to
// apply "my piece on sq was captured" after handleOpponentCapture.
// Panics if sq is empty (programmer error per the spec's error taxonomy).
func (b *Board) ClearSquare(sq Square) {
	c, ok := b.ColorOn(sq)
	if !ok {
		panic("rbc: clear_square: square " + sq.String() + " is empty")
	}
	p := b.PieceOn(sq)
	b.removePiece(p, c, sq)
	b.hash ^= pieceKeys[c][p][sq]
}

// Clone returns an independent deep copy. Boards are plain value types
// (no pointers inside), so this is just a value copy, but the explicit
// method documents the intended "cheap, no shared state" lifecycle from
// the spec: a player's belief board never aliases the game loop's board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// capturedPawnSquare maps a pawn-diagonal destination to the square of
// the pawn that double-pushed past it (the en-passant target is the
// captured pawn's square, not the destination, per the data model).
func capturedPawnSquare(dest Square, mover Color) Square {
	if mover == White {
		return dest - 8
	}
	return dest + 8
}

func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case 6: // e1g1
		return 7, 5
	case 2: // e1c1
		return 0, 3
	case 62: // e8g8
		return 63, 61
	case 58: // e8c8
		return 56, 59
	}
	panic("rbc: make_move: not a castling destination")
}
