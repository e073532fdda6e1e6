// movegen.go implements the pseudolegal move generator: a stateful
// iterator over a small, fixed-capacity array of per-source move
// records, built once from a board snapshot. The per-piece generation
// algorithms (pawn pushes/captures/en-passant, knight/king leaps via
// precomputed masks, sliding pieces via magic lookup, castling) are
// adapted from the teacher's genPawnMoves/genNormalMoves/genKingMoves,
// restructured from an eagerly-filled MoveList into source/dest-mask
// records so the generator can be queried incrementally (len, masked
// iteration, permanent and transient destination filtering) the way a
// belief-tracking RBC player needs.

package rbc

// maxRecords bounds the generator's record array: one record per
// originating piece that has any pseudolegal destination. A position has
// at most 16 pieces per side plus a promotion-capable pawn never spans
// two records, so 18 leaves headroom without ever heap-allocating.
const maxRecords = 18

type genRecord struct {
	source Square
	dest   BitBoard
	promo  bool
}

var promoOrder = [4]Piece{Knight, Bishop, Rook, Queen}

// Gen is a stateful pseudolegal move iterator over a frozen snapshot of
// the board at construction time. Zero heap allocation occurs in
// NewPseudoLegal or Next.
type Gen struct {
	recs [maxRecords]genRecord
	n    int
	mask BitBoard // iterator mask, AllSquares when unrestricted

	ri         int
	promoDest  Square
	promoStage int
}

// NewPseudoLegal fills the generator for the side to move on b. The
// board is only read, never mutated. Returned by value, matching the
// original's stack-resident ArrayVec-backed MoveGen
// (original_source/src/movegen/movegen.rs's new_pseudolegal): a
// pointer return would force the generator's fixed-size record array
// to escape to the heap on every call, which spec §5 forbids.
func NewPseudoLegal(b *Board) Gen {
	g := Gen{mask: AllSquares, promoDest: NoSquare}
	genPawnRecords(b, &g)
	genLeaperRecords(b, &g, Knight, knightAttacks[:])
	genSliderRecords(b, &g)
	genLeaperRecords(b, &g, King, kingAttacks[:])
	genCastleRecords(b, &g, false)
	return g
}

// NewBlind fills the generator with the RBC blind-move set: castling
// ignores check entirely (only rights + empty-between-squares matter),
// and pawn diagonal moves are additionally allowed onto empty squares.
// Returned by value for the same reason as NewPseudoLegal.
func NewBlind(b *Board) Gen {
	g := Gen{mask: AllSquares, promoDest: NoSquare}
	genPawnRecords(b, &g)
	genBlindPawnDiagonals(b, &g)
	genLeaperRecords(b, &g, Knight, knightAttacks[:])
	genSliderRecords(b, &g)
	genLeaperRecords(b, &g, King, kingAttacks[:])
	genCastleRecords(b, &g, true)
	return g
}

func (g *Gen) push(source Square, dest BitBoard, promo bool) {
	if dest == 0 {
		return
	}
	for i := 0; i < g.n; i++ {
		if g.recs[i].source == source && g.recs[i].promo == promo {
			g.recs[i].dest |= dest
			return
		}
	}
	if g.n >= maxRecords {
		return
	}
	g.recs[g.n] = genRecord{source: source, dest: dest, promo: promo}
	g.n++
}

// mergeDiagonal folds an extra destination mask into an existing record
// for the same source, or appends a new one. Used so blind pawn-diagonal
// generation (which allows empty squares) shares a single record with
// the pseudolegal diagonal captures already produced for that pawn.
func (g *Gen) mergeDiagonal(source Square, dest BitBoard, promo bool) {
	for i := 0; i < g.n; i++ {
		if g.recs[i].source == source && g.recs[i].promo == promo {
			g.recs[i].dest |= dest
			return
		}
	}
	g.push(source, dest, promo)
}

// Next yields the next move, or ok=false when exhausted.
func (g *Gen) Next() (m Move, ok bool) {
	for {
		if g.promoDest != NoSquare {
			p := promoOrder[g.promoStage]
			g.promoStage++
			m = NewPromotionMove(g.recs[g.ri].source, g.promoDest, p)
			if g.promoStage == len(promoOrder) {
				g.promoDest = NoSquare
			}
			return m, true
		}
		if g.ri >= g.n {
			return 0, false
		}
		rec := &g.recs[g.ri]
		avail := rec.dest & g.mask
		if avail == 0 {
			g.ri++
			continue
		}
		sq := avail.LSB()
		rec.dest &^= sq.BitBoard()
		if rec.promo {
			g.promoDest = sq
			g.promoStage = 0
			continue
		}
		return NewMove(rec.source, sq), true
	}
}

// Len returns the exact remaining move count under the current iterator
// mask, without consuming the iterator.
func (g *Gen) Len() int {
	total := 0
	if g.promoDest != NoSquare {
		total += len(promoOrder) - g.promoStage
	}
	for i := g.ri; i < g.n; i++ {
		n := (g.recs[i].dest & g.mask).Count()
		if g.recs[i].promo {
			n *= len(promoOrder)
		}
		total += n
	}
	return total
}

// SetIteratorMask restricts subsequent Next calls to destinations in
// mask and resets iteration to the start. Records with any destination
// intersecting mask are moved ahead of records with none, so a caller
// doing masked legality filtering can stop at the first all-zero
// record.
func (g *Gen) SetIteratorMask(mask BitBoard) {
	g.mask = mask
	g.ri = 0
	g.promoDest = NoSquare
	g.promoStage = 0

	write := 0
	for read := 0; read < g.n; read++ {
		if g.recs[read].dest&mask != 0 {
			g.recs[write], g.recs[read] = g.recs[read], g.recs[write]
			write++
		}
	}
}

// RemoveMask permanently clears any destination in mask from every
// record.
func (g *Gen) RemoveMask(mask BitBoard) {
	for i := range g.recs[:g.n] {
		g.recs[i].dest &^= mask
	}
}

// RemoveMove removes the specific destination bit for m's source,
// reporting whether it was present.
func (g *Gen) RemoveMove(m Move) bool {
	for i := range g.recs[:g.n] {
		if g.recs[i].source == m.From() && g.recs[i].dest.Has(m.To()) {
			g.recs[i].dest &^= m.To().BitBoard()
			return true
		}
	}
	return false
}

func genLeaperRecords(b *Board, g *Gen, p Piece, table []BitBoard) {
	us := b.SideToMove()
	own := b.ColorCombined(us)
	pieces := b.Pieces(p) & own
	for pieces != 0 {
		sq := pieces.PopLSB()
		g.push(sq, table[sq]&^own, false)
	}
}

func genSliderRecords(b *Board, g *Gen) {
	us := b.SideToMove()
	own := b.ColorCombined(us)
	occ := b.Combined()

	bishops := (b.Pieces(Bishop) | b.Pieces(Queen)) & own
	for bishops != 0 {
		sq := bishops.PopLSB()
		g.push(sq, lookupBishopAttacks(sq, occ)&^own, false)
	}
	rooks := (b.Pieces(Rook) | b.Pieces(Queen)) & own
	for rooks != 0 {
		sq := rooks.PopLSB()
		g.push(sq, lookupRookAttacks(sq, occ)&^own, false)
	}
}

func genPawnRecords(b *Board, g *Gen) {
	us := b.SideToMove()
	occ := b.Combined()
	enemies := b.ColorCombined(us.Flip())
	pawns := b.Pieces(Pawn) & b.ColorCombined(us)

	startRank, promoRank := rank2, rank8
	dir := 8
	if us == Black {
		startRank, promoRank = rank7, rank1
		dir = -8
	}

	ep := BitBoard(0)
	if b.EnPassant() != NoSquare {
		ep = epCaptureSquares(b.EnPassant(), us)
	}

	for pawns != 0 {
		from := pawns.PopLSB()
		var push BitBoard
		fwd := from.Forward(us)
		single := fwd.BitBoard()
		if single&occ == 0 {
			push |= single
			if from.BitBoard()&startRank != 0 {
				dbl := Square(int(from) + 2*dir).BitBoard()
				if dbl&occ == 0 {
					push |= dbl
				}
			}
		}
		isPromo := single&promoRank != 0
		if push != 0 {
			if isPromo {
				g.push(from, push&promoRank, true)
				if push&^promoRank != 0 {
					g.push(from, push&^promoRank, false)
				}
			} else {
				g.push(from, push, false)
			}
		}

		attacks := pawnAttacks[us][from] & (enemies | ep)
		if attacks != 0 {
			promoAttacks := attacks & promoRank
			plainAttacks := attacks &^ promoRank
			if promoAttacks != 0 {
				g.push(from, promoAttacks, true)
			}
			if plainAttacks != 0 {
				g.push(from, plainAttacks, false)
			}
		}
	}
}

// genBlindPawnDiagonals extends each pawn's diagonal-capture record to
// also include empty diagonal squares, since a blind player cannot see
// whether the opponent actually stands there.
func genBlindPawnDiagonals(b *Board, g *Gen) {
	us := b.SideToMove()
	pawns := b.Pieces(Pawn) & b.ColorCombined(us)
	promoRank := rank8
	if us == Black {
		promoRank = rank1
	}
	empties := ^b.Combined()

	for bb := pawns; bb != 0; {
		from := bb.PopLSB()
		empty := pawnAttacks[us][from] & empties
		if empty == 0 {
			continue
		}
		promo := empty & promoRank
		plain := empty &^ promoRank
		if promo != 0 {
			g.mergeDiagonal(from, promo, true)
		}
		if plain != 0 {
			g.mergeDiagonal(from, plain, false)
		}
	}
}

// epCaptureSquares returns the diagonal destination(s) a pawn could land
// on to capture the pawn sitting on epSquare.
func epCaptureSquares(epSquare Square, mover Color) BitBoard {
	dest := epSquare.Forward(mover)
	if dest == NoSquare {
		return 0
	}
	return dest.BitBoard()
}

// genCastleRecords appends castling records. blind=true relaxes the
// check-through-squares constraint entirely (rights + empty-between
// only); blind=false (pseudolegal) additionally requires that the king's
// current square and every square it crosses, including the landing
// square, are not attacked by the opponent -- this is the load-bearing
// distinction from the blind generator (see the RBC arbiter's castling
// completion check, which only re-verifies the empty-between
// precondition regardless of which generator produced the request).
func genCastleRecords(b *Board, g *Gen, blind bool) {
	us := b.SideToMove()
	rights := b.CastleRights(us)
	occ := b.Combined()

	king := Square(4)
	if us == Black {
		king = 60
	}

	tryCastle := func(side CastleSide) {
		var between BitBoard
		var kingTo, transit Square
		if side == Kingside {
			if rights&RightKingside == 0 {
				return
			}
			between = Square(king+1).BitBoard() | Square(king+2).BitBoard()
			kingTo = king + 2
			transit = king + 1
		} else {
			if rights&RightQueenside == 0 {
				return
			}
			between = Square(king-1).BitBoard() | Square(king-2).BitBoard() | Square(king-3).BitBoard()
			kingTo = king - 2
			transit = king - 1
		}
		if occ&between != 0 {
			return
		}
		if !blind {
			if attackedBy(b, king, us.Flip()) || attackedBy(b, transit, us.Flip()) || attackedBy(b, kingTo, us.Flip()) {
				return
			}
		}
		g.push(king, kingTo.BitBoard(), false)
	}
	tryCastle(Kingside)
	tryCastle(Queenside)
}

// attackedBy reports whether sq is attacked by any piece of color by on
// the current occupancy. Used only to gate pseudolegal castling through
// check; the generator otherwise never filters on check (king capture,
// not checkmate, is the RBC terminal condition).
func attackedBy(b *Board, sq Square, by Color) bool {
	occ := b.Combined()
	byPieces := b.ColorCombined(by)
	if pawnAttacks[by.Flip()][sq]&b.Pieces(Pawn)&byPieces != 0 {
		return true
	}
	if knightAttacks[sq]&b.Pieces(Knight)&byPieces != 0 {
		return true
	}
	if kingAttacks[sq]&b.Pieces(King)&byPieces != 0 {
		return true
	}
	if lookupBishopAttacks(sq, occ)&(b.Pieces(Bishop)|b.Pieces(Queen))&byPieces != 0 {
		return true
	}
	if lookupRookAttacks(sq, occ)&(b.Pieces(Rook)|b.Pieces(Queen))&byPieces != 0 {
		return true
	}
	return false
}
