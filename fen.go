// fen.go implements FEN parsing and serialization for building test
// boards from compact notation. This is test-vector tooling, not part
// of the core engine: RBC games never reach a FEN boundary, since
// neither side ever has the true board to serialize. Adapted from the
// teacher's fen.go, generalized from its 15-slot bitboard array to this
// package's pieces[Piece]/colors[Color] board and reworked so the
// en-passant field matches this board's "captured pawn's square"
// convention rather than FEN's own "skipped-over square" convention.
package rbc

import (
	"strconv"
	"strings"
)

// ParseFEN parses a FEN string into a Board. It is the caller's
// responsibility to pass a well-formed string; malformed input panics.
func ParseFEN(fen string) *Board {
	fields := strings.SplitN(fen, " ", 6)
	if len(fields) < 4 {
		panic("rbc: parse_fen: malformed FEN string: " + fen)
	}

	b := &Board{enPassant: NoSquare}
	parsePlacement(b, fields[0])

	active := White
	if fields[1] == "b" {
		active = Black
	}
	b.sideToMove = active

	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			b.castleRights[White] |= RightKingside
		case 'Q':
			b.castleRights[White] |= RightQueenside
		case 'k':
			b.castleRights[Black] |= RightKingside
		case 'q':
			b.castleRights[Black] |= RightQueenside
		}
	}

	if fields[3] != "-" {
		skip, err := ParseSquare(fields[3])
		if err != nil {
			panic("rbc: parse_fen: invalid en passant field: " + fields[3])
		}
		// FEN names the square the pawn skipped over; this board names
		// the pawn's own square, one rank further in the mover's
		// direction of travel.
		if active == Black {
			b.enPassant = skip.Forward(White)
		} else {
			b.enPassant = skip.Forward(Black)
		}
	}

	b.hash = zobristHash(b)
	return b
}

// SerializeFEN renders b as a FEN string. Halfmove and fullmove
// counters are not part of Board (the game loop owns the halfmove
// clock separately), so both fields are written as "0 1".
func SerializeFEN(b *Board) string {
	var fen strings.Builder
	fen.Grow(64)

	fen.WriteString(serializePlacement(b))
	fen.WriteByte(' ')

	if b.sideToMove == White {
		fen.WriteByte('w')
	} else {
		fen.WriteByte('b')
	}
	fen.WriteByte(' ')

	any := false
	if b.castleRights[White]&RightKingside != 0 {
		fen.WriteByte('K')
		any = true
	}
	if b.castleRights[White]&RightQueenside != 0 {
		fen.WriteByte('Q')
		any = true
	}
	if b.castleRights[Black]&RightKingside != 0 {
		fen.WriteByte('k')
		any = true
	}
	if b.castleRights[Black]&RightQueenside != 0 {
		fen.WriteByte('q')
		any = true
	}
	if !any {
		fen.WriteByte('-')
	}
	fen.WriteByte(' ')

	if b.enPassant == NoSquare {
		fen.WriteByte('-')
	} else {
		var skip Square
		if b.sideToMove == Black {
			skip = b.enPassant.Backward(White)
		} else {
			skip = b.enPassant.Backward(Black)
		}
		fen.WriteString(skip.String())
	}
	fen.WriteString(" 0 1")

	return fen.String()
}

func parsePlacement(b *Board, placement string) {
	sq := 56 // FEN ranks start from the eighth, files a..h.
	for i := 0; i < len(placement); i++ {
		ch := placement[i]
		switch {
		case ch == '/':
			sq -= 16
		case ch >= '1' && ch <= '8':
			sq += int(ch - '0')
		default:
			p, c := pieceFromFENChar(ch)
			b.placePiece(p, c, Square(sq))
			sq++
		}
	}
}

func pieceFromFENChar(ch byte) (Piece, Color) {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
	}
	switch ch {
	case 'P', 'p':
		return Pawn, c
	case 'N', 'n':
		return Knight, c
	case 'B', 'b':
		return Bishop, c
	case 'R', 'r':
		return Rook, c
	case 'Q', 'q':
		return Queen, c
	case 'K', 'k':
		return King, c
	}
	panic("rbc: parse_fen: invalid piece letter: " + string(ch))
}

func serializePlacement(b *Board) string {
	var board [64]byte
	for p := Pawn; p < NumPieces; p++ {
		white, black := b.pieces[p]&b.colors[White], b.pieces[p]&b.colors[Black]
		for white != 0 {
			board[white.PopLSB()] = pieceLetters[p]
		}
		for black != 0 {
			board[black.PopLSB()] = pieceLetters[p] + ('a' - 'A')
		}
	}

	var out strings.Builder
	out.Grow(72)
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			ch := board[rank*8+file]
			if ch == 0 {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			out.WriteByte(ch)
		}
		if empty > 0 {
			out.WriteString(strconv.Itoa(empty))
		}
		if rank != 0 {
			out.WriteByte('/')
		}
	}
	return out.String()
}
