// move.go implements the compact move encoding and its UCI textual form.
// The bit-packing scheme follows the teacher's Move uint16 layout.

package rbc

// Move encodes a source square, destination square, and optional
// promotion piece as a 16-bit value:
//   - 0-5:   destination square
//   - 6-11:  source square
//   - 12-14: promotion piece + 1 (0 means no promotion)
type Move uint16

// NoPromotion marks a move that does not promote.
const NoPromotion Piece = -1

// NewMove creates a non-promoting move.
func NewMove(from, to Square) Move {
	return Move(to) | Move(from)<<6
}

// NewPromotionMove creates a promoting move. promo must be one of
// Knight, Bishop, Rook, Queen.
func NewPromotionMove(from, to Square, promo Piece) Move {
	return Move(to) | Move(from)<<6 | Move(promo+1)<<12
}

// From returns the move's source square.
func (m Move) From() Square { return Square(m>>6) & 0x3F }

// To returns the move's destination square.
func (m Move) To() Square { return Square(m) & 0x3F }

// Promotion returns the promotion piece, or NoPromotion if this move does
// not promote.
func (m Move) Promotion() Piece {
	p := Piece(m>>12)&0x7 - 1
	if p < Knight || p > Queen {
		return NoPromotion
	}
	return p
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != NoPromotion }

// String renders the move in UCI long algebraic form, e.g. "e2e4",
// "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	switch m.Promotion() {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}

// ParseMove parses a UCI move string ("e2e4", "e7e8q").
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, &ParseError{Kind: "move", Text: s}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return 0, &ParseError{Kind: "move", Text: s}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return 0, &ParseError{Kind: "move", Text: s}
	}
	if len(s) == 4 {
		return NewMove(from, to), nil
	}
	var promo Piece
	switch s[4] {
	case 'n':
		promo = Knight
	case 'b':
		promo = Bishop
	case 'r':
		promo = Rook
	case 'q':
		promo = Queen
	default:
		return 0, &ParseError{Kind: "move", Text: s}
	}
	return NewPromotionMove(from, to, promo), nil
}
