// types.go declares the board's elementary value types: squares, colors,
// piece kinds, and castling rights.

package rbc

// Square is a board square index, 0..63, in the canonical ordering
// A1=0, B1=1, ..., H1=7, A2=8, ..., H8=63.
type Square int

const NoSquare Square = -1

// File returns the square's file, 0 (A) through 7 (H).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the square's rank, 0 (rank 1) through 7 (rank 8).
func (s Square) Rank() int { return int(s) >> 3 }

// BitBoard returns the singleton bitboard for the square.
func (s Square) BitBoard() BitBoard { return BitBoard(1) << uint(s) }

// Forward returns the square one rank ahead for the given color, or
// NoSquare past the back edge.
func (s Square) Forward(c Color) Square {
	if c == White {
		if s.Rank() == 7 {
			return NoSquare
		}
		return s + 8
	}
	if s.Rank() == 0 {
		return NoSquare
	}
	return s - 8
}

// Backward returns the square one rank behind for the given color, i.e.
// Forward for the opposite color.
func (s Square) Backward(c Color) Square {
	return s.Forward(c.Flip())
}

// String renders the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return squareNames[s]
}

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// ParseSquare parses algebraic square text ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, &ParseError{Kind: "square", Text: s}
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, &ParseError{Kind: "square", Text: s}
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}

// Color is one of the two sides.
type Color int

const (
	White Color = iota
	Black
)

// Flip returns the opposing color.
func (c Color) Flip() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is a chess piece kind, color-agnostic.
type Piece int

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieces
)

var pieceLetters = [NumPieces]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

func (p Piece) String() string {
	if p < 0 || p >= NumPieces {
		return "-"
	}
	return string(pieceLetters[p])
}

// CastleSide identifies kingside/queenside castling rights per color.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
	NumCastleSides
)

// CastleRights is a per-color bitset of {kingside, queenside}.
type CastleRights int

const (
	RightKingside  CastleRights = 1 << Kingside
	RightQueenside CastleRights = 1 << Queenside
	RightsNone     CastleRights = 0
	RightsBoth     CastleRights = RightKingside | RightQueenside
)

// ParseError reports a malformed textual square or move.
type ParseError struct {
	Kind string // "square" or "move"
	Text string
}

func (e *ParseError) Error() string {
	return "rbc: invalid " + e.Kind + ": " + e.Text
}
