// bitboard.go implements the 64-bit bitmask type shared by board state,
// attack tables, and move generation. Population count and bit scan use
// the math/bits intrinsics rather than the teacher's De Bruijn table.

package rbc

import "math/bits"

// BitBoard is a 64-bit mask where bit i corresponds to Square(i).
type BitBoard uint64

const Empty BitBoard = 0
const AllSquares BitBoard = 0xFFFFFFFFFFFFFFFF

// Count returns the number of set bits.
func (b BitBoard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the square of the least significant set bit, or NoSquare if
// the board is empty.
func (b BitBoard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB clears and returns the least significant set bit's square.
// Returns NoSquare for an empty board, leaving it unchanged.
func (b *BitBoard) PopLSB() Square {
	sq := b.LSB()
	if sq == NoSquare {
		return NoSquare
	}
	*b &= *b - 1
	return sq
}

// Has reports whether the square's bit is set.
func (b BitBoard) Has(sq Square) bool { return b&sq.BitBoard() != 0 }

// Squares returns the set squares in ascending order. Convenience for
// tests and belief-tracking players; not used on the hot move-generation
// path, which iterates via PopLSB directly to avoid allocation.
func (b BitBoard) Squares() []Square {
	sqs := make([]Square, 0, b.Count())
	for bb := b; bb != 0; {
		sqs = append(sqs, bb.PopLSB())
	}
	return sqs
}
