package rbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZobristHashDeterministicAcrossInit(t *testing.T) {
	// The key tables are package-init constants; two independently built
	// boards of the same position must hash identically.
	a := NewBoard()
	b := NewBoard()
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestZobristIncrementalMatchesFromScratch(t *testing.T) {
	b := NewBoard()
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"}
	for _, s := range moves {
		m, err := ParseMove(s)
		assert.NoError(t, err)
		b.MakeMove(m)
		assert.Equal(t, zobristHash(b), b.Hash(), "after %v", s)
	}
}

func TestCastleIndexPacksBothColors(t *testing.T) {
	assert.Equal(t, 0, castleIndex(RightsNone, RightsNone))
	assert.Equal(t, int(RightsBoth), castleIndex(RightsBoth, RightsNone))
	assert.Equal(t, int(RightsBoth)<<2, castleIndex(RightsNone, RightsBoth))
	assert.NotEqual(t, castleIndex(RightKingside, RightsNone), castleIndex(RightsNone, RightKingside))
}
