package rain

import (
	"github.com/lixenwraith/rain/constants"
	"github.com/lixenwraith/rain/vmath"
)

// GlyphStream yields the glyph sequence of one line, head first.
// The sequence depends only on the seed.
type GlyphStream struct {
	rng *vmath.FastRand
}

// NewGlyphStream starts a stream at offset 0
func NewGlyphStream(seed uint64) GlyphStream {
	return GlyphStream{rng: vmath.NewFastRand(seed)}
}

// Next returns the glyph at the current offset and moves to the next one
func (g GlyphStream) Next() rune {
	return rune(constants.GlyphSet[g.rng.IntN(len(constants.GlyphSet))])
}

// Glyph returns the glyph at offset rows below the head of a line with the given seed
func Glyph(seed uint64, offset int) rune {
	g := NewGlyphStream(seed)
	for i := 0; i < offset; i++ {
		g.Next()
	}
	return g.Next()
}
