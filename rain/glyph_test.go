package rain

import (
	"strings"
	"testing"

	"github.com/lixenwraith/rain/constants"
	"github.com/lixenwraith/rain/terminal"
)

func TestGlyphSet(t *testing.T) {
	if len(constants.GlyphSet) != 62 {
		t.Fatalf("Expected 62 glyphs, got %d", len(constants.GlyphSet))
	}
	if !strings.HasPrefix(constants.GlyphSet, "ABC") || !strings.HasSuffix(constants.GlyphSet, "789") {
		t.Errorf("Unexpected glyph ordering: %s", constants.GlyphSet)
	}

	seen := make(map[rune]bool)
	for _, r := range constants.GlyphSet {
		if seen[r] {
			t.Errorf("Duplicate glyph %q", r)
		}
		seen[r] = true
	}
}

func TestGlyphDeterministic(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 1 << 40, ^uint64(0)} {
		for offset := 0; offset < 20; offset++ {
			if a, b := Glyph(seed, offset), Glyph(seed, offset); a != b {
				t.Errorf("seed %d offset %d: %q != %q", seed, offset, a, b)
			}
		}
	}
}

func TestGlyphMatchesStream(t *testing.T) {
	const seed = 987654321
	stream := NewGlyphStream(seed)
	for offset := 0; offset < 30; offset++ {
		if got, want := stream.Next(), Glyph(seed, offset); got != want {
			t.Errorf("offset %d: stream %q, Glyph %q", offset, got, want)
		}
	}
}

func TestGlyphInSet(t *testing.T) {
	for seed := uint64(1); seed < 50; seed++ {
		for offset := 0; offset < 15; offset++ {
			if g := Glyph(seed, offset); !strings.ContainsRune(constants.GlyphSet, g) {
				t.Fatalf("seed %d offset %d: glyph %q not alphanumeric", seed, offset, g)
			}
		}
	}
}

func TestSameSeedLinesDrawSameGlyphs(t *testing.T) {
	a := Line{Seed: 555, X: 0, Y: 0, Length: 10, Speed: 0.6}
	b := Line{Seed: 555, X: 30, Y: 0, Length: 10, Speed: 1.4}

	ca := newRecordingCanvas(80, 24)
	cb := newRecordingCanvas(80, 24)
	a.Draw(ca, terminal.RGBMatrixGreen)
	b.Draw(cb, terminal.RGBMatrixGreen)

	for i := range ca.writes {
		if ca.writes[i].Glyph != cb.writes[i].Glyph {
			t.Errorf("row %d: glyphs differ for equal seeds", i)
		}
	}
}
