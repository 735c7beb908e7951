// Package rain models the falling glyph columns and the field that spawns,
// advances, culls and draws them.
package rain

import (
	"errors"
	"math"

	"github.com/lixenwraith/rain/constants"
	"github.com/lixenwraith/rain/terminal"
)

// ErrNoWidth is returned when a line is spawned on a canvas without columns
var ErrNoWidth = errors.New("rain: canvas has no columns")

// Source is the random source lines are spawned from.
// *vmath.FastRand and *math/rand/v2.Rand both satisfy it.
type Source interface {
	IntN(n int) int
	Float64() float64
	Uint64() uint64
}

// Canvas is the cell surface lines draw on
type Canvas interface {
	Size() (cols, rows int)
	SetCell(col, row int, glyph rune, fg terminal.RGB)
}

// Line is one falling column. Only Y changes after spawn.
type Line struct {
	Seed   uint64
	X      int
	Y      float64 // head position, rows
	Length int
	Speed  float64 // rows per tick
}

// NewLine spawns a line above the visible area at a random column in [0, width)
func NewLine(src Source, width int) (Line, error) {
	if width <= 0 {
		return Line{}, ErrNoWidth
	}

	length := constants.MinLineLength + src.IntN(constants.MaxLineLength-constants.MinLineLength)
	speed := constants.MinLineSpeed + src.Float64()*(constants.MaxLineSpeed-constants.MinLineSpeed)
	x := src.IntN(width)
	seed := src.Uint64()

	return Line{
		Seed:   seed,
		X:      x,
		Y:      -float64(length),
		Length: length,
		Speed:  speed,
	}, nil
}

// Advance moves the head down by Speed rows
func (l *Line) Advance() {
	l.Y += l.Speed
}

// OffScreen reports whether the head has passed the last row
func (l Line) OffScreen(height int) bool {
	return l.Y >= float64(height)
}

// Draw writes the visible part of the line. Rows above the canvas are skipped
// but still consume their glyph so offsets stay anchored to the head.
// X is not checked against the canvas width.
func (l Line) Draw(c Canvas, base terminal.RGB) {
	_, rows := c.Size()
	top := int(math.Floor(l.Y))
	bound := min(top+l.Length, rows)

	glyphs := NewGlyphStream(l.Seed)
	for row := top; row < bound; row++ {
		glyph := glyphs.Next()
		if row < 0 {
			continue
		}
		value := (float64(row) + 1 - l.Y) / float64(l.Length)
		c.SetCell(l.X, row, glyph, base.Scale(Brightness(value, l.Speed)))
	}
}

// Brightness is the color multiplier at fractional position value along a line
// (0 at the head). Faster lines ramp higher toward the tail.
func Brightness(value, speed float64) float64 {
	return constants.BrightnessBase +
		value*constants.BrightnessSpan*(speed/constants.MaxLineSpeed*constants.BrightnessSpeedWeight)
}
