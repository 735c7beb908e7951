package rain

import "github.com/lixenwraith/rain/terminal"

type cellWrite struct {
	Col, Row int
	Glyph    rune
	FG       terminal.RGB
}

// recordingCanvas records every SetCell in call order
type recordingCanvas struct {
	cols, rows int
	writes     []cellWrite
}

func newRecordingCanvas(cols, rows int) *recordingCanvas {
	return &recordingCanvas{cols: cols, rows: rows}
}

func (c *recordingCanvas) Size() (int, int) {
	return c.cols, c.rows
}

func (c *recordingCanvas) SetCell(col, row int, glyph rune, fg terminal.RGB) {
	c.writes = append(c.writes, cellWrite{Col: col, Row: row, Glyph: glyph, FG: fg})
}

func (c *recordingCanvas) reset() {
	c.writes = c.writes[:0]
}

// scriptedSource replays fixed values per draw kind
type scriptedSource struct {
	ints   []int
	floats []float64
	seeds  []uint64
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted int out of range")
	}
	return v
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Uint64() uint64 {
	v := s.seeds[0]
	s.seeds = s.seeds[1:]
	return v
}
