package rain

import (
	"slices"

	"github.com/lixenwraith/rain/terminal"
)

// Field owns the live lines and measures the canvas it draws on
type Field struct {
	canvas Canvas
	lines  []Line
}

// NewField creates an empty field bound to a canvas
func NewField(c Canvas) *Field {
	return &Field{
		canvas: c,
		lines:  make([]Line, 0, 256),
	}
}

// AddLine spawns one line across the current canvas width
func (f *Field) AddLine(src Source) error {
	width, _ := f.canvas.Size()
	line, err := NewLine(src, width)
	if err != nil {
		return err
	}
	f.lines = append(f.lines, line)
	return nil
}

// Advance moves every line down by its speed
func (f *Field) Advance() {
	for i := range f.lines {
		f.lines[i].Advance()
	}
}

// RemoveOffScreen drops lines whose head has passed the current canvas height.
// Returns the number of lines removed.
func (f *Field) RemoveOffScreen() int {
	_, height := f.canvas.Size()
	before := len(f.lines)
	f.lines = slices.DeleteFunc(f.lines, func(l Line) bool {
		return l.OffScreen(height)
	})
	return before - len(f.lines)
}

// Draw draws every line in spawn order
func (f *Field) Draw(color terminal.RGB) {
	for _, line := range f.lines {
		line.Draw(f.canvas, color)
	}
}

// Len returns the number of live lines
func (f *Field) Len() int {
	return len(f.lines)
}

// Lines returns a copy of the live lines
func (f *Field) Lines() []Line {
	return slices.Clone(f.lines)
}
