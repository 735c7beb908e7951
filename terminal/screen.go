package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// RefreshMode selects how a frame is pushed to the physical terminal
type RefreshMode uint8

const (
	// RefreshIncremental writes only cells that changed since the last frame
	RefreshIncremental RefreshMode = iota
	// RefreshFull repaints every cell
	RefreshFull
)

// ErrNotStarted is returned by Refresh before Start or after Stop
var ErrNotStarted = errors.New("terminal not started")

const eventBufferSize = 256

// Screen is the terminal surface the rain loop draws on.
// All methods except Stop must be called from the goroutine that owns the loop.
// The event pump goroutine only forwards tcell events into a buffered channel.
type Screen struct {
	screen    tcell.Screen
	colorMode ColorMode

	events chan tcell.Event
	stopCh chan struct{}
	doneCh chan struct{}

	width, height int
	resized       bool
	err           error

	mu      sync.Mutex
	running bool
	stopped bool
}

// NewScreen creates a screen on the controlling terminal
func NewScreen(mode ColorMode) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal open: %w", err)
	}
	return NewScreenFrom(ts, mode), nil
}

// NewScreenFrom wraps an existing tcell screen, e.g. a simulation screen in tests
func NewScreenFrom(ts tcell.Screen, mode ColorMode) *Screen {
	return &Screen{
		screen:    ts,
		colorMode: mode,
		events:    make(chan tcell.Event, eventBufferSize),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start initializes the terminal (raw mode, alternate screen, hidden cursor)
// and launches the event pump
func (s *Screen) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.stopped {
		return ErrNotStarted
	}

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.width, s.height = s.screen.Size()
	s.running = true

	go s.pollLoop()
	return nil
}

// pollLoop forwards events until the screen is finalized
func (s *Screen) pollLoop() {
	defer close(s.doneCh)

	for {
		ev := s.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}

		select {
		case s.events <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop restores the terminal. Safe to call more than once and from a
// deferred recover path.
func (s *Screen) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.stopped = true

	close(s.stopCh)
	s.screen.Fini()
	<-s.doneCh
}

// Size returns the current terminal dimensions in cells
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// ColorMode returns the mode colors are converted with
func (s *Screen) ColorMode() ColorMode {
	return s.colorMode
}

// ResizeIfNeeded resynchronizes the back buffer after a resize event or a
// dimension change. Returns true when a resize was applied.
func (s *Screen) ResizeIfNeeded() bool {
	w, h := s.screen.Size()
	if !s.resized && w == s.width && h == s.height {
		return false
	}
	s.resized = false
	s.screen.Sync()
	s.width, s.height = s.screen.Size()
	return true
}

// Clear blanks the back buffer
func (s *Screen) Clear() {
	s.screen.Clear()
}

// SetCell writes one glyph with the given foreground color
func (s *Screen) SetCell(col, row int, glyph rune, fg RGB) {
	style := tcell.StyleDefault.Foreground(fg.Tcell(s.colorMode))
	s.screen.SetContent(col, row, glyph, nil, style)
}

// Refresh pushes the back buffer to the terminal. A terminal error reported
// by the event pump is returned here.
func (s *Screen) Refresh(mode RefreshMode) error {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if !running {
		return ErrNotStarted
	}
	if s.err != nil {
		return s.err
	}

	if mode == RefreshFull {
		s.screen.Sync()
	} else {
		s.screen.Show()
	}
	return nil
}

// PollInput returns the next pending keystroke without blocking.
// Non-key events are consumed: resizes are recorded for ResizeIfNeeded,
// errors are kept for Refresh.
func (s *Screen) PollInput() (rune, bool) {
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return ev.Rune(), true
			case *tcell.EventResize:
				s.resized = true
			case *tcell.EventError:
				if s.err == nil {
					s.err = fmt.Errorf("terminal: %w", ev)
				}
			}
		default:
			return 0, false
		}
	}
}
