package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewScreenFrom(sim, ColorModeTrueColor)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(s.Stop)
	sim.SetSize(w, h)
	return s, sim
}

// pollFor waits for the event pump to deliver a key
func pollFor(t *testing.T, s *Screen) (rune, bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if r, ok := s.PollInput(); ok {
			return r, true
		}
		time.Sleep(time.Millisecond)
	}
	return 0, false
}

func TestScreenSetCellAndRefresh(t *testing.T) {
	s, sim := newSimScreen(t, 20, 10)
	s.ResizeIfNeeded()

	s.Clear()
	s.SetCell(3, 4, 'Z', RGB{0, 120, 0})
	if err := s.Refresh(RefreshIncremental); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	cells, w, h := sim.GetContents()
	if w != 20 || h != 10 {
		t.Fatalf("Expected 20x10 contents, got %dx%d", w, h)
	}

	cell := cells[4*w+3]
	if len(cell.Runes) == 0 || cell.Runes[0] != 'Z' {
		t.Errorf("Expected 'Z' at (3,4), got %v", cell.Runes)
	}
	fg, _, _ := cell.Style.Decompose()
	if fg != tcell.NewRGBColor(0, 120, 0) {
		t.Errorf("Expected fg rgb(0,120,0), got %v", fg)
	}
}

func TestScreenSize(t *testing.T) {
	s, _ := newSimScreen(t, 100, 20)
	w, h := s.Size()
	if w != 100 || h != 20 {
		t.Errorf("Expected 100x20, got %dx%d", w, h)
	}
}

func TestScreenResizeIfNeeded(t *testing.T) {
	s, sim := newSimScreen(t, 40, 12)

	// First call picks up the SetSize done after Start
	if !s.ResizeIfNeeded() {
		t.Error("Expected resize after dimension change")
	}
	if s.ResizeIfNeeded() {
		t.Error("Expected no resize when dimensions are unchanged")
	}

	sim.SetSize(60, 12)
	if !s.ResizeIfNeeded() {
		t.Error("Expected resize after width change")
	}
	if w, h := s.Size(); w != 60 || h != 12 {
		t.Errorf("Expected 60x12 after resize, got %dx%d", w, h)
	}
}

func TestScreenPollInput(t *testing.T) {
	s, sim := newSimScreen(t, 20, 10)

	if _, ok := s.PollInput(); ok {
		t.Fatal("Expected no input on a fresh screen")
	}

	sim.InjectKey(tcell.KeyRune, 'Q', tcell.ModNone)
	r, ok := pollFor(t, s)
	if !ok {
		t.Fatal("Expected injected key to arrive")
	}
	if r != 'Q' {
		t.Errorf("Expected 'Q', got %q", r)
	}

	if _, ok := s.PollInput(); ok {
		t.Error("Expected key to be consumed")
	}
}

func TestScreenPollInputRecordsResize(t *testing.T) {
	s, sim := newSimScreen(t, 20, 10)
	s.ResizeIfNeeded()

	sim.PostEvent(tcell.NewEventResize(20, 10))
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	if _, ok := pollFor(t, s); !ok {
		t.Fatal("Expected key behind the resize event")
	}

	// Same dimensions, but the resize event forces a sync
	if !s.ResizeIfNeeded() {
		t.Error("Expected pending resize event to be applied")
	}
}

func TestScreenRefreshSurfacesTerminalError(t *testing.T) {
	s, sim := newSimScreen(t, 20, 10)

	sim.PostEvent(tcell.NewEventError(errors.New("tty gone")))
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	if _, ok := pollFor(t, s); !ok {
		t.Fatal("Expected key behind the error event")
	}

	if err := s.Refresh(RefreshFull); err == nil {
		t.Error("Expected Refresh to report the terminal error")
	}
}

func TestScreenStopIsIdempotent(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewScreenFrom(sim, ColorMode256)

	// Stop before Start is a no-op
	s.Stop()

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Stop()
	s.Stop()

	if err := s.Refresh(RefreshIncremental); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Expected ErrNotStarted after Stop, got %v", err)
	}
	if err := s.Start(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Expected restart to be refused, got %v", err)
	}
}
