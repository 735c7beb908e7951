package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/rain/constants"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(1)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Update(10, 0)
	sm.Update(50, 3)
	sm.Cleanup()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(1)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Update(40, 2)
	sm.Cleanup()
}

func TestSoundManagerDensity(t *testing.T) {
	sm := NewSoundManager(1)

	tests := []struct {
		active int
		want   float64
	}{
		{0, 0},
		{60, 0.5},
		{120, 1},
		{1000, 1},
		{-5, 0},
	}

	for _, tt := range tests {
		sm.Update(tt.active, 0)
		if got := sm.Density(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("active %d: density %v, want %v", tt.active, got, tt.want)
		}
	}
}

func TestRainGeneratorSilentAtZeroDensity(t *testing.T) {
	g := NewRainGenerator(sampleRate, 42)

	buf := make([][2]float64, 4096)
	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected a full buffer, got n=%d ok=%v", n, ok)
	}
	for i, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d: expected silence, got %v", i, s)
		}
	}
}

func TestRainGeneratorBounds(t *testing.T) {
	g := NewRainGenerator(sampleRate, 42)
	g.SetDensity(1)

	buf := make([][2]float64, 48000)
	g.Stream(buf)

	var energy float64
	for i, s := range buf {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d out of range or unbalanced: %v", i, s)
		}
		energy += s[0] * s[0]
	}
	if energy == 0 {
		t.Error("Expected audible output at full density")
	}
}

func TestRainGeneratorDeterministic(t *testing.T) {
	a := NewRainGenerator(sampleRate, 7)
	b := NewRainGenerator(sampleRate, 7)
	a.SetDensity(0.6)
	b.SetDensity(0.6)

	bufA := make([][2]float64, 1024)
	bufB := make([][2]float64, 1024)
	a.Stream(bufA)
	b.Stream(bufB)

	for i := range bufA {
		if bufA[i] != bufB[i] {
			t.Fatalf("sample %d differs for identical seeds", i)
		}
	}
}

func TestSplashGeneratorDecays(t *testing.T) {
	g := NewSplashGenerator(sampleRate, 1, 3)

	buf := make([][2]float64, sampleRate.N(constants.SplashDuration))
	g.Stream(buf)

	peak := func(s [][2]float64) float64 {
		var p float64
		for _, v := range s {
			p = max(p, math.Abs(v[0]))
		}
		return p
	}

	head := peak(buf[:len(buf)/4])
	tail := peak(buf[3*len(buf)/4:])
	if head <= tail {
		t.Errorf("Expected splash to decay, head peak %v tail peak %v", head, tail)
	}
	if head > 1 {
		t.Errorf("Expected samples within [-1, 1], head peak %v", head)
	}
}
