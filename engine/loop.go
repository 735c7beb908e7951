package engine

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode"

	"github.com/lixenwraith/rain/constants"
	"github.com/lixenwraith/rain/rain"
	"github.com/lixenwraith/rain/terminal"
)

// Surface is the terminal the loop owns for the duration of Run
type Surface interface {
	rain.Canvas

	Start() error
	Stop()

	ResizeIfNeeded() bool
	Clear()
	Refresh(mode terminal.RefreshMode) error
	PollInput() (rune, bool)
}

// Soundscape receives per-tick field activity
type Soundscape interface {
	Update(active, landed int)
}

// State of the frame loop
type State uint8

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Options configures a Loop. Zero values select the defaults.
type Options struct {
	Color        terminal.RGB
	FrameBudget  time.Duration // 0 disables pacing (bench)
	PollInterval time.Duration
	MaxFrames    uint64 // 0 = unlimited

	Clock   TimeProvider
	Sleeper Sleeper
	Sound   Soundscape
}

// DefaultOptions returns the stock 30 FPS matrix-green configuration
func DefaultOptions() Options {
	return Options{
		Color:        terminal.RGBMatrixGreen,
		FrameBudget:  constants.FrameUpdateInterval,
		PollInterval: constants.InputPollInterval,
	}
}

// Loop drives the field at a fixed rate until a quit key, the frame limit
// or context cancellation. It owns the surface, field and random source;
// none of them are touched from another goroutine.
type Loop struct {
	surface Surface
	field   *rain.Field
	src     rain.Source

	color        terminal.RGB
	pollInterval time.Duration
	maxFrames    uint64

	clock   TimeProvider
	sleeper Sleeper
	sound   Soundscape
	timer   *FrameTimer

	width, height int

	state      State
	stopReason string
}

// NewLoop wires a loop over surface with lines spawned from src
func NewLoop(surface Surface, src rain.Source, opts Options) *Loop {
	if opts.Clock == nil {
		opts.Clock = NewMonotonicTimeProvider()
	}
	if opts.Sleeper == nil {
		opts.Sleeper = TimerSleeper{}
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = constants.InputPollInterval
	}
	if opts.FrameBudget < 0 {
		opts.FrameBudget = 0
	}

	return &Loop{
		surface:      surface,
		field:        rain.NewField(surface),
		src:          src,
		color:        opts.Color,
		pollInterval: opts.PollInterval,
		maxFrames:    opts.MaxFrames,
		clock:        opts.Clock,
		sleeper:      opts.Sleeper,
		sound:        opts.Sound,
		timer:        NewFrameTimer(opts.Clock, opts.FrameBudget),
		state:        StateRunning,
	}
}

// Run acquires the surface, ticks until stopped and releases the surface on
// every exit path. Terminal errors are returned; quitting is not an error.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.surface.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	defer l.surface.Stop()

	l.state = StateRunning
	l.stopReason = ""
	log.Printf("loop: running, budget=%v poll=%v", l.timer.Interval(), l.pollInterval)

	for l.state == StateRunning {
		if err := l.Tick(ctx); err != nil {
			l.stop("error")
			return err
		}
		if ctx.Err() != nil {
			l.stop("context cancelled")
		}
		if l.maxFrames > 0 && l.timer.Ticks() >= l.maxFrames {
			l.stop("frame limit")
		}
	}

	log.Printf("loop: stopped (%s) after %d ticks", l.stopReason, l.timer.Ticks())
	return nil
}

// Tick runs one frame: resize, clear, cull, draw, advance, refresh, spawn,
// then waits out the remaining budget while polling for the quit key
func (l *Loop) Tick(ctx context.Context) error {
	l.timer.Begin()

	resized := l.surface.ResizeIfNeeded()
	l.width, l.height = l.surface.Size()
	if resized {
		log.Printf("loop: resized to %dx%d", l.width, l.height)
	}
	l.surface.Clear()

	landed := l.field.RemoveOffScreen()
	l.field.Draw(l.color)
	l.field.Advance()

	if err := l.surface.Refresh(terminal.RefreshIncremental); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	for i := SpawnCount(l.src, l.width); i > 0; i-- {
		if err := l.field.AddLine(l.src); err != nil {
			break
		}
	}

	if l.sound != nil {
		l.sound.Update(l.field.Len(), landed)
	}

	l.wait(ctx)
	l.timer.End()
	return nil
}

// wait polls input once per slice until the tick budget is spent.
// Non-quit keys are dropped and polling resumes immediately.
func (l *Loop) wait(ctx context.Context) {
	deadline := l.timer.Deadline()
	for {
		if r, ok := l.surface.PollInput(); ok {
			if IsQuitKey(r) {
				l.stop("quit key")
				return
			}
			continue
		}

		left := deadline.Sub(l.clock.Now())
		if left <= 0 {
			return
		}
		if err := l.sleeper.Sleep(ctx, min(left, l.pollInterval)); err != nil {
			// Interrupted: abort the rest of this tick
			return
		}
	}
}

func (l *Loop) stop(reason string) {
	if l.state == StateStopped {
		return
	}
	l.state = StateStopped
	l.stopReason = reason
}

// SpawnCount returns how many lines to add this tick: uniform in
// [1, width/30 + 1), with at least one line on narrow terminals
// and none when there are no columns
func SpawnCount(src rain.Source, width int) int {
	if width <= 0 {
		return 0
	}
	return 1 + src.IntN(max(width/constants.SpawnColumnsPerLine, 1))
}

// IsQuitKey matches q and Q
func IsQuitKey(r rune) bool {
	return unicode.ToLower(r) == constants.QuitKey
}

// State returns the current loop state
func (l *Loop) State() State {
	return l.state
}

// StopReason describes why the loop last stopped
func (l *Loop) StopReason() string {
	return l.stopReason
}

// Field returns the loop's field
func (l *Loop) Field() *rain.Field {
	return l.field
}

// Size returns the surface dimensions seen by the last tick
func (l *Loop) Size() (int, int) {
	return l.width, l.height
}

// Timer returns the loop's frame timer
func (l *Loop) Timer() *FrameTimer {
	return l.timer
}
