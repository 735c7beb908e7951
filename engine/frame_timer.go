package engine

import "time"

// FrameTimer tracks the budget of the current tick and counts completed ticks
type FrameTimer struct {
	clock    TimeProvider
	interval time.Duration

	created   time.Time
	tickStart time.Time
	ticks     uint64
}

// NewFrameTimer creates a timer with a fixed per-tick budget. A zero interval
// means ticks never wait.
func NewFrameTimer(clock TimeProvider, interval time.Duration) *FrameTimer {
	now := clock.Now()
	return &FrameTimer{
		clock:     clock,
		interval:  interval,
		created:   now,
		tickStart: now,
	}
}

// FrameTimerFromRate computes the interval from a frame rate
func FrameTimerFromRate(clock TimeProvider, fps int) *FrameTimer {
	if fps <= 0 {
		return NewFrameTimer(clock, 0)
	}
	return NewFrameTimer(clock, time.Second/time.Duration(fps))
}

// Begin marks the start of a tick and returns it
func (t *FrameTimer) Begin() time.Time {
	t.tickStart = t.clock.Now()
	return t.tickStart
}

// End completes the current tick
func (t *FrameTimer) End() {
	t.ticks++
}

// Deadline is the end of the current tick's budget
func (t *FrameTimer) Deadline() time.Time {
	return t.tickStart.Add(t.interval)
}

// Left returns the remaining budget of the current tick, never negative
func (t *FrameTimer) Left() time.Duration {
	left := t.Deadline().Sub(t.clock.Now())
	if left < 0 {
		return 0
	}
	return left
}

// Interval returns the per-tick budget
func (t *FrameTimer) Interval() time.Duration {
	return t.interval
}

// Ticks returns the number of completed ticks
func (t *FrameTimer) Ticks() uint64 {
	return t.ticks
}

// Elapsed returns the time since the timer was created
func (t *FrameTimer) Elapsed() time.Duration {
	return t.clock.Now().Sub(t.created)
}

// FPS returns the average completed ticks per second since creation
func (t *FrameTimer) FPS() float64 {
	secs := t.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(t.ticks) / secs
}
