package constants

import "time"

// Frame Loop Timing
const (
	// FrameRate is the target number of ticks per second
	FrameRate = 30

	// FrameUpdateInterval is the frame budget at FrameRate (~33.3ms)
	FrameUpdateInterval = time.Second / FrameRate

	// InputPollInterval bounds a single sleep inside the pacing wait, and with it quit latency
	InputPollInterval = 5 * time.Millisecond

	// MaxFrameRate caps the configurable frame rate
	MaxFrameRate = 240
)

// Spawning
const (
	// SpawnColumnsPerLine sets spawn density: up to one new line per this many columns per tick
	SpawnColumnsPerLine = 30
)

// Quit keys, matched case-insensitively
const (
	QuitKey = 'q'
)
