package constants

import "time"

// Soundscape
const (
	// AudioSampleRate is the speaker rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length; longer is safer, shorter is snappier
	AudioBufferDuration = 100 * time.Millisecond

	// SoundDensityLines is the active line count at which rain hiss saturates
	SoundDensityLines = 120

	// DropletsPerSecond is the droplet rate at full density
	DropletsPerSecond = 90

	// DropletDecay is the exponential decay rate of a droplet envelope, per second
	DropletDecay = 60.0

	// SplashDuration is the length of the thud played when lines land
	SplashDuration = 120 * time.Millisecond

	// SplashCooldown throttles splashes when many lines land in consecutive ticks
	SplashCooldown = 80 * time.Millisecond

	// MasterGain scales the final mix
	MasterGain = 0.25
)
