package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/rain/constants"
	"github.com/lixenwraith/rain/vmath"
)

// RainGenerator streams an endless rain hiss: low-passed noise with short
// droplet ticks whose rate and level follow the density set by SetDensity.
// SetDensity may be called from any goroutine; Stream runs on the speaker's.
type RainGenerator struct {
	sr  beep.SampleRate
	rng *vmath.FastRand

	density atomic.Uint64 // math.Float64bits, 0..1

	lowpass  float64
	droplet  float64 // current droplet envelope
	decayMul float64 // per-sample envelope multiplier
}

// NewRainGenerator creates a silent generator; noise is seeded from seed
func NewRainGenerator(sr beep.SampleRate, seed uint64) *RainGenerator {
	return &RainGenerator{
		sr:       sr,
		rng:      vmath.NewFastRand(seed),
		decayMul: math.Exp(-constants.DropletDecay / float64(sr)),
	}
}

// SetDensity sets the rain intensity, clamped to [0, 1]
func (g *RainGenerator) SetDensity(d float64) {
	d = max(0, min(d, 1))
	g.density.Store(math.Float64bits(d))
}

// Density returns the current rain intensity
func (g *RainGenerator) Density() float64 {
	return math.Float64frombits(g.density.Load())
}

func (g *RainGenerator) noise() float64 {
	return g.rng.Float64()*2 - 1
}

func (g *RainGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	density := g.Density()
	dropChance := density * constants.DropletsPerSecond / float64(g.sr)

	for i := range samples {
		// One-pole low-pass turns white noise into a soft hiss
		g.lowpass += 0.08 * (g.noise() - g.lowpass)
		hiss := 0.6 * density * g.lowpass

		if g.rng.Float64() < dropChance {
			g.droplet = 0.5 + 0.5*g.rng.Float64()
		}
		drop := g.droplet * g.noise() * 0.4
		g.droplet *= g.decayMul

		sample := max(-1, min(hiss+drop, 1))
		samples[i][0] = sample
		samples[i][1] = sample
	}
	return len(samples), true
}

func (g *RainGenerator) Err() error {
	return nil
}

// SplashGenerator generates the low thud of lines reaching the bottom row
type SplashGenerator struct {
	sr    beep.SampleRate
	pos   int
	level float64
	rng   *vmath.FastRand
}

// NewSplashGenerator creates a splash at the given level (0..1)
func NewSplashGenerator(sr beep.SampleRate, level float64, seed uint64) *SplashGenerator {
	return &SplashGenerator{
		sr:    sr,
		level: max(0, min(level, 1)),
		rng:   vmath.NewFastRand(seed),
	}
}

func (g *SplashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Envelope - quick attack, fast decay
		envelope := math.Exp(-t * 30)

		thump := 0.6 * math.Sin(2*math.Pi*70*t)
		spray := 0.3 * (g.rng.Float64()*2 - 1)

		sample := g.level * envelope * (thump + spray)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SplashGenerator) Err() error {
	return nil
}
