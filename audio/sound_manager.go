package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rain/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays the rain soundscape. Every method is a no-op until
// Initialize succeeds, so the effect runs unchanged without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	rain        *RainGenerator
	rainCtrl    *beep.Ctrl
	mixer       *beep.Mixer
	seed        uint64
	splashes    uint64
	lastSplash  time.Time
	now         func() time.Time
	initialized bool
}

// NewSoundManager creates a new sound manager; seed drives the noise sources
func NewSoundManager(seed uint64) *SoundManager {
	return &SoundManager{
		rain:  NewRainGenerator(sampleRate, seed),
		mixer: &beep.Mixer{},
		seed:  seed,
		now:   time.Now,
	}
}

// Initialize sets up the audio system and starts the rain bed
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	sm.rainCtrl = &beep.Ctrl{Streamer: sm.rain, Paused: false}
	sm.mixer.Add(sm.rainCtrl)
	speaker.Play(&masterGain{Streamer: sm.mixer, gain: constants.MasterGain})

	sm.initialized = true
	log.Printf("audio: initialized at %d Hz", constants.AudioSampleRate)
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.rainCtrl != nil {
		sm.rainCtrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Update maps field activity to the soundscape: active lines set the hiss
// density, landed lines trigger a splash
func (sm *SoundManager) Update(active, landed int) {
	sm.rain.SetDensity(float64(active) / constants.SoundDensityLines)

	if landed <= 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	now := sm.now()
	if now.Sub(sm.lastSplash) < constants.SplashCooldown {
		return
	}
	sm.lastSplash = now
	sm.splashes++

	level := min(0.3+0.1*float64(landed), 1)
	splash := beep.Take(sampleRate.N(constants.SplashDuration),
		NewSplashGenerator(sampleRate, level, sm.seed+sm.splashes))

	speaker.Lock()
	sm.mixer.Add(splash)
	speaker.Unlock()
}

// Density returns the current rain hiss density
func (sm *SoundManager) Density() float64 {
	return sm.rain.Density()
}

// masterGain scales and clamps the final mix
type masterGain struct {
	beep.Streamer
	gain float64
}

func (m *masterGain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = m.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] = max(-1, min(samples[i][0]*m.gain, 1))
		samples[i][1] = max(-1, min(samples[i][1]*m.gain, 1))
	}
	return n, ok
}
