// Package audio plays short synthesized cues for combat events. Cues are
// fire-and-forget tones mixed into a single speaker stream.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/helkite/aster/internal/config"
	"github.com/helkite/aster/internal/core/event"
)

// SoundManager owns the speaker and the mixer all cues feed into.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize sets up the audio system.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// Attach subscribes the cue handlers to the combat events.
func (sm *SoundManager) Attach(bus *event.Bus) {
	event.Subscribe(bus, func(event.MissileLaunched) {
		sm.playTone(440, 60*time.Millisecond)
	})
	event.Subscribe(bus, func(event.AsteroidDestroyed) {
		sm.playTone(220, 120*time.Millisecond)
	})
	event.Subscribe(bus, func(event.LevelRaised) {
		sm.playTone(660, 180*time.Millisecond)
	})
}

// playTone mixes in a short sine blip.
func (sm *SoundManager) playTone(freq float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}
	streamer := beep.Take(sm.rate.N(d), newToneGenerator(sm.rate, freq, sm.volume))
	sm.mixer.Add(streamer)
}

// toneGenerator streams a plain sine wave.
type toneGenerator struct {
	rate   beep.SampleRate
	freq   float64
	volume float64
	phase  float64
}

func newToneGenerator(rate beep.SampleRate, freq, volume float64) *toneGenerator {
	return &toneGenerator{rate: rate, freq: freq, volume: volume}
}

func (g *toneGenerator) Stream(samples [][2]float64) (int, bool) {
	step := g.freq / float64(g.rate)
	for i := range samples {
		v := math.Sin(2*math.Pi*g.phase) * g.volume
		samples[i][0] = v
		samples[i][1] = v
		g.phase += step
		if g.phase >= 1 {
			g.phase -= 1
		}
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }
