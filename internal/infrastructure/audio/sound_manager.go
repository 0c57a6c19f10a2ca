// Package audio plays the selection cue and the ambient loop.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	selectDuration = 600 * time.Millisecond
)

// SoundManager manages all game audio. Every method is a no-op until
// Initialize succeeds, so hosts without an audio device keep running.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ambient     *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the audio device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlaySelect plays the short bell that confirms a selection
func (sm *SoundManager) PlaySelect() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := Bell(sampleRate, selectDuration)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// StartAmbient starts the drone loop. A loop already playing is left alone.
func (sm *SoundManager) StartAmbient() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.ambient != nil {
		sm.ambient.Paused = false
		return
	}
	sm.ambient = &beep.Ctrl{Streamer: Drone(sampleRate)}
	sm.mixer.Add(sm.ambient)
}

// StopAmbient pauses the drone loop
func (sm *SoundManager) StopAmbient() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.ambient == nil {
		return
	}
	speaker.Lock()
	sm.ambient.Paused = true
	speaker.Unlock()
}

// AmbientPlaying reports whether the drone loop is audible
func (sm *SoundManager) AmbientPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && sm.ambient != nil && !sm.ambient.Paused
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.ambient = nil
	speaker.Close()
	sm.initialized = false
}
