// Package audio plays synthesized sound effects for gameplay events.
// Sounds are generated on the fly; there are no sample files.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays one-shot effects through a shared mixer.
// Every method is a no-op until Initialize succeeds, so a game without an
// audio device keeps running silently.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager. Volume is clamped to [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. The device stays open; beep cannot close it
// and reopen it in the same process.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PieceLocked plays a short low click.
func (sm *SoundManager) PieceLocked() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*60), NewToneGenerator(sampleRate, 180, 40)))
}

// LinesCleared plays a rising sweep; more lines sweep higher.
func (sm *SoundManager) LinesCleared(n int) {
	top := 600 + 200*float64(min(n, 4))
	dur := sampleRate.N(time.Millisecond * 180)
	sm.play(beep.Take(dur, NewSweepGenerator(sampleRate, 300, top, dur)))
}

// LevelUp plays a rising arpeggio.
func (sm *SoundManager) LevelUp(int) {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	noteLen := sampleRate.N(time.Millisecond * 90)
	sm.play(beep.Take(noteLen*len(notes), NewArpeggioGenerator(sampleRate, notes, noteLen)))
}

// GameOver plays a falling sweep.
func (sm *SoundManager) GameOver(int) {
	dur := sampleRate.N(time.Millisecond * 700)
	sm.play(beep.Take(dur, NewSweepGenerator(sampleRate, 440, 90, dur)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(scale(s, sm.volume))
	speaker.Unlock()
}
