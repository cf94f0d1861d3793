package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays cues through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	active      map[Cue]*beep.Ctrl
	moveVolume  float64
	initialized bool
}

// NewSoundManager creates a sound manager. moveVolume is the linear gain of
// the character-move cue (1.0 leaves it unchanged).
func NewSoundManager(moveVolume float64) *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		active:     make(map[Cue]*beep.Ctrl),
		moveVolume: moveVolume,
	}
}

// Initialize sets up the audio device. It fails when no device is available;
// callers fall back to Silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play starts c from the beginning. A cue that is still playing is cut off.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: sm.streamerFor(c)}

	speaker.Lock()
	if prev, ok := sm.active[c]; ok {
		prev.Streamer = nil // Mixer drops a Ctrl with no streamer
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	sm.active[c] = ctrl
}

// Stop halts c. The next Play starts it from the beginning.
func (sm *SoundManager) Stop(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ctrl, ok := sm.active[c]
	if !ok {
		return
	}

	speaker.Lock()
	ctrl.Paused = true
	ctrl.Streamer = nil
	speaker.Unlock()

	delete(sm.active, c)
}

// Close stops all sounds and releases the mixer.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.active = make(map[Cue]*beep.Ctrl)
	sm.initialized = false
}

func (sm *SoundManager) streamerFor(c Cue) beep.Streamer {
	s := cueStreamer(c, sampleRate)
	if c != CueCharacterMove || sm.moveVolume == 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(sm.moveVolume, 1e-6)),
		Silent:   sm.moveVolume <= 0,
	}
}
