// Package audio plays an optional winter ambience (wind and a distant bell)
// alongside the animation. It never touches scene state.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snowtree/constant"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// Ambience manages the speaker and the looping ambience mix
type Ambience struct {
	mu          sync.Mutex
	volume      float64
	seed        uint64
	ctrl        *beep.Ctrl
	initialized bool
}

// NewAmbience creates an ambience at the given master volume (0..1)
func NewAmbience(volume float64, seed uint64) *Ambience {
	return &Ambience{
		volume: volume,
		seed:   seed,
	}
}

// Streamer builds the ambience mix without touching the speaker
func (a *Ambience) Streamer() beep.Streamer {
	wind := newVolume(NewWindGenerator(sampleRate, a.seed), constant.WindLevel)
	bell := newVolume(NewBellGenerator(sampleRate, constant.BellInterval), constant.BellLevel)
	return newVolume(beep.Mix(wind, bell), a.volume)
}

// Start initializes the speaker and begins playback
func (a *Ambience) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	a.ctrl = &beep.Ctrl{Streamer: a.Streamer(), Paused: false}
	speaker.Play(a.ctrl)
	a.initialized = true
	return nil
}

// SetPaused pauses or resumes playback
func (a *Ambience) SetPaused(paused bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Lock()
	a.ctrl.Paused = paused
	speaker.Unlock()
}

// Stop silences playback and releases the audio device
func (a *Ambience) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}

	speaker.Lock()
	a.ctrl.Paused = true
	speaker.Unlock()

	// Short drain avoids a click from cutting mid-buffer
	time.Sleep(constant.AudioBufferDuration / 2)
	speaker.Clear()
	speaker.Close()
	a.initialized = false
}

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain becomes a silent volume effect
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
