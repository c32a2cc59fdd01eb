package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// voice is the playback slot of one sound id
type voice struct {
	ctrl    *beep.Ctrl
	pan     *effects.Pan
	loop    bool
	playing atomic.Bool
	x       float64
}

// SoundManager drives the speaker for the simulation's cues
// Every method is safe before Initialize and after Cleanup; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	voices      [core.SoundTypeCount]voice
	listenerX   float64
	seed        uint64
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	for i := range sm.voices {
		if c := sm.voices[i].ctrl; c != nil {
			c.Paused = true
		}
		sm.voices[i].playing.Store(false)
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts id from the beginning, replacing any instance still sounding
func (sm *SoundManager) Play(id core.SoundType) {
	if id < 0 || id >= core.SoundTypeCount {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	src, vol, err := sm.source(id)
	if err != nil {
		return
	}

	v := &sm.voices[id]
	speaker.Lock()
	if v.ctrl != nil {
		// A nil streamer drains the old instance out of the mixer
		v.ctrl.Streamer = nil
	}
	// Runs on the speaker goroutine with the speaker lock held; must not take sm.mu
	done := beep.Callback(func() { v.playing.Store(false) })
	v.pan = &effects.Pan{Streamer: withVolume(src, vol), Pan: panFor(v.x, sm.listenerX)}
	v.ctrl = &beep.Ctrl{Streamer: beep.Seq(v.pan, done)}
	v.playing.Store(true)
	sm.mixer.Add(v.ctrl)
	speaker.Unlock()
}

func (sm *SoundManager) source(id core.SoundType) (beep.Streamer, float64, error) {
	switch id {
	case core.SoundExplosion:
		sm.seed++
		return NewExplosionGenerator(sampleRate, sm.seed), constant.ExplosionVolume, nil
	case core.SoundBackground:
		beat, err := NewBeatGenerator(sampleRate)
		if err != nil {
			return nil, 0, err
		}
		if !sm.voices[id].loop {
			return beat, constant.BackgroundVolume, nil
		}
		first := true
		return beep.Iterate(func() beep.Streamer {
			if first {
				first = false
				return beat
			}
			next, err := NewBeatGenerator(sampleRate)
			if err != nil {
				return nil
			}
			return next
		}), constant.BackgroundVolume, nil
	}
	return nil, 0, fmt.Errorf("unknown sound %d", id)
}

// IsPlaying reports whether id is still sounding
func (sm *SoundManager) IsPlaying(id core.SoundType) bool {
	if id < 0 || id >= core.SoundTypeCount {
		return false
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && sm.voices[id].playing.Load()
}

// SetLoop marks id as looping from its next Play
func (sm *SoundManager) SetLoop(id core.SoundType, loop bool) {
	if id < 0 || id >= core.SoundTypeCount {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.voices[id].loop = loop
}

// SetListenerPosition re-pans every voice relative to the listener
func (sm *SoundManager) SetListenerPosition(x, _, _ float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.listenerX = x
	sm.repan()
}

// SetSoundPosition places id for panning
func (sm *SoundManager) SetSoundPosition(id core.SoundType, x, _, _ float64) {
	if id < 0 || id >= core.SoundTypeCount {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.voices[id].x = x
	sm.repan()
}

// repan requires sm.mu
func (sm *SoundManager) repan() {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	for i := range sm.voices {
		if p := sm.voices[i].pan; p != nil {
			p.Pan = panFor(sm.voices[i].x, sm.listenerX)
		}
	}
	speaker.Unlock()
}
