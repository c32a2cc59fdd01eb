package engine

import "github.com/lixenwraith/corsair/core"

// AudioSink is the audio collaborator the simulation drives
// Implementations must be safe to call every frame and never block
type AudioSink interface {
	Play(id core.SoundType)
	IsPlaying(id core.SoundType) bool
	SetLoop(id core.SoundType, loop bool)
	SetListenerPosition(x, y, z float64)
	SetSoundPosition(id core.SoundType, x, y, z float64)
}

// SilentAudio discards every cue
// Used when audio is disabled or the device failed to open
type SilentAudio struct{}

func (SilentAudio) Play(core.SoundType)                           {}
func (SilentAudio) IsPlaying(core.SoundType) bool                 { return false }
func (SilentAudio) SetLoop(core.SoundType, bool)                  {}
func (SilentAudio) SetListenerPosition(float64, float64, float64) {}
func (SilentAudio) SetSoundPosition(core.SoundType, float64, float64, float64) {
}
