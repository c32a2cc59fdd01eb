package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Explosion cue
const (
	ExplosionSoundDuration = 400 * time.Millisecond
	ExplosionRumbleHz      = 70.0
	ExplosionVolume        = 0.4
)

// Background loop
const (
	BackgroundBeat   = 750 * time.Millisecond
	BackgroundBassHz = 55.0
	BackgroundVolume = 0.12

	// BackgroundSourceX places the background loop left of the listener
	BackgroundSourceX = -10.0
)

// AudioPanDistance is the horizontal distance at which a sound is fully panned
const AudioPanDistance = 10.0
