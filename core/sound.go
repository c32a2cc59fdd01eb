package core

// SoundType represents the discrete audio cues the simulation signals
type SoundType int

const (
	SoundExplosion  SoundType = iota // Enemy or player destroyed
	SoundBackground                  // Looping music
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundExplosion:
		return "explosion"
	case SoundBackground:
		return "background"
	default:
		return "unknown"
	}
}
