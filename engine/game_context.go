package engine

import (
	"io"
	"log/slog"

	"github.com/lixenwraith/corsair/core"
)

// Rand is the random source the simulation draws from
// *math/rand/v2.Rand satisfies it; tests substitute scripted sources
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// GameContext holds everything one match needs
// Owned by the frame loop; nothing in it is shared across goroutines except GameState reads
type GameContext struct {
	Config Config
	Clock  *PausableClock
	World  *World
	State  *GameState
	Audio  AudioSink
	Rand   Rand
	Logger *slog.Logger

	// Input is the key state sampled at the start of the frame
	Input core.InputState
}

// NewGameContext wires a fresh match
// A nil audio sink or logger is replaced with a silent one
func NewGameContext(cfg Config, audio AudioSink, rng Rand, logger *slog.Logger) *GameContext {
	if audio == nil {
		audio = SilentAudio{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clock := NewPausableClock()
	return &GameContext{
		Config: cfg,
		Clock:  clock,
		World:  NewWorld(clock),
		State:  NewGameState(),
		Audio:  audio,
		Rand:   rng,
		Logger: logger,
	}
}

// NewTimer creates a disarmed timer on the simulation clock
func (ctx *GameContext) NewTimer() *core.Timer {
	return core.NewTimer(ctx.Clock)
}
