package engine

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

// Phase is the match outcome
type Phase int32

const (
	PhasePlaying Phase = iota
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "playing"
	}
}

// GameState holds match-level state that outlives individual entities
type GameState struct {
	// ===== Atomic (Self-Synchronized) =====
	// Read by the front end for the status line

	phase       atomic.Int32
	bossSpawned atomic.Bool
	finalScore  atomic.Int64
	kills       atomic.Int64

	// ===== Main-Loop Exclusive =====

	// OutstandingBuffs counts buff collectibles spawned and not yet picked up
	OutstandingBuffs int
	// Frame is the number of completed simulation steps
	Frame uint64
	// InputFrozen stops control once the player is gone or the match is won
	InputFrozen bool
	// Focus is the camera anchor: the player, or where it was destroyed
	Focus mgl64.Vec3
	// HUD is refreshed once per frame from the player
	HUD HUD
}

// NewGameState creates a state in PhasePlaying
func NewGameState() *GameState {
	return &GameState{}
}

func (gs *GameState) Phase() Phase { return Phase(gs.phase.Load()) }

// SetPhase moves out of PhasePlaying once; later transitions are ignored
func (gs *GameState) SetPhase(p Phase) bool {
	return gs.phase.CompareAndSwap(int32(PhasePlaying), int32(p))
}

func (gs *GameState) Over() bool { return gs.Phase() != PhasePlaying }

// BossSpawned reports whether the boss trigger fired
func (gs *GameState) BossSpawned() bool { return gs.bossSpawned.Load() }

// MarkBossSpawned sets the boss flag, returning false if it was already set
func (gs *GameState) MarkBossSpawned() bool {
	return gs.bossSpawned.CompareAndSwap(false, true)
}

// FinalScore is the last score recorded from the player component
func (gs *GameState) FinalScore() int { return int(gs.finalScore.Load()) }

func (gs *GameState) RecordScore(score int) { gs.finalScore.Store(int64(score)) }

func (gs *GameState) Kills() int { return int(gs.kills.Load()) }

func (gs *GameState) AddKill() { gs.kills.Add(1) }
