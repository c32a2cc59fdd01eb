package component

import "github.com/lixenwraith/corsair/core"

// PlayerComponent holds the player ship's gameplay counters
// The power-up countdown lives in the entity's own timer
type PlayerComponent struct {
	Health     int
	Score      int
	BuffStreak int // Buffs collected toward the next gold mode

	// FireCooldown is shared by primary and alternate fire
	FireCooldown *core.Timer
}
