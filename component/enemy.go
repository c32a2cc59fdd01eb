package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/core"
)

// EnemyState is the behavior state of an enemy
type EnemyState uint8

const (
	EnemyPatrolling EnemyState = iota
	EnemyIntercepting
)

func (s EnemyState) String() string {
	if s == EnemyIntercepting {
		return "intercepting"
	}
	return "patrolling"
}

// EnemyComponent tracks enemy behavior state
// The retarget countdown lives in the entity's own timer
type EnemyComponent struct {
	State  EnemyState
	Health int

	// Center is the fixed orbit point chosen at spawn from the spawn quadrant
	Center mgl64.Vec3

	// Target is the last point fixed while intercepting
	Target mgl64.Vec3

	// HitCooldown gates repeat contact damage
	HitCooldown *core.Timer

	// Boss marks the single escalation enemy
	Boss bool
}

// Hit removes one point of health
func (c *EnemyComponent) Hit() {
	c.Health--
}

// Destroyed reports whether the enemy has no health left
func (c *EnemyComponent) Destroyed() bool {
	return c.Health <= 0
}
