package component

import "github.com/lixenwraith/corsair/core"

// ChildComponent rigidly attaches an entity to a parent
// Parent is a weak reference: lookup only, the child dies when it stops resolving
type ChildComponent struct {
	Parent core.Entity
	Spin   float64 // Accumulated offset in [0, 2π)
}

// EmitterComponent anchors a particle trail to the projectile that owns it
type EmitterComponent struct {
	Parent core.Entity
}
