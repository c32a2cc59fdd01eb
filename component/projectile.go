package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/core"
)

// ProjectileComponent fixes a projectile's launch point; position is derived from age
type ProjectileComponent struct {
	Start mgl64.Vec3

	// Emitter is the paired trail entity, NoEntity for spikes
	Emitter core.Entity
}
