package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/component"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/vmath"
)

// Entity is the tagged record every simulated object shares
// Exactly one variant pointer matching Kind is set; effects and banners carry none
type Entity struct {
	Handle core.Entity
	Kind   core.Kind

	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Angle    float64
	Scale    float64
	Age      float64

	// Timer is the kind's own countdown: projectile lifespan, effect lifetime,
	// enemy retarget, player power-up
	Timer  *core.Timer
	Visual core.Sprite

	// Dead is set by World.Kill; the record stays addressable until the next Flush
	Dead bool

	Player      *component.PlayerComponent
	Enemy       *component.EnemyComponent
	Collectible *component.CollectibleComponent
	Projectile  *component.ProjectileComponent
	Child       *component.ChildComponent
	Emitter     *component.EmitterComponent
}

// SetAngle stores a wrapped facing angle
func (e *Entity) SetAngle(a float64) {
	e.Angle = vmath.WrapAngle(a)
}

// Rotate adds delta radians to the facing angle
func (e *Entity) Rotate(delta float64) {
	e.SetAngle(e.Angle + delta)
}

// Bearing is the unit forward vector for the current angle
func (e *Entity) Bearing() mgl64.Vec3 {
	return vmath.Bearing(e.Angle)
}

// Right is the unit strafe vector for the current angle
func (e *Entity) Right() mgl64.Vec3 {
	return vmath.Right(e.Angle)
}

// Alive reports whether the entity has not been killed this frame
func (e *Entity) Alive() bool {
	return !e.Dead
}
