package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/component"
	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
	"github.com/lixenwraith/corsair/vmath"
)

// UpdateFunc computes one kind's motion for a step of dt seconds
// e.Age is the age at the start of the step; closed forms sample e.Age+dt
type UpdateFunc func(ctx *engine.GameContext, e *engine.Entity, dt float64)

// kinematics dispatches per-kind motion; kinds without an entry only age
var kinematics = map[core.Kind]UpdateFunc{
	core.KindPlayer:      updatePlayer,
	core.KindEnemy:       updateEnemy,
	core.KindCollectible: updateCollectible,
	core.KindBullet:      updateProjectile,
	core.KindSpike:       updateProjectile,
	core.KindEmitter:     updateEmitter,
	core.KindChild:       updateChild,
}

// Step runs the kind's motion then advances age
func Step(ctx *engine.GameContext, e *engine.Entity, dt float64) {
	if fn, ok := kinematics[e.Kind]; ok {
		fn(ctx, e, dt)
	}
	e.Age += dt
}

func updatePlayer(_ *engine.GameContext, e *engine.Entity, dt float64) {
	e.Position = e.Position.Add(e.Velocity.Mul(dt))
}

// SetPlayerVelocity blends a requested impulse into the current heading at constant speed
func SetPlayerVelocity(e *engine.Entity, req mgl64.Vec3) {
	e.Velocity = vmath.NormalizeOrZero(vmath.Flat(req.Add(e.Velocity))).Mul(constant.PlayerSpeed)
}

func updateEnemy(_ *engine.GameContext, e *engine.Entity, dt float64) {
	from, to := e.Age, e.Age+dt
	ticks := vmath.TicksCrossed(from, to, constant.KinematicTickRate)
	if ticks == 0 {
		return
	}

	en := e.Enemy
	switch en.State {
	case component.EnemyPatrolling:
		tick := vmath.TickIndex(to, constant.KinematicTickRate)
		rad := vmath.DegToRad(float64(tick % 360))
		next := mgl64.Vec3{
			en.Center[0] + constant.EnemyPatrolRadius*math.Cos(rad),
			en.Center[1] + constant.EnemyPatrolRadius*math.Sin(rad),
			0,
		}
		e.SetAngle(vmath.Heading(next.Sub(e.Position), e.Angle))
		e.Position = next

	case component.EnemyIntercepting:
		step := e.Velocity.Mul(float64(ticks) / constant.InterceptStepDivisor)
		e.Position = e.Position.Add(step)
		e.SetAngle(vmath.Heading(e.Velocity, e.Angle))
	}
}

// SetTarget switches the enemy to intercepting toward target and restarts its retarget timer
func SetTarget(e *engine.Entity, target mgl64.Vec3) {
	en := e.Enemy
	en.State = component.EnemyIntercepting
	en.Target = target
	e.Velocity = vmath.Flat(target.Sub(e.Position))
	e.Timer.Start(constant.EnemyRetargetInterval)
}

func updateCollectible(_ *engine.GameContext, e *engine.Entity, dt float64) {
	origin := e.Collectible.Origin
	age := e.Age + dt
	e.Position = mgl64.Vec3{
		origin[0],
		origin[1] + constant.CollectibleBobAmplitude*math.Sin(constant.CollectibleBobFrequency*age),
		0,
	}
}

// Projectiles are closed form in age, so the path is independent of frame slicing
func updateProjectile(_ *engine.GameContext, e *engine.Entity, dt float64) {
	e.Position = e.Projectile.Start.Add(e.Velocity.Mul(constant.ProjectileSpeedScale * (e.Age + dt)))
}

func updateEmitter(ctx *engine.GameContext, e *engine.Entity, _ float64) {
	parent, ok := ctx.World.Get(e.Emitter.Parent)
	if !ok {
		ctx.World.Kill(e.Handle)
		return
	}
	e.Position = parent.Position
	e.Angle = parent.Angle
}

func updateChild(ctx *engine.GameContext, e *engine.Entity, dt float64) {
	parent, ok := ctx.World.Get(e.Child.Parent)
	if !ok {
		ctx.World.Kill(e.Handle)
		return
	}
	e.Position = childAnchor(parent, e)

	to := e.Age + dt
	if vmath.TicksCrossed(e.Age, to, constant.KinematicTickRate) > 0 {
		tick := vmath.TickIndex(to, constant.KinematicTickRate)
		e.SetAngle(vmath.DegToRad(float64(tick%360)) + e.Child.Spin)
	}
}

func childAnchor(parent, child *engine.Entity) mgl64.Vec3 {
	return parent.Position.Add(mgl64.Vec3{child.Scale, child.Scale, 0})
}

// AddSpin accumulates a wrapped spin offset on a child
func AddSpin(e *engine.Entity, delta float64) {
	e.Child.Spin = vmath.WrapAngle(e.Child.Spin + delta)
}
