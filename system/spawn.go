package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/component"
	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

// SpawnPlayer creates the singleton player facing up
func SpawnPlayer(ctx *engine.GameContext, pos mgl64.Vec3) *engine.Entity {
	e := ctx.World.Spawn(core.KindPlayer, pos)
	e.SetAngle(constant.PlayerStartAngle)
	e.Scale = constant.PlayerScale
	e.Visual = core.SpriteShip
	e.Timer = ctx.NewTimer()
	e.Player = &component.PlayerComponent{
		Health:       constant.PlayerMaxHealth,
		FireCooldown: ctx.NewTimer(),
	}
	return e
}

// patrolCenter offsets the orbit point half a unit back toward the origin quadrant
func patrolCenter(pos mgl64.Vec3) mgl64.Vec3 {
	c := mgl64.Vec3{pos[0], pos[1], 0}
	if pos[0] > 0 {
		c[0] -= constant.EnemyPatrolOffset
	} else {
		c[0] += constant.EnemyPatrolOffset
	}
	if pos[1] > 0 {
		c[1] -= constant.EnemyPatrolOffset
	} else {
		c[1] += constant.EnemyPatrolOffset
	}
	return c
}

// SpawnEnemy creates an enemy with the given health and initial state
// Enemies that start intercepting pick their first target after EnemyFirstRetarget
func SpawnEnemy(ctx *engine.GameContext, pos mgl64.Vec3, health int, state component.EnemyState) *engine.Entity {
	e := ctx.World.Spawn(core.KindEnemy, pos)
	e.Scale = constant.EnemyScale
	e.Timer = ctx.NewTimer()
	e.Enemy = &component.EnemyComponent{
		State:       state,
		Health:      health,
		Center:      patrolCenter(pos),
		HitCooldown: ctx.NewTimer(),
	}
	if state == component.EnemyIntercepting {
		e.Timer.Start(constant.EnemyFirstRetarget)
	}
	if health > 1 {
		e.Visual = core.SpriteSeaMonster
	} else {
		e.Visual = core.SpriteNavy
	}
	return e
}

// SpawnBoss creates the escalation enemy and, when configured, its chained arms
func SpawnBoss(ctx *engine.GameContext, pos mgl64.Vec3) *engine.Entity {
	boss := SpawnEnemy(ctx, pos, constant.BossHealth, component.EnemyIntercepting)
	boss.Enemy.Boss = true
	boss.Visual = core.SpriteKraken

	if ctx.Config.BossArms {
		parent := boss
		for _, spin := range constant.BossArmSpins {
			parent = SpawnChild(ctx, parent, spin)
		}
	}
	return boss
}

// SpawnChild attaches a child to parent through a weak handle
func SpawnChild(ctx *engine.GameContext, parent *engine.Entity, spin float64) *engine.Entity {
	e := ctx.World.Spawn(core.KindChild, parent.Position)
	e.Scale = constant.ChildScale
	e.Visual = core.SpriteTentacle
	e.Child = &component.ChildComponent{Parent: parent.Handle}
	AddSpin(e, spin)
	e.Position = childAnchor(parent, e)
	return e
}

// SpawnCollectible creates a floating collectible
func SpawnCollectible(ctx *engine.GameContext, pos mgl64.Vec3, typ component.CollectibleType) *engine.Entity {
	e := ctx.World.Spawn(core.KindCollectible, pos)
	e.Scale = constant.CollectibleScale
	e.Collectible = &component.CollectibleComponent{Type: typ, Origin: pos}
	switch typ {
	case component.CollectibleHealth:
		e.Visual = core.SpriteApple
	case component.CollectibleScore:
		e.Visual = core.SpriteGold
	default:
		e.Visual = core.SpriteBarrel
	}
	return e
}

// SpawnBullet fires a primary shot from shooter and its paired trail emitter
func SpawnBullet(ctx *engine.GameContext, shooter *engine.Entity) *engine.Entity {
	pos := mgl64.Vec3{shooter.Position[0], shooter.Position[1], 0}
	b := ctx.World.Spawn(core.KindBullet, pos)
	b.Scale = constant.BulletScale
	b.Visual = core.SpriteCannonball
	b.Velocity = shooter.Bearing().Mul(constant.BulletSpeed)
	b.SetAngle(shooter.Angle - math.Pi/2)
	b.Timer = ctx.NewTimer()
	b.Timer.Start(constant.ProjectileLifespan)

	em := ctx.World.Spawn(core.KindEmitter, pos)
	em.Scale = constant.EmitterScale
	em.Visual = core.SpriteSmoke
	em.Emitter = &component.EmitterComponent{Parent: b.Handle}

	b.Projectile = &component.ProjectileComponent{Start: pos, Emitter: em.Handle}
	return b
}

// SpawnSpike drops an alternate-fire spike that drifts slowly backward
func SpawnSpike(ctx *engine.GameContext, shooter *engine.Entity) *engine.Entity {
	pos := mgl64.Vec3{shooter.Position[0], shooter.Position[1], 0}
	s := ctx.World.Spawn(core.KindSpike, pos)
	s.Scale = constant.SpikeScale
	s.Visual = core.SpriteSpike
	s.Velocity = shooter.Bearing().Mul(constant.SpikeSpeed)
	s.Timer = ctx.NewTimer()
	s.Timer.Start(constant.ProjectileLifespan)
	s.Projectile = &component.ProjectileComponent{Start: pos}
	return s
}

// SpawnExplosion creates a transient effect freed once its timer elapses
func SpawnExplosion(ctx *engine.GameContext, pos mgl64.Vec3) *engine.Entity {
	e := ctx.World.Spawn(core.KindExplosion, pos)
	e.Scale = constant.ExplosionScale
	e.Visual = core.SpriteBoom
	e.Timer = ctx.NewTimer()
	e.Timer.Start(constant.ExplosionDuration)
	return e
}

// SpawnBanner creates the end-of-match display
func SpawnBanner(ctx *engine.GameContext, pos mgl64.Vec3) *engine.Entity {
	e := ctx.World.Spawn(core.KindBanner, pos)
	e.Scale = constant.BannerScale
	e.Visual = core.SpriteClear
	return e
}
