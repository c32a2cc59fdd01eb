package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/component"
	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
	"github.com/lixenwraith/corsair/vmath"
)

// DamageEnemy applies one hit, plus a bonus hit while the player's gold mode runs
// Returns true when the hit destroyed the enemy
func DamageEnemy(ctx *engine.GameContext, enemy *engine.Entity) bool {
	en := enemy.Enemy
	en.Hit()
	if player, ok := ctx.World.Player(); ok && player.Timer.Active() {
		en.Hit()
	}
	if en.Destroyed() {
		DestroyEnemy(ctx, enemy)
		return true
	}
	return false
}

// DestroyEnemy removes an enemy: drop roll, explosion, score
func DestroyEnemy(ctx *engine.GameContext, enemy *engine.Entity) {
	if !ctx.World.Kill(enemy.Handle) {
		return
	}
	enemy.Enemy.Health = 0
	pos := enemy.Position

	RollDrop(ctx, pos)
	SpawnExplosion(ctx, pos)
	playExplosion(ctx, pos)

	if player, ok := ctx.World.Player(); ok {
		player.Player.Score++
		ctx.State.RecordScore(player.Player.Score)
	}
	ctx.State.AddKill()
	ctx.Logger.Debug("enemy destroyed",
		"entity", uint64(enemy.Handle),
		"boss", enemy.Enemy.Boss,
		"x", pos[0], "y", pos[1])
}

// RollDrop draws once from the drop table and spawns the result at pos
func RollDrop(ctx *engine.GameContext, pos mgl64.Vec3) {
	switch ctx.Rand.IntN(constant.DropDieSides) {
	case constant.DropHealthFace:
		SpawnCollectible(ctx, pos, component.CollectibleHealth)
	case constant.DropScoreFace:
		SpawnCollectible(ctx, pos, component.CollectibleScore)
	}
}

// playExplosion starts the cue unless it is already sounding
func playExplosion(ctx *engine.GameContext, pos mgl64.Vec3) {
	if ctx.Audio.IsPlaying(core.SoundExplosion) {
		return
	}
	ctx.Audio.SetSoundPosition(core.SoundExplosion, pos[0], pos[1], pos[2])
	ctx.Audio.Play(core.SoundExplosion)
}

// ResolveMelee handles contact between a live player and an enemy
// Damage lands only when the enemy's hit cooldown is ready; the player loses one health per landed contact
func ResolveMelee(ctx *engine.GameContext, player, enemy *engine.Entity) bool {
	if !vmath.WithinRadius(enemy.Position, player.Position, constant.MeleeRadius) {
		return false
	}
	if !enemy.Enemy.HitCooldown.Ready() {
		return false
	}

	if !DamageEnemy(ctx, enemy) {
		enemy.Enemy.HitCooldown.Start(constant.EnemyHitCooldown)
	}

	pc := player.Player
	pc.Health--
	if pc.Health <= 0 {
		pc.Health = 0
		KillPlayer(ctx, player)
	}
	return true
}

// KillPlayer replaces the player with an explosion and freezes input
func KillPlayer(ctx *engine.GameContext, player *engine.Entity) {
	if !ctx.World.Kill(player.Handle) {
		return
	}
	ctx.State.RecordScore(player.Player.Score)
	ctx.State.Focus = player.Position
	ctx.State.InputFrozen = true
	SpawnExplosion(ctx, player.Position)
	playExplosion(ctx, player.Position)
	ctx.Logger.Info("player destroyed", "score", player.Player.Score)
}

// ResolvePickup applies a collectible touching the player and removes it
func ResolvePickup(ctx *engine.GameContext, player, item *engine.Entity) bool {
	if !vmath.WithinRadius(item.Position, player.Position, constant.PickupRadius) {
		return false
	}
	if !ctx.World.Kill(item.Handle) {
		return false
	}

	pc := player.Player
	switch item.Collectible.Type {
	case component.CollectibleBuff:
		if ctx.State.OutstandingBuffs > 0 {
			ctx.State.OutstandingBuffs--
		}
		pc.BuffStreak++
		if pc.BuffStreak >= constant.GoldStreakTrigger {
			player.Timer.Start(constant.GoldModeDuration)
			pc.BuffStreak = 0
			ctx.Logger.Debug("gold mode armed")
		}
	case component.CollectibleHealth:
		if pc.Health < constant.PlayerMaxHealth {
			pc.Health++
		}
	case component.CollectibleScore:
		pc.Score++
		ctx.State.RecordScore(pc.Score)
	}
	return true
}

// KillProjectile removes a projectile and its paired emitter together
func KillProjectile(ctx *engine.GameContext, p *engine.Entity) {
	ctx.World.Kill(p.Handle)
	if p.Projectile != nil {
		ctx.World.Kill(p.Projectile.Emitter)
	}
}
