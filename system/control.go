package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/engine"
)

// ControlSystem turns the sampled key state into player motion and fire
type ControlSystem struct{}

func NewControlSystem() *ControlSystem { return &ControlSystem{} }

func (s *ControlSystem) Name() string  { return "control" }
func (s *ControlSystem) Priority() int { return constant.PriorityControl }

func (s *ControlSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	if ctx.State.InputFrozen {
		return
	}
	player, ok := ctx.World.Player()
	if !ok {
		return
	}

	in := ctx.Input
	sec := dt.Seconds()
	impulse := sec * constant.PlayerImpulseScale
	bearing := player.Bearing()
	right := player.Right()

	if in.Forward {
		SetPlayerVelocity(player, bearing.Mul(impulse))
	}
	if in.Back {
		SetPlayerVelocity(player, bearing.Mul(-impulse))
	}

	angle := player.Angle
	if in.TurnRight {
		angle -= constant.PlayerTurnRate * sec
	}
	if in.TurnLeft {
		angle += constant.PlayerTurnRate * sec
	}

	if in.StrafeLeft {
		SetPlayerVelocity(player, right.Mul(-impulse))
	}
	if in.StrafeRight {
		SetPlayerVelocity(player, right.Mul(impulse))
	}

	cooldown := player.Player.FireCooldown
	if in.Fire && cooldown.Ready() {
		SpawnBullet(ctx, player)
		cooldown.Start(constant.BulletCooldown)
	}
	if in.AltFire && cooldown.Ready() {
		SpawnSpike(ctx, player)
		cooldown.Start(constant.SpikeCooldown)
	}

	player.SetAngle(angle)
}

// StopPlayer zeroes player velocity
func StopPlayer(ctx *engine.GameContext) {
	if player, ok := ctx.World.Player(); ok {
		player.Velocity = mgl64.Vec3{}
	}
}
