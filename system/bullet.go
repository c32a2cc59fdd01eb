package system

import (
	"time"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
	"github.com/lixenwraith/corsair/vmath"
)

// BulletSystem moves bullets and tests each frame's path against every enemy
// The sweep catches enemies a fast bullet would otherwise step over
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem { return &BulletSystem{} }

func (s *BulletSystem) Name() string  { return "bullet" }
func (s *BulletSystem) Priority() int { return constant.PriorityBullet }

func (s *BulletSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	sec := dt.Seconds()
	ctx.World.Each(core.KindBullet, func(b *engine.Entity) bool {
		prev := b.Position
		Step(ctx, b, sec)
		disp := b.Position.Sub(prev)

		hit := false
		ctx.World.Each(core.KindEnemy, func(e *engine.Entity) bool {
			if !vmath.SegmentHitsCircle(prev, disp, e.Position, constant.BulletHitRadiusSq) {
				return true
			}
			// A lethal hit plays the explosion from DestroyEnemy
			if !DamageEnemy(ctx, e) {
				playExplosion(ctx, e.Position)
			}
			hit = true
			return false
		})

		if hit || b.Timer.Query(true) == core.TimerElapsed {
			KillProjectile(ctx, b)
		}
		return true
	})
}
