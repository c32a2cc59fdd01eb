package system

import (
	"time"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
	"github.com/lixenwraith/corsair/vmath"
)

// SpikeSystem drifts spikes and detonates them on the first enemy in range
type SpikeSystem struct{}

func NewSpikeSystem() *SpikeSystem { return &SpikeSystem{} }

func (s *SpikeSystem) Name() string  { return "spike" }
func (s *SpikeSystem) Priority() int { return constant.PrioritySpike }

func (s *SpikeSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	sec := dt.Seconds()
	ctx.World.Each(core.KindSpike, func(sp *engine.Entity) bool {
		Step(ctx, sp, sec)

		hit := false
		ctx.World.Each(core.KindEnemy, func(e *engine.Entity) bool {
			if !vmath.WithinRadius(sp.Position, e.Position, constant.SpikeRadius) {
				return true
			}
			// A lethal hit plays the explosion from DestroyEnemy
			if !DamageEnemy(ctx, e) {
				playExplosion(ctx, e.Position)
			}
			hit = true
			return false
		})

		if hit || sp.Timer.Query(true) == core.TimerElapsed {
			KillProjectile(ctx, sp)
		}
		return true
	})
}
