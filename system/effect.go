package system

import (
	"time"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

// EffectSystem ages transient effects and frees explosions whose timer has elapsed
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem { return &EffectSystem{} }

func (s *EffectSystem) Name() string  { return "effect" }
func (s *EffectSystem) Priority() int { return constant.PriorityEffect }

func (s *EffectSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	sec := dt.Seconds()
	ctx.World.Each(core.KindExplosion, func(e *engine.Entity) bool {
		Step(ctx, e, sec)
		if e.Timer.Query(true) == core.TimerElapsed {
			ctx.World.Kill(e.Handle)
		}
		return true
	})
	ctx.World.Each(core.KindBanner, func(e *engine.Entity) bool {
		Step(ctx, e, sec)
		return true
	})
}
