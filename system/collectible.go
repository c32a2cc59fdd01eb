package system

import (
	"time"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

// CollectibleSystem bobs collectibles and applies pickups
type CollectibleSystem struct{}

func NewCollectibleSystem() *CollectibleSystem { return &CollectibleSystem{} }

func (s *CollectibleSystem) Name() string  { return "collectible" }
func (s *CollectibleSystem) Priority() int { return constant.PriorityCollectible }

func (s *CollectibleSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	sec := dt.Seconds()
	ctx.World.Each(core.KindCollectible, func(e *engine.Entity) bool {
		Step(ctx, e, sec)
		if player, ok := ctx.World.Player(); ok {
			ResolvePickup(ctx, player, e)
		}
		return true
	})
}
