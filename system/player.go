package system

import (
	"time"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/engine"
)

// PlayerSystem integrates player motion
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem { return &PlayerSystem{} }

func (s *PlayerSystem) Name() string  { return "player" }
func (s *PlayerSystem) Priority() int { return constant.PriorityPlayer }

func (s *PlayerSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	player, ok := ctx.World.Player()
	if !ok {
		return
	}
	Step(ctx, player, dt.Seconds())
}
