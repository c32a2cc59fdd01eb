package system

import (
	"time"

	"github.com/lixenwraith/corsair/component"
	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
	"github.com/lixenwraith/corsair/vmath"
)

// EnemySystem moves enemies, switches them to intercepting, retargets and resolves melee
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem { return &EnemySystem{} }

func (s *EnemySystem) Name() string  { return "enemy" }
func (s *EnemySystem) Priority() int { return constant.PriorityEnemy }

func (s *EnemySystem) Update(ctx *engine.GameContext, dt time.Duration) {
	sec := dt.Seconds()
	ctx.World.Each(core.KindEnemy, func(e *engine.Entity) bool {
		Step(ctx, e, sec)

		player, alive := ctx.World.Player()
		if !alive {
			return true
		}

		en := e.Enemy
		if en.State == component.EnemyPatrolling &&
			vmath.WithinRadius(e.Position, player.Position, constant.AggroRadius) {
			SetTarget(e, player.Position)
		}
		if en.State == component.EnemyIntercepting && e.Timer.Query(true) == core.TimerElapsed {
			SetTarget(e, player.Position)
		}

		ResolveMelee(ctx, player, e)
		return true
	})
}
