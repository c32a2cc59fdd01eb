package system

import (
	"time"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

// OutcomeSystem declares victory once the boss has spawned and every enemy is gone
type OutcomeSystem struct{}

func NewOutcomeSystem() *OutcomeSystem { return &OutcomeSystem{} }

func (s *OutcomeSystem) Name() string  { return "outcome" }
func (s *OutcomeSystem) Priority() int { return constant.PriorityOutcome }

func (s *OutcomeSystem) Update(ctx *engine.GameContext, _ time.Duration) {
	if !ctx.State.BossSpawned() || ctx.World.Count(core.KindEnemy) > 0 {
		return
	}
	if !ctx.State.SetPhase(engine.PhaseVictory) {
		return
	}

	ctx.State.InputFrozen = true
	StopPlayer(ctx)
	SpawnBanner(ctx, ctx.State.Focus)
	ctx.Logger.Info("victory", "score", ctx.State.FinalScore(), "kills", ctx.State.Kills())
}
