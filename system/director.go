package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/component"
	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

// DirectorSystem paces the match: enemy and buff spawners, the boss trigger and defeat
type DirectorSystem struct {
	enemyTimer *core.Timer
	buffTimer  *core.Timer
}

func NewDirectorSystem(ctx *engine.GameContext) *DirectorSystem {
	return &DirectorSystem{
		enemyTimer: ctx.NewTimer(),
		buffTimer:  ctx.NewTimer(),
	}
}

func (d *DirectorSystem) Name() string  { return "director" }
func (d *DirectorSystem) Priority() int { return constant.PriorityDirector }

// Seed places the opening patrol around center
func (d *DirectorSystem) Seed(ctx *engine.GameContext, center mgl64.Vec3) {
	for i := 0; i < constant.InitialEnemies; i++ {
		pos := SampleSpawn(ctx, center, constant.InitialExclusion)
		SpawnEnemy(ctx, pos, constant.EnemyHealth, component.EnemyPatrolling)
	}
}

func (d *DirectorSystem) Update(ctx *engine.GameContext, _ time.Duration) {
	player, alive := ctx.World.Player()
	if !alive {
		if ctx.World.Count(core.KindExplosion) == 0 && ctx.State.SetPhase(engine.PhaseDefeat) {
			ctx.Logger.Info("defeat", "score", ctx.State.FinalScore(), "kills", ctx.State.Kills())
		}
		return
	}

	score := player.Player.Score
	if score >= constant.BossScore && ctx.State.MarkBossSpawned() {
		pos := player.Position.Add(mgl64.Vec3{constant.BossSpawnOffsetX, 0, 0})
		SpawnBoss(ctx, pos)
		ctx.Logger.Info("boss spawned", "score", score, "x", pos[0], "y", pos[1])
	}
	if ctx.State.BossSpawned() {
		return
	}

	d.spawnEnemies(ctx, player, score)
	d.spawnBuffs(ctx, player)
}

func (d *DirectorSystem) spawnEnemies(ctx *engine.GameContext, player *engine.Entity, score int) {
	enemies := ctx.World.Count(core.KindEnemy)
	if enemies >= constant.MaxEnemies || score >= constant.BossScore {
		return
	}

	switch d.enemyTimer.Query(true) {
	case core.TimerNotArmed:
		d.enemyTimer.Start(constant.SpawnInterval)
	case core.TimerElapsed:
		if score+enemies >= constant.BossScore {
			return
		}
		pos := SampleSpawn(ctx, player.Position, constant.EnemyExclusion)
		if score > constant.EliteScoreThreshold && ctx.Rand.IntN(constant.EliteOddsOutOf) < constant.EliteOdds {
			SpawnEnemy(ctx, pos, constant.EliteHealth, component.EnemyIntercepting)
		} else {
			SpawnEnemy(ctx, pos, constant.EnemyHealth, component.EnemyPatrolling)
		}
	}
}

func (d *DirectorSystem) spawnBuffs(ctx *engine.GameContext, player *engine.Entity) {
	if ctx.State.OutstandingBuffs >= constant.MaxBuffs {
		return
	}

	switch d.buffTimer.Query(true) {
	case core.TimerNotArmed:
		d.buffTimer.Start(constant.SpawnInterval)
	case core.TimerElapsed:
		pos := SampleSpawn(ctx, player.Position, constant.CollectibleExclusion)
		SpawnCollectible(ctx, pos, component.CollectibleBuff)
		ctx.State.OutstandingBuffs++
	}
}

// SampleSpawn draws a point in the spawn box around center, outside the exclusion box
// After SpawnMaxAttempts rejections it settles for the last candidate
func SampleSpawn(ctx *engine.GameContext, center mgl64.Vec3, exclusion float64) mgl64.Vec3 {
	var p mgl64.Vec3
	for i := 0; i < constant.SpawnMaxAttempts; i++ {
		dx := (ctx.Rand.Float64()*2 - 1) * constant.SpawnBoxHalf
		dy := (ctx.Rand.Float64()*2 - 1) * constant.SpawnBoxHalf
		p = mgl64.Vec3{center[0] + dx, center[1] + dy, 0}
		if math.Abs(dx) >= exclusion || math.Abs(dy) >= exclusion {
			return p
		}
	}
	ctx.Logger.Debug("spawn sampling exhausted", "exclusion", exclusion, "x", p[0], "y", p[1])
	return p
}
