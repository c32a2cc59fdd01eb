package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/corsair/component"
	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

type stubInput struct {
	state core.InputState
	polls int
}

func (s *stubInput) Poll() core.InputState {
	s.polls++
	return s.state
}

func TestSimulationSystemOrder(t *testing.T) {
	f := newFixture(t)
	sim := NewSimulation(f.ctx, nil)

	var names []string
	for _, s := range sim.Systems() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"control", "effect", "director", "player", "emitter", "child",
		"enemy", "collectible", "bullet", "spike", "hud", "outcome",
	}, names)
}

func TestSimulationStart(t *testing.T) {
	f := newFixture(t)
	sim := NewSimulation(f.ctx, nil)
	sim.Start()
	sim.Start()

	p, ok := f.ctx.World.Player()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{}, p.Position)
	assert.InDelta(t, constant.PlayerStartAngle, p.Angle, 1e-12)
	assert.Equal(t, constant.InitialEnemies, f.count(core.KindEnemy))
	assert.True(t, f.audio.loops[core.SoundBackground])
	assert.Equal(t, 1, f.audio.plays[core.SoundBackground])

	frame := sim.Snapshot()
	assert.Equal(t, constant.PlayerMaxHealth, frame.HUD.Health)
	assert.Equal(t, []int{0, 0, 0}, frame.HUD.ScoreDigits)
	assert.Len(t, frame.Poses, 1+constant.InitialEnemies)
}

func TestSimulationFireCooldown(t *testing.T) {
	f := newFixture(t)
	in := &stubInput{state: core.InputState{Fire: true}}
	sim := NewSimulation(f.ctx, in)
	f.player(mgl64.Vec3{})

	sim.Step(constant.FrameUpdateInterval)
	assert.Equal(t, 1, f.count(core.KindBullet))
	assert.Equal(t, 1, f.count(core.KindEmitter))

	sim.Step(constant.FrameUpdateInterval)
	assert.Equal(t, 1, f.count(core.KindBullet), "cooldown still running")

	in.state = core.InputState{AltFire: true}
	sim.Step(constant.FrameUpdateInterval)
	assert.Zero(t, f.count(core.KindSpike), "alternate fire shares the cooldown")

	for i := 0; i < 70; i++ {
		sim.Step(constant.FrameUpdateInterval)
	}
	assert.Equal(t, 1, f.count(core.KindSpike))
	assert.Equal(t, 73, in.polls)
}

func TestSimulationControlMovesPlayer(t *testing.T) {
	f := newFixture(t)
	in := &stubInput{state: core.InputState{Forward: true, TurnLeft: true}}
	sim := NewSimulation(f.ctx, in)
	p := f.player(mgl64.Vec3{})

	sim.Step(100 * time.Millisecond)

	assert.InDelta(t, constant.PlayerSpeed, p.Velocity.Len(), 1e-12)
	assert.InDelta(t, constant.PlayerStartAngle+constant.PlayerTurnRate*0.1, p.Angle, 1e-12)
	// Velocity was set from the pre-turn bearing (straight up)
	assert.InDelta(t, constant.PlayerSpeed*0.1, p.Position[1], 1e-12)
}

func TestSimulationVictory(t *testing.T) {
	f := newFixture(t)
	in := &stubInput{state: core.InputState{Forward: true}}
	sim := NewSimulation(f.ctx, in)
	p := f.player(mgl64.Vec3{})
	p.Player.Score = constant.BossScore

	sim.Step(constant.FrameUpdateInterval)
	require.True(t, f.ctx.State.BossSpawned())
	boss := f.ctx.World.Snapshot(core.KindEnemy)[0]

	DestroyEnemy(f.ctx, boss)
	f.ctx.World.Flush()
	sim.Step(constant.FrameUpdateInterval)

	assert.Equal(t, engine.PhaseVictory, f.ctx.State.Phase())
	assert.True(t, f.ctx.State.InputFrozen)
	assert.Equal(t, mgl64.Vec3{}, p.Velocity)
	require.Equal(t, 1, f.count(core.KindBanner))
	banner := f.ctx.World.Snapshot(core.KindBanner)[0]
	assert.Equal(t, p.Position, banner.Position)
	assert.InDelta(t, constant.BannerScale, banner.Scale, 0)

	// Decided matches only animate effects
	pos := p.Position
	for i := 0; i < 100; i++ {
		sim.Step(constant.MaxFrameDelta)
	}
	assert.Equal(t, pos, p.Position)
	assert.Zero(t, f.count(core.KindEnemy))
	assert.Zero(t, f.count(core.KindExplosion))
	assert.Equal(t, 1, f.count(core.KindBanner))
}

func TestSimulationDefeat(t *testing.T) {
	f := newFixture(t)
	sim := NewSimulation(f.ctx, nil)
	p := f.player(mgl64.Vec3{})
	p.Player.Health = 1
	p.Player.Score = 3
	SpawnEnemy(f.ctx, mgl64.Vec3{0.4, 0, 0}, constant.EliteHealth, component.EnemyPatrolling)
	f.ctx.World.Flush()

	sim.Step(constant.FrameUpdateInterval)
	_, alive := f.ctx.World.Player()
	require.False(t, alive)
	assert.Equal(t, engine.PhasePlaying, f.ctx.State.Phase())

	for i := 0; i < 10 && !f.ctx.State.Over(); i++ {
		sim.Step(constant.MaxFrameDelta)
	}
	assert.Equal(t, engine.PhaseDefeat, f.ctx.State.Phase())

	frame := sim.Snapshot()
	assert.Zero(t, frame.HUD.Health)
	assert.Equal(t, 3, frame.HUD.Score)
	assert.Equal(t, []int{3, 0, 0}, frame.HUD.ScoreDigits)
}

func TestSimulationPausedClockSkipsFrame(t *testing.T) {
	f := newFixture(t)
	sim := NewSimulation(f.ctx, nil)
	sim.Start()

	f.ctx.Clock.Pause()
	sim.Step(constant.FrameUpdateInterval)
	assert.Zero(t, f.ctx.State.Frame)

	f.ctx.Clock.Resume()
	sim.Step(constant.FrameUpdateInterval)
	assert.Equal(t, uint64(1), f.ctx.State.Frame)
}

func TestHUDPowerUpCountdown(t *testing.T) {
	f := newFixture(t)
	p := f.player(mgl64.Vec3{})
	p.Player.Score = 127
	p.Timer.Start(constant.GoldModeDuration)
	f.advance(1500 * time.Millisecond)
	require.Equal(t, 1500*time.Millisecond, f.ctx.Clock.Now())

	NewHUDSystem().Update(f.ctx, 0)
	hud := f.ctx.State.HUD
	assert.True(t, hud.PowerUp)
	assert.Equal(t, 8, hud.PowerUpSeconds)
	assert.Equal(t, []int{7, 2, 1}, hud.ScoreDigits)
	assert.Equal(t, core.TimerRunning, p.Timer.Peek(), "HUD never consumes the timer")
}
