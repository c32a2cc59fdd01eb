package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

// InputSource is polled once per frame for the current key state
type InputSource interface {
	Poll() core.InputState
}

// drawOrder lists kinds back to front
var drawOrder = [...]core.Kind{
	core.KindCollectible,
	core.KindSpike,
	core.KindEnemy,
	core.KindChild,
	core.KindEmitter,
	core.KindBullet,
	core.KindPlayer,
	core.KindExplosion,
	core.KindBanner,
}

// Simulation owns the frame: it advances the clock, runs systems in priority order
// and flushes the arena between them
type Simulation struct {
	ctx      *engine.GameContext
	input    InputSource
	systems  []engine.System
	director *DirectorSystem
	started  bool
}

// NewSimulation wires the default system set around ctx
// input may be nil for headless runs driven through ctx.Input
func NewSimulation(ctx *engine.GameContext, input InputSource) *Simulation {
	s := &Simulation{
		ctx:      ctx,
		input:    input,
		director: NewDirectorSystem(ctx),
	}
	s.AddSystem(NewControlSystem())
	s.AddSystem(NewEffectSystem())
	s.AddSystem(s.director)
	s.AddSystem(NewPlayerSystem())
	s.AddSystem(NewKindSystem("emitter", constant.PriorityEmitter, core.KindEmitter))
	s.AddSystem(NewKindSystem("child", constant.PriorityChild, core.KindChild))
	s.AddSystem(NewEnemySystem())
	s.AddSystem(NewCollectibleSystem())
	s.AddSystem(NewBulletSystem())
	s.AddSystem(NewSpikeSystem())
	s.AddSystem(NewHUDSystem())
	s.AddSystem(NewOutcomeSystem())
	return s
}

// AddSystem registers a system, keeping priority order
func (s *Simulation) AddSystem(sys engine.System) {
	s.systems = append(s.systems, sys)
	engine.SortSystems(s.systems)
}

// Systems returns the registered systems in run order
func (s *Simulation) Systems() []engine.System {
	out := make([]engine.System, len(s.systems))
	copy(out, s.systems)
	return out
}

func (s *Simulation) Context() *engine.GameContext { return s.ctx }

// Start spawns the player and the opening patrol and starts the background loop
func (s *Simulation) Start() {
	if s.started {
		return
	}
	s.started = true

	origin := mgl64.Vec3{}
	SpawnPlayer(s.ctx, origin)
	s.director.Seed(s.ctx, origin)
	s.ctx.World.Flush()

	audio := s.ctx.Audio
	audio.SetLoop(core.SoundBackground, true)
	audio.SetSoundPosition(core.SoundBackground, constant.BackgroundSourceX, 0, 0)
	audio.Play(core.SoundBackground)

	NewHUDSystem().Update(s.ctx, 0)
	s.ctx.Logger.Info("match started", "enemies", s.ctx.World.Count(core.KindEnemy))
}

// Step advances the match by dt
// Once the match is decided only effects keep animating
func (s *Simulation) Step(dt time.Duration) {
	applied := s.ctx.Clock.Advance(dt)
	if applied == 0 {
		return
	}
	if s.input != nil {
		s.ctx.Input = s.input.Poll()
	}

	over := s.ctx.State.Over()
	for _, sys := range s.systems {
		if over && sys.Priority() > constant.PriorityEffect {
			break
		}
		sys.Update(s.ctx, applied)
		s.ctx.World.Flush()
	}
	s.ctx.State.Frame++
}

// Snapshot copies the renderable world for one frame
func (s *Simulation) Snapshot() engine.Frame {
	w := s.ctx.World
	st := s.ctx.State

	f := engine.Frame{
		Elapsed: s.ctx.Clock.Seconds(),
		Number:  st.Frame,
		Phase:   st.Phase(),
		Focus:   st.Focus,
		Kills:   st.Kills(),
		HUD:     st.HUD,
	}
	f.HUD.ScoreDigits = append([]int(nil), st.HUD.ScoreDigits...)

	for _, k := range drawOrder {
		w.Each(k, func(e *engine.Entity) bool {
			f.Poses = append(f.Poses, engine.PoseOf(e))
			return true
		})
	}
	return f
}
