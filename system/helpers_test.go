package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

// scriptedRand replays queued draws and counts calls
// Empty queues fall back to IntN 0 and Float64 0.9
type scriptedRand struct {
	ints       []int
	floats     []float64
	intCalls   int
	floatCalls int
}

func (r *scriptedRand) IntN(n int) int {
	r.intCalls++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	r.floatCalls++
	if len(r.floats) == 0 {
		return 0.9
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// recordingAudio tracks cues; a played sound reads as playing until stopped
type recordingAudio struct {
	plays    map[core.SoundType]int
	playing  map[core.SoundType]bool
	loops    map[core.SoundType]bool
	listener mgl64.Vec3
}

func newRecordingAudio() *recordingAudio {
	return &recordingAudio{
		plays:   make(map[core.SoundType]int),
		playing: make(map[core.SoundType]bool),
		loops:   make(map[core.SoundType]bool),
	}
}

func (a *recordingAudio) Play(id core.SoundType) {
	a.plays[id]++
	a.playing[id] = true
}
func (a *recordingAudio) IsPlaying(id core.SoundType) bool                           { return a.playing[id] }
func (a *recordingAudio) SetLoop(id core.SoundType, loop bool)                       { a.loops[id] = loop }
func (a *recordingAudio) SetListenerPosition(x, y, z float64)                        { a.listener = mgl64.Vec3{x, y, z} }
func (a *recordingAudio) SetSoundPosition(core.SoundType, float64, float64, float64) {}

type fixture struct {
	ctx   *engine.GameContext
	rng   *scriptedRand
	audio *recordingAudio
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, engine.DefaultConfig())
}

func newFixtureWith(t *testing.T, cfg engine.Config) *fixture {
	t.Helper()
	require.NoError(t, cfg.Validate())
	rng := &scriptedRand{}
	audio := newRecordingAudio()
	return &fixture{
		ctx:   engine.NewGameContext(cfg, audio, rng, nil),
		rng:   rng,
		audio: audio,
	}
}

// player spawns and flushes a player at pos
func (f *fixture) player(pos mgl64.Vec3) *engine.Entity {
	p := SpawnPlayer(f.ctx, pos)
	f.ctx.World.Flush()
	return p
}

// advance moves the sim clock by d in steps the clock accepts whole
func (f *fixture) advance(d time.Duration) {
	for d > 0 {
		step := min(d, constant.MaxFrameDelta)
		f.ctx.Clock.Advance(step)
		d -= step
	}
}

func (f *fixture) count(kind core.Kind) int {
	return f.ctx.World.Count(kind)
}
