package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/corsair/constant"
)

// ExplosionGenerator is a decaying burst of noise over a low rumble
type ExplosionGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	rng   *rand.Rand
}

// NewExplosionGenerator creates a one-shot explosion of constant.ExplosionSoundDuration
func NewExplosionGenerator(sr beep.SampleRate, seed uint64) *ExplosionGenerator {
	return &ExplosionGenerator{
		sr:    sr,
		total: sr.N(constant.ExplosionSoundDuration),
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential tail
		envelope := math.Min(t/0.005, 1) * math.Exp(-t*9)
		noise := g.rng.Float64()*2 - 1
		rumble := math.Sin(2 * math.Pi * constant.ExplosionRumbleHz * t)
		sample := envelope * (0.6*noise + 0.4*rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error { return nil }

// BeatGenerator produces one bar of the background loop: a kick on the beat over a sustained bass
type BeatGenerator struct {
	sr   beep.SampleRate
	bass beep.Streamer
	pos  int
	beat int
	kick int
	buf  [][2]float64
}

// NewBeatGenerator creates a beat of constant.BackgroundBeat length
func NewBeatGenerator(sr beep.SampleRate) (*BeatGenerator, error) {
	bass, err := generators.SineTone(sr, constant.BackgroundBassHz)
	if err != nil {
		return nil, err
	}
	return &BeatGenerator{
		sr:   sr,
		bass: bass,
		beat: sr.N(constant.BackgroundBeat),
		kick: sr.N(100 * time.Millisecond),
	}, nil
}

func (g *BeatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.beat {
		return 0, false
	}
	if rem := g.beat - g.pos; len(samples) > rem {
		samples = samples[:rem]
	}
	if cap(g.buf) < len(samples) {
		g.buf = make([][2]float64, len(samples))
	}
	bass := g.buf[:len(samples)]
	g.bass.Stream(bass)

	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		kick := 0.0
		if g.pos < g.kick {
			env := 1 - float64(g.pos)/float64(g.kick)
			kick = env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		sample := 0.6*kick + 0.4*bass[i][0]
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BeatGenerator) Err() error { return g.bass.Err() }

// withVolume scales a streamer linearly; zero silences it
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// panFor maps the horizontal offset between source and listener to [-1, 1]
func panFor(sourceX, listenerX float64) float64 {
	p := (sourceX - listenerX) / constant.AudioPanDistance
	return math.Max(-1, math.Min(1, p))
}
