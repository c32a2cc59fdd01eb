package system

import (
	"time"

	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

// KindSystem steps every live entity of one kind with no further interaction
type KindSystem struct {
	name     string
	priority int
	kind     core.Kind
}

func NewKindSystem(name string, priority int, kind core.Kind) *KindSystem {
	return &KindSystem{name: name, priority: priority, kind: kind}
}

func (s *KindSystem) Name() string  { return s.name }
func (s *KindSystem) Priority() int { return s.priority }

func (s *KindSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	sec := dt.Seconds()
	ctx.World.Each(s.kind, func(e *engine.Entity) bool {
		Step(ctx, e, sec)
		return true
	})
}
