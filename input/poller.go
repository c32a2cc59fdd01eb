package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

// Action is a gameplay binding a key can drive
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionTurnLeft
	ActionTurnRight
	ActionStrafeLeft
	ActionStrafeRight
	ActionFire
	ActionAltFire
	ActionCount
)

// runeBindings maps printable keys to actions, case-insensitive
var runeBindings = map[rune]Action{
	'w': ActionForward,
	's': ActionBack,
	'a': ActionTurnLeft,
	'd': ActionTurnRight,
	'q': ActionStrafeLeft,
	'e': ActionStrafeRight,
	' ': ActionFire,
	'x': ActionAltFire,
}

// keyBindings maps special keys to actions
var keyBindings = map[tcell.Key]Action{
	tcell.KeyUp:    ActionForward,
	tcell.KeyDown:  ActionBack,
	tcell.KeyLeft:  ActionTurnLeft,
	tcell.KeyRight: ActionTurnRight,
	tcell.KeyTab:   ActionAltFire,
}

// EventSource yields terminal events, tcell.Screen satisfies it
type EventSource interface {
	PollEvent() tcell.Event
}

// Poller turns a stream of terminal key events into per-frame held-key state
// Terminals report presses and repeats only, so a key reads as held until its
// hold window lapses without a fresh event
type Poller struct {
	mu       sync.Mutex
	provider engine.TimeProvider
	hold     time.Duration
	lastSeen [ActionCount]time.Time
	seen     [ActionCount]bool
	quit     bool
}

// NewPoller creates a poller using the default hold window
func NewPoller(provider engine.TimeProvider) *Poller {
	return &Poller{provider: provider, hold: constant.InputHoldWindow}
}

// Feed records one terminal event
func (p *Poller) Feed(ev tcell.Event) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch kev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.quit = true
		return
	case tcell.KeyRune:
		r := kev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if a, ok := runeBindings[r]; ok {
			p.press(a)
		}
		return
	}

	if a, ok := keyBindings[kev.Key()]; ok {
		p.press(a)
	}
}

func (p *Poller) press(a Action) {
	p.lastSeen[a] = p.provider.Now()
	p.seen[a] = true
}

func (p *Poller) held(a Action, now time.Time) bool {
	return p.seen[a] && now.Sub(p.lastSeen[a]) <= p.hold
}

// Poll returns the key state at the provider's current time
// Quit latches once requested
func (p *Poller) Poll() core.InputState {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.provider.Now()
	return core.InputState{
		Forward:     p.held(ActionForward, now),
		Back:        p.held(ActionBack, now),
		TurnLeft:    p.held(ActionTurnLeft, now),
		TurnRight:   p.held(ActionTurnRight, now),
		StrafeLeft:  p.held(ActionStrafeLeft, now),
		StrafeRight: p.held(ActionStrafeRight, now),
		Fire:        p.held(ActionFire, now),
		AltFire:     p.held(ActionAltFire, now),
		Quit:        p.quit,
	}
}

// Run feeds events from src until it returns nil (screen finalized)
func (p *Poller) Run(src EventSource) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		p.Feed(ev)
	}
}
