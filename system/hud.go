package system

import (
	"time"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/engine"
)

// HUDSystem derives overlay state and the camera focus from the player
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem { return &HUDSystem{} }

func (s *HUDSystem) Name() string  { return "hud" }
func (s *HUDSystem) Priority() int { return constant.PriorityHUD }

func (s *HUDSystem) Update(ctx *engine.GameContext, _ time.Duration) {
	hud := &ctx.State.HUD
	hud.MaxHealth = constant.PlayerMaxHealth

	player, ok := ctx.World.Player()
	if !ok {
		hud.Health = 0
		hud.PowerUp = false
		hud.PowerUpSeconds = 0
		s.setScore(hud, ctx.State.FinalScore())
		return
	}

	pc := player.Player
	ctx.State.Focus = player.Position
	ctx.State.RecordScore(pc.Score)
	ctx.Audio.SetListenerPosition(player.Position[0], player.Position[1], player.Position[2])

	hud.Health = pc.Health
	s.setScore(hud, pc.Score)

	// Peek only
	hud.PowerUp = player.Timer.Active()
	hud.PowerUpSeconds = 0
	if hud.PowerUp {
		hud.PowerUpSeconds = int(player.Timer.RemainingTime()/time.Second) % 10
	}
}

func (s *HUDSystem) setScore(hud *engine.HUD, score int) {
	hud.Score = score
	if cap(hud.ScoreDigits) < constant.HUDScoreDigits {
		hud.ScoreDigits = make([]int, constant.HUDScoreDigits)
	}
	hud.ScoreDigits = hud.ScoreDigits[:constant.HUDScoreDigits]
	for i := range hud.ScoreDigits {
		hud.ScoreDigits[i] = score % 10
		score /= 10
	}
}
