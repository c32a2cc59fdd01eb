package constant

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step after a stall (debugger, suspended terminal)
	MaxFrameDelta = 250 * time.Millisecond

	// KinematicTickRate is the fixed sampling rate (Hz) for enemy and child motion
	KinematicTickRate = 30

	// InterceptStepDivisor scales intercept velocity into a per-tick step (velocity / 60)
	InterceptStepDivisor = 60.0

	// ProjectileSpeedScale converts projectile velocity into units per second
	ProjectileSpeedScale = 100.0
)

// System Execution Priorities (lower runs first)
const (
	PriorityControl     = 10
	PriorityEffect      = 20
	PriorityDirector    = 30
	PriorityPlayer      = 40
	PriorityEmitter     = 50
	PriorityChild       = 60
	PriorityEnemy       = 70
	PriorityCollectible = 80
	PriorityBullet      = 90
	PrioritySpike       = 100
	PriorityHUD         = 110
	PriorityOutcome     = 120
)
