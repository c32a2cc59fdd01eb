package constant

import "math"

// Entity scales (sprite units)
const (
	PlayerScale      = 1.0
	EnemyScale       = 1.0
	CollectibleScale = 0.5
	BulletScale      = 0.25
	EmitterScale     = 0.2
	SpikeScale       = 0.5
	ExplosionScale   = 0.2
	ChildScale       = 0.5
	BannerScale      = 10.0
)

// Collectible oscillation
const (
	CollectibleBobAmplitude = 0.1
	CollectibleBobFrequency = 3.0
)

// BossArmSpins are the initial spin offsets of the chained boss arms
var BossArmSpins = [...]float64{math.Pi / 2, math.Pi, math.Pi / 3}

// HUD layout relative to the camera anchor
const (
	HUDHealthOffsetX = -5.0
	HUDScoreOffsetX  = 0.5
	HUDTimerOffsetX  = 4.5
	HUDRowOffsetY    = 3.5
	HUDSpacing       = 0.5
	HUDScoreDigits   = 3
)
