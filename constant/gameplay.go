package constant

import (
	"math"
	"time"
)

// Interaction radii (world units), compared with strict less-than
const (
	AggroRadius  = 1.8
	MeleeRadius  = 0.8
	PickupRadius = 0.6
	SpikeRadius  = 0.8
)

// BulletHitRadiusSq is the squared radius of the enemy circle used by the swept bullet test
const BulletHitRadiusSq = 0.1

// Player
const (
	PlayerMaxHealth = 3

	// PlayerSpeed is the magnitude of the player's velocity in units per second
	PlayerSpeed = 0.6

	// PlayerTurnRate is the rotation per second while a turn key is held
	PlayerTurnRate = math.Pi / 1.8

	// PlayerImpulseScale converts frame delta (seconds) into a movement request magnitude
	PlayerImpulseScale = 1.0 / 5.0

	// PlayerStartAngle faces the player up the screen
	PlayerStartAngle = math.Pi / 2
)

// Weapons
const (
	BulletCooldown = 1 * time.Second
	SpikeCooldown  = 3 * time.Second

	// ProjectileLifespan is how long bullets and spikes live
	ProjectileLifespan = 2 * time.Second

	// BulletSpeed and SpikeSpeed multiply the shooter's bearing
	BulletSpeed = 0.03
	SpikeSpeed  = -0.001
)

// Gold mode
const (
	GoldModeDuration  = 10 * time.Second
	GoldStreakTrigger = 5
)

// Enemies
const (
	EnemyRetargetInterval = 2 * time.Second

	// EnemyFirstRetarget delays the first target fix of enemies spawned intercepting
	EnemyFirstRetarget = 1 * time.Second

	EnemyHitCooldown = 3 * time.Second

	// EnemyPatrolOffset is the diagonal distance from spawn to the orbit center
	EnemyPatrolOffset = 0.5

	EnemyPatrolRadius = 1.0

	EnemyHealth      = 1
	EliteHealth      = 3
	BossHealth       = 15
	BossSpawnOffsetX = 6.0
)

// Director
const (
	SpawnInterval = 5 * time.Second

	MaxEnemies     = 5
	MaxBuffs       = 5
	InitialEnemies = 5

	// SpawnBoxHalf is half the side of the sampling box centered on the player
	SpawnBoxHalf = 4.0

	EnemyExclusion       = 2.0
	CollectibleExclusion = 1.0
	InitialExclusion     = 1.4

	// SpawnMaxAttempts caps rejection sampling before falling back to the last candidate
	SpawnMaxAttempts = 1000

	// EliteScoreThreshold is the score above which elite variants may spawn
	EliteScoreThreshold = 10

	// EliteOdds of EliteOddsOutOf draws spawn an elite once past the threshold
	EliteOdds      = 3
	EliteOddsOutOf = 5

	// BossScore triggers the boss phase and stops ordinary spawning
	BossScore = 25
)

// Drop table rolled once per destroyed enemy, die has DropDieSides faces
const (
	DropDieSides   = 5
	DropHealthFace = 2
	DropScoreFace  = 1
)

// Effects
const (
	ExplosionDuration = 1 * time.Second
)
