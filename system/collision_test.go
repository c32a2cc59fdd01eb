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
)

func TestBulletKillsWeakEnemy(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})
	player.SetAngle(0)
	enemy := SpawnEnemy(f.ctx, mgl64.Vec3{0.5, 0, 0}, 1, component.EnemyPatrolling)
	b := SpawnBullet(f.ctx, player)
	f.ctx.World.Flush()

	bullets := NewBulletSystem()
	dt := 100 * time.Millisecond
	// 0 -> 0.3 ends within reach of the enemy at 0.5
	bullets.Update(f.ctx, dt)
	f.ctx.World.Flush()

	assert.False(t, f.ctx.World.Alive(enemy.Handle))
	assert.False(t, f.ctx.World.Alive(b.Handle))
	assert.False(t, f.ctx.World.Alive(b.Projectile.Emitter))
	assert.Equal(t, 1, player.Player.Score)
	assert.Equal(t, 1, f.rng.intCalls, "exactly one drop roll")
	assert.Equal(t, 1, f.count(core.KindExplosion))
	assert.Equal(t, 1, f.audio.plays[core.SoundExplosion])
}

func TestBulletWoundsElite(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})
	player.SetAngle(0)
	elite := SpawnEnemy(f.ctx, mgl64.Vec3{0.5, 0, 0}, constant.EliteHealth, component.EnemyIntercepting)
	b := SpawnBullet(f.ctx, player)
	f.ctx.World.Flush()

	NewBulletSystem().Update(f.ctx, 100*time.Millisecond)
	f.ctx.World.Flush()

	assert.True(t, f.ctx.World.Alive(elite.Handle))
	assert.Equal(t, constant.EliteHealth-1, elite.Enemy.Health)
	assert.False(t, f.ctx.World.Alive(b.Handle))
	assert.Equal(t, 1, f.audio.plays[core.SoundExplosion], "a wounding hit still sounds")
	assert.Zero(t, f.count(core.KindExplosion))
	assert.Zero(t, f.rng.intCalls, "no drop roll without a kill")
}

func TestBulletSweepCatchesTunneling(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})
	player.SetAngle(0)
	enemy := SpawnEnemy(f.ctx, mgl64.Vec3{1, 0, 0}, 1, component.EnemyPatrolling)
	b := SpawnBullet(f.ctx, player)
	f.ctx.World.Flush()

	bullets := NewBulletSystem()
	// Sampled positions 0, 0.5, 1.5: none within reach of the enemy at 1.0
	bullets.Update(f.ctx, time.Second/6)
	f.ctx.World.Flush()
	require.InDelta(t, 0.5, b.Position[0], 1e-6)
	require.True(t, f.ctx.World.Alive(enemy.Handle))

	bullets.Update(f.ctx, time.Second/3)
	f.ctx.World.Flush()

	assert.False(t, f.ctx.World.Alive(enemy.Handle), "swept path crosses the enemy")
	assert.Equal(t, 1, player.Player.Score)
}

func TestBulletExpires(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})
	b := SpawnBullet(f.ctx, player)
	f.ctx.World.Flush()

	bullets := NewBulletSystem()
	dt := 100 * time.Millisecond
	for i := 0; i < 21; i++ {
		f.ctx.Clock.Advance(dt)
		bullets.Update(f.ctx, dt)
		f.ctx.World.Flush()
	}
	assert.False(t, f.ctx.World.Alive(b.Handle))
	assert.Zero(t, f.count(core.KindEmitter))
}

func TestMeleeScenario(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})
	enemy := SpawnEnemy(f.ctx, mgl64.Vec3{0.5, 0, 0}, 1, component.EnemyPatrolling)
	f.ctx.World.Flush()

	NewEnemySystem().Update(f.ctx, 16*time.Millisecond)
	f.ctx.World.Flush()

	assert.False(t, f.ctx.World.Alive(enemy.Handle))
	assert.Equal(t, constant.PlayerMaxHealth-1, player.Player.Health)
	assert.Equal(t, 1, f.count(core.KindExplosion))
	assert.Equal(t, 1, player.Player.Score)
}

func TestMeleeCooldownOnSurvivor(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})
	enemy := SpawnEnemy(f.ctx, mgl64.Vec3{0.5, 0, 0}, constant.EliteHealth, component.EnemyPatrolling)
	f.ctx.World.Flush()

	assert.True(t, ResolveMelee(f.ctx, player, enemy))
	assert.Equal(t, constant.EliteHealth-1, enemy.Enemy.Health)
	assert.Equal(t, core.TimerRunning, enemy.Enemy.HitCooldown.Peek())
	assert.Equal(t, 2, player.Player.Health)

	// Still in contact but cooling down
	assert.False(t, ResolveMelee(f.ctx, player, enemy))
	assert.Equal(t, 2, player.Player.Health)

	f.ctx.Clock.Advance(constant.MaxFrameDelta)
	for enemy.Enemy.HitCooldown.Peek() == core.TimerRunning {
		f.ctx.Clock.Advance(constant.MaxFrameDelta)
	}
	assert.True(t, ResolveMelee(f.ctx, player, enemy))
	assert.Equal(t, 1, player.Player.Health)
}

func TestMeleeKillsPlayer(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{2, 2, 0})
	player.Player.Health = 1
	player.Player.Score = 4
	enemy := SpawnEnemy(f.ctx, mgl64.Vec3{2.3, 2, 0}, constant.EliteHealth, component.EnemyPatrolling)
	f.ctx.World.Flush()

	ResolveMelee(f.ctx, player, enemy)
	f.ctx.World.Flush()

	_, alive := f.ctx.World.Player()
	assert.False(t, alive)
	assert.Zero(t, player.Player.Health)
	assert.True(t, f.ctx.State.InputFrozen)
	assert.Equal(t, 4, f.ctx.State.FinalScore())
	assert.Equal(t, mgl64.Vec3{2, 2, 0}, f.ctx.State.Focus)
	assert.Equal(t, 1, f.count(core.KindExplosion))
}

func TestGoldModeDoublesDamage(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})
	enemy := SpawnEnemy(f.ctx, mgl64.Vec3{3, 3, 0}, constant.EliteHealth, component.EnemyPatrolling)
	f.ctx.World.Flush()

	assert.False(t, DamageEnemy(f.ctx, enemy))
	assert.Equal(t, 2, enemy.Enemy.Health)

	player.Timer.Start(constant.GoldModeDuration)
	assert.True(t, DamageEnemy(f.ctx, enemy))
	assert.Zero(t, enemy.Enemy.Health)
}

func TestBuffStreakArmsGoldMode(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})
	f.ctx.State.OutstandingBuffs = constant.MaxBuffs

	for i := 0; i < constant.GoldStreakTrigger; i++ {
		buff := SpawnCollectible(f.ctx, mgl64.Vec3{0.1, 0, 0}, component.CollectibleBuff)
		require.True(t, ResolvePickup(f.ctx, player, buff))
	}

	assert.Zero(t, player.Player.BuffStreak)
	assert.Equal(t, core.TimerRunning, player.Timer.Peek())
	assert.Equal(t, constant.GoldModeDuration, player.Timer.RemainingTime())
	assert.Equal(t, constant.MaxBuffs-constant.GoldStreakTrigger, f.ctx.State.OutstandingBuffs)
}

func TestPickupTypes(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})

	player.Player.Health = 3
	h := SpawnCollectible(f.ctx, mgl64.Vec3{}, component.CollectibleHealth)
	ResolvePickup(f.ctx, player, h)
	assert.Equal(t, 3, player.Player.Health, "health is capped")

	player.Player.Health = 2
	h = SpawnCollectible(f.ctx, mgl64.Vec3{}, component.CollectibleHealth)
	ResolvePickup(f.ctx, player, h)
	assert.Equal(t, 3, player.Player.Health)

	s := SpawnCollectible(f.ctx, mgl64.Vec3{}, component.CollectibleScore)
	ResolvePickup(f.ctx, player, s)
	assert.Equal(t, 1, player.Player.Score)

	far := SpawnCollectible(f.ctx, mgl64.Vec3{0.6, 0, 0}, component.CollectibleScore)
	assert.False(t, ResolvePickup(f.ctx, player, far), "pickup radius is strict")
}

func TestDropTable(t *testing.T) {
	tests := []struct {
		roll int
		want component.CollectibleType
		drop bool
	}{
		{0, 0, false},
		{1, component.CollectibleScore, true},
		{2, component.CollectibleHealth, true},
		{3, 0, false},
		{4, 0, false},
	}
	for _, tt := range tests {
		f := newFixture(t)
		f.rng.ints = []int{tt.roll}
		RollDrop(f.ctx, mgl64.Vec3{1, 1, 0})
		f.ctx.World.Flush()

		items := f.ctx.World.Snapshot(core.KindCollectible)
		if !tt.drop {
			assert.Empty(t, items, "roll %d", tt.roll)
			continue
		}
		require.Len(t, items, 1, "roll %d", tt.roll)
		assert.Equal(t, tt.want, items[0].Collectible.Type)
	}
}

func TestDropCollectedSameFrame(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})
	player.Player.Health = 2
	f.rng.ints = []int{constant.DropHealthFace}
	SpawnEnemy(f.ctx, mgl64.Vec3{0.3, 0, 0}, 1, component.EnemyPatrolling)
	f.ctx.World.Flush()

	sim := NewSimulation(f.ctx, nil)
	sim.Step(16 * time.Millisecond)

	// Melee costs one health, the dropped apple restores it
	assert.Equal(t, 2, player.Player.Health)
	assert.Zero(t, f.count(core.KindCollectible))
}

func TestExplosionSoundNotRestarted(t *testing.T) {
	f := newFixture(t)
	f.player(mgl64.Vec3{})
	a := SpawnEnemy(f.ctx, mgl64.Vec3{3, 3, 0}, 1, component.EnemyPatrolling)
	b := SpawnEnemy(f.ctx, mgl64.Vec3{-3, 3, 0}, 1, component.EnemyPatrolling)
	f.ctx.World.Flush()

	DestroyEnemy(f.ctx, a)
	DestroyEnemy(f.ctx, b)
	DestroyEnemy(f.ctx, b)
	assert.Equal(t, 1, f.audio.plays[core.SoundExplosion])
	assert.Equal(t, 2, f.ctx.State.Kills())
}

func TestSpikeDetonatesInRange(t *testing.T) {
	f := newFixture(t)
	player := f.player(mgl64.Vec3{})
	enemy := SpawnEnemy(f.ctx, mgl64.Vec3{0.5, 0.2, 0}, constant.EliteHealth, component.EnemyPatrolling)
	spike := SpawnSpike(f.ctx, player)
	f.ctx.World.Flush()

	NewSpikeSystem().Update(f.ctx, 16*time.Millisecond)
	f.ctx.World.Flush()

	assert.False(t, f.ctx.World.Alive(spike.Handle))
	assert.Equal(t, constant.EliteHealth-1, enemy.Enemy.Health)
	assert.Equal(t, core.TimerNotArmed, enemy.Enemy.HitCooldown.Peek(), "projectile hits leave the melee cooldown alone")
}
