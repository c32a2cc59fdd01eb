package core

// Entity is a stable handle into the entity arena
// Low 32 bits hold the slot index, high 32 bits the slot generation; zero is never issued
type Entity uint64

// NoEntity is the zero handle
const NoEntity Entity = 0

// MakeEntity packs a slot index and generation into a handle
func MakeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot of the handle
func (e Entity) Index() uint32 { return uint32(e) }

// Generation returns the slot generation the handle was issued for
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

// Kind tags the behavior variant of an entity
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindCollectible
	KindBullet
	KindSpike
	KindEmitter   // Particle trail anchored to a bullet
	KindExplosion // Transient effect, freed when its timer elapses
	KindChild     // Rigid attachment to a parent entity
	KindBanner    // End-state display
	KindCount
)

var kindNames = [KindCount]string{
	KindNone:        "none",
	KindPlayer:      "player",
	KindEnemy:       "enemy",
	KindCollectible: "collectible",
	KindBullet:      "bullet",
	KindSpike:       "spike",
	KindEmitter:     "emitter",
	KindExplosion:   "explosion",
	KindChild:       "child",
	KindBanner:      "banner",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "unknown"
}
