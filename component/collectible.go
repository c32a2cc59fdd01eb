package component

import "github.com/go-gl/mathgl/mgl64"

// CollectibleType selects the pickup effect
type CollectibleType uint8

const (
	CollectibleBuff CollectibleType = iota
	CollectibleHealth
	CollectibleScore
)

func (t CollectibleType) String() string {
	switch t {
	case CollectibleHealth:
		return "health"
	case CollectibleScore:
		return "score"
	default:
		return "buff"
	}
}

// CollectibleComponent marks a bobbing pickup
type CollectibleComponent struct {
	Type   CollectibleType
	Origin mgl64.Vec3
}
