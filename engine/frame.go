package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/core"
)

// Pose is the read-only view of one entity handed to the renderer
type Pose struct {
	Handle   core.Entity
	Kind     core.Kind
	Sprite   core.Sprite
	Position mgl64.Vec3
	Angle    float64
	Scale    float64
	Age      float64
}

// HUD is the overlay state derived from the player each frame
type HUD struct {
	Health    int
	MaxHealth int
	Score     int
	// ScoreDigits holds the score least significant digit first
	ScoreDigits []int
	// PowerUp is set while the gold timer runs; PowerUpSeconds is its whole-second countdown
	PowerUp        bool
	PowerUpSeconds int
}

// Frame is a snapshot of the world valid for one render pass
type Frame struct {
	Elapsed float64
	Number  uint64
	Phase   Phase
	Focus   mgl64.Vec3
	Poses   []Pose
	HUD     HUD
	Kills   int
}

// PoseOf copies the renderable fields of e
func PoseOf(e *Entity) Pose {
	return Pose{
		Handle:   e.Handle,
		Kind:     e.Kind,
		Sprite:   e.Visual,
		Position: e.Position,
		Angle:    e.Angle,
		Scale:    e.Scale,
		Age:      e.Age,
	}
}
