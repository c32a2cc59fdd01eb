package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/engine"
)

// Pose is one entity as the renderer sees it
type Pose = engine.Pose

// Renderer is the drawing collaborator; one Begin/End pair per frame
type Renderer interface {
	Begin(frame engine.Frame)
	Draw(pose Pose, view mgl64.Mat4, elapsed float64)
	HUD(hud engine.HUD, phase engine.Phase)
	End() error
}
