package render

import (
	"github.com/lixenwraith/corsair/engine"
)

// Sizer is implemented by renderers that know their cell grid
type Sizer interface {
	PlayfieldSize() (cols, rows int)
}

// RenderOrchestrator feeds one frame through a Renderer under the camera
type RenderOrchestrator struct {
	renderer Renderer
	camera   Camera
}

// NewRenderOrchestrator creates an orchestrator for r
func NewRenderOrchestrator(r Renderer, camera Camera) *RenderOrchestrator {
	return &RenderOrchestrator{renderer: r, camera: camera}
}

// RenderFrame draws every pose in order then the HUD
func (o *RenderOrchestrator) RenderFrame(f engine.Frame) error {
	cols, rows := 80, 24
	o.renderer.Begin(f)
	if s, ok := o.renderer.(Sizer); ok {
		cols, rows = s.PlayfieldSize()
	}

	view := o.camera.View(f.Focus, cols, rows)
	for _, p := range f.Poses {
		o.renderer.Draw(p, view, f.Elapsed)
	}
	o.renderer.HUD(f.HUD, f.Phase)
	return o.renderer.End()
}
