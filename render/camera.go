package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/constant"
)

// Camera maps world units onto a grid of terminal cells
type Camera struct {
	Zoom   float64
	Aspect float64 // cell height over cell width
}

// NewCamera creates a camera with the given zoom and the default cell aspect
func NewCamera(zoom float64) Camera {
	return Camera{Zoom: zoom, Aspect: constant.CellAspect}
}

// View builds the world-to-normalized transform centered on focus
// The horizontal scale is corrected so one world unit covers the same screen distance on both axes
func (c Camera) View(focus mgl64.Vec3, cols, rows int) mgl64.Mat4 {
	sx := c.Zoom
	if cols > 0 && rows > 0 {
		sx = c.Zoom * c.Aspect * float64(rows) / float64(cols)
	}
	return mgl64.Scale3D(sx, c.Zoom, c.Zoom).Mul4(mgl64.Translate3D(-focus[0], -focus[1], 0))
}

// Project maps a world position to a cell; ok is false off screen
func Project(view mgl64.Mat4, pos mgl64.Vec3, cols, rows int) (x, y int, ok bool) {
	ndc := view.Mul4x1(mgl64.Vec4{pos[0], pos[1], 0, 1})
	x = int(math.Floor((ndc[0] + 1) / 2 * float64(cols)))
	y = int(math.Floor((1 - ndc[1]) / 2 * float64(rows)))
	ok = x >= 0 && x < cols && y >= 0 && y < rows
	return x, y, ok
}
