package background

import "math"

const (
	FieldOfView = 75.0 // degrees, vertical
	CameraZ     = 5.0
	nearPlane   = 0.1

	// cellAspect is the height of a terminal cell over its width.
	cellAspect = 2.0
)

// Camera is a perspective projection onto a width x height cell grid.
type Camera struct {
	Width, Height int
	focal         float64
	aspect        float64
}

func NewCamera(width, height int) Camera {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / (float64(height) * cellAspect)
	}
	return Camera{
		Width:  width,
		Height: height,
		focal:  1 / math.Tan(FieldOfView*math.Pi/360),
		aspect: aspect,
	}
}

// Project maps a world point to a cell. depth is the distance in front of
// the camera; ok is false for points behind it or off the grid.
func (c Camera) Project(p Vec3) (col, row int, depth float64, ok bool) {
	depth = CameraZ - p.Z
	if depth < nearPlane || c.Width == 0 || c.Height == 0 {
		return 0, 0, depth, false
	}
	ndcX := p.X * c.focal / (c.aspect * depth)
	ndcY := p.Y * c.focal / depth
	col = int(math.Floor((ndcX + 1) / 2 * float64(c.Width)))
	row = int(math.Floor((1 - ndcY) / 2 * float64(c.Height)))
	if col < 0 || col >= c.Width || row < 0 || row >= c.Height {
		return col, row, depth, false
	}
	return col, row, depth, true
}
