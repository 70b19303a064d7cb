package minimalism

import "github.com/vovakirdan/minimalism/internal/core"

// Camera is the view centre, kept inside bounds derived from the level and
// viewport sizes so the view never shows space outside the level.
type Camera struct {
	X, Y       float64
	MinX, MinY float64
	MaxX, MaxY float64
}

// newCamera computes camera bounds for a level of levelW x levelH pixels.
// An axis on which the level is smaller than the viewport is pinned to the
// level centre.
func newCamera(levelW, levelH, viewW, viewH float64) Camera {
	c := Camera{
		MinX: viewW / 2,
		MinY: viewH / 2,
		MaxX: levelW - viewW/2,
		MaxY: levelH - viewH/2,
	}
	if c.MaxX < c.MinX {
		c.MinX, c.MaxX = levelW/2, levelW/2
	}
	if c.MaxY < c.MinY {
		c.MinY, c.MaxY = levelH/2, levelH/2
	}
	return c
}

// Follow moves the camera to target, clamped to its bounds.
func (c *Camera) Follow(target core.Vec2) {
	c.X = core.ClampF(target.X, c.MinX, c.MaxX)
	c.Y = core.ClampF(target.Y, c.MinY, c.MaxY)
}
