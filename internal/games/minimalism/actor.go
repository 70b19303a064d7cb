package minimalism

import "github.com/vovakirdan/minimalism/internal/core"

// Actor is the player's kinematic state. Velocity is stored in pixels per
// second between steps and scaled by the frame delta while a step runs.
type Actor struct {
	Position core.Vec2
	Velocity core.Vec2
	Width    float64
	Height   float64
	Grounded bool
}

// Bounds returns the actor's bounding box at its current position.
func (a Actor) Bounds() core.RectF {
	return core.NewRectF(a.Position.X, a.Position.Y, a.Width, a.Height)
}
