package minimalism

import "github.com/vovakirdan/minimalism/internal/core"

// resolveX sweeps the actor horizontally against the collision layer.
// Velocity must already be scaled to this frame. A hit only zeroes the
// horizontal velocity; unlike the vertical axis the position is not snapped
// to the tile edge.
func (s *Session) resolveX() {
	a := &s.actor

	var probeX int
	if a.Velocity.X > 0 {
		probeX = int(a.Position.X + a.Width + a.Velocity.X)
	} else {
		probeX = int(a.Position.X + a.Velocity.X)
	}
	startY := int(a.Position.Y)
	endY := int(a.Position.Y + a.Height)

	tiles := s.query.TilesInRange(s.grid.Layer(s.roles.Collision), probeX, startY, probeX, endY)

	box := a.Bounds()
	box.X += a.Velocity.X
	for _, tile := range tiles {
		if box.Overlaps(tile.RectF) {
			a.Velocity.X = 0
			return
		}
	}
}

// resolveY sweeps the actor vertically. Hitting a tile from below snaps the
// actor under it and breaks it if breakable; landing snaps the actor on top
// and grounds it.
func (s *Session) resolveY() {
	a := &s.actor

	if a.Velocity.Y < -s.cfg.Physics.FallThreshold {
		a.Grounded = false
	}

	var probeY int
	if a.Velocity.Y > 0 {
		probeY = int(a.Position.Y + a.Height + a.Velocity.Y)
	} else {
		probeY = int(a.Position.Y + a.Velocity.Y)
	}
	startX := int(a.Position.X)
	endX := int(a.Position.X + a.Width)

	collision := s.grid.Layer(s.roles.Collision)
	tiles := s.query.TilesInRange(collision, startX, probeY, endX, probeY)

	box := a.Bounds()
	box.Y += a.Velocity.Y
	for _, tile := range tiles {
		if !box.Overlaps(tile.RectF) {
			continue
		}
		if a.Velocity.Y > 0 {
			a.Position.Y = tile.Y - a.Height
			if t, ok := collision.At(tile.Col, tile.Row); ok && t.Breakable {
				s.removeTile(collision, tile.Col, tile.Row)
				s.emit(core.Event{Kind: core.EventTileBroken, Layer: s.roles.Collision, Col: tile.Col, Row: tile.Row})
			}
		} else {
			a.Position.Y = tile.Y + tile.H
			if !a.Grounded {
				s.emit(core.Event{Kind: core.EventLanded, Layer: s.roles.Collision, Col: tile.Col, Row: tile.Row})
			}
			a.Grounded = true
		}
		a.Velocity.Y = 0
		return
	}
}
