package minimalism

import "github.com/vovakirdan/minimalism/internal/core"

// resolveInteractions collects pickups and checks the level trigger.
// Tiles are tested against the actor's box at the position it will have
// after this frame's integration, probing that box grown by its own size on
// every side.
func (s *Session) resolveInteractions() {
	a := &s.actor

	box := a.Bounds()
	box.X += a.Velocity.X
	box.Y += a.Velocity.Y

	startX := int(box.X - box.W)
	endX := int(box.X + box.W*2)
	startY := int(box.Y - box.H)
	endY := int(box.Y + box.H*2)

	pickup := s.grid.Layer(s.roles.Pickup)
	for _, tile := range s.query.TilesInRange(pickup, startX, startY, endX, endY) {
		if !box.Overlaps(tile.RectF) {
			continue
		}
		s.removeTile(pickup, tile.Col, tile.Row)
		s.score -= s.cfg.Scoring.PickupPoints
		s.items++
		s.emit(core.Event{
			Kind:  core.EventItemPickedUp,
			Layer: s.roles.Pickup,
			Col:   tile.Col,
			Row:   tile.Row,
			Pitch: 1 + s.pitch,
		})
		s.pitch -= s.cfg.Scoring.PitchStep
	}

	trigger := s.grid.Layer(s.roles.Trigger)
	for _, tile := range s.query.TilesInRange(trigger, startX, startY, endX, endY) {
		if !box.Overlaps(tile.RectF) {
			continue
		}
		if !s.complete {
			s.complete = true
			s.phase = PhaseCompleted
			s.emit(core.Event{Kind: core.EventLevelCompleted, Layer: s.roles.Trigger, Col: tile.Col, Row: tile.Row})
		}
		return
	}
}
