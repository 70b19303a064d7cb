package minimalism

import (
	"github.com/vovakirdan/minimalism/internal/levels"
	"github.com/vovakirdan/minimalism/internal/tilemap"
)

// Snapshot holds everything a step can change, so a failed step can be
// rolled back. Tiles removed after the snapshot are put back by Restore.
type Snapshot struct {
	Actor    Actor
	Camera   Camera
	Score    int
	Items    int
	Complete bool
	Phase    Phase
	Ticks    int
	Pitch    float64
	JumpHeld bool

	index   int
	level   *levels.Level
	grid    *tilemap.Grid
	query   *tilemap.Query
	roles   LayerRoles
	removed int
}

// removal records a tile taken out of a layer during play.
type removal struct {
	layer    *tilemap.Layer
	col, row int
	tile     tilemap.Tile
}

// removeTile deletes a tile and records it for Restore.
func (s *Session) removeTile(layer *tilemap.Layer, col, row int) {
	t, ok := layer.At(col, row)
	if !ok {
		return
	}
	layer.Remove(col, row)
	s.removed = append(s.removed, removal{layer: layer, col: col, row: row, tile: t})
}

// Snapshot captures the current level, actor and counters.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Actor:    s.actor,
		Camera:   s.camera,
		Score:    s.score,
		Items:    s.items,
		Complete: s.complete,
		Phase:    s.phase,
		Ticks:    s.ticks,
		Pitch:    s.pitch,
		JumpHeld: s.jumpHeld,
		index:    s.index,
		level:    s.level,
		grid:     s.grid,
		query:    s.query,
		roles:    s.roles,
		removed:  len(s.removed),
	}
}

// Restore puts back a snapshot. Only the most recent snapshot of the current
// grid restores removed tiles; a level change since the snapshot is undone by
// switching back to the snapshot's grid.
func (s *Session) Restore(snap Snapshot) {
	if s.grid == snap.grid && snap.removed <= len(s.removed) {
		for i := len(s.removed) - 1; i >= snap.removed; i-- {
			r := s.removed[i]
			r.layer.Set(r.col, r.row, r.tile)
		}
		s.removed = s.removed[:snap.removed]
	} else {
		s.removed = s.removed[:0]
	}

	s.index = snap.index
	s.level = snap.level
	s.grid = snap.grid
	s.query = snap.query
	s.roles = snap.roles

	s.actor = snap.Actor
	s.camera = snap.Camera
	s.score = snap.Score
	s.items = snap.Items
	s.complete = snap.Complete
	s.phase = snap.Phase
	s.ticks = snap.Ticks
	s.pitch = snap.Pitch
	s.jumpHeld = snap.JumpHeld
}
