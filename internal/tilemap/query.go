package tilemap

import "github.com/vovakirdan/minimalism/internal/core"

// TileRect is an occupied cell together with its pixel bounds.
type TileRect struct {
	core.RectF
	Col, Row int
}

// Query answers range lookups against a grid using a reusable buffer.
// The slice returned by TilesInRange is only valid until the next call.
type Query struct {
	grid    *Grid
	scratch []TileRect
}

// NewQuery creates a query bound to g.
func NewQuery(g *Grid) *Query {
	return &Query{grid: g, scratch: make([]TileRect, 0, 16)}
}

// Grid returns the grid the query reads.
func (q *Query) Grid() *Grid { return q.grid }

// TilesInRange returns the occupied tiles of layer whose cells fall inside the
// pixel range [startX, endX] x [startY, endY]. Pixel coordinates are
// converted to cells with integer division and both ends are inclusive.
// Results are ordered by row, then column, ascending. Cells outside the grid
// are treated as empty.
func (q *Query) TilesInRange(layer *Layer, startX, startY, endX, endY int) []TileRect {
	q.scratch = q.scratch[:0]
	if layer == nil || q.grid == nil {
		return q.scratch
	}

	ts := q.grid.tileSize
	startCol, endCol := startX/ts, endX/ts
	startRow, endRow := startY/ts, endY/ts

	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			if !q.grid.InBounds(col, row) {
				continue
			}
			if !layer.Has(col, row) {
				continue
			}
			q.scratch = append(q.scratch, TileRect{
				RectF: core.NewRectF(float64(col*ts), float64(row*ts), float64(ts), float64(ts)),
				Col:   col,
				Row:   row,
			})
		}
	}
	return q.scratch
}
