// Package tilemap holds the layered tile grid a level is made of and the
// spatial queries the simulation runs against it.
//
// Coordinates use a bottom-left origin: column 0, row 0 is the tile whose
// pixel bounds start at (0, 0), rows grow upwards.
package tilemap

import "fmt"

// Tile is an occupied cell of a layer.
type Tile struct {
	ID        uint32 // source tile id, used by renderers
	Breakable bool   // removed when hit from below on the collision layer
}

// Cell addresses a tile by column and row.
type Cell struct {
	Col, Row int
}

// Layer is a sparse set of tiles. Cells not present are empty.
type Layer struct {
	Name  string
	tiles map[Cell]Tile
}

// NewLayer creates an empty named layer.
func NewLayer(name string) *Layer {
	return &Layer{Name: name, tiles: make(map[Cell]Tile)}
}

// At returns the tile at (col, row) and whether one is present.
func (l *Layer) At(col, row int) (Tile, bool) {
	if l == nil {
		return Tile{}, false
	}
	t, ok := l.tiles[Cell{col, row}]
	return t, ok
}

// Has reports whether (col, row) is occupied.
func (l *Layer) Has(col, row int) bool {
	_, ok := l.At(col, row)
	return ok
}

// Set places a tile at (col, row), replacing any existing one.
func (l *Layer) Set(col, row int, t Tile) {
	l.tiles[Cell{col, row}] = t
}

// Remove clears (col, row). Removing an empty cell is a no-op.
func (l *Layer) Remove(col, row int) {
	if l == nil {
		return
	}
	delete(l.tiles, Cell{col, row})
}

// Len returns the number of occupied cells.
func (l *Layer) Len() int {
	if l == nil {
		return 0
	}
	return len(l.tiles)
}

// Each calls fn for every occupied cell in unspecified order.
func (l *Layer) Each(fn func(c Cell, t Tile)) {
	if l == nil {
		return
	}
	for c, t := range l.tiles {
		fn(c, t)
	}
}

func (l *Layer) clone() *Layer {
	c := &Layer{Name: l.Name, tiles: make(map[Cell]Tile, len(l.tiles))}
	for k, v := range l.tiles {
		c.tiles[k] = v
	}
	return c
}

// Grid is an ordered stack of layers sharing one size and tile size.
// Its dimensions are fixed at construction.
type Grid struct {
	width    int
	height   int
	tileSize int
	layers   []*Layer
}

// NewGrid creates a grid of width x height tiles with one empty layer per name.
func NewGrid(width, height, tileSize int, layerNames ...string) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tilemap: invalid grid size %dx%d", width, height)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tilemap: invalid tile size %d", tileSize)
	}
	g := &Grid{width: width, height: height, tileSize: tileSize}
	for _, name := range layerNames {
		g.layers = append(g.layers, NewLayer(name))
	}
	return g, nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// TileSize returns the edge length of a tile in pixels.
func (g *Grid) TileSize() int { return g.tileSize }

// PixelWidth returns the level width in pixels.
func (g *Grid) PixelWidth() int { return g.width * g.tileSize }

// PixelHeight returns the level height in pixels.
func (g *Grid) PixelHeight() int { return g.height * g.tileSize }

// LayerCount returns the number of layers.
func (g *Grid) LayerCount() int { return len(g.layers) }

// Layer returns the layer at index i, or nil when out of range.
func (g *Grid) Layer(i int) *Layer {
	if i < 0 || i >= len(g.layers) {
		return nil
	}
	return g.layers[i]
}

// LayerByName returns the first layer with the given name and its index.
func (g *Grid) LayerByName(name string) (*Layer, int) {
	for i, l := range g.layers {
		if l.Name == name {
			return l, i
		}
	}
	return nil, -1
}

// InBounds reports whether (col, row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Clone returns a deep copy whose layers can be mutated independently.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, tileSize: g.tileSize}
	c.layers = make([]*Layer, len(g.layers))
	for i, l := range g.layers {
		c.layers[i] = l.clone()
	}
	return c
}
