package formats

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/vovakirdan/minimalism/internal/tilemap"
)

// Tile and map property names read from Tiled maps.
const (
	PropBreakable = "breakable"
	PropMessage   = "message"
)

// ParseTMX loads a Tiled map from fsys. Every tile layer becomes a grid layer
// with the same name and index. TMX rows run top-down, so they are flipped.
func ParseTMX(fsys fs.FS, name string) (Level, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
	}

	if levelMap.TileWidth != levelMap.TileHeight {
		return Level{}, fmt.Errorf("%w: %s: non-square tiles %dx%d",
			ErrMalformed, name, levelMap.TileWidth, levelMap.TileHeight)
	}
	if len(levelMap.Layers) == 0 {
		return Level{}, fmt.Errorf("%w: %s: no tile layers", ErrMalformed, name)
	}

	names := make([]string, len(levelMap.Layers))
	for i, layer := range levelMap.Layers {
		names[i] = layer.Name
	}

	grid, err := tilemap.NewGrid(levelMap.Width, levelMap.Height, levelMap.TileWidth, names...)
	if err != nil {
		return Level{}, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
	}

	for i, layer := range levelMap.Layers {
		target := grid.Layer(i)
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				idx := y*levelMap.Width + x
				if idx >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[idx]
				if tile == nil || tile.IsNil() {
					continue
				}

				breakable := false
				if tile.Tileset != nil {
					if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && tilesetTile.Properties != nil {
						breakable = tilesetTile.Properties.GetBool(PropBreakable)
					}
				}

				row := levelMap.Height - 1 - y
				target.Set(x, row, tilemap.Tile{ID: tile.ID, Breakable: breakable})
			}
		}
	}

	lvl := Level{Grid: grid, Properties: make(map[string]string)}
	if levelMap.Properties != nil {
		lvl.Message = levelMap.Properties.GetString(PropMessage)
		if lvl.Message != "" {
			lvl.Properties[PropMessage] = lvl.Message
		}
	}
	return lvl, nil
}
