package formats

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/minimalism/internal/tilemap"
)

// YAMLLevel represents the YAML structure for an ASCII level file.
// Rows are listed top to bottom as they appear on screen.
type YAMLLevel struct {
	Message    string            `yaml:"message,omitempty"`
	TileSize   int               `yaml:"tile_size,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
	Rows       []string          `yaml:"rows"`
}

// Glyphs understood in ASCII level rows.
const (
	GlyphEmpty     = '.'
	GlyphSolid     = '#'
	GlyphBreakable = 'B'
	GlyphPickup    = '*'
	GlyphExit      = 'E'
	GlyphScenery   = '~'
)

// Tile ids assigned to ASCII glyphs, one per role.
const (
	TileScenery uint32 = iota + 1
	TileSolid
	TileBreakable
	TilePickup
	TileExit
)

const defaultTileSize = 32

// ParseYAML parses an ASCII level. The grid gets four layers in the order
// background, trigger, collision, pickup.
func ParseYAML(data []byte, names LayerNames) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("%w: yaml unmarshal: %w", ErrMalformed, err)
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("%w: no rows", ErrMalformed)
	}

	tileSize := yl.TileSize
	if tileSize == 0 {
		tileSize = defaultTileSize
	}

	width := 0
	for _, r := range yl.Rows {
		width = max(width, utf8.RuneCountInString(r))
	}
	height := len(yl.Rows)

	grid, err := tilemap.NewGrid(width, height, tileSize,
		names.Background, names.Trigger, names.Collision, names.Pickup)
	if err != nil {
		return Level{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	background := grid.Layer(0)
	trigger := grid.Layer(1)
	collision := grid.Layer(2)
	pickup := grid.Layer(3)

	for i, line := range yl.Rows {
		row := height - 1 - i
		col := 0
		for _, g := range line {
			switch g {
			case GlyphEmpty, ' ':
			case GlyphScenery:
				background.Set(col, row, tilemap.Tile{ID: TileScenery})
			case GlyphSolid:
				collision.Set(col, row, tilemap.Tile{ID: TileSolid})
			case GlyphBreakable:
				collision.Set(col, row, tilemap.Tile{ID: TileBreakable, Breakable: true})
			case GlyphPickup:
				pickup.Set(col, row, tilemap.Tile{ID: TilePickup})
			case GlyphExit:
				trigger.Set(col, row, tilemap.Tile{ID: TileExit})
			default:
				return Level{}, fmt.Errorf("%w: unknown glyph %q at row %d col %d", ErrMalformed, g, i, col)
			}
			col++
		}
	}

	props := make(map[string]string, len(yl.Properties)+1)
	for k, v := range yl.Properties {
		props[k] = v
	}
	if yl.Message != "" {
		props[PropMessage] = yl.Message
	}

	return Level{
		Grid:       grid,
		Message:    yl.Message,
		Properties: props,
	}, nil
}
