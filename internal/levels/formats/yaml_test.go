package formats

import (
	"errors"
	"testing"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
message: "Jump!"
properties:
  author: test
rows:
  - "~...E"
  - ".B.*."
  - "#####"
`)

	lvl, err := ParseYAML(data, DefaultLayerNames())
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	g := lvl.Grid
	if g.Width() != 5 || g.Height() != 3 {
		t.Errorf("size = %dx%d, expected 5x3", g.Width(), g.Height())
	}
	if g.TileSize() != 32 {
		t.Errorf("TileSize() = %d, expected default 32", g.TileSize())
	}
	if lvl.Message != "Jump!" {
		t.Errorf("Message = %q, expected %q", lvl.Message, "Jump!")
	}
	if lvl.Properties["author"] != "test" || lvl.Properties[PropMessage] != "Jump!" {
		t.Errorf("Properties = %v", lvl.Properties)
	}

	collision, idx := g.LayerByName("collision")
	if idx != 2 {
		t.Fatalf("collision layer index = %d, expected 2", idx)
	}

	// Bottom text row is grid row 0
	for col := 0; col < 5; col++ {
		if !collision.Has(col, 0) {
			t.Errorf("expected floor tile at (%d, 0)", col)
		}
	}

	tile, ok := collision.At(1, 1)
	if !ok || !tile.Breakable {
		t.Errorf("At(1, 1) = %+v, %v; expected breakable tile", tile, ok)
	}
	if floor, _ := collision.At(0, 0); floor.Breakable {
		t.Error("solid tiles must not be breakable")
	}

	if !g.Layer(3).Has(3, 1) {
		t.Error("expected pickup at (3, 1)")
	}
	if !g.Layer(1).Has(4, 2) {
		t.Error("expected exit trigger at (4, 2)")
	}
	if !g.Layer(0).Has(0, 2) {
		t.Error("expected scenery at (0, 2)")
	}
}

func TestParseYAMLRaggedRows(t *testing.T) {
	data := []byte("tile_size: 16\nrows:\n  - \"#\"\n  - \"###\"\n")

	lvl, err := ParseYAML(data, DefaultLayerNames())
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if lvl.Grid.Width() != 3 {
		t.Errorf("Width() = %d, expected widest row 3", lvl.Grid.Width())
	}
	if lvl.Grid.TileSize() != 16 {
		t.Errorf("TileSize() = %d, expected 16", lvl.Grid.TileSize())
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "rows: [unclosed"},
		{"no rows", "message: empty\n"},
		{"unknown glyph", "rows:\n  - \"#?#\"\n"},
		{"negative tile size", "tile_size: -4\nrows:\n  - \"#\"\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data), DefaultLayerNames())
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("ParseYAML() error = %v, expected ErrMalformed", err)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"level01.tmx", true},
		{"LEVEL.YAML", true},
		{"tiles.tsx", false},
		{"README", false},
	}

	for _, tc := range tests {
		if got := IsSupported(tc.name); got != tc.expected {
			t.Errorf("IsSupported(%q) = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}
