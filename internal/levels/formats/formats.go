// Package formats provides pluggable level file format parsers. Every parser
// produces the same layered tile grid with a bottom-left origin.
package formats

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/vovakirdan/minimalism/internal/tilemap"
)

// ErrMalformed is wrapped by every parse failure caused by bad level content.
var ErrMalformed = errors.New("malformed level")

// LayerNames names the layers a parser creates when the format itself does
// not carry layer names.
type LayerNames struct {
	Background string
	Trigger    string
	Collision  string
	Pickup     string
}

// DefaultLayerNames returns the conventional layer names.
func DefaultLayerNames() LayerNames {
	return LayerNames{
		Background: "background",
		Trigger:    "trigger",
		Collision:  "collision",
		Pickup:     "pickup",
	}
}

// Level represents a parsed level ready for use.
type Level struct {
	Grid       *tilemap.Grid
	Message    string
	Properties map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".tmx", ".yaml", ".yml"}
}

// IsSupported reports whether the file extension has a parser.
func IsSupported(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// ParseFile routes the file at name inside fsys to the parser for its extension.
func ParseFile(fsys fs.FS, name string, layers LayerNames) (Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return ParseTMX(fsys, name)
	case ".yaml", ".yml":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return Level{}, fmt.Errorf("reading file %s: %w", name, err)
		}
		return ParseYAML(data, layers)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", path.Ext(name))
	}
}
