// Package levels provides the level data consumed by the simulation: an
// ordered list of level names and, per name, a fresh tile grid plus the
// level's properties. Levels are read from any fs.FS in the formats under
// levels/formats; the built-in set is embedded.
package levels

import (
	"errors"

	"github.com/vovakirdan/minimalism/internal/levels/formats"
	"github.com/vovakirdan/minimalism/internal/tilemap"
)

var (
	// ErrUnknownLevel is returned when a level name is not in the provider.
	ErrUnknownLevel = errors.New("levels: unknown level")
	// ErrMalformedLevel is wrapped by every failure caused by level content.
	ErrMalformedLevel = formats.ErrMalformed
	// ErrNoLevels is returned when a level source holds no level files.
	ErrNoLevels = errors.New("levels: no levels found")
)

// Level is one playable level. Grid is owned by the caller and may be mutated.
type Level struct {
	Name       string
	Grid       *tilemap.Grid
	Message    string
	Properties map[string]string
	FilePath   string
}

// Provider serves levels by name in play order.
type Provider interface {
	Names() []string
	Load(name string) (*Level, error)
}
