package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/minimalism/internal/config"
	"github.com/vovakirdan/minimalism/internal/levels/formats"
)

// Loader serves levels from a filesystem. Parsed levels are cached and every
// Load hands out a clone, so a level can be replayed from its pristine state.
// Loader is safe for concurrent use.
type Loader struct {
	fsys   fs.FS
	layers formats.LayerNames
	order  []string

	mu    sync.RWMutex
	names []string
	files map[string]string // level name -> file path in fsys
	cache map[string]*Level
}

// NewLoader scans fsys for level files. When order is empty, every level file
// is served sorted by name; otherwise exactly the listed levels are served in
// that order and each must exist.
func NewLoader(fsys fs.FS, order []string, layers formats.LayerNames) (*Loader, error) {
	l := &Loader{
		fsys:   fsys,
		layers: layers,
		order:  append([]string(nil), order...),
		cache:  make(map[string]*Level),
	}
	if err := l.Rescan(); err != nil {
		return nil, err
	}
	return l, nil
}

// Rescan re-reads the file list and drops every cached level.
func (l *Loader) Rescan() error {
	files := make(map[string]string)
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.IsSupported(p) {
			return nil
		}
		name := nameOf(p)
		if _, dup := files[name]; dup {
			return fmt.Errorf("%w: duplicate level name %q", ErrMalformedLevel, name)
		}
		files[name] = p
		return nil
	})
	if err != nil {
		return fmt.Errorf("levels: scanning: %w", err)
	}
	if len(files) == 0 {
		return ErrNoLevels
	}

	var names []string
	if len(l.order) > 0 {
		for _, name := range l.order {
			if _, ok := files[name]; !ok {
				return fmt.Errorf("%w: %q listed in level order", ErrUnknownLevel, name)
			}
		}
		names = append(names, l.order...)
	} else {
		for name := range files {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	l.mu.Lock()
	l.names = names
	l.files = files
	l.cache = make(map[string]*Level)
	l.mu.Unlock()
	return nil
}

// Names returns the level names in play order.
func (l *Loader) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.names...)
}

// Load returns a fresh copy of the named level.
func (l *Loader) Load(name string) (*Level, error) {
	l.mu.RLock()
	cached, ok := l.cache[name]
	file, known := l.files[name]
	l.mu.RUnlock()

	if !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}

	if !ok {
		parsed, err := formats.ParseFile(l.fsys, file, l.layers)
		if err != nil {
			return nil, fmt.Errorf("levels: loading %s: %w", name, err)
		}
		cached = &Level{
			Name:       name,
			Grid:       parsed.Grid,
			Message:    parsed.Message,
			Properties: parsed.Properties,
			FilePath:   file,
		}
		l.mu.Lock()
		l.cache[name] = cached
		l.mu.Unlock()
	}

	props := make(map[string]string, len(cached.Properties))
	for k, v := range cached.Properties {
		props[k] = v
	}
	return &Level{
		Name:       cached.Name,
		Grid:       cached.Grid.Clone(),
		Message:    cached.Message,
		Properties: props,
		FilePath:   cached.FilePath,
	}, nil
}

// Invalidate drops the cached copy of a level so the next Load re-reads it.
func (l *Loader) Invalidate(name string) {
	l.mu.Lock()
	delete(l.cache, name)
	l.mu.Unlock()
}

// NameForFile maps a changed file path back to the level it defines.
func (l *Loader) NameForFile(p string) (string, bool) {
	name := nameOf(p)
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.files[name]
	return name, ok
}

// Check parses every level and returns all failures joined.
func (l *Loader) Check() error {
	var errs []error
	for _, name := range l.Names() {
		l.Invalidate(name)
		if _, err := l.Load(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func nameOf(p string) string {
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// LayerNamesFrom converts configured layer names for the parsers.
func LayerNamesFrom(c config.LayersConfig) formats.LayerNames {
	return formats.LayerNames{
		Background: c.Background,
		Trigger:    c.Trigger,
		Collision:  c.Collision,
		Pickup:     c.Pickup,
	}
}

// Open returns a loader for dir, or for the embedded levels when dir is
// empty. Embedded levels follow the configured order; a directory serves all
// of its level files sorted by name.
func Open(dir string, cfg config.Config) (*Loader, error) {
	names := LayerNamesFrom(cfg.Layers)
	if dir == "" {
		return NewLoader(Embedded(), cfg.Levels.Order, names)
	}
	return NewLoader(os.DirFS(dir), nil, names)
}
