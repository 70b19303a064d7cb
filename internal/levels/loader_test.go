package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/vovakirdan/minimalism/internal/levels/formats"
)

func newTestLoader(t *testing.T, order ...string) *Loader {
	t.Helper()
	l, err := NewLoader(os.DirFS("testdata"), order, formats.DefaultLayerNames())
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	return l
}

func TestLoaderNamesSorted(t *testing.T) {
	l := newTestLoader(t)

	names := l.Names()
	expected := []string{"broken", "small", "tiny"}
	if len(names) != len(expected) {
		t.Fatalf("Names() = %v, expected %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Names()[%d] = %q, expected %q", i, names[i], expected[i])
		}
	}
}

func TestLoaderOrder(t *testing.T) {
	l := newTestLoader(t, "tiny", "small")

	names := l.Names()
	if len(names) != 2 || names[0] != "tiny" || names[1] != "small" {
		t.Errorf("Names() = %v, expected [tiny small]", names)
	}
}

func TestLoaderUnknownInOrder(t *testing.T) {
	_, err := NewLoader(os.DirFS("testdata"), []string{"tiny", "nope"}, formats.DefaultLayerNames())
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("NewLoader() error = %v, expected ErrUnknownLevel", err)
	}
}

func TestLoaderEmpty(t *testing.T) {
	_, err := NewLoader(fstest.MapFS{"readme.txt": {Data: []byte("hi")}}, nil, formats.DefaultLayerNames())
	if !errors.Is(err, ErrNoLevels) {
		t.Errorf("NewLoader() error = %v, expected ErrNoLevels", err)
	}
}

func TestLoadTMX(t *testing.T) {
	l := newTestLoader(t)

	lvl, err := l.Load("small")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if lvl.Message != "small test map" {
		t.Errorf("Message = %q, expected %q", lvl.Message, "small test map")
	}

	g := lvl.Grid
	if g.Width() != 5 || g.Height() != 4 || g.TileSize() != 32 {
		t.Fatalf("grid = %dx%d @%d, expected 5x4 @32", g.Width(), g.Height(), g.TileSize())
	}
	if g.LayerCount() != 4 {
		t.Fatalf("LayerCount() = %d, expected 4", g.LayerCount())
	}

	collision, idx := g.LayerByName("collision")
	if idx != 2 {
		t.Fatalf("collision index = %d, expected 2", idx)
	}

	// The top TMX row is the highest grid row
	for col := 0; col < 5; col++ {
		if !collision.Has(col, 0) || !collision.Has(col, 3) {
			t.Errorf("expected wall tiles at column %d rows 0 and 3", col)
		}
	}

	tile, ok := collision.At(2, 2)
	if !ok || !tile.Breakable {
		t.Errorf("At(2, 2) = %+v, %v; expected breakable tile", tile, ok)
	}
	if wall, _ := collision.At(0, 2); wall.Breakable {
		t.Error("tile without property must default to not breakable")
	}

	if !g.Layer(3).Has(3, 1) {
		t.Error("expected pickup at (3, 1)")
	}
	if !g.Layer(1).Has(4, 1) {
		t.Error("expected trigger at (4, 1)")
	}
	if !g.Layer(0).Has(0, 3) {
		t.Error("expected background tile at (0, 3)")
	}
}

func TestLoadReturnsClone(t *testing.T) {
	l := newTestLoader(t)

	first, err := l.Load("tiny")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	first.Grid.Layer(3).Remove(2, 1)
	first.Properties["message"] = "changed"

	second, err := l.Load("tiny")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !second.Grid.Layer(3).Has(2, 1) {
		t.Error("mutating a loaded grid must not affect later loads")
	}
	if second.Properties["message"] != "tiny" {
		t.Errorf("Properties[message] = %q, expected %q", second.Properties["message"], "tiny")
	}
}

func TestLoadErrors(t *testing.T) {
	l := newTestLoader(t)

	if _, err := l.Load("missing"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Load(missing) error = %v, expected ErrUnknownLevel", err)
	}
	if _, err := l.Load("broken"); !errors.Is(err, ErrMalformedLevel) {
		t.Errorf("Load(broken) error = %v, expected ErrMalformedLevel", err)
	}
}

func TestCheck(t *testing.T) {
	l := newTestLoader(t)
	if err := l.Check(); !errors.Is(err, ErrMalformedLevel) {
		t.Errorf("Check() = %v, expected ErrMalformedLevel", err)
	}

	l = newTestLoader(t, "small", "tiny")
	if err := l.Check(); err != nil {
		t.Errorf("Check() = %v, expected nil", err)
	}
}

func TestEmbeddedLevels(t *testing.T) {
	order := []string{"level02", "level03", "level04", "level01", "ending"}
	l, err := NewLoader(Embedded(), order, formats.DefaultLayerNames())
	if err != nil {
		t.Fatalf("NewLoader(Embedded()) error = %v", err)
	}
	if err := l.Check(); err != nil {
		t.Fatalf("Check() = %v", err)
	}

	for _, name := range order {
		lvl, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		collision, _ := lvl.Grid.LayerByName("collision")
		if collision == nil {
			t.Fatalf("%s: no collision layer", name)
		}
		// Spawn cell is free and stands on solid ground
		if collision.Has(1, 1) || !collision.Has(1, 0) {
			t.Errorf("%s: spawn cell (1,1) must be free above a floor tile", name)
		}
		if lvl.Message == "" {
			t.Errorf("%s: expected a message", name)
		}
	}
}

func TestNameForFileAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.yaml")
	if err := os.WriteFile(path, []byte("rows:\n  - \"###\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := NewLoader(os.DirFS(dir), nil, formats.DefaultLayerNames())
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	lvl, err := l.Load("room")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if lvl.Grid.Width() != 3 {
		t.Fatalf("Width() = %d, expected 3", lvl.Grid.Width())
	}

	if err := os.WriteFile(path, []byte("rows:\n  - \"#####\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	name, ok := l.NameForFile(path)
	if !ok || name != "room" {
		t.Fatalf("NameForFile() = %q, %v; expected room, true", name, ok)
	}

	// Still cached until invalidated
	if lvl, _ := l.Load("room"); lvl.Grid.Width() != 3 {
		t.Errorf("cached Width() = %d, expected 3", lvl.Grid.Width())
	}
	l.Invalidate(name)
	if lvl, _ := l.Load("room"); lvl.Grid.Width() != 5 {
		t.Errorf("reloaded Width() = %d, expected 5", lvl.Grid.Width())
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	path := filepath.Join(dir, "new.yaml")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("rows:\n  - \"#\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("event for %q, expected %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	for range w.Events {
		// drain until closed
	}
}
