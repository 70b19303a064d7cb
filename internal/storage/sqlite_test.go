package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Result{
		{Level: "level02", Score: 900000, Items: 1, Ticks: 800},
		{Level: "level02", Score: 1000000, Items: 0, Ticks: 1200},
		{Level: "level02", Score: 1000000, Items: 0, Ticks: 700},
		{Level: "level03", Score: 500000, Items: 5, Ticks: 2000},
	}
	for _, r := range runs {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults("level02", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Highest score first, the faster of equal scores wins
	if results[0].Score != 1000000 || results[0].Ticks != 700 {
		t.Errorf("first = %+v, expected the 700-tick perfect run", results[0])
	}
	if results[1].Ticks != 1200 {
		t.Errorf("second = %+v, expected the 1200-tick perfect run", results[1])
	}
	if results[2].Score != 900000 || results[2].Items != 1 {
		t.Errorf("third = %+v", results[2])
	}
	if results[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	other, err := store.TopResults("level03", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 level03 result, got %d", len(other))
	}
}

func TestStoreSaveResultNeedsLevel(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Score: 10}); err == nil {
		t.Error("SaveResult() without a level should fail")
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{Level: "test", Score: (i + 1) * 100})
	}

	results, err := store.TopResults("test", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", results)
	}

	// Non-positive limits fall back to 10
	all, err := store.TopResults("test", 0)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 results with default limit, got %d", len(all))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("level01")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an unplayed level, got %d", best)
	}

	store.SaveResult(Result{Level: "level01", Score: 100})
	store.SaveResult(Result{Level: "level01", Score: 300})
	store.SaveResult(Result{Level: "level01", Score: 200})

	best, err = store.BestScore("level01")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Level: "a", Score: 100})
	store.SaveResult(Result{Level: "a", Score: 200})
	store.SaveResult(Result{Level: "b", Score: 500})

	if err := store.ClearResults("a"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, _ := store.TopResults("a", 10)
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}

	results, _ = store.TopResults("b", 10)
	if len(results) != 1 {
		t.Errorf("Other levels should be untouched, got %d results", len(results))
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.LevelStats("empty")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("stats for an unplayed level = %+v", stats)
	}

	store.SaveResult(Result{Level: "level04", Score: 800, Items: 2, Ticks: 900})
	store.SaveResult(Result{Level: "level04", Score: 1000, Items: 0, Ticks: 1100})

	stats, err = store.LevelStats("level04")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.BestScore != 1000 {
		t.Errorf("BestScore = %d, expected 1000", stats.BestScore)
	}
	if stats.FewestItems != 0 {
		t.Errorf("FewestItems = %d, expected 0", stats.FewestItems)
	}
	if stats.FastestTicks != 900 {
		t.Errorf("FastestTicks = %d, expected 900", stats.FastestTicks)
	}
	if stats.AvgScore != 900 {
		t.Errorf("AvgScore = %f, expected 900", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreAllLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Level: "level02", Score: 100})
	store.SaveResult(Result{Level: "level02", Score: 300})
	store.SaveResult(Result{Level: "ending", Score: 1000000})

	all, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(all))
	}
	if all["level02"].Runs != 2 || all["level02"].BestScore != 300 {
		t.Errorf("level02 stats = %+v", all["level02"])
	}
	if all["ending"].BestScore != 1000000 {
		t.Errorf("ending stats = %+v", all["ending"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.minimalism/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".minimalism", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
