package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestSaveAndTopScores(t *testing.T) {
	store := testStore(t)

	for _, score := range []int{10, 30, 20} {
		if _, err := store.SaveScore("santa", score); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}
	// Another game's scores must not leak in
	if _, err := store.SaveScore("other", 99); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	entries, err := store.TopScores("santa", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, expected 3", len(entries))
	}
	for i, want := range []int{30, 20, 10} {
		if entries[i].Score != want {
			t.Errorf("entry %d score = %d, expected %d", i, entries[i].Score, want)
		}
	}

	limited, err := store.TopScores("santa", 2)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d entries with limit 2", len(limited))
	}
}

func TestHighScore(t *testing.T) {
	store := testStore(t)

	score, err := store.HighScore("santa")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("empty table high score = %d, expected 0", score)
	}

	store.SaveScore("santa", 15)
	store.SaveScore("santa", 42)
	store.SaveScore("santa", 7)

	score, err = store.HighScore("santa")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 42 {
		t.Errorf("high score = %d, expected 42", score)
	}
}

func TestSaveAndBestRuns(t *testing.T) {
	store := testStore(t)

	runs := []RunResult{
		{GameID: "santa", LevelID: "snowy_village", LevelIndex: 0, Presents: 4, Lives: 1, Difficulty: "normal", DurationMS: 60000},
		{GameID: "santa", LevelID: "toy_workshop", LevelIndex: 2, Presents: 12, Lives: 2, Difficulty: "hard", Completed: true, DurationMS: 300000},
		{GameID: "santa", LevelID: "frozen_cliffs", LevelIndex: 1, Presents: 9, Lives: 0, Difficulty: "normal", DurationMS: 180000},
		{GameID: "santa", LevelID: "toy_workshop", LevelIndex: 2, Presents: 10, Lives: 3, Difficulty: "easy", Completed: true, DurationMS: 240000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	best, err := store.BestRuns("santa", 10)
	if err != nil {
		t.Fatalf("BestRuns failed: %v", err)
	}
	if len(best) != 4 {
		t.Fatalf("got %d runs, expected 4", len(best))
	}

	// Completed runs first, then by presents descending
	wantPresents := []int{12, 10, 9, 4}
	for i, want := range wantPresents {
		if best[i].Presents != want {
			t.Errorf("run %d presents = %d, expected %d", i, best[i].Presents, want)
		}
	}
	if !best[0].Completed || !best[1].Completed {
		t.Error("completed runs should sort first")
	}
	if best[0].LevelID != "toy_workshop" || best[0].Difficulty != "hard" {
		t.Errorf("best run = %+v, expected the hard completed run", best[0])
	}
}

func TestClearScores(t *testing.T) {
	store := testStore(t)

	store.SaveScore("santa", 10)
	store.SaveScore("keep", 20)
	store.SaveRun(RunResult{GameID: "santa", LevelID: "snowy_village", Presents: 3})
	store.SaveRun(RunResult{GameID: "keep", LevelID: "snowy_village", Presents: 5})

	if err := store.ClearScores("santa"); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	entries, _ := store.TopScores("santa", 10)
	if len(entries) != 0 {
		t.Errorf("scores left after clear: %d", len(entries))
	}
	best, _ := store.BestRuns("santa", 10)
	if len(best) != 0 {
		t.Errorf("runs left after clear: %d", len(best))
	}

	kept, _ := store.TopScores("keep", 10)
	if len(kept) != 1 {
		t.Error("clearing one game should not touch another")
	}
	keptRuns, _ := store.BestRuns("keep", 10)
	if len(keptRuns) != 1 {
		t.Error("clearing one game should not touch another's runs")
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.SaveScore("santa", 33)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	score, err := store.HighScore("santa")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 33 {
		t.Errorf("high score after reopen = %d, expected 33", score)
	}
}
