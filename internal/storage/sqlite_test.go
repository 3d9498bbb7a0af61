package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("tilt", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("tilt", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("tilt", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("tilt_trial", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for tilt
	scores, err := store.TopScores("tilt", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for trial
	trialScores, err := store.TopScores("tilt_trial", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(trialScores) != 1 {
		t.Errorf("Expected 1 trial score, got %d", len(trialScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("tilt")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("tilt", 100)
	store.SaveScore("tilt", 300)
	store.SaveScore("tilt", 200)

	high, err = store.HighScore("tilt")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("tilt", 100)
	store.SaveScore("tilt", 200)
	store.SaveScore("tilt_trial", 300)

	// Clear only tilt scores
	err = store.ClearScores("tilt")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Tilt should be empty
	tiltScores, _ := store.TopScores("tilt", 10)
	if len(tiltScores) != 0 {
		t.Errorf("Expected 0 tilt scores after clear, got %d", len(tiltScores))
	}

	// Trial should still have scores
	trialScores, _ := store.TopScores("tilt_trial", 10)
	if len(trialScores) != 1 {
		t.Errorf("Trial scores should not be affected by clearing tilt")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.BestTime("BestTime_01"); err != nil || ok {
		t.Fatalf("BestTime() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.SaveBestTime("BestTime_01", 42.5); err != nil {
		t.Fatalf("SaveBestTime() failed: %v", err)
	}
	if err := store.SaveBestTime("BestTime_01", 38.25); err != nil {
		t.Fatalf("SaveBestTime() failed: %v", err)
	}
	if err := store.SaveBestTime("BestTime_02", 90); err != nil {
		t.Fatalf("SaveBestTime() failed: %v", err)
	}

	secs, ok, err := store.BestTime("BestTime_01")
	if err != nil || !ok {
		t.Fatalf("BestTime() = ok %v, err %v", ok, err)
	}
	if secs != 38.25 {
		t.Errorf("Expected best time 38.25, got %v", secs)
	}

	all, err := store.AllBestTimes()
	if err != nil {
		t.Fatalf("AllBestTimes() failed: %v", err)
	}
	if len(all) != 2 || all[0].Key != "BestTime_01" {
		t.Errorf("Expected 2 best times fastest first, got %+v", all)
	}

	if err := store.ClearBestTime("BestTime_01"); err != nil {
		t.Fatalf("ClearBestTime() failed: %v", err)
	}
	if _, ok, _ := store.BestTime("BestTime_01"); ok {
		t.Error("Best time should be gone after clear")
	}
}

func TestStorePlacementSessions(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		id, err := store.SavePlacementSession(PlacementSession{
			GameID:    "tilt",
			Seed:      int64(i),
			Requested: 27,
			Placed:    27,
			Fallbacks: i,
			Attempts:  30 + i,
		})
		if err != nil {
			t.Fatalf("SavePlacementSession() failed: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("Session ID %q is not a uuid", id)
		}
	}
	if _, err := store.SavePlacementSession(PlacementSession{GameID: "tilt_trial", Requested: 1, Placed: 1}); err != nil {
		t.Fatalf("SavePlacementSession() failed: %v", err)
	}

	sessions, err := store.RecentPlacementSessions("tilt", 2)
	if err != nil {
		t.Fatalf("RecentPlacementSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions with limit, got %d", len(sessions))
	}
	if sessions[0].Seed != 2 || sessions[1].Seed != 1 {
		t.Errorf("Sessions not newest first: %+v", sessions)
	}

	all, err := store.RecentPlacementSessions("", 10)
	if err != nil {
		t.Fatalf("RecentPlacementSessions() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 sessions across games, got %d", len(all))
	}
}

func TestStorePlacementSessionRejectsBadID(t *testing.T) {
	store := openTestStore(t)

	fixed := uuid.NewString()
	id, err := store.SavePlacementSession(PlacementSession{ID: fixed, GameID: "tilt"})
	if err != nil || id != fixed {
		t.Fatalf("SavePlacementSession() = %q, %v", id, err)
	}

	if _, err := store.SavePlacementSession(PlacementSession{ID: "not-a-uuid", GameID: "tilt"}); err == nil {
		t.Error("Expected an error for a malformed session ID")
	}
	if _, err := store.SavePlacementSession(PlacementSession{ID: fixed, GameID: "tilt"}); err == nil {
		t.Error("Expected an error for a duplicate session ID")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("tilt", 10)
	store.SaveScore("tilt", 20)

	stats, err := store.GetGameStats("tilt")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.AvgScore != 15 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	empty, err := store.GetGameStats("tilt_trial")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["tilt"]; !ok || len(all) != 1 {
		t.Errorf("Expected stats for tilt only, got %v", all)
	}
}

func TestStoreClosedErrors(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	if _, _, err := store.BestTime("k"); err == nil || errors.Unwrap(err) == nil {
		t.Errorf("Expected a wrapped error from a closed store, got %v", err)
	}
}
