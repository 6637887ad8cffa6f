package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"
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
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Nested directories are created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	runs := []Run{
		{GameID: "chase", Player: "ann", Score: 1200, Stage: 2, Ticks: 9000},
		{GameID: "chase", Player: "bob", Score: 450, Stage: 1},
		{GameID: "chase", Player: "ann", Score: 3100, Stage: 3},
		{GameID: "chase_mini", Player: "bob", Score: 700, Stage: 2},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(ctx, r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 3100 || scores[1].Score != 1200 || scores[2].Score != 450 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Player != "ann" || scores[0].Stage != 3 {
		t.Errorf("Expected ann on stage 3, got %q on stage %d", scores[0].Player, scores[0].Stage)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	mini, err := store.TopScores("chase_mini", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(mini) != 1 {
		t.Errorf("Expected 1 mini score, got %d", len(mini))
	}
}

func TestStoreSaveRunNeedsGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(context.Background(), Run{Score: 10}); err == nil {
		t.Error("Expected an error for a run without game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("chase", (i+1)*100)
	}

	scores, err := store.TopScores("chase", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to ten
	store.SaveScore("chase", 1)
	all, _ := store.TopScores("chase", 0)
	if len(all) != 6 {
		t.Errorf("Expected 6 scores with default limit, got %d", len(all))
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SaveRun(ctx, Run{GameID: "chase", Player: "first", Score: 800})
	store.SaveRun(ctx, Run{GameID: "chase", Player: "second", Score: 800})

	scores, _ := store.TopScores("chase", 2)
	if len(scores) != 2 || scores[0].Player != "first" {
		t.Errorf("Expected the earlier run first on a tie, got %v", scores)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SaveRun(ctx, Run{GameID: "chase", Player: "ann", Score: 100})
	store.SaveRun(ctx, Run{GameID: "chase_mini", Player: "ann", Score: 900})
	store.SaveRun(ctx, Run{GameID: "chase", Player: "bob", Score: 5000})

	scores, err := store.PlayerScores("ann", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores for ann, got %d", len(scores))
	}
	if scores[0].GameID != "chase_mini" {
		t.Errorf("Expected best run on chase_mini, got %s", scores[0].GameID)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("chase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("chase", 100)
	store.SaveScore("chase", 300)
	store.SaveScore("chase", 200)

	high, err = store.HighScore("chase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chase", 100)
	store.SaveScore("chase", 200)
	store.SaveScore("chase_mini", 300)

	if err := store.ClearScores("chase"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("chase", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 chase scores after clear, got %d", len(scores))
	}

	mini, _ := store.TopScores("chase_mini", 10)
	if len(mini) != 1 {
		t.Errorf("Mini scores should not be affected by clearing chase")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	empty, err := store.GetGameStats("chase")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(ctx, Run{GameID: "chase", Score: 100, Stage: 1})
	store.SaveRun(ctx, Run{GameID: "chase", Score: 300, Stage: 4})
	store.SaveRun(ctx, Run{GameID: "chase_mini", Score: 50, Stage: 2})

	stats, err := store.GetGameStats("chase")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestStage != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average of 200, got %v", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["chase_mini"].BestStage != 2 {
		t.Errorf("Unexpected stats map: %v", all)
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.SaveRun(ctx, Run{GameID: "chase", Score: i}); err != nil {
				t.Errorf("SaveRun() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	scores, _ := store.TopScores("chase", 100)
	if len(scores) != 8 {
		t.Errorf("Expected 8 scores, got %d", len(scores))
	}
}
