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

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("match3", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("match3_endless", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}

	endless, err := store.TopScores("match3_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 || endless[0].Score != 500 {
		t.Errorf("Expected one endless score of 500, got %v", endless)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 10; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores (limit), got %d", len(scores))
	}
	if scores[0].Score != 1000 {
		t.Errorf("Expected top score 1000, got %d", scores[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore("match3", 100)
	store.SaveScore("match3", 300)
	store.SaveScore("match3", 200)

	high, err = store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreRounds(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveRound(RoundRecord{
		GameID:    "match3",
		SessionID: "session-a",
		Seed:      "abcd",
		Turn:      1,
		Removed:   3,
		Points:    30,
	})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if first.RoundID == "" || first.ID == 0 {
		t.Errorf("expected generated IDs, got %+v", first)
	}

	if _, err := store.SaveRound(RoundRecord{
		RoundID:   "fixed-id",
		GameID:    "match3",
		SessionID: "session-a",
		Turn:      2,
		Removed:   7,
		Cascades:  2,
		Points:    140,
	}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound(RoundRecord{GameID: "match3", SessionID: "session-b", Turn: 1}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	got, err := store.RoundByID("fixed-id")
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if got == nil || got.Removed != 7 || got.Cascades != 2 || got.SessionID != "session-a" {
		t.Errorf("unexpected round %+v", got)
	}

	missing, err := store.RoundByID("nope")
	if err != nil || missing != nil {
		t.Errorf("expected nil for a missing round, got %+v, %v", missing, err)
	}

	session, err := store.SessionRounds("session-a", 0)
	if err != nil {
		t.Fatalf("SessionRounds() failed: %v", err)
	}
	if len(session) != 2 || session[0].Turn != 1 || session[1].Turn != 2 {
		t.Errorf("expected session rounds in turn order, got %+v", session)
	}

	recent, err := store.RecentRounds("match3", 2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].SessionID != "session-b" {
		t.Errorf("expected newest round first, got %+v", recent)
	}

	// Duplicate round IDs are rejected.
	if _, err := store.SaveRound(RoundRecord{RoundID: "fixed-id", GameID: "match3"}); err == nil {
		t.Error("expected error for duplicate round ID")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("match3", 100)
	store.SaveScore("match3_endless", 300)
	store.SaveRound(RoundRecord{GameID: "match3", Turn: 1})

	if err := store.ClearScores("match3"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("match3", 10); len(scores) != 0 {
		t.Errorf("Expected 0 match3 scores after clear, got %d", len(scores))
	}
	if rounds, _ := store.RecentRounds("match3", 10); len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
	if scores, _ := store.TopScores("match3_endless", 10); len(scores) != 1 {
		t.Errorf("Other games should be untouched, got %d scores", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("match3", 100)
	store.SaveScore("match3", 300)
	store.SaveRound(RoundRecord{GameID: "match3", Turn: 1, Cascades: 3})
	store.SaveRound(RoundRecord{GameID: "match3", Turn: 2, Cascades: 1})

	stats, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.RoundsCount != 2 || stats.MaxCascade != 3 {
		t.Errorf("unexpected round stats %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if all["match3"] == nil || all["match3"].TotalScore != 400 {
		t.Errorf("unexpected all-games stats %+v", all)
	}
}
