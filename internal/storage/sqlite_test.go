package storage

import (
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

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	scores := []int{300, 1200, 700}
	for _, sc := range scores {
		if _, err := store.SaveRun(RunRecord{
			Score: sc, Level: 2, LevelName: "Foothills", Coins: 4, DurationMs: 45_000,
		}); err != nil {
			t.Fatalf("SaveRun(%d) failed: %v", sc, err)
		}
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopRuns(2) returned %d records", len(top))
	}
	if top[0].Score != 1200 || top[1].Score != 700 {
		t.Errorf("top runs not sorted by score: %d, %d", top[0].Score, top[1].Score)
	}
	if top[0].LevelName != "Foothills" || top[0].Coins != 4 {
		t.Errorf("run fields not round-tripped: %+v", top[0])
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty store high score = %d, want 0", hs)
	}

	store.SaveRun(RunRecord{Score: 500, Level: 1, LevelName: "Meadow"})
	store.SaveRun(RunRecord{Score: 2500, Level: 3, LevelName: "Canyon"})

	hs, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 2500 {
		t.Errorf("high score = %d, want 2500", hs)
	}
}

func TestPerfectFlagRoundTrip(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 100, Level: 1, LevelName: "Meadow", Perfect: true})
	store.SaveRun(RunRecord{Score: 50, Level: 1, LevelName: "Meadow", Perfect: false})

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if !top[0].Perfect || top[1].Perfect {
		t.Errorf("perfect flags wrong: %v, %v", top[0].Perfect, top[1].Perfect)
	}
}

func TestSaveAndQueryAchievements(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveRun(RunRecord{Score: 5500, Level: 6, LevelName: "Stratus"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	unlocked := []AchievementRecord{
		{AchievementID: "first_flight", Name: "First Flight", Reward: 10},
		{AchievementID: "score_5k", Name: "High Roller", Reward: 100},
	}
	if err := store.SaveAchievements(runID, unlocked); err != nil {
		t.Fatalf("SaveAchievements() failed: %v", err)
	}

	got, err := store.RunAchievements(runID)
	if err != nil {
		t.Fatalf("RunAchievements() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RunAchievements() returned %d records", len(got))
	}
	if got[0].AchievementID != "first_flight" || got[1].Reward != 100 {
		t.Errorf("achievement fields wrong: %+v", got)
	}

	// A second run unlocking an overlapping set bumps the counts.
	runID2, _ := store.SaveRun(RunRecord{Score: 200, Level: 1, LevelName: "Meadow"})
	store.SaveAchievements(runID2, unlocked[:1])

	counts, err := store.UnlockCounts()
	if err != nil {
		t.Fatalf("UnlockCounts() failed: %v", err)
	}
	if counts["first_flight"] != 2 || counts["score_5k"] != 1 {
		t.Errorf("unlock counts = %v", counts)
	}
}

func TestRunStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetRunStats()
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(RunRecord{Score: 100, Level: 1, LevelName: "Meadow", Coins: 3})
	store.SaveRun(RunRecord{Score: 300, Level: 1, LevelName: "Meadow", Coins: 7})

	stats, err = store.GetRunStats()
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg score = %v, want 200", stats.AvgScore)
	}
	if stats.TotalCoins != 10 {
		t.Errorf("total coins = %d, want 10", stats.TotalCoins)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	runID, _ := store.SaveRun(RunRecord{Score: 900, Level: 2, LevelName: "Foothills"})
	store.SaveAchievements(runID, []AchievementRecord{{AchievementID: "first_flight", Name: "First Flight", Reward: 10}})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("runs remain after clear: %d", len(top))
	}
	counts, _ := store.UnlockCounts()
	if len(counts) != 0 {
		t.Errorf("achievements remain after clear: %v", counts)
	}
}

func TestCosmeticRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.LoadCosmetic(); err != nil || ok {
		t.Fatalf("LoadCosmetic() on empty store = ok=%v err=%v", ok, err)
	}

	want := Cosmetic{BodyShape: "round", LegStyle: "springs", Color: "cyan"}
	if err := store.SaveCosmetic(want); err != nil {
		t.Fatalf("SaveCosmetic() failed: %v", err)
	}

	got, ok, err := store.LoadCosmetic()
	if err != nil || !ok {
		t.Fatalf("LoadCosmetic() = ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Errorf("cosmetic = %+v, want %+v", got, want)
	}

	// Saving again replaces, never duplicates.
	want.Color = "orange"
	if err := store.SaveCosmetic(want); err != nil {
		t.Fatalf("second SaveCosmetic() failed: %v", err)
	}
	got, _, _ = store.LoadCosmetic()
	if got.Color != "orange" {
		t.Errorf("cosmetic color = %q after update", got.Color)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "test.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() with missing parents failed: %v", err)
	}
	store.Close()
}
