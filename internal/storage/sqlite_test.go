package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestMemoryStore(t *testing.T) {
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open(MemoryDSN) failed: %v", err)
	}
	defer store.Close()

	// Several saves and reads must hit the same in-memory database.
	for i := 0; i < 3; i++ {
		if _, err := store.SaveRun(Run{Player: "p", GameID: "planetoids", Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	runs, err := store.TopRuns("planetoids", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveRun(Run{Player: "guest", GameID: "planetoids", Score: 40, Level: 2, Outcome: "drifted_into_space"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected uuid, got %q", id)
	}

	if _, err := store.SaveRun(Run{ID: id, GameID: "planetoids"}); err == nil {
		t.Error("expected duplicate id to fail")
	}
	if _, err := store.SaveRun(Run{Player: "guest"}); err == nil {
		t.Error("expected run without game id to fail")
	}
}

func TestTopRuns(t *testing.T) {
	store := openTemp(t)

	created := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	runs := []Run{
		{Player: "a", GameID: "planetoids", Score: 100, Level: 1, Explored: 12, Outcome: "fell_behind_camera", Ticks: 900, CreatedAt: created},
		{Player: "b", GameID: "planetoids", Score: 50, Level: 1, Outcome: "drifted_into_space"},
		{Player: "c", GameID: "planetoids", Score: 200, Level: 3, Outcome: "last_planet_behind_camera"},
		{Player: "d", GameID: "planetoids", Score: 100, Level: 2, Outcome: "fell_behind_camera"},
		{Player: "e", GameID: "other", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("planetoids", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(top))
	}

	wantPlayers := []string{"c", "a", "d"}
	for i, want := range wantPlayers {
		if top[i].Player != want {
			t.Errorf("top[%d].Player = %q, want %q", i, top[i].Player, want)
		}
	}

	a := top[1]
	if a.Explored != 12 || a.Ticks != 900 || a.Outcome != "fell_behind_camera" {
		t.Errorf("round trip lost fields: %+v", a)
	}
	if !a.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", a.CreatedAt, created)
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTemp(t)

	for _, score := range []int{10, 30, 20} {
		if _, err := store.SaveRun(Run{Player: "guest", GameID: "planetoids", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{Player: "other", GameID: "planetoids", Score: 99}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	recent, err := store.RecentRuns("guest", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 20 || recent[1].Score != 30 {
		t.Errorf("unexpected recent runs %+v", recent)
	}
}

func TestStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.Stats("planetoids", "journey_complete")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats %+v", empty)
	}

	for _, r := range []Run{
		{Player: "a", GameID: "planetoids", Score: 100, Explored: 30, Outcome: "journey_complete"},
		{Player: "b", GameID: "planetoids", Score: 300, Explored: 10, Outcome: "fell_behind_camera"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats("planetoids", "journey_complete")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 300 || stats.AvgScore != 200 {
		t.Errorf("runs=%d best=%d avg=%.1f", stats.Runs, stats.BestScore, stats.AvgScore)
	}
	if stats.MaxExplored != 30 || stats.Completed != 1 {
		t.Errorf("maxExplored=%d completed=%d", stats.MaxExplored, stats.Completed)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played not set")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		in   any
	}{
		{"time", want},
		{"layout", "2026-01-02 03:04:05.000000"},
		{"seconds", "2026-01-02 03:04:05"},
		{"rfc3339", "2026-01-02T03:04:05Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(want) {
				t.Errorf("parseTime(%v) = %v", tt.in, got)
			}
		})
	}

	if !parseTime(42).IsZero() {
		t.Error("unknown type should give zero time")
	}
}
