package history

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Komalshar25/NeuroVerse/internal/game"
)

func episodeAt(seed int64, ended time.Time) Episode {
	return Episode{
		ID:         uuid.NewString(),
		Seed:       seed,
		Ticks:      120 + int(seed),
		Score:      int(seed) * 10,
		Health:     42.5,
		FoodEaten:  2,
		HazardHits: 1,
		GameOver:   seed%2 == 0,
		StartedAt:  ended.Add(-time.Minute),
		EndedAt:    ended,
	}
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := NewStore(BackendSQLite, filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	memory, err := NewStore(BackendMemory, "")
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	out := map[string]Store{BackendMemory: memory, BackendSQLite: sqlite}
	for name, s := range out {
		if err := s.Init(context.Background()); err != nil {
			t.Fatalf("%s init: %v", name, err)
		}
		s := s
		t.Cleanup(func() { _ = s.Close() })
	}
	return out
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			want := episodeAt(4, base)
			if err := store.SaveEpisode(ctx, want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, ok, err := store.GetEpisode(ctx, want.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !ok {
				t.Fatalf("expected episode %s", want.ID)
			}
			if got.Seed != want.Seed || got.Ticks != want.Ticks || got.Score != want.Score ||
				got.Health != want.Health || got.GameOver != want.GameOver ||
				got.FoodEaten != want.FoodEaten || got.HazardHits != want.HazardHits {
				t.Fatalf("unexpected episode: %+v", got)
			}
			if !got.EndedAt.Equal(want.EndedAt) || !got.StartedAt.Equal(want.StartedAt) {
				t.Fatalf("timestamps changed: %v/%v", got.StartedAt, got.EndedAt)
			}

			if _, ok, err := store.GetEpisode(ctx, "missing"); err != nil || ok {
				t.Fatalf("missing episode: ok=%v err=%v", ok, err)
			}
		})
	}
}

func TestStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for i := int64(0); i < 5; i++ {
				if err := store.SaveEpisode(ctx, episodeAt(i, base.Add(time.Duration(i)*time.Second))); err != nil {
					t.Fatalf("save %d: %v", i, err)
				}
			}
			all, err := store.ListEpisodes(ctx, 0)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(all) != 5 {
				t.Fatalf("expected 5 episodes, got %d", len(all))
			}
			for i, ep := range all {
				if ep.Seed != int64(4-i) {
					t.Fatalf("position %d: expected seed %d, got %d", i, 4-i, ep.Seed)
				}
			}
			top, err := store.ListEpisodes(ctx, 2)
			if err != nil {
				t.Fatalf("list limited: %v", err)
			}
			if len(top) != 2 || top[0].Seed != 4 || top[1].Seed != 3 {
				t.Fatalf("unexpected limited list: %+v", top)
			}
		})
	}
}

func TestStoreRejectsEmptyID(t *testing.T) {
	for name, store := range stores(t) {
		if err := store.SaveEpisode(context.Background(), Episode{}); err == nil {
			t.Fatalf("%s: expected error for empty id", name)
		}
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			errs := make(chan error, 8)
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					errs <- store.SaveEpisode(ctx, episodeAt(int64(i), base.Add(time.Duration(i)*time.Millisecond)))
				}(i)
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				if err != nil {
					t.Fatalf("save: %v", err)
				}
			}
			all, err := store.ListEpisodes(ctx, 0)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(all) != 8 {
				t.Fatalf("expected 8 episodes, got %d", len(all))
			}
		})
	}
}

func TestUninitializedStores(t *testing.T) {
	ctx := context.Background()
	if err := NewSQLiteStore("x.db").SaveEpisode(ctx, episodeAt(1, time.Now())); err == nil {
		t.Fatal("expected sqlite error before Init")
	}
	if err := NewMemoryStore().SaveEpisode(ctx, episodeAt(1, time.Now())); err == nil {
		t.Fatal("expected memory error before Init")
	}
	if err := NewSQLiteStore("").Init(ctx); err == nil {
		t.Fatal("expected error for empty sqlite path")
	}

	for _, tc := range []struct {
		name  string
		store Store
	}{
		{"memory", NewMemoryStore()},
		{"sqlite", NewSQLiteStore("x.db")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := tc.store.GetEpisode(ctx, "missing")
			if err == nil || !strings.Contains(err.Error(), "not initialized") {
				t.Fatalf("GetEpisode before Init: expected not initialized, got %v", err)
			}
			_, err = tc.store.ListEpisodes(ctx, 5)
			if err == nil || !strings.Contains(err.Error(), "not initialized") {
				t.Fatalf("ListEpisodes before Init: expected not initialized, got %v", err)
			}
		})
	}
}

func TestNewStoreRejectsUnknownBackend(t *testing.T) {
	_, err := NewStore("postgres", "")
	if err == nil || !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("expected unsupported backend error, got %v", err)
	}
	if !ValidBackend(BackendSQLite) || ValidBackend("postgres") {
		t.Fatal("ValidBackend mismatch")
	}
}

func TestFromSummary(t *testing.T) {
	sum := game.Summary{Seed: 9, Ticks: 33, Score: 40, Health: 12, GameOver: true,
		Stats: game.Stats{FoodEaten: 3, HazardHits: 2}}
	a := FromSummary(sum)
	b := FromSummary(sum)
	if _, err := uuid.Parse(a.ID); err != nil {
		t.Fatalf("id is not a uuid: %v", err)
	}
	if a.ID == b.ID {
		t.Fatal("ids should be unique")
	}
	if a.Seed != 9 || a.Ticks != 33 || a.FoodEaten != 3 || a.HazardHits != 2 || !a.GameOver {
		t.Fatalf("unexpected episode %+v", a)
	}
}
