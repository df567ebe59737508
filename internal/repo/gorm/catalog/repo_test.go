package catalog

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepo(db)
}

func TestLatestChartDateEmpty(t *testing.T) {
	r := newTestRepo(t)
	date, err := r.LatestChartDate(context.Background())
	if err != nil {
		t.Fatalf("LatestChartDate: %v", err)
	}
	if date != "" {
		t.Fatalf("expected empty date with no snapshots, got %q", date)
	}
}

func TestLatestChartDatePicksNewest(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	for _, d := range []string{"2026-08-01", "2026-08-30", "2026-08-15"} {
		if err := r.AddChartEntry(ctx, &ChartEntry{ChartDate: d, Rank: 1, Name: "g"}); err != nil {
			t.Fatalf("AddChartEntry: %v", err)
		}
	}
	date, err := r.LatestChartDate(ctx)
	if err != nil {
		t.Fatalf("LatestChartDate: %v", err)
	}
	if date != "2026-08-30" {
		t.Fatalf("expected newest snapshot, got %q", date)
	}
}

func TestAddDownloadIsIdempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	g := &Game{Slug: "portal", Name: "Portal"}
	if err := r.CreateGame(ctx, g); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if err := r.AddDownload(ctx, 1, g.ID); err != nil {
		t.Fatalf("AddDownload: %v", err)
	}
	if err := r.AddDownload(ctx, 1, g.ID); err != nil {
		t.Fatalf("repeat AddDownload: %v", err)
	}
	ids, err := r.DownloadedGameIDs(ctx, 1)
	if err != nil {
		t.Fatalf("DownloadedGameIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != g.ID {
		t.Fatalf("expected a single download row, got %v", ids)
	}
	ok, err := r.HasDownload(ctx, 1, g.ID)
	if err != nil || !ok {
		t.Fatalf("expected download present, got %v %v", ok, err)
	}
	ok, err = r.HasDownload(ctx, 2, g.ID)
	if err != nil || ok {
		t.Fatalf("expected no download for org 2, got %v %v", ok, err)
	}
}
