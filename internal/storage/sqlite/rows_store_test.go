package sqlite

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

func sampleRows() []enrollment.Row {
	return []enrollment.Row{
		{Region: "Totals", Year: 2014, Month: 1, Total: enrollment.Float(1000), GroupVIII: enrollment.Float(200), NewlyEligible: enrollment.Float(100)},
		{Region: "Ohio", Year: 2014, Month: 1, Total: nil, GroupVIII: enrollment.Float(20), NewlyEligible: enrollment.Float(math.NaN())},
		{Region: "Ohio", Year: 2014, Month: 2, Total: enrollment.Float(110), GroupVIII: enrollment.Float(21), NewlyEligible: enrollment.Float(11)},
	}
}

func TestRowsStore_RoundTripPreservesNulls(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	store := NewRowsStore(db)
	if err := store.SaveRows(ctx, "enrollment.csv", "abc", sampleRows()); err != nil {
		t.Fatalf("SaveRows() error = %v", err)
	}

	rows, err := store.LoadRows(ctx, "enrollment.csv")
	if err != nil {
		t.Fatalf("LoadRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Region != "Totals" || rows[2].Month != 2 {
		t.Errorf("rows out of insertion order: %+v", rows)
	}
	if rows[1].Total != nil {
		t.Error("nil total should stay nil")
	}
	if rows[1].NewlyEligible != nil {
		t.Error("NaN should be stored as NULL")
	}
	if rows[2].Total == nil || *rows[2].Total != 110 {
		t.Errorf("total = %v, want 110", rows[2].Total)
	}
}

func TestRowsStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	store := NewRowsStore(db)
	if err := store.SaveRows(ctx, "a", "v1", sampleRows()); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveRows(ctx, "a", "v2", sampleRows()[:1]); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveRows(ctx, "b", "v1", sampleRows()); err != nil {
		t.Fatal(err)
	}

	rows, err := store.LoadRows(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("expected replaced source to have 1 row, got %d", len(rows))
	}

	meta, ok, err := store.Meta(ctx, "a")
	if err != nil || !ok {
		t.Fatalf("Meta() = %v, %v", ok, err)
	}
	if meta.Fingerprint != "v2" || meta.RowCount != 1 || meta.ImportedAt.IsZero() {
		t.Errorf("meta = %+v", meta)
	}

	sources, err := store.Sources(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 2 {
		t.Errorf("expected 2 sources, got %d", len(sources))
	}

	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Meta(ctx, "a"); ok {
		t.Error("deleted source still has meta")
	}
	if rows, _ := store.LoadRows(ctx, "b"); len(rows) != 3 {
		t.Errorf("deleting a touched b: %d rows", len(rows))
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestRowsStore_MetaMissing(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, ok, err := NewRowsStore(db).Meta(context.Background(), "nope")
	if err != nil || ok {
		t.Errorf("Meta() = %v, %v; want false, nil", ok, err)
	}
}
