package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/willibrandon/enrollview/internal/enrollment"
	"github.com/willibrandon/enrollview/internal/logger"
	"github.com/willibrandon/enrollview/internal/storage/sqlite"
)

// Format is the container format of a dataset source.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatXLSX     Format = "xlsx"
	FormatSQLite   Format = "sqlite"
	FormatPostgres Format = "postgres"
)

// DetectFormat infers the source format and stream compression from a path.
func DetectFormat(path string) (Format, Compression, error) {
	base, comp := splitCompression(path)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".csv", ".txt":
		return FormatCSV, comp, nil
	case ".xlsx", ".xlsm":
		if comp != CompressionNone {
			break
		}
		return FormatXLSX, comp, nil
	case ".db", ".sqlite", ".sqlite3":
		if comp != CompressionNone {
			break
		}
		return FormatSQLite, comp, nil
	}
	return "", "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// Options selects the dataset source.
type Options struct {
	// Path of a CSV, XLSX or SQLite cache file. Ignored when PostgresDSN is
	// set.
	Path  string
	Sheet string

	PostgresDSN   string
	PostgresTable string

	Years enrollment.YearRange

	// Cache, when non-nil, is consulted before parsing a file and refreshed
	// after a parse.
	Cache *sqlite.RowsStore
}

// Result is a loaded dataset plus provenance.
type Result struct {
	Dataset   *enrollment.Dataset
	Source    string
	Format    Format
	Stats     Stats
	FromCache bool
	Elapsed   time.Duration
}

// Load reads the configured source and builds the in-memory dataset.
func Load(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if opts.Years == (enrollment.YearRange{}) {
		opts.Years = enrollment.DefaultYearRange()
	}
	if err := opts.Years.Validate(); err != nil {
		return nil, err
	}

	rows, res, err := loadRows(ctx, opts)
	if err != nil {
		return nil, err
	}

	res.Dataset = enrollment.NewDataset(rows, opts.Years)
	if res.Dataset.Len() == 0 {
		return nil, fmt.Errorf("%w: %s (years %d-%d)", ErrEmptyDataset, res.Source, opts.Years.Min, opts.Years.Max)
	}
	res.Elapsed = time.Since(start)

	log := logger.With("source", res.Source, "format", string(res.Format))
	if res.Stats.SkippedRows > 0 {
		log.Warn("Skipped unreadable records", "skipped", res.Stats.SkippedRows, "records", res.Stats.Records)
	}
	log.Info("Dataset loaded",
		"rows", res.Dataset.Len(),
		"regions", len(res.Dataset.Regions()),
		"null_cells", res.Stats.NullCells,
		"cached", res.FromCache,
		"elapsed", res.Elapsed)
	return res, nil
}

// LoadRows reads the raw rows of a source without building a dataset.
func LoadRows(ctx context.Context, opts Options) ([]enrollment.Row, *Result, error) {
	return loadRows(ctx, opts)
}

func loadRows(ctx context.Context, opts Options) ([]enrollment.Row, *Result, error) {
	if opts.PostgresDSN != "" {
		res := &Result{Source: "postgres:" + opts.PostgresTable, Format: FormatPostgres}
		rows, st, err := ReadPostgres(ctx, opts.PostgresDSN, opts.PostgresTable)
		if err != nil {
			return nil, nil, err
		}
		res.Stats = st
		return rows, res, nil
	}

	if opts.Path == "" {
		return nil, nil, errors.New("no dataset configured: set dataset.path or pass --dataset")
	}
	format, comp, err := DetectFormat(opts.Path)
	if err != nil {
		return nil, nil, err
	}

	info, err := os.Stat(opts.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	source, err := filepath.Abs(opts.Path)
	if err != nil {
		source = opts.Path
	}
	res := &Result{Source: source, Format: format}

	if format == FormatSQLite {
		rows, src, err := readSQLite(ctx, opts.Path)
		if err != nil {
			return nil, nil, err
		}
		res.Source = src
		res.FromCache = true
		res.Stats = Stats{Records: len(rows), Kept: len(rows)}
		return rows, res, nil
	}

	fingerprint := Fingerprint(info)
	if opts.Cache != nil {
		meta, ok, err := opts.Cache.Meta(ctx, source)
		if err != nil {
			logger.Warn("Dataset cache unavailable", "error", err)
		} else if ok && meta.Fingerprint == fingerprint {
			rows, err := opts.Cache.LoadRows(ctx, source)
			if err == nil {
				res.FromCache = true
				res.Stats = Stats{Records: len(rows), Kept: len(rows)}
				return rows, res, nil
			}
			logger.Warn("Dataset cache read failed", "error", err)
		}
	}

	var (
		rows []enrollment.Row
		st   Stats
	)
	switch format {
	case FormatCSV:
		rows, st, err = readCSVFile(opts.Path, comp)
	case FormatXLSX:
		rows, st, err = ReadXLSX(opts.Path, opts.Sheet)
	}
	if err != nil {
		return nil, nil, err
	}
	res.Stats = st

	if opts.Cache != nil {
		if err := opts.Cache.SaveRows(ctx, source, fingerprint, rows); err != nil {
			logger.Warn("Dataset cache write failed", "error", err)
		}
	}
	return rows, res, nil
}

// Fingerprint identifies a file version by size and modification time.
func Fingerprint(info os.FileInfo) string {
	return fmt.Sprintf("%d-%d", info.Size(), info.ModTime().UnixNano())
}

func readCSVFile(path string, comp Compression) ([]enrollment.Row, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r, err := decompress(f, comp)
	if err != nil {
		return nil, Stats{}, err
	}
	defer r.Close()

	return ReadCSV(r)
}

// readSQLite loads the most recently imported source of a cache file.
func readSQLite(ctx context.Context, path string) ([]enrollment.Row, string, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer db.Close()

	store := sqlite.NewRowsStore(db)
	sources, err := store.Sources(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(sources) == 0 {
		return nil, "", fmt.Errorf("%w: %s holds no imported source", ErrEmptyDataset, filepath.Base(path))
	}
	rows, err := store.LoadRows(ctx, sources[0].Source)
	if err != nil {
		return nil, "", err
	}
	return rows, sources[0].Source, nil
}

// WriteFile writes rows to path in the format its extension names. SQLite
// targets are written through a RowsStore under source.
func WriteFile(ctx context.Context, path, source string, rows []enrollment.Row) error {
	format, comp, err := DetectFormat(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatXLSX:
		return WriteXLSX(path, "", rows)
	case FormatSQLite:
		db, err := sqlite.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()
		return sqlite.NewRowsStore(db).SaveRows(ctx, source, "", rows)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w, err := compress(f, comp)
	if err != nil {
		return err
	}
	if err := WriteCSV(w, rows); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}
