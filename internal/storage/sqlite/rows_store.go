package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

// Meta describes one cached source.
type Meta struct {
	Source      string
	Fingerprint string
	RowCount    int
	ImportedAt  time.Time
}

// RowsStore persists enrollment rows keyed by source.
type RowsStore struct {
	db *DB
}

// NewRowsStore creates a new RowsStore with the given database connection.
func NewRowsStore(db *DB) *RowsStore {
	return &RowsStore{db: db}
}

// SaveRows replaces every cached row of source in a single transaction and
// records fingerprint for later freshness checks.
func (s *RowsStore) SaveRows(ctx context.Context, source, fingerprint string, rows []enrollment.Row) error {
	tx, err := s.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM enrollment_rows WHERE source = ?`, source); err != nil {
		return fmt.Errorf("failed to clear rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO enrollment_rows (source, region, year, month, total, group_viii, newly_eligible)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.ExecContext(ctx, source, r.Region, r.Year, r.Month,
			nullFloat(r.Total), nullFloat(r.GroupVIII), nullFloat(r.NewlyEligible))
		if err != nil {
			return fmt.Errorf("failed to insert row %s %d-%02d: %w", r.Region, r.Year, r.Month, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO dataset_meta (source, fingerprint, row_count, imported_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			row_count = excluded.row_count,
			imported_at = excluded.imported_at`,
		source, fingerprint, len(rows), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save dataset meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadRows returns the cached rows of source in insertion order.
func (s *RowsStore) LoadRows(ctx context.Context, source string) ([]enrollment.Row, error) {
	rows, err := s.db.conn.QueryContext(ctx, `
		SELECT region, year, month, total, group_viii, newly_eligible
		FROM enrollment_rows
		WHERE source = ?
		ORDER BY id ASC`, source)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rows.Close()

	var out []enrollment.Row
	for rows.Next() {
		var (
			r                  enrollment.Row
			total, viii, newly sql.NullFloat64
		)
		if err := rows.Scan(&r.Region, &r.Year, &r.Month, &total, &viii, &newly); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		r.Total = floatPtr(total)
		r.GroupVIII = floatPtr(viii)
		r.NewlyEligible = floatPtr(newly)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Meta returns the metadata recorded for source. ok is false when the
// source has never been cached.
func (s *RowsStore) Meta(ctx context.Context, source string) (Meta, bool, error) {
	var (
		m          Meta
		importedAt string
	)
	err := s.db.conn.QueryRowContext(ctx, `
		SELECT source, fingerprint, row_count, imported_at
		FROM dataset_meta
		WHERE source = ?`, source).Scan(&m.Source, &m.Fingerprint, &m.RowCount, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Meta{}, false, nil
	}
	if err != nil {
		return Meta{}, false, fmt.Errorf("failed to query dataset meta: %w", err)
	}
	m.ImportedAt, _ = time.Parse(time.RFC3339Nano, importedAt)
	return m, true, nil
}

// Sources lists every cached source, most recent import first.
func (s *RowsStore) Sources(ctx context.Context) ([]Meta, error) {
	rows, err := s.db.conn.QueryContext(ctx, `
		SELECT source, fingerprint, row_count, imported_at
		FROM dataset_meta
		ORDER BY imported_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	defer rows.Close()

	var out []Meta
	for rows.Next() {
		var (
			m          Meta
			importedAt string
		)
		if err := rows.Scan(&m.Source, &m.Fingerprint, &m.RowCount, &importedAt); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		m.ImportedAt, _ = time.Parse(time.RFC3339Nano, importedAt)
		out = append(out, m)
	}
	return out, rows.Err()
}

// Delete removes source and its rows.
func (s *RowsStore) Delete(ctx context.Context, source string) error {
	tx, err := s.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM enrollment_rows WHERE source = ?`, source); err != nil {
		return fmt.Errorf("failed to delete rows: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM dataset_meta WHERE source = ?`, source); err != nil {
		return fmt.Errorf("failed to delete dataset meta: %w", err)
	}
	return tx.Commit()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if !enrollment.Valid(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
