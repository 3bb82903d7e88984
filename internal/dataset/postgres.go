package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

// tableIdentifier splits an optionally schema-qualified table name.
func tableIdentifier(table string) pgx.Identifier {
	return pgx.Identifier(strings.Split(table, "."))
}

// postgresQuery selects the required columns of table, casting them so the
// scan does not depend on how the table was created.
func postgresQuery(table string) string {
	col := func(name, cast string) string {
		return pgx.Identifier{name}.Sanitize() + "::" + cast
	}
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s`,
		col(enrollment.ColumnState, "text"),
		col(enrollment.ColumnYear, "int"),
		col(enrollment.ColumnMonth, "int"),
		col(enrollment.ColumnTotal, "float8"),
		col(enrollment.ColumnGroupVIII, "float8"),
		col(enrollment.ColumnNewlyEligible, "float8"),
		tableIdentifier(table).Sanitize(),
	)
}

// ReadPostgres reads enrollment rows from a PostgreSQL table whose columns
// carry the published header names.
func ReadPostgres(ctx context.Context, dsn, table string) ([]enrollment.Row, Stats, error) {
	var st Stats

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, st, fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, st, fmt.Errorf("failed to connect to database: %w", err)
	}

	pgRows, err := pool.Query(ctx, postgresQuery(table))
	if err != nil {
		return nil, st, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer pgRows.Close()

	var rows []enrollment.Row
	for pgRows.Next() {
		st.Records++
		var (
			region      *string
			year, month *int32
			r           enrollment.Row
		)
		if err := pgRows.Scan(&region, &year, &month, &r.Total, &r.GroupVIII, &r.NewlyEligible); err != nil {
			return nil, st, fmt.Errorf("failed to scan row: %w", err)
		}
		if year == nil || month == nil || *month < 1 || *month > 12 {
			st.SkippedRows++
			continue
		}
		if region != nil {
			r.Region = *region
		}
		r.Year, r.Month = int(*year), int(*month)
		for _, v := range []*float64{r.Total, r.GroupVIII, r.NewlyEligible} {
			if v == nil {
				st.NullCells++
			}
		}
		rows = append(rows, r)
	}
	if err := pgRows.Err(); err != nil {
		return nil, st, fmt.Errorf("failed to read rows: %w", err)
	}
	st.Kept = len(rows)
	return rows, st, nil
}
