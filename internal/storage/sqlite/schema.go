package sqlite

// initSchema creates the database schema if it doesn't exist.
func (db *DB) initSchema() error {
	schema := `
	-- Enrollment rows in source order
	CREATE TABLE IF NOT EXISTS enrollment_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		region TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		total REAL,
		group_viii REAL,
		newly_eligible REAL
	);

	CREATE INDEX IF NOT EXISTS idx_enrollment_rows_region ON enrollment_rows(source, region);

	-- One entry per imported source
	CREATE TABLE IF NOT EXISTS dataset_meta (
		source TEXT PRIMARY KEY,
		fingerprint TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		imported_at TEXT NOT NULL
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}
