package store

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// openDB opens the SQLite label index at the given path.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	return db, nil
}

// labelsDDL creates the label index table. The index is derived state,
// rebuilt from the JSONL source on sync.
const labelsDDL = `CREATE TABLE IF NOT EXISTS labels (
  key TEXT PRIMARY KEY,
  type TEXT NOT NULL,
  label TEXT NOT NULL
)`

// labelsIndexDDL speeds up reverse lookup from label to entries.
const labelsIndexDDL = `CREATE INDEX IF NOT EXISTS idx_labels_label ON labels(label)`

// metaDDL creates the _meta table holding the source hash and sync time.
const metaDDL = `CREATE TABLE IF NOT EXISTS _meta (
  key TEXT PRIMARY KEY,
  value TEXT
)`

// createTables creates all tables for the label index.
func createTables(db *sql.DB) error {
	for _, ddl := range []string{labelsDDL, labelsIndexDDL, metaDDL} {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

// getStoredHash retrieves the JSONL hash recorded at the last sync.
func getStoredHash(db *sql.DB) (string, error) {
	var hash sql.NullString
	err := db.QueryRow("SELECT value FROM _meta WHERE key = 'jsonl_hash'").Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return hash.String, nil
}

// setStoredHash records the JSONL hash in the _meta table.
func setStoredHash(db *sql.DB, hash string) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO _meta (key, value) VALUES ('jsonl_hash', ?)`, hash)
	return err
}

// getLastSyncTime retrieves the last sync time from the _meta table.
func getLastSyncTime(db *sql.DB) (time.Time, error) {
	var timeStr sql.NullString
	err := db.QueryRow("SELECT value FROM _meta WHERE key = 'last_sync'").Scan(&timeStr)
	if err == sql.ErrNoRows || !timeStr.Valid {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, timeStr.String)
}

// setLastSyncTime records the last sync time in the _meta table.
func setLastSyncTime(db *sql.DB, t time.Time) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO _meta (key, value) VALUES ('last_sync', ?)`,
		t.Format(time.RFC3339))
	return err
}
