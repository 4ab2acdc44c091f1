// Package store keeps bibliography entries in a git-versionable JSONL
// file with an ephemeral SQLite index of computed labels. The JSONL file
// is the source of truth; the index is rebuilt from it on sync and its
// staleness is tracked with a content hash.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/matsen/citelabel/internal/entry"
	"github.com/matsen/citelabel/internal/label"
)

const (
	// EntriesFile is the JSONL source of truth.
	EntriesFile = "entries.jsonl"
	// IndexFile is the derived SQLite label index.
	IndexFile = "labels.db"
)

// ErrDuplicateKey is returned when appending an entry whose citation key
// already exists in the library.
var ErrDuplicateKey = errors.New("duplicate citation key")

// ErrMissingKey is returned when appending an entry without a citation key.
var ErrMissingKey = errors.New("entry has no citation key")

// Store is an entry library rooted at a directory.
type Store struct {
	Dir       string
	jsonlPath string
	dbPath    string
}

// LabeledEntry is one row of the label index.
type LabeledEntry struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// Open returns a Store rooted at dir with derived file paths. It does not
// touch the filesystem; use Init to create a new library.
func Open(dir string) *Store {
	return &Store{
		Dir:       dir,
		jsonlPath: filepath.Join(dir, EntriesFile),
		dbPath:    filepath.Join(dir, IndexFile),
	}
}

// EntriesPath returns the path to the JSONL file.
func (s *Store) EntriesPath() string {
	return s.jsonlPath
}

// IndexPath returns the path to the SQLite label index.
func (s *Store) IndexPath() string {
	return s.dbPath
}

// Exists reports whether the library has been initialized.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.jsonlPath)
	return err == nil
}

// Init creates the library directory, an empty entries file, and the
// label index tables.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("creating library directory: %w", err)
	}

	f, err := os.OpenFile(s.jsonlPath, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("creating entries file: %w", err)
	}
	f.Close()

	db, err := openDB(s.dbPath)
	if err != nil {
		return fmt.Errorf("creating label index: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}

// Load reads all entries from the JSONL source.
func (s *Store) Load() ([]entry.Entry, error) {
	return ReadEntries(s.jsonlPath)
}

// Append validates an entry and adds it to the JSONL source. The label
// index is not updated; run Sync afterwards.
func (s *Store) Append(e entry.Entry) error {
	if e.Key == "" {
		return ErrMissingKey
	}

	entries, err := s.Load()
	if err != nil {
		return fmt.Errorf("reading entries: %w", err)
	}
	for _, existing := range entries {
		if existing.Key == e.Key {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, e.Key)
		}
	}

	if err := AppendEntry(s.jsonlPath, e); err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}

	return nil
}

// Sync recomputes every entry's label with the given style and rebuilds
// the label index. Returns the number of entries indexed.
func (s *Store) Sync(style label.Style) (int, error) {
	entries, err := s.Load()
	if err != nil {
		return 0, fmt.Errorf("reading entries: %w", err)
	}

	hash, err := ComputeJSONLHash(s.jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("computing hash: %w", err)
	}

	db, err := openDB(s.dbPath)
	if err != nil {
		return 0, fmt.Errorf("opening label index: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return 0, fmt.Errorf("creating tables: %w", err)
	}

	if _, err := db.Exec("DELETE FROM labels"); err != nil {
		return 0, fmt.Errorf("clearing label index: %w", err)
	}

	for i, e := range entries {
		_, err := db.Exec("INSERT INTO labels (key, type, label) VALUES (?, ?, ?)",
			e.Key, e.Type, style(e))
		if err != nil {
			return 0, fmt.Errorf("indexing entry %d (%s): %w", i+1, e.Key, err)
		}
	}

	if err := setStoredHash(db, hash); err != nil {
		return 0, fmt.Errorf("recording hash: %w", err)
	}
	if err := setLastSyncTime(db, time.Now()); err != nil {
		return 0, fmt.Errorf("recording sync time: %w", err)
	}

	return len(entries), nil
}

// NeedsSync reports whether the JSONL source has changed since the label
// index was last rebuilt.
func (s *Store) NeedsSync() (bool, error) {
	currentHash, err := ComputeJSONLHash(s.jsonlPath)
	if err != nil {
		return true, err
	}

	db, err := openDB(s.dbPath)
	if err != nil {
		return true, err
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return true, err
	}

	storedHash, err := getStoredHash(db)
	if err != nil {
		return true, err
	}

	return currentHash != storedHash, nil
}

// LastSync returns the time of the last index rebuild, zero if never.
func (s *Store) LastSync() (time.Time, error) {
	db, err := openDB(s.dbPath)
	if err != nil {
		return time.Time{}, err
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return time.Time{}, err
	}

	return getLastSyncTime(db)
}

// Labels returns the full label index, ordered by citation key.
func (s *Store) Labels() ([]LabeledEntry, error) {
	db, err := openDB(s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening label index: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT key, type, label FROM labels ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("querying label index: %w", err)
	}
	defer rows.Close()

	var labeled []LabeledEntry
	for rows.Next() {
		var le LabeledEntry
		if err := rows.Scan(&le.Key, &le.Type, &le.Label); err != nil {
			return nil, err
		}
		labeled = append(labeled, le)
	}

	return labeled, rows.Err()
}

// FindByLabel returns the indexed entries carrying the given label.
// Several entries may share a label; disambiguation suffixes are a
// downstream concern.
func (s *Store) FindByLabel(lbl string) ([]LabeledEntry, error) {
	db, err := openDB(s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening label index: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT key, type, label FROM labels WHERE label = ? ORDER BY key", lbl)
	if err != nil {
		return nil, fmt.Errorf("querying label index: %w", err)
	}
	defer rows.Close()

	var labeled []LabeledEntry
	for rows.Next() {
		var le LabeledEntry
		if err := rows.Scan(&le.Key, &le.Type, &le.Label); err != nil {
			return nil, err
		}
		labeled = append(labeled, le)
	}

	return labeled, rows.Err()
}
