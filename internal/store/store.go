package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a small sqlite-backed key-value cache. Every entry is an
// envelope of (key, timestamp, payload); a reader either gets a payload
// that is fresh enough or nothing at all. There is no schema versioning:
// anything unreadable is treated as absent.
type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB

	now func() time.Time
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB, now: time.Now}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			key       TEXT PRIMARY KEY,
			timestamp DATETIME NOT NULL,
			payload   BLOB NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Read returns the payload stored under key if its envelope is younger
// than ttl. A ttl of zero or less disables the freshness check. Missing,
// stale, and unreadable entries all read as absent; Read never fails.
// An entry aged exactly ttl is already stale.
func (s *Store) Read(key string, ttl time.Duration) ([]byte, bool) {
	var (
		ts      time.Time
		payload []byte
	)
	err := s.readDB.QueryRow(
		"SELECT timestamp, payload FROM entries WHERE key = ?", key,
	).Scan(&ts, &payload)
	if err != nil {
		return nil, false
	}
	if ttl > 0 && s.now().Sub(ts) >= ttl {
		return nil, false
	}
	return payload, true
}

// Write replaces the envelope under key in a single upsert, stamped with
// the current time. A reader never observes a partially written entry.
func (s *Store) Write(key string, payload []byte) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO entries (key, timestamp, payload) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			timestamp = excluded.timestamp,
			payload = excluded.payload
	`, key, s.now(), payload)
	if err != nil {
		return fmt.Errorf("writing entry %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	_, err := s.writeDB.Exec("DELETE FROM entries WHERE key = ?", key)
	return err
}

// Stats reports the number of entries and the size of the database file.
func (s *Store) Stats(dbPath string) (count int, size int64, err error) {
	if err := s.readDB.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting entries: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return 0, 0, err
	}
	return count, info.Size(), nil
}
