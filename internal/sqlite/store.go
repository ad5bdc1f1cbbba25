package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "daybook.db"

// Store implements types.Store on a single SQLite database file.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

var _ types.Store = (*Store)(nil)

// Open opens (creating if necessary) the database under cfg.DataDir,
// applies the schema, and seeds the default categories on first run.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, types.NewStoreError("open", err)
	}

	dbPath := filepath.Join(cfg.DataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, types.NewStoreError("open", err)
	}

	// Single writer; modernc sqlite serializes writes anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA foreign_keys=ON;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, types.NewStoreError("open", fmt.Errorf("pragma: %w", err))
		}
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, types.NewStoreError("open", fmt.Errorf("schema: %w", err))
		}
	}

	s := &Store{db: db}
	if err := s.seedCategories(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return types.NewStoreError("close", err)
	}
	return nil
}

// Clear wipes every collection. Irreversible.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return types.NewStoreError("clear", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"entries", "journals", "categories", "tags", "settings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return types.NewStoreError("clear", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return types.NewStoreError("clear", err)
	}
	return nil
}

// EstimateSize reports page_count × page_size for the database, or 0
// without error when the pragmas cannot be read.
func (s *Store) EstimateSize() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pageCount, pageSize int64
	if err := s.db.QueryRow("PRAGMA page_count;").Scan(&pageCount); err != nil {
		return 0, nil
	}
	if err := s.db.QueryRow("PRAGMA page_size;").Scan(&pageSize); err != nil {
		return 0, nil
	}
	return pageCount * pageSize, nil
}

// newUUID generates a UUID v7 string, falling back to v4 if v7 generation
// fails.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// encodeTime renders a timestamp for storage. The zero time is stored as
// the empty string.
func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// decodeTime parses a stored timestamp; the empty string is the zero time.
func decodeTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
