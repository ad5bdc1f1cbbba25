// Entries table accessor.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

const upsertEntrySQL = `
INSERT INTO entries (
    entry_id, journal_id, title, content, content_type, mood, category,
    tags, is_favorite, is_encrypted, location, word_count, char_count,
    created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(entry_id) DO UPDATE SET
    journal_id = excluded.journal_id,
    title = excluded.title,
    content = excluded.content,
    content_type = excluded.content_type,
    mood = excluded.mood,
    category = excluded.category,
    tags = excluded.tags,
    is_favorite = excluded.is_favorite,
    is_encrypted = excluded.is_encrypted,
    location = excluded.location,
    word_count = excluded.word_count,
    char_count = excluded.char_count,
    created_at = excluded.created_at,
    updated_at = excluded.updated_at
`

const selectEntrySQL = `
SELECT entry_id, journal_id, title, content, content_type, mood, category,
       tags, is_favorite, is_encrypted, location, word_count, char_count,
       created_at, updated_at
FROM entries
`

// execer abstracts *sql.DB and *sql.Tx for shared write helpers.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// PutEntry inserts or replaces a single entry by id.
func (s *Store) PutEntry(e types.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := putEntry(s.db, e); err != nil {
		return types.NewStoreError("put entry", err)
	}
	return nil
}

// PutEntries inserts or replaces a batch of entries in one transaction.
func (s *Store) PutEntries(es []types.Entry) error {
	if len(es) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return types.NewStoreError("put entries", err)
	}
	defer tx.Rollback()

	for _, e := range es {
		if err := putEntry(tx, e); err != nil {
			return types.NewStoreError("put entries", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return types.NewStoreError("put entries", err)
	}
	return nil
}

func putEntry(ex execer, e types.Entry) error {
	tags, err := json.Marshal(e.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}
	var location any
	if e.Location != nil {
		raw, err := json.Marshal(e.Location)
		if err != nil {
			return fmt.Errorf("encoding location: %w", err)
		}
		location = string(raw)
	}

	_, err = ex.Exec(upsertEntrySQL,
		e.ID, e.JournalID, e.Title, e.Content, e.ContentType, e.Mood,
		e.Category, string(tags), e.IsFavorite, e.IsEncrypted, location,
		e.WordCount, e.CharCount, encodeTime(e.CreatedAt), encodeTime(e.UpdatedAt),
	)
	return err
}

// AllEntries returns every entry. Order is not guaranteed.
func (s *Store) AllEntries() ([]types.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return allEntriesTx(s.db)
}

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

func allEntriesTx(q querier) ([]types.Entry, error) {
	rows, err := q.Query(selectEntrySQL)
	if err != nil {
		return nil, types.NewStoreError("all entries", err)
	}
	defer rows.Close()

	var entries []types.Entry
	for rows.Next() {
		e, err := hydrateEntry(rows)
		if err != nil {
			return nil, types.NewStoreError("all entries", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStoreError("all entries", err)
	}
	return entries, nil
}

func hydrateEntry(rows *sql.Rows) (types.Entry, error) {
	var (
		e                  types.Entry
		tags               string
		location           sql.NullString
		createdAt, updated string
	)
	err := rows.Scan(
		&e.ID, &e.JournalID, &e.Title, &e.Content, &e.ContentType, &e.Mood,
		&e.Category, &tags, &e.IsFavorite, &e.IsEncrypted, &location,
		&e.WordCount, &e.CharCount, &createdAt, &updated,
	)
	if err != nil {
		return types.Entry{}, err
	}

	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return types.Entry{}, fmt.Errorf("decoding tags for %s: %w", e.ID, err)
	}
	if location.Valid && location.String != "" {
		var loc types.Location
		if err := json.Unmarshal([]byte(location.String), &loc); err != nil {
			return types.Entry{}, fmt.Errorf("decoding location for %s: %w", e.ID, err)
		}
		e.Location = &loc
	}
	if e.CreatedAt, err = decodeTime(createdAt); err != nil {
		return types.Entry{}, fmt.Errorf("decoding created_at for %s: %w", e.ID, err)
	}
	if e.UpdatedAt, err = decodeTime(updated); err != nil {
		return types.Entry{}, fmt.Errorf("decoding updated_at for %s: %w", e.ID, err)
	}
	return e, nil
}

// DeleteEntries removes entries by id in one transaction. Absent ids are
// skipped silently.
func (s *Store) DeleteEntries(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return types.NewStoreError("delete entries", err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		if _, err := tx.Exec("DELETE FROM entries WHERE entry_id = ?", id); err != nil {
			return types.NewStoreError("delete entries", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return types.NewStoreError("delete entries", err)
	}
	return nil
}

// CountEntriesByJournal returns entry counts keyed by journal id.
func (s *Store) CountEntriesByJournal() (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT journal_id, COUNT(*) FROM entries GROUP BY journal_id")
	if err != nil {
		return nil, types.NewStoreError("count entries", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var journalID string
		var n int
		if err := rows.Scan(&journalID, &n); err != nil {
			return nil, types.NewStoreError("count entries", err)
		}
		counts[journalID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStoreError("count entries", err)
	}
	return counts, nil
}

// ReassignEntries re-points every entry of one journal to another, stamping
// the given mutation time. Returns the number of entries moved.
func (s *Store) ReassignEntries(fromJournalID, toJournalID string, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE entries SET journal_id = ?, updated_at = ? WHERE journal_id = ?",
		toJournalID, encodeTime(at), fromJournalID,
	)
	if err != nil {
		return 0, types.NewStoreError("reassign entries", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, types.NewStoreError("reassign entries", err)
	}
	return n, nil
}
