// Ancillary collections: categories, tags, settings.
package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

const upsertCategorySQL = `
INSERT INTO categories (category_id, name, color, icon, ordinal, is_archived, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(category_id) DO UPDATE SET
    name = excluded.name,
    color = excluded.color,
    icon = excluded.icon,
    ordinal = excluded.ordinal,
    is_archived = excluded.is_archived,
    created_at = excluded.created_at
`

// PutCategories inserts or replaces categories by id in one transaction.
func (s *Store) PutCategories(cs []types.Category) error {
	if len(cs) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return types.NewStoreError("put categories", err)
	}
	defer tx.Rollback()

	for _, c := range cs {
		if err := putCategory(tx, c); err != nil {
			return types.NewStoreError("put categories", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return types.NewStoreError("put categories", err)
	}
	return nil
}

func putCategory(ex execer, c types.Category) error {
	_, err := ex.Exec(upsertCategorySQL,
		c.ID, c.Name, c.Color, c.Icon, c.Ordinal, c.IsArchived,
		encodeTime(c.CreatedAt),
	)
	return err
}

// AllCategories returns every category ordered by ordinal.
func (s *Store) AllCategories() ([]types.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return allCategoriesTx(s.db)
}

func allCategoriesTx(q querier) ([]types.Category, error) {
	rows, err := q.Query(`SELECT category_id, name, color, icon, ordinal, is_archived, created_at
		FROM categories ORDER BY ordinal`)
	if err != nil {
		return nil, types.NewStoreError("all categories", err)
	}
	defer rows.Close()

	var cats []types.Category
	for rows.Next() {
		var (
			c         types.Category
			createdAt string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Icon, &c.Ordinal,
			&c.IsArchived, &createdAt); err != nil {
			return nil, types.NewStoreError("all categories", err)
		}
		if c.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, types.NewStoreError("all categories",
				fmt.Errorf("decoding created_at for %s: %w", c.ID, err))
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStoreError("all categories", err)
	}
	return cats, nil
}

// ReplaceTags swaps the stored tag aggregates for the given set in one
// transaction. Tags are derived data; replacement, not merging, keeps the
// table aligned with the entries.
func (s *Store) ReplaceTags(ts []types.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return types.NewStoreError("replace tags", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tags"); err != nil {
		return types.NewStoreError("replace tags", err)
	}
	for _, t := range ts {
		if _, err := tx.Exec("INSERT INTO tags (name, count) VALUES (?, ?)", t.Name, t.Count); err != nil {
			return types.NewStoreError("replace tags", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return types.NewStoreError("replace tags", err)
	}
	return nil
}

// AllTags returns the stored tag aggregates ordered by name.
func (s *Store) AllTags() ([]types.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return allTagsTx(s.db)
}

func allTagsTx(q querier) ([]types.Tag, error) {
	rows, err := q.Query("SELECT name, count FROM tags ORDER BY name")
	if err != nil {
		return nil, types.NewStoreError("all tags", err)
	}
	defer rows.Close()

	var tags []types.Tag
	for rows.Next() {
		var t types.Tag
		if err := rows.Scan(&t.Name, &t.Count); err != nil {
			return nil, types.NewStoreError("all tags", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStoreError("all tags", err)
	}
	return tags, nil
}

// PutSetting inserts or replaces a setting by key.
func (s *Store) PutSetting(set types.Setting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := putSetting(s.db, set); err != nil {
		return types.NewStoreError("put setting", err)
	}
	return nil
}

func putSetting(ex execer, set types.Setting) error {
	value := set.Value
	if value == nil {
		value = json.RawMessage("null")
	}
	_, err := ex.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		set.Key, string(value))
	return err
}

// AllSettings returns every setting ordered by key.
func (s *Store) AllSettings() ([]types.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return allSettingsTx(s.db)
}

func allSettingsTx(q querier) ([]types.Setting, error) {
	rows, err := q.Query("SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		return nil, types.NewStoreError("all settings", err)
	}
	defer rows.Close()

	var settings []types.Setting
	for rows.Next() {
		var (
			set   types.Setting
			value string
		)
		if err := rows.Scan(&set.Key, &value); err != nil {
			return nil, types.NewStoreError("all settings", err)
		}
		set.Value = json.RawMessage(value)
		settings = append(settings, set)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStoreError("all settings", err)
	}
	return settings, nil
}
