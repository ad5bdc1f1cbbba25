// Package sqlite implements the SQLite-backed Store for the Daybook
// journaling engine.
package sqlite

// Schema DDL for all collections. Timestamps are stored as RFC 3339 TEXT;
// tags and locations as JSON TEXT.
const (
	createEntries = `CREATE TABLE IF NOT EXISTS entries (
    entry_id TEXT PRIMARY KEY,
    journal_id TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL,
    content_type TEXT NOT NULL DEFAULT 'plain',
    mood INTEGER NOT NULL DEFAULT 0,
    category TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]',
    is_favorite INTEGER NOT NULL DEFAULT 0,
    is_encrypted INTEGER NOT NULL DEFAULT 0,
    location TEXT,
    word_count INTEGER NOT NULL DEFAULT 0,
    char_count INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createEntriesJournalIndex = `CREATE INDEX IF NOT EXISTS idx_entries_journal
    ON entries(journal_id);`

	createJournals = `CREATE TABLE IF NOT EXISTS journals (
    journal_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    color TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    theme TEXT NOT NULL DEFAULT '',
    is_default INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    last_used_at TEXT NOT NULL DEFAULT ''
);`

	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    category_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    color TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    ordinal INTEGER NOT NULL DEFAULT 0,
    is_archived INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    name TEXT PRIMARY KEY,
    count INTEGER NOT NULL DEFAULT 0
);`

	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// schemaStatements lists the DDL executed on open, in order.
var schemaStatements = []string{
	createEntries,
	createEntriesJournalIndex,
	createJournals,
	createCategories,
	createTags,
	createSettings,
}
